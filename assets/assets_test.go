package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeck01Geometry(t *testing.T) {
	loader := NewLevelLoader()
	level := loader.MustLoadLevel("levels/deck01.tmx")

	assert.Equal(t, 960, level.Width)
	assert.Equal(t, 544, level.Height)
	assert.Len(t, level.Walls, 9)
	assert.Len(t, level.HidingZones, 3)
	require.Len(t, level.PlayerSpawns, 1)
	assert.InDelta(t, 48, level.PlayerSpawns[0].X, 0.001)
	assert.InDelta(t, 480, level.PlayerSpawns[0].Y, 0.001)
}

func TestLoadDeck01PatrolPaths(t *testing.T) {
	loader := NewLevelLoader()
	level := loader.MustLoadLevel("levels/deck01.tmx")

	require.Len(t, level.PatrolPaths, 3)

	cargo, ok := level.PatrolPaths["cargo_route"]
	require.True(t, ok)
	require.Len(t, cargo.Points, 4)
	// Polyline points are offset by the object origin.
	assert.InDelta(t, 96, cargo.Points[0].X, 0.001)
	assert.InDelta(t, 96, cargo.Points[0].Y, 0.001)
	assert.InDelta(t, 256, cargo.Points[1].X, 0.001)
}

func TestLoadDeck01GuardSpawns(t *testing.T) {
	loader := NewLevelLoader()
	level := loader.MustLoadLevel("levels/deck01.tmx")

	require.Len(t, level.GuardSpawns, 3)

	types := map[string]string{}
	for _, spawn := range level.GuardSpawns {
		types[spawn.GuardType] = spawn.PatrolPath
	}
	assert.Equal(t, "cargo_route", types["Marine"])
	assert.Equal(t, "engine_route", types["Sentry"])
	assert.Equal(t, "bridge_route", types["Heavy"])
}

func TestMustLoadLevelsFindsAllDecks(t *testing.T) {
	loader := NewLevelLoader()
	levels := loader.MustLoadLevels()
	assert.NotEmpty(t, levels)
}
