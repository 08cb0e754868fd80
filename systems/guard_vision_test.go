package systems

import (
	"testing"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisionConeAndRange(t *testing.T) {
	tests := []struct {
		name    string
		target  components.Vector
		wall    *components.Vector // optional wall top-left, 16x100
		visible bool
	}{
		{name: "dead ahead in range", target: components.Vector{X: 300, Y: 100}, visible: true},
		{name: "beyond vision range", target: components.Vector{X: 400, Y: 100}, visible: false},
		{name: "inside cone upper edge", target: components.Vector{X: 200, Y: 40}, visible: true},
		{name: "outside cone", target: components.Vector{X: 100, Y: 300}, visible: false},
		{name: "directly behind", target: components.Vector{X: 20, Y: 100}, visible: false},
		{name: "occluded by wall", target: components.Vector{X: 300, Y: 100}, wall: &components.Vector{X: 200, Y: 50}, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestECS(t)
			if tt.wall != nil {
				factory.CreateWall(e, tt.wall.X, tt.wall.Y, 16, 100)
			}
			guard := factory.CreateGuard(e, 100, 100, "Marine")
			placeCenter(guard, 100, 100)
			// Facing +X with a 60 degree half angle.

			got := canSeePosition(e, guard, components.Vector{X: 100, Y: 100}, tt.target)
			assert.Equal(t, tt.visible, got)
		})
	}
}

func TestDetectionMeterFillsWithProximity(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 250, 100) // visible but outside instant spot range

	gd := components.Guard.Get(guard)
	UpdateGuards(e)

	require.Equal(t, cfg.StatePatrol, components.State.Get(guard).CurrentState)
	far := gd.DetectionLevel
	assert.Greater(t, far, 0.0)

	gd.DetectionLevel = 0
	placeCenter(player, 160, 100) // closer fills faster
	UpdateGuards(e)
	assert.Greater(t, gd.DetectionLevel, far)
}

func TestDetectionFullForcesAlert(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 250, 100)

	gd := components.Guard.Get(guard)
	gd.DetectionLevel = 0.999

	UpdateGuards(e)

	assert.Equal(t, cfg.StateAlert, components.State.Get(guard).CurrentState)
	assert.Zero(t, gd.DetectionLevel)
}

func TestDetectionDecaysOutOfSight(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 800, 500)

	gd := components.Guard.Get(guard)
	gd.DetectionLevel = 0.5

	UpdateGuards(e)
	assert.Less(t, gd.DetectionLevel, 0.5)

	for i := 0; i < 120; i++ {
		UpdateGuards(e)
	}
	assert.Zero(t, gd.DetectionLevel)
}

func TestStealthShortensEffectiveRange(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)

	gd := components.Guard.Get(guard)
	tc := gd.TypeConfig
	pd := components.Player.Get(player)

	// Between half range and full range: visible standing, not crouched.
	placeCenter(player, 100+tc.VisionRange*0.7, 100)

	UpdateGuards(e)
	standing := gd.DetectionLevel
	assert.Greater(t, standing, 0.0)

	gd.DetectionLevel = 0
	pd.StealthLevel = 1.0
	UpdateGuards(e)
	assert.Zero(t, gd.DetectionLevel)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(guard).CurrentState)
}

func TestHidingZoneBreaksPursuit(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 180, 100)

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	pd := components.Player.Get(player)
	gd.Target = player
	state.Transition(cfg.StateChase)
	pd.Hiding = true

	UpdateGuards(e)

	assert.Equal(t, cfg.StateSearch, state.CurrentState)
	assert.False(t, gd.TargetVisible)
	assert.InDelta(t, 180, gd.LastKnownTargetPos.X, 0.001)
}

func TestHiddenPlayerIsNeverDetected(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 130, 100) // point blank
	components.Player.Get(player).Hiding = true

	for i := 0; i < 60; i++ {
		UpdateGuards(e)
	}

	gd := components.Guard.Get(guard)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(guard).CurrentState)
	assert.Zero(t, gd.DetectionLevel)
}

func TestHearingRaisesSuspicion(t *testing.T) {
	e, _ := newTestECS(t)
	// Wall blocks sight; the player is close enough to hear.
	factory.CreateWall(e, 130, 50, 16, 100)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 170, 100)

	UpdateGuards(e)

	state := components.State.Get(guard)
	gd := components.Guard.Get(guard)
	assert.Equal(t, cfg.StateSuspicious, state.CurrentState)
	assert.InDelta(t, 170, gd.LastKnownTargetPos.X, 0.001)
}
