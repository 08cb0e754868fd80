package factory

import (
	"github.com/automoto/breachpoint/archetypes"
	"github.com/automoto/breachpoint/assets"
	"github.com/automoto/breachpoint/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: &levels[levelIndex],
		LevelIndex:   levelIndex,
		Levels:       levels,
	})
	return level
}
