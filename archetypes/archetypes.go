package archetypes

import (
	"github.com/automoto/breachpoint/components"
	"github.com/automoto/breachpoint/tags"
	"github.com/yohamta/donburi"
	ecslib "github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Flash,
	)
	Guard = newArchetype(
		tags.Guard,
		components.Guard,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Flash,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	HidingZone = newArchetype(
		tags.HidingZone,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	EventQueue = newArchetype(
		components.EventQueue,
	)
	Feedback = newArchetype(
		components.Feedback,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Cutscene = newArchetype(
		components.Cutscene,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecslib.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		ecslib.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
