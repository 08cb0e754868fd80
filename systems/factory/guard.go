package factory

import (
	"github.com/automoto/breachpoint/archetypes"
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGuard spawns a guard of the named type at x, y. The patrol route
// is assigned separately by the level setup once paths are resolved.
func CreateGuard(ecs *ecs.ECS, x, y float64, guardTypeName string) *donburi.Entry {
	guardType, exists := cfg.Guard.Types[guardTypeName]
	if !exists {
		guardTypeName = "Marine"
		guardType = cfg.Guard.Types[guardTypeName]
	}

	guard := archetypes.Guard.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(guardType.CollisionWidth), float64(guardType.CollisionHeight))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvGuard)
	obj.Data = guard
	components.Object.SetValue(guard, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Guard.SetValue(guard, components.GuardData{
		TypeName:   guardTypeName,
		TypeConfig: &guardType,
		Facing:     components.Vector{X: 1, Y: 0},
	})
	components.State.SetValue(guard, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(guard, components.PhysicsData{
		Friction: guardType.Friction,
		MaxSpeed: guardType.MaxSpeed,
	})
	components.Health.SetValue(guard, components.HealthData{
		Current: guardType.Health,
		Max:     guardType.Health,
	})
	components.Flash.SetValue(guard, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	return guard
}
