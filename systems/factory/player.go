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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Flash.SetValue(player, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	return player
}
