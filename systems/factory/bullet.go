package factory

import (
	"github.com/automoto/breachpoint/archetypes"
	"github.com/automoto/breachpoint/components"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bulletSize = 4.0

// CreateBullet spawns a projectile at origin traveling along dir (unit
// vector). The shooter reference rides along so the bullet can never
// damage the entity that fired it.
func CreateBullet(ecs *ecs.ECS, shooter *donburi.Entry, origin, dir components.Vector, speed float64, damage int) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	obj := resolv.NewObject(
		origin.X-bulletSize/2,
		origin.Y-bulletSize/2,
		bulletSize,
		bulletSize,
		tags.ResolvBullet,
	)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Physics.SetValue(b, components.PhysicsData{
		SpeedX:   dir.X * speed,
		SpeedY:   dir.Y * speed,
		MaxSpeed: speed,
	})
	components.Bullet.SetValue(b, components.BulletData{
		Shooter: shooter,
		Damage:  damage,
		Speed:   speed,
	})

	return b
}
