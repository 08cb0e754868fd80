package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets advances projectiles in a straight line until they hit
// something or leave the level.
func UpdateBullets(ecs *ecs.ECS) {
	levelWidth, levelHeight := levelBounds(ecs.World)

	var toRemove []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		physics := components.Physics.Get(e)
		object := components.Object.Get(e)

		dx := physics.SpeedX * cfg.Time.Delta
		dy := physics.SpeedY * cfg.Time.Delta

		if check := object.Check(dx, dy, tags.ResolvSolid, tags.ResolvCharacter); check != nil {
			if hit := firstTarget(check.ObjectsByTags(tags.ResolvCharacter), bullet.Shooter); hit != nil {
				if !hit.HasComponent(components.DamageEvent) {
					hit.AddComponent(components.DamageEvent)
				}
				components.DamageEvent.SetValue(hit, components.DamageEventData{
					Amount: bullet.Damage,
					Source: bullet.Shooter,
				})
				toRemove = append(toRemove, e)
				return
			}
			if len(check.ObjectsByTags(tags.ResolvSolid)) > 0 {
				toRemove = append(toRemove, e)
				return
			}
		}

		object.X += dx
		object.Y += dy
		object.Update()

		if object.X < -object.W || object.Y < -object.H ||
			object.X > levelWidth || object.Y > levelHeight {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeBullet(ecs, e)
	}
}

// firstTarget picks the first character object the bullet can damage.
// The shooter never hits itself.
func firstTarget(objects []*resolv.Object, shooter *donburi.Entry) *donburi.Entry {
	for _, obj := range objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if shooter != nil && entry.Entity() == shooter.Entity() {
			continue
		}
		if entry.HasComponent(components.Health) {
			return entry
		}
	}
	return nil
}

func removeBullet(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		object := components.Object.Get(e)
		if object.Space != nil {
			object.Space.Remove(object.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

func levelBounds(w donburi.World) (float64, float64) {
	if entry, ok := components.Level.First(w); ok {
		level := components.Level.Get(entry)
		if level.CurrentLevel != nil {
			return float64(level.CurrentLevel.Width), float64(level.CurrentLevel.Height)
		}
	}
	return float64(cfg.C.Width), float64(cfg.C.Height)
}
