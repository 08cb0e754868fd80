package systems

import (
	"math"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics damps leftover velocity and clamps speed. It runs before
// the controllers, so anything that sets an intent this tick (player
// input, guard AI) moves at full speed while uncontrolled entities coast
// to a stop.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Bullet) {
			return // bullets fly at constant speed
		}

		physics := components.Physics.Get(e)
		dt := cfg.Time.Delta

		speed := math.Hypot(physics.SpeedX, physics.SpeedY)
		if speed > 0 && physics.Friction > 0 {
			drop := physics.Friction * dt
			if drop >= speed {
				physics.SpeedX = 0
				physics.SpeedY = 0
				return
			}
			scale := (speed - drop) / speed
			physics.SpeedX *= scale
			physics.SpeedY *= scale
			speed -= drop
		}

		if physics.MaxSpeed > 0 && speed > physics.MaxSpeed {
			scale := physics.MaxSpeed / speed
			physics.SpeedX *= scale
			physics.SpeedY *= scale
		}
	})
}
