package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts dead bodies down and removes them from the world
// once their fade timer runs out.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= cfg.Time.Delta
		if death.Timer > 0 {
			return
		}

		if e.HasComponent(components.Object) {
			object := components.Object.Get(e)
			if object.Space != nil {
				object.Space.Remove(object.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	})
}
