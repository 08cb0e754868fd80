package systems

import (
	"github.com/automoto/breachpoint/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps the collision space in sync with any object that
// was moved outside the collision pass.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}
