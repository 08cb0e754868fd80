package systems

import (
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions integrates character movement against the collision
// space, one axis at a time so sliding along walls works.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		moveCharacter(components.Physics.Get(e), components.Object.Get(e).Object)
	})

	tags.Guard.Each(ecs.World, func(e *donburi.Entry) {
		moveCharacter(components.Physics.Get(e), components.Object.Get(e).Object)
	})
}

func moveCharacter(physics *components.PhysicsData, object *resolv.Object) {
	dt := cfg.Time.Delta
	resolveHorizontal(physics, object, physics.SpeedX*dt)
	resolveVertical(physics, object, physics.SpeedY*dt)
	object.Update()
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		object.X += check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
		return
	}

	// Overlapping another character: gentle push-back instead of a hard
	// stop, so crowds unstick themselves.
	if characters := check.ObjectsByTags(tags.ResolvCharacter); len(characters) > 0 {
		contact := check.ContactWithObject(characters[0])
		if contact.X() != 0 {
			push := cfg.Physics.CharacterPushback * cfg.Time.Delta
			if dx > 0 {
				dx = -push
			} else {
				dx = push
			}
		} else {
			dx = contact.X()
		}
	}

	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, tags.ResolvSolid, tags.ResolvCharacter)
	if check == nil {
		object.Y += dy
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		object.Y += check.ContactWithObject(solids[0]).Y()
		physics.SpeedY = 0
		return
	}

	if characters := check.ObjectsByTags(tags.ResolvCharacter); len(characters) > 0 {
		contact := check.ContactWithObject(characters[0])
		if contact.Y() != 0 {
			push := cfg.Physics.CharacterPushback * cfg.Time.Delta
			if dy > 0 {
				dy = -push
			} else {
				dy = push
			}
		} else {
			dy = contact.Y()
		}
	}

	object.Y += dy
}
