package factory

import (
	"github.com/automoto/breachpoint/archetypes"
	"github.com/automoto/breachpoint/components"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	return wall
}

// CreateHidingZone places a non-solid area the player can duck into to
// break guard vision.
func CreateHidingZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.HidingZone.Spawn(ecs)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvHiding)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	return zone
}
