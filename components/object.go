package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision rectangle.
func (o *ObjectData) Center() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
