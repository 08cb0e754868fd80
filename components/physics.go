package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Length returns the vector magnitude.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the same direction, or the zero
// vector when the length is zero.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Rotated returns the vector rotated by the given angle in radians.
func (v Vector) Rotated(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the vector's heading in radians.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// PhysicsData holds per-entity movement state. Speeds are in pixels per
// second; the collision system scales by the fixed tick delta.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Friction float64 // deceleration in pixels per second squared
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
