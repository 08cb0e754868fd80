package systems

import (
	"testing"

	"github.com/automoto/breachpoint/components"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestFrictionCoastsToStop(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	physics := components.Physics.Get(guard)
	physics.SpeedX = 80

	for i := 0; i < 300; i++ {
		UpdatePhysics(e)
	}

	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
}

func TestMaxSpeedClamp(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	physics := components.Physics.Get(guard)
	physics.Friction = 0
	physics.SpeedX = 10000

	UpdatePhysics(e)

	assert.InDelta(t, physics.MaxSpeed, physics.SpeedX, 0.001)
}

func TestBulletsKeepConstantSpeed(t *testing.T) {
	e, _ := newTestECS(t)
	bullet := factory.CreateBullet(e, nil, components.Vector{X: 100, Y: 100},
		components.Vector{X: 1, Y: 0}, 600, 10)

	UpdatePhysics(e)

	assert.InDelta(t, 600, components.Physics.Get(bullet).SpeedX, 0.001)
}

func TestWallBlocksMovement(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateWall(e, 200, 50, 16, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 180, 100)

	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)

	for i := 0; i < 120; i++ {
		physics.SpeedX = 110
		UpdateCollisions(e)
	}

	assert.LessOrEqual(t, obj.X+obj.W, 200.0+0.001)
	assert.Zero(t, physics.SpeedX)
}

func TestHidingZoneDoesNotBlockMovement(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateHidingZone(e, 200, 50, 48, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 180, 100)

	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)
	startX := obj.X

	for i := 0; i < 60; i++ {
		physics.SpeedX = 110
		UpdateCollisions(e)
	}

	assert.Greater(t, obj.X, startX+50)
}
