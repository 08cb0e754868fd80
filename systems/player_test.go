package systems

import (
	"testing"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrouchRampsStealthBothWays(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	pd := components.Player.Get(player)
	pd.Crouching = true

	UpdatePlayer(e)
	assert.Greater(t, pd.StealthLevel, 0.0)
	assert.Less(t, pd.StealthLevel, cfg.Player.CrouchStealth)

	ramp := int(cfg.Player.CrouchStealth/(cfg.Player.StealthRampSpeed*cfg.Time.Delta)) + 2
	for i := 0; i < ramp; i++ {
		UpdatePlayer(e)
	}
	assert.InDelta(t, cfg.Player.CrouchStealth, pd.StealthLevel, 0.001)

	pd.Crouching = false
	for i := 0; i < ramp; i++ {
		UpdatePlayer(e)
	}
	assert.Zero(t, pd.StealthLevel)
}

func TestCrouchSlowsMovement(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	pd := components.Player.Get(player)
	physics := components.Physics.Get(player)

	pd.Direction = components.Vector{X: 1, Y: 0}
	UpdatePlayer(e)
	assert.InDelta(t, cfg.Player.MoveSpeed, physics.SpeedX, 0.001)

	pd.Crouching = true
	UpdatePlayer(e)
	assert.InDelta(t, cfg.Player.CrouchSpeed, physics.SpeedX, 0.001)
}

func TestHidingFlagTracksZoneOverlap(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateHidingZone(e, 200, 50, 48, 100)
	player := factory.CreatePlayer(e, 0, 0)
	pd := components.Player.Get(player)

	placeCenter(player, 220, 100)
	UpdatePlayer(e)
	assert.True(t, pd.Hiding)

	placeCenter(player, 100, 100)
	UpdatePlayer(e)
	assert.False(t, pd.Hiding)
}

func TestFiringSpawnsBulletAndAlertsNearbyGuards(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 100, 100)

	// One guard in hearing range behind the player, one far away.
	near := factory.CreateGuard(e, 0, 0, "Marine")
	placeCenter(near, 40, 100)
	far := factory.CreateGuard(e, 0, 0, "Marine")
	placeCenter(far, 700, 400)

	pd := components.Player.Get(player)
	pd.AimDir = components.Vector{X: 1, Y: 0}
	pd.Firing = true

	UpdatePlayer(e)

	assert.Equal(t, 1, countBullets(e))
	assert.Len(t, eventsOfKind(e, components.EventShotFired), 1)
	assert.Equal(t, cfg.StateSuspicious, components.State.Get(near).CurrentState)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(far).CurrentState)

	// Rate of fire is enforced by the cooldown.
	require.Greater(t, pd.FireCooldown, 0.0)
	UpdatePlayer(e)
	assert.Equal(t, 1, countBullets(e))
}

func TestDeadPlayerCannotActOrMove(t *testing.T) {
	e, _ := newTestECS(t)
	player := factory.CreatePlayer(e, 100, 100)
	pd := components.Player.Get(player)
	physics := components.Physics.Get(player)
	components.Health.Get(player).Current = 0

	pd.Direction = components.Vector{X: 1, Y: 0}
	pd.Firing = true
	UpdatePlayer(e)

	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, countBullets(e))
}
