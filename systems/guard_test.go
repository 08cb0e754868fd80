package systems

import (
	"testing"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/automoto/breachpoint/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	ecslib "github.com/yohamta/donburi/ecs"
)

// recordingSink captures feedback cues for assertions.
type recordingSink struct {
	cues []string
}

func (s *recordingSink) Play(event string, intensity float64) {
	s.cues = append(s.cues, event)
}

func (s *recordingSink) count(cue string) int {
	n := 0
	for _, c := range s.cues {
		if c == cue {
			n++
		}
	}
	return n
}

func newTestECS(t *testing.T) (*ecslib.ECS, *recordingSink) {
	t.Helper()
	e := ecslib.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 960, 544, 16, 16)
	factory.CreateEventQueue(e)
	sink := &recordingSink{}
	factory.CreateFeedback(e, sink)
	return e, sink
}

// placeCenter moves an entity's collision object so its center sits at
// x, y.
func placeCenter(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

func eventsOfKind(e *ecslib.ECS, kind components.EventKind) []components.Event {
	entry, ok := components.EventQueue.First(e.World)
	if !ok {
		return nil
	}
	var out []components.Event
	for _, ev := range components.EventQueue.Get(entry).Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func countBullets(e *ecslib.ECS) int {
	n := 0
	tags.Bullet.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestPatrolAdvancesThroughWaypoints(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	SetGuardPatrolPath(guard, []components.Vector{
		{X: 100, Y: 100},
		{X: 200, Y: 100},
	})

	gd := components.Guard.Get(guard)
	tc := gd.TypeConfig

	// Standing on the first waypoint: wait out the dwell, then move on.
	ticks := int(tc.WaitTimeAtPoint/cfg.Time.Delta) + 2
	for i := 0; i < ticks; i++ {
		UpdateGuards(e)
	}

	assert.Equal(t, 1, gd.PatrolIndex)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(guard).CurrentState)

	// Now the guard should be heading toward the second waypoint.
	UpdateGuards(e)
	physics := components.Physics.Get(guard)
	assert.Greater(t, physics.SpeedX, 0.0)
	assert.InDelta(t, 0.0, physics.SpeedY, 0.001)
}

func TestPatrolWithoutRouteHoldsPosition(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")

	for i := 0; i < 10; i++ {
		UpdateGuards(e)
	}

	physics := components.Physics.Get(guard)
	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
	assert.Equal(t, cfg.StatePatrol, components.State.Get(guard).CurrentState)
}

func TestSuspiciousTimesOutBackToPatrol(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)

	AlertGuardToPosition(guard, components.Vector{X: 300, Y: 100})
	state := components.State.Get(guard)
	require.Equal(t, cfg.StateSuspicious, state.CurrentState)

	tc := components.Guard.Get(guard).TypeConfig
	ticks := int(tc.SuspiciousDuration/cfg.Time.Delta) + 2
	for i := 0; i < ticks; i++ {
		UpdateGuards(e)
	}

	assert.Equal(t, cfg.StatePatrol, state.CurrentState)
}

func TestNoiseOnlyDisturbsPatrollingGuards(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")

	state := components.State.Get(guard)
	state.Transition(cfg.StateSearch)

	AlertGuardToPosition(guard, components.Vector{X: 300, Y: 100})
	assert.Equal(t, cfg.StateSearch, state.CurrentState)
}

func TestInstantSpotFiresSpottedOnce(t *testing.T) {
	e, sink := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 140, 100) // inside instant spot range, dead ahead

	UpdateGuards(e)
	UpdateGuards(e)

	state := components.State.Get(guard)
	assert.Equal(t, cfg.StateAlert, state.CurrentState)
	assert.Len(t, eventsOfKind(e, components.EventGuardSpotted), 1)
	assert.Equal(t, 1, sink.count("guard_spotted"))
}

func TestChaseClosesIntoAttackRange(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 180, 100) // within attack range, visible

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	gd.Target = player
	state.Transition(cfg.StateChase)

	UpdateGuards(e)

	assert.Equal(t, cfg.StateAttack, state.CurrentState)
}

func TestChaseLosesSightAndSearchesLastPosition(t *testing.T) {
	e, _ := newTestECS(t)
	// Wall between guard and player.
	factory.CreateWall(e, 150, 50, 16, 100)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 250, 100)

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	gd.Target = player
	state.Transition(cfg.StateChase)

	UpdateGuards(e)

	assert.Equal(t, cfg.StateSearch, state.CurrentState)
	assert.InDelta(t, 250, gd.LastKnownTargetPos.X, 0.001)
	assert.InDelta(t, 100, gd.LastKnownTargetPos.Y, 0.001)
}

func TestSearchTimeoutGivesUp(t *testing.T) {
	e, sink := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 800, 500) // far out of sight

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	gd.Target = player
	gd.LastKnownTargetPos = components.Vector{X: 100, Y: 100}
	state.Transition(cfg.StateSearch)
	state.StateTimer = gd.TypeConfig.SearchDuration

	UpdateGuards(e)

	assert.Equal(t, cfg.StatePatrol, state.CurrentState)
	assert.Nil(t, gd.Target)
	assert.Len(t, eventsOfKind(e, components.EventGuardLostTarget), 1)
	assert.Equal(t, 1, sink.count("guard_lost"))
}

func TestSearchReacquiresIntoChase(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 140, 100) // instant spot range

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	gd.LastKnownTargetPos = components.Vector{X: 300, Y: 300}
	state.Transition(cfg.StateSearch)

	UpdateGuards(e)

	assert.Equal(t, cfg.StateChase, state.CurrentState)
	require.NotNil(t, gd.Target)
	assert.Equal(t, player.Entity(), gd.Target.Entity())
}

func TestDamageAlertsCalmGuard(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 500, 400) // nowhere near the guard's vision

	DamageGuard(e, guard, 5)

	state := components.State.Get(guard)
	gd := components.Guard.Get(guard)
	assert.Equal(t, cfg.StateAlert, state.CurrentState)
	require.NotNil(t, gd.Target)
	assert.Equal(t, player.Entity(), gd.Target.Entity())
	assert.Equal(t, 25, components.Health.Get(guard).Current)
	assert.True(t, GuardIsAlerted(guard))
	assert.Equal(t, "Alert", GuardStateName(guard))
}

func TestLethalDamageKillsGuard(t *testing.T) {
	e, sink := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)

	DamageGuard(e, guard, 30)

	state := components.State.Get(guard)
	assert.Equal(t, cfg.StateDead, state.CurrentState)
	assert.True(t, guard.HasComponent(components.Death))
	assert.Len(t, eventsOfKind(e, components.EventGuardDied), 1)
	assert.Equal(t, 1, sink.count("guard_died"))

	// Dead is terminal: more damage is ignored.
	DamageGuard(e, guard, 100)
	assert.Equal(t, cfg.StateDead, state.CurrentState)
	assert.Len(t, eventsOfKind(e, components.EventGuardDied), 1)
}

func TestDeadGuardFadesAndIsRemoved(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	DamageGuard(e, guard, 100)
	require.True(t, guard.HasComponent(components.Death))

	fade := components.Guard.Get(guard).TypeConfig.FadeDelay
	ticks := int(fade/cfg.Time.Delta) + 2
	for i := 0; i < ticks; i++ {
		UpdateDeaths(e)
	}

	assert.False(t, guard.Valid())
}

func TestAttackFiresOnCooldown(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)
	placeCenter(player, 180, 100)

	gd := components.Guard.Get(guard)
	state := components.State.Get(guard)
	gd.Target = player
	state.Transition(cfg.StateAttack)

	UpdateGuards(e)

	require.Equal(t, cfg.StateAttack, state.CurrentState)
	assert.Equal(t, 1, countBullets(e))
	assert.InDelta(t, 1.0/gd.TypeConfig.FireRate, gd.AttackCooldownTimer, 0.001)

	// Cooldown holds the next shot back.
	UpdateGuards(e)
	assert.Equal(t, 1, countBullets(e))
	assert.Len(t, eventsOfKind(e, components.EventShotFired), 1)
}

func TestAttackRangeHysteresis(t *testing.T) {
	e, _ := newTestECS(t)
	guard := factory.CreateGuard(e, 100, 100, "Marine")
	placeCenter(guard, 100, 100)
	player := factory.CreatePlayer(e, 0, 0)

	gd := components.Guard.Get(guard)
	tc := gd.TypeConfig
	state := components.State.Get(guard)
	gd.Target = player
	state.Transition(cfg.StateAttack)
	gd.AttackCooldownTimer = 10 // keep the gun quiet for this test

	// Slightly past attack range but inside the slack band: stay.
	placeCenter(player, 100+tc.AttackRange*1.1, 100)
	UpdateGuards(e)
	assert.Equal(t, cfg.StateAttack, state.CurrentState)

	// Past the slack band: drop back to chasing.
	placeCenter(player, 100+tc.AttackRange*tc.AttackRangeSlack+10, 100)
	UpdateGuards(e)
	assert.Equal(t, cfg.StateChase, state.CurrentState)
}
