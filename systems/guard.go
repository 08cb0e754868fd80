package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/systems/factory"
	"github.com/automoto/breachpoint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGuards advances every guard's AI one fixed step: cooldowns, the
// vision pass, then the behavior state machine. Dead guards do nothing;
// their removal belongs to the death system.
func UpdateGuards(ecs *ecs.ECS) {
	tags.Guard.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == cfg.StateDead {
			return
		}

		guard := components.Guard.Get(e)
		dt := cfg.Time.Delta

		state.StateTimer += dt
		if guard.AttackCooldownTimer > 0 {
			guard.AttackCooldownTimer -= dt
			if guard.AttackCooldownTimer < 0 {
				guard.AttackCooldownTimer = 0
			}
		}

		evaluateGuardVision(ecs, e)

		switch state.CurrentState {
		case cfg.StatePatrol:
			handleGuardPatrol(e, guard, state)
		case cfg.StateSuspicious:
			handleGuardSuspicious(e, guard, state)
		case cfg.StateAlert:
			handleGuardAlert(e, guard, state)
		case cfg.StateChase:
			handleGuardChase(e, guard, state)
		case cfg.StateSearch:
			handleGuardSearch(ecs, e, guard, state)
		case cfg.StateAttack:
			handleGuardAttack(ecs, e, guard, state)
		}
	})
}

func handleGuardPatrol(e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	physics := components.Physics.Get(e)

	// No route assigned: hold position rather than fault.
	if len(guard.PatrolPoints) == 0 {
		physics.SpeedX = 0
		physics.SpeedY = 0
		return
	}

	obj := components.Object.Get(e)
	pos := obj.Center()
	wp := guard.PatrolPoints[guard.PatrolIndex]
	to := components.Vector{X: wp.X - pos.X, Y: wp.Y - pos.Y}

	if to.Length() <= guard.TypeConfig.ArriveRadius {
		physics.SpeedX = 0
		physics.SpeedY = 0
		guard.PatrolWaitTimer += cfg.Time.Delta
		if guard.PatrolWaitTimer >= guard.TypeConfig.WaitTimeAtPoint {
			guard.PatrolWaitTimer = 0
			guard.PatrolIndex = (guard.PatrolIndex + 1) % len(guard.PatrolPoints)
			next := guard.PatrolPoints[guard.PatrolIndex]
			faceToward(guard, pos, next)
		}
		return
	}

	moveToward(guard, physics, pos, wp, guard.TypeConfig.PatrolSpeed)
}

func handleGuardSuspicious(e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	obj := components.Object.Get(e)
	faceToward(guard, obj.Center(), guard.LastKnownTargetPos)

	if state.StateTimer >= guard.TypeConfig.SuspiciousDuration {
		state.Transition(cfg.StatePatrol)
		guard.PatrolWaitTimer = 0
	}
}

func handleGuardAlert(e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	if !guard.TargetValid() {
		state.Transition(cfg.StateSearch)
		return
	}

	obj := components.Object.Get(e)
	pos := obj.Center()
	targetPos := components.Object.Get(guard.Target).Center()
	faceToward(guard, pos, targetPos)

	if distanceBetween(pos, targetPos) <= guard.TypeConfig.AttackRange {
		state.Transition(cfg.StateAttack)
		return
	}

	chaseToward(e, guard, pos, targetPos)
}

func handleGuardChase(e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	if !guard.TargetValid() {
		state.Transition(cfg.StateSearch)
		return
	}

	obj := components.Object.Get(e)
	pos := obj.Center()
	targetPos := components.Object.Get(guard.Target).Center()

	// Losing sight ends the chase at the spot the target was last seen.
	if !guard.TargetVisible {
		guard.LastKnownTargetPos = targetPos
		state.Transition(cfg.StateSearch)
		return
	}

	faceToward(guard, pos, targetPos)

	if distanceBetween(pos, targetPos) <= guard.TypeConfig.AttackRange {
		state.Transition(cfg.StateAttack)
		return
	}

	chaseToward(e, guard, pos, targetPos)
}

func handleGuardSearch(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	pos := obj.Center()

	if state.StateTimer >= guard.TypeConfig.SearchDuration {
		giveUpSearch(ecs, e, guard, state)
		return
	}

	to := components.Vector{X: guard.LastKnownTargetPos.X - pos.X, Y: guard.LastKnownTargetPos.Y - pos.Y}
	if to.Length() > guard.TypeConfig.ArriveRadius {
		moveToward(guard, physics, pos, guard.LastKnownTargetPos, guard.TypeConfig.ChaseSpeed)
		return
	}

	// Arrived: stand and sweep the area.
	physics.SpeedX = 0
	physics.SpeedY = 0
	guard.Facing = guard.Facing.Rotated(guard.TypeConfig.ScanTurnRate * cfg.Time.Delta)
}

func giveUpSearch(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	guard.ClearTarget()
	obj := components.Object.Get(e)
	EmitEvent(ecs, components.Event{
		Kind:  components.EventGuardLostTarget,
		Actor: e,
		Pos:   obj.Center(),
	})
	PlayFeedback(ecs, "guard_lost", 0.6)
	state.Transition(cfg.StatePatrol)
	guard.PatrolWaitTimer = 0
}

func handleGuardAttack(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	if !guard.TargetValid() {
		state.Transition(cfg.StateSearch)
		return
	}

	obj := components.Object.Get(e)
	pos := obj.Center()
	targetPos := components.Object.Get(guard.Target).Center()

	if !guard.TargetVisible {
		guard.LastKnownTargetPos = targetPos
		state.Transition(cfg.StateSearch)
		return
	}

	faceToward(guard, pos, targetPos)

	// Hysteresis keeps guards from flapping between Chase and Attack at
	// the range boundary.
	if distanceBetween(pos, targetPos) > guard.TypeConfig.AttackRange*guard.TypeConfig.AttackRangeSlack {
		state.Transition(cfg.StateChase)
		return
	}

	if guard.AttackCooldownTimer <= 0 {
		fireAtTarget(ecs, e, guard, pos, targetPos)
		guard.AttackCooldownTimer = 1.0 / guard.TypeConfig.FireRate
	}
}

// fireAtTarget spawns a bullet toward the target with a small random
// angular spread and announces the shot.
func fireAtTarget(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, pos, targetPos components.Vector) {
	tc := guard.TypeConfig

	dir := components.Vector{X: targetPos.X - pos.X, Y: targetPos.Y - pos.Y}.Normalized()
	if dir.Length() == 0 {
		dir = guard.Facing
	}
	spread := (rand.Float64()*2 - 1) * tc.FireSpread
	dir = dir.Rotated(spread)

	factory.CreateBullet(ecs, e, pos, dir, tc.BulletSpeed, tc.Damage)
	triggerMuzzleFlash(e)

	EmitEvent(ecs, components.Event{
		Kind:  components.EventShotFired,
		Actor: e,
		Pos:   pos,
		Dir:   dir,
	})
	PlayFeedback(ecs, "shot_fired", 1.0)
}

// SetGuardPatrolPath assigns the guard's waypoint route. An empty path
// makes the guard hold position while patrolling.
func SetGuardPatrolPath(e *donburi.Entry, points []components.Vector) {
	guard := components.Guard.Get(e)
	guard.PatrolPoints = points
	guard.PatrolIndex = 0
	guard.PatrolWaitTimer = 0
	if len(points) > 0 {
		obj := components.Object.Get(e)
		faceToward(guard, obj.Center(), points[0])
	}
}

// AlertGuardToPosition is the noise stimulus: a patrolling guard turns
// suspicious toward pos. Guards in any other state ignore it.
func AlertGuardToPosition(e *donburi.Entry, pos components.Vector) {
	state := components.State.Get(e)
	if state.CurrentState != cfg.StatePatrol {
		return
	}
	guard := components.Guard.Get(e)
	guard.LastKnownTargetPos = pos
	state.Transition(cfg.StateSuspicious)
}

// DamageGuard is the damage intake path. Being shot always alerts a
// calm guard, even without line of sight; the death check runs after
// the alert logic.
func DamageGuard(ecs *ecs.ECS, e *donburi.Entry, amount int) {
	state := components.State.Get(e)
	if state.CurrentState == cfg.StateDead {
		return
	}

	health := components.Health.Get(e)
	health.Damage(amount)

	triggerHitFlash(e)

	if state.CurrentState == cfg.StatePatrol || state.CurrentState == cfg.StateSuspicious {
		guard := components.Guard.Get(e)
		if target, ok := findTrackedActor(ecs.World); ok {
			guard.Target = target
			guard.LastKnownTargetPos = components.Object.Get(target).Center()
		}
		guardSpot(ecs, e, guard, state, cfg.StateAlert)
	}

	if health.Current <= 0 {
		killGuard(ecs, e, state)
	}
}

// killGuard forces the terminal state: velocity zeroed, death announced,
// removal scheduled after the fade delay.
func killGuard(ecs *ecs.ECS, e *donburi.Entry, state *components.StateData) {
	guard := components.Guard.Get(e)
	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	state.Transition(cfg.StateDead)

	obj := components.Object.Get(e)
	EmitEvent(ecs, components.Event{
		Kind:  components.EventGuardDied,
		Actor: e,
		Pos:   obj.Center(),
	})
	PlayFeedback(ecs, "guard_died", 1.0)

	donburi.Add(e, components.Death, &components.DeathData{
		Timer: guard.TypeConfig.FadeDelay,
	})
}

// GuardIsAlerted reports whether the guard is actively on the target.
func GuardIsAlerted(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState.Alerted()
}

// GuardStateName returns the current state for diagnostics.
func GuardStateName(e *donburi.Entry) string {
	return components.State.Get(e).CurrentState.String()
}

func moveToward(guard *components.GuardData, physics *components.PhysicsData, from, to components.Vector, speed float64) {
	dir := components.Vector{X: to.X - from.X, Y: to.Y - from.Y}.Normalized()
	physics.SpeedX = dir.X * speed
	physics.SpeedY = dir.Y * speed
	if dir.Length() > 0 {
		guard.Facing = dir
	}
}

// chaseToward closes on the target at chase speed, stopping short so
// the guard does not shove the player around.
func chaseToward(e *donburi.Entry, guard *components.GuardData, pos, targetPos components.Vector) {
	physics := components.Physics.Get(e)
	if distanceBetween(pos, targetPos) > guard.TypeConfig.StoppingDistance {
		moveToward(guard, physics, pos, targetPos, guard.TypeConfig.ChaseSpeed)
		return
	}
	physics.SpeedX = 0
	physics.SpeedY = 0
}

func faceToward(guard *components.GuardData, from, to components.Vector) {
	dir := components.Vector{X: to.X - from.X, Y: to.Y - from.Y}.Normalized()
	if dir.Length() > 0 {
		guard.Facing = dir
	}
}

func distanceBetween(a, b components.Vector) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func triggerHitFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Duration = cfg.Combat.HitFlashDuration
	flash.R, flash.G, flash.B = 1, 0.4, 0.4
}
