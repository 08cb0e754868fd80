package systems

import (
	"math"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/automoto/breachpoint/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// findTrackedActor returns the single pursuable actor, if present. The
// boarding player is the only actor guards ever track.
func findTrackedActor(w donburi.World) (*donburi.Entry, bool) {
	return components.Player.First(w)
}

// evaluateGuardVision runs once per tick for every guard that is not
// dead. It owns the detection meter and all sight-driven transitions;
// state handlers only consume the TargetVisible flag it leaves behind.
func evaluateGuardVision(ecs *ecs.ECS, e *donburi.Entry) {
	guard := components.Guard.Get(e)
	state := components.State.Get(e)
	tc := guard.TypeConfig

	guard.TargetVisible = false

	targetEntry, ok := findTrackedActor(ecs.World)
	if !ok {
		decayDetection(guard)
		return
	}

	player := components.Player.Get(targetEntry)
	targetObj := components.Object.Get(targetEntry)
	guardObj := components.Object.Get(e)

	from := guardObj.Center()
	targetPos := targetObj.Center()

	// A hidden target is undetectable. Guards that were actively on the
	// target fall back to searching its last position.
	if player.Hiding {
		guard.TargetInHiding = true
		if state.CurrentState == cfg.StateChase || state.CurrentState == cfg.StateAttack {
			guard.LastKnownTargetPos = targetPos
			state.Transition(cfg.StateSearch)
		}
		return
	}
	guard.TargetInHiding = false

	// Stealth shortens how far the guard can confirm the target, not the
	// raw sight cone.
	effectiveRange := tc.VisionRange * (1 - cfg.Guard.StealthRangePenalty*clamp01(player.StealthLevel))

	dist := math.Hypot(targetPos.X-from.X, targetPos.Y-from.Y)
	seen := canSeePosition(ecs, e, from, targetPos) && dist <= effectiveRange

	if seen {
		guard.TargetVisible = true
		guard.Target = targetEntry
		guard.LastKnownTargetPos = targetPos

		if state.CurrentState.Alerted() {
			return
		}

		if dist <= tc.InstantSpotRange {
			promoteOnSight(ecs, e, guard, state)
			return
		}

		// Marginal visibility: the meter fills faster the closer the
		// target stands.
		guard.DetectionLevel += tc.DetectionRate * (1 - dist/effectiveRange) * cfg.Time.Delta
		if guard.DetectionLevel >= 1 {
			guard.DetectionLevel = 0
			promoteOnSight(ecs, e, guard, state)
			return
		}
		guard.DetectionLevel = clamp01(guard.DetectionLevel)
		return
	}

	// Out of sight. Nearby movement still registers as a disturbance
	// while the guard is calm on patrol.
	if dist <= tc.HearingRange && state.CurrentState == cfg.StatePatrol {
		guard.LastKnownTargetPos = targetPos
		state.Transition(cfg.StateSuspicious)
		return
	}

	decayDetection(guard)
}

// promoteOnSight moves a calm or searching guard into active pursuit:
// Patrol/Suspicious escalate to Alert, Search resumes the Chase.
func promoteOnSight(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, state *components.StateData) {
	switch state.CurrentState {
	case cfg.StatePatrol, cfg.StateSuspicious:
		guardSpot(ecs, e, guard, state, cfg.StateAlert)
	case cfg.StateSearch:
		guardSpot(ecs, e, guard, state, cfg.StateChase)
	}
}

// guardSpot performs the spotted transition and its entry side effects.
func guardSpot(ecs *ecs.ECS, e *donburi.Entry, guard *components.GuardData, state *components.StateData, next cfg.StateID) {
	state.Transition(next)
	if guard.TargetValid() {
		obj := components.Object.Get(e)
		EmitEvent(ecs, components.Event{
			Kind:  components.EventGuardSpotted,
			Actor: e,
			Pos:   obj.Center(),
		})
		PlayFeedback(ecs, "guard_spotted", 1.0)
	}
}

// canSeePosition checks range, cone and occlusion from the guard's eye
// point to pos. Stealth does not apply here; callers that care compare
// against the stealth-adjusted effective range on top of this.
func canSeePosition(ecs *ecs.ECS, e *donburi.Entry, from, pos components.Vector) bool {
	guard := components.Guard.Get(e)
	tc := guard.TypeConfig

	to := components.Vector{X: pos.X - from.X, Y: pos.Y - from.Y}
	dist := to.Length()
	if dist > tc.VisionRange {
		return false
	}
	if dist == 0 {
		return true
	}

	// Cone test: signed angle between facing and the direction to pos.
	angle := math.Atan2(to.Y, to.X) - guard.Facing.Angle()
	if math.Abs(normalizeAngle(angle)) > tc.VisionHalfAngle {
		return false
	}

	return !occluded(ecs, e, from, pos)
}

// occluded casts a ray toward pos; any solid strike short of the target
// blocks vision.
func occluded(ecs *ecs.ECS, e *donburi.Entry, from, pos components.Vector) bool {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	ignore := []*resolv.Object{components.Object.Get(e).Object}
	hit := CastRay(space, from, pos, ignore, tags.ResolvSolid)
	return hit != nil
}

func decayDetection(guard *components.GuardData) {
	guard.DetectionLevel -= guard.TypeConfig.DetectionDecay * cfg.Time.Delta
	guard.DetectionLevel = clamp01(guard.DetectionLevel)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
