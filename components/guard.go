package components

import (
	"github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
)

// GuardData holds the AI state for a single guard. Everything here is
// owned exclusively by the guard's own per-tick update; the only outside
// writers are damage intake, noise alerts and patrol path assignment.
type GuardData struct {
	TypeName   string
	TypeConfig *config.GuardTypeConfig

	// Facing is kept unit length and is always defined, even when the
	// guard stands still.
	Facing Vector

	// Patrol
	PatrolPoints []Vector
	PatrolIndex  int

	// Target is a weak reference to the tracked actor. It may become
	// invalid at any time and must be checked with Valid() before use.
	Target             *donburi.Entry
	LastKnownTargetPos Vector
	TargetInHiding     bool

	// TargetVisible is refreshed by the vision pass each tick; state
	// handlers read it, never write it.
	TargetVisible bool

	// DetectionLevel accumulates in [0,1] while the target is marginally
	// visible and decays otherwise. Reaching 1 forces an alert.
	DetectionLevel float64

	// Timers (seconds)
	PatrolWaitTimer     float64
	AttackCooldownTimer float64
}

var Guard = donburi.NewComponentType[GuardData]()

// TargetValid reports whether the tracked actor reference is usable.
func (g *GuardData) TargetValid() bool {
	return g.Target != nil && g.Target.Valid()
}

// ClearTarget drops the tracked actor reference.
func (g *GuardData) ClearTarget() {
	g.Target = nil
	g.TargetInHiding = false
}
