package components

import "github.com/yohamta/donburi"

// EventKind identifies a simulation notification.
type EventKind int

const (
	EventGuardSpotted EventKind = iota
	EventGuardLostTarget
	EventGuardDied
	EventShotFired
	EventPlayerDied
	EventCutsceneFinished
)

// Event is one observable side effect of the simulation. Events replace
// broadcast signals: producers append, interested systems read within
// the same tick, and the queue is drained at end of tick.
type Event struct {
	Kind  EventKind
	Actor *donburi.Entry // originating entity, may be nil
	Pos   Vector
	Dir   Vector
}

// EventQueueData is the singleton event queue component.
type EventQueueData struct {
	Events []Event
}

var EventQueue = donburi.NewComponentType[EventQueueData]()

// Emit appends an event to the queue.
func (q *EventQueueData) Emit(ev Event) {
	q.Events = append(q.Events, ev)
}

// Drain empties the queue, keeping the backing array.
func (q *EventQueueData) Drain() {
	q.Events = q.Events[:0]
}
