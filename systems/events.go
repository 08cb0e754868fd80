package systems

import (
	"github.com/automoto/breachpoint/components"
	"github.com/yohamta/donburi/ecs"
)

// EmitEvent appends a notification to the world's event queue. Missing
// queue means nobody is listening; the event is dropped.
func EmitEvent(ecs *ecs.ECS, ev components.Event) {
	entry, ok := components.EventQueue.First(ecs.World)
	if !ok {
		return
	}
	components.EventQueue.Get(entry).Emit(ev)
}

// PlayFeedback forwards a fire-and-forget cue to the injected feedback
// sink, if one is present.
func PlayFeedback(ecs *ecs.ECS, cue string, intensity float64) {
	entry, ok := components.Feedback.First(ecs.World)
	if !ok {
		return
	}
	sink := components.Feedback.Get(entry).Sink
	if sink == nil {
		return
	}
	sink.Play(cue, intensity)
}

// UpdateEvents drains the event queue. It must run after every system
// that reads events within the tick.
func UpdateEvents(ecs *ecs.ECS) {
	entry, ok := components.EventQueue.First(ecs.World)
	if !ok {
		return
	}
	components.EventQueue.Get(entry).Drain()
}
