package components

import (
	"github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in the current state
}

var State = donburi.NewComponentType[StateData]()

// Transition switches to a new state and resets the state timer. It is
// the only way guard code changes state, so entry side effects hang off
// the callers that use it.
func (s *StateData) Transition(next config.StateID) {
	if s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}
