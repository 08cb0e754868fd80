package config

// StateID identifies a guard behavior state.
type StateID int

const (
	StateNone StateID = iota
	StatePatrol
	StateSuspicious
	StateAlert
	StateChase
	StateSearch
	StateAttack
	StateDead
)

var stateNames = map[StateID]string{
	StateNone:       "None",
	StatePatrol:     "Patrol",
	StateSuspicious: "Suspicious",
	StateAlert:      "Alert",
	StateChase:      "Chase",
	StateSearch:     "Search",
	StateAttack:     "Attack",
	StateDead:       "Dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Alerted reports whether the state counts as an alerted state for
// instant re-detection and the IsAlerted query.
func (s StateID) Alerted() bool {
	return s == StateAlert || s == StateChase || s == StateAttack
}
