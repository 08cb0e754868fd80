package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Damage subtracts amount and clamps to [0, Max].
func (h *HealthData) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
