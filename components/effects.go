package components

import "github.com/yohamta/donburi"

// FlashData tracks a brief sprite tint after taking damage.
type FlashData struct {
	Duration float64 // seconds remaining
	R, G, B  float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()
