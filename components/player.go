package components

import "github.com/yohamta/donburi"

// PlayerData is the boarding player: the single pursuable actor guards
// can track.
type PlayerData struct {
	Direction Vector

	// Stealth. Hiding is set while overlapping a hiding zone and makes
	// the player undetectable; StealthLevel in [0,1] shortens guard
	// vision instead of cutting it.
	Hiding       bool
	Crouching    bool
	StealthLevel float64

	FireCooldown float64

	// Per-tick intent written by the input system.
	Firing bool
	AimDir Vector
}

var Player = donburi.NewComponentType[PlayerData]()
