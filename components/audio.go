package components

import (
	cfg "github.com/automoto/breachpoint/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component). Sounds are
// queued here and played by the audio system once per tick.
type AudioData struct {
	MusicVolume float64 // 0.0 - 1.0
	SFXVolume   float64 // 0.0 - 1.0
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
