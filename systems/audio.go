package systems

import (
	"log"
	"sync"

	"github.com/automoto/breachpoint/assets"
	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
	audioLoader  *assets.AudioLoader
)

// AudioContext returns the process-wide audio context. Ebiten only
// allows one per process.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
		audioLoader = assets.NewAudioLoader(audioContext)
	})
	return audioContext
}

// PlaySFX queues a sound effect for the audio system to start on the
// next update.
func PlaySFX(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	state := components.Audio.Get(entry)
	state.PendingSFX = append(state.PendingSFX, id)
}

// UpdateAudio starts every queued sound effect.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	state := components.Audio.Get(entry)
	if len(state.PendingSFX) == 0 {
		return
	}

	AudioContext()
	for _, id := range state.PendingSFX {
		path, ok := cfg.Sound.SFXPaths[id]
		if !ok {
			continue
		}
		player, err := audioLoader.LoadSFX(path)
		if err != nil {
			log.Println("sfx unavailable:", err)
			continue
		}
		player.SetVolume(state.SFXVolume)
		player.Play()
	}
	state.PendingSFX = state.PendingSFX[:0]
}

// AudioFeedbackSink routes gameplay feedback cues to sound effects.
type AudioFeedbackSink struct {
	ecs *ecs.ECS
}

func NewAudioFeedbackSink(ecs *ecs.ECS) *AudioFeedbackSink {
	return &AudioFeedbackSink{ecs: ecs}
}

func (s *AudioFeedbackSink) Play(event string, intensity float64) {
	id, ok := cfg.Sound.FeedbackSounds[event]
	if !ok {
		return
	}
	PlaySFX(s.ecs, id)
}

var _ components.FeedbackSink = (*AudioFeedbackSink)(nil)
