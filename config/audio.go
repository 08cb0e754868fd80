package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Guard feedback
	SoundSpotted
	SoundLost
	SoundGunshot
	SoundGuardDeath
	SoundHit
	// Player
	SoundPlayerShot
	SoundPlayerDeath
	// UI / cutscene
	SoundAlarm
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths on disk. Missing files are
// skipped silently; audio is an optional collaborator.
type SoundConfig struct {
	SFXPaths map[SoundID]string

	// FeedbackSounds maps feedback cue names emitted by the simulation
	// to sound effects.
	FeedbackSounds map[string]SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundSpotted:     "assets/audio/sfx/spotted.wav",
			SoundLost:        "assets/audio/sfx/lost.wav",
			SoundGunshot:     "assets/audio/sfx/gunshot.wav",
			SoundGuardDeath:  "assets/audio/sfx/guard_death.wav",
			SoundHit:         "assets/audio/sfx/hit.wav",
			SoundPlayerShot:  "assets/audio/sfx/player_shot.wav",
			SoundPlayerDeath: "assets/audio/sfx/player_death.wav",
			SoundAlarm:       "assets/audio/sfx/alarm.wav",
			SoundMenuSelect:  "assets/audio/sfx/menu_select.wav",
		},
		FeedbackSounds: map[string]SoundID{
			"guard_spotted": SoundSpotted,
			"guard_lost":    SoundLost,
			"shot_fired":    SoundGunshot,
			"guard_died":    SoundGuardDeath,
			"hit":           SoundHit,
			"player_shot":   SoundPlayerShot,
			"player_died":   SoundPlayerDeath,
			"alarm":         SoundAlarm,
		},
	}
}
