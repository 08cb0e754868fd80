package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/breachpoint/components"
	cfg "github.com/automoto/breachpoint/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Overlay     bool    `json:"overlay"`
	LevelIndex  int     `json:"levelIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "breachpoint",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live audio state and overlay toggle.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{
		MusicVolume: 1.0,
		SFXVolume:   1.0,
		Overlay:     cfg.Debug.Overlay,
	}
	if entry, ok := components.Audio.First(e.World); ok {
		state := components.Audio.Get(entry)
		saved.MusicVolume = state.MusicVolume
		saved.SFXVolume = state.SFXVolume
	}
	if entry, ok := components.Level.First(e.World); ok {
		saved.LevelIndex = components.Level.Get(entry).LevelIndex
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.Overlay = saved.Overlay

	if entry, ok := components.Audio.First(e.World); ok {
		state := components.Audio.Get(entry)
		state.MusicVolume = saved.MusicVolume
		state.SFXVolume = saved.SFXVolume
	}
}
