package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// TimeConfig holds the fixed simulation step. All speeds are in pixels
// per second and all timers in seconds; systems multiply by Delta.
type TimeConfig struct {
	TickRate int
	Delta    float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed   float64
	CrouchSpeed float64

	// Stealth. Crouching raises the stealth level toward CrouchStealth;
	// standing decays it back to zero.
	CrouchStealth    float64
	StealthRampSpeed float64

	// Combat
	Health       int
	FireRate     float64
	BulletSpeed  float64
	BulletDamage int

	// Physics
	Friction float64
	MaxSpeed float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	CharacterPushback float64 // Pushback force for overlapping characters
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	HitFlashDuration    float64 // seconds of red tint after taking damage
	MuzzleFlashDuration float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool   // Draw the debug overlay (vision cones, collision rects)
	SkipMenu bool   // Skip menu and go directly to game
	FontPath string // Optional TTF for overlay text; empty = bitmap fallback
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	FollowSmoothing float64
}

// Global configuration instances
var C *Config
var Time TimeConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Debug DebugConfig
var Camera CameraConfig

// Shared RGBA color constants for the debug overlay
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Time = TimeConfig{
		TickRate: 60,
		Delta:    1.0 / 60.0,
	}

	Player = PlayerConfig{
		MoveSpeed:   110.0,
		CrouchSpeed: 55.0,

		CrouchStealth:    1.0,
		StealthRampSpeed: 2.0,

		Health:       50,
		FireRate:     3.0,
		BulletSpeed:  420.0,
		BulletDamage: 10,

		Friction: 600.0,
		MaxSpeed: 160.0,

		CollisionWidth:  12,
		CollisionHeight: 12,
	}

	Physics = PhysicsConfig{
		CharacterPushback: 30.0,
	}

	Combat = CombatConfig{
		HitFlashDuration:    0.15,
		MuzzleFlashDuration: 0.08,
	}

	Debug = DebugConfig{
		Overlay:  false,
		SkipMenu: false,
		FontPath: "",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}
}
