package config

import (
	"image/color"
	"math"
)

// GuardTypeConfig contains configuration for specific guard types
type GuardTypeConfig struct {
	Name   string
	Health int

	// Movement
	PatrolSpeed float64
	ChaseSpeed  float64
	Friction    float64
	MaxSpeed    float64

	// Vision
	VisionRange      float64 // max sight distance in pixels
	VisionHalfAngle  float64 // radians either side of facing
	HearingRange     float64 // peripheral radius that raises suspicion
	InstantSpotRange float64 // within this distance detection is immediate

	// Detection meter. Rate is the fill per second at zero distance; the
	// effective rate scales with (1 - distance/effectiveRange).
	DetectionRate  float64
	DetectionDecay float64 // drain per second while target not visible

	// Timings (seconds)
	WaitTimeAtPoint    float64 // pause at each patrol waypoint
	SuspiciousDuration float64 // stand looking at a disturbance
	SearchDuration     float64 // scan around the last known position
	ScanTurnRate       float64 // radians per second while searching

	// Combat
	AttackRange      float64
	AttackRangeSlack float64 // leave Attack beyond AttackRange * this
	FireRate         float64 // shots per second
	FireSpread       float64 // max angular error in radians
	BulletSpeed      float64
	Damage           int
	StoppingDistance float64 // stop short of the target while closing in
	ArriveRadius     float64 // close enough to a waypoint or search point

	// Death
	FadeDelay float64 // seconds before the body is removed

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Debug overlay tint for this guard type
	TintColor color.RGBA
}

// GuardConfig contains guard system configuration
type GuardConfig struct {
	Types map[string]GuardTypeConfig

	// Fraction of vision range removed at full target stealth.
	StealthRangePenalty float64
}

// Guard holds guard AI configuration
var Guard GuardConfig

func init() {
	base := GuardTypeConfig{
		Name:   "Marine",
		Health: 30,

		PatrolSpeed: 45.0,
		ChaseSpeed:  95.0,
		Friction:    600.0,
		MaxSpeed:    140.0,

		VisionRange:      220.0,
		VisionHalfAngle:  60.0 * math.Pi / 180.0,
		HearingRange:     90.0,
		InstantSpotRange: 50.0,

		DetectionRate:  1.2,
		DetectionDecay: 0.8,

		WaitTimeAtPoint:    1.5,
		SuspiciousDuration: 2.5,
		SearchDuration:     5.0,
		ScanTurnRate:       1.6,

		AttackRange:      130.0,
		AttackRangeSlack: 1.2,
		FireRate:         2.0,
		FireSpread:       0.06,
		BulletSpeed:      360.0,
		Damage:           8,
		StoppingDistance: 24.0,
		ArriveRadius:     8.0,

		FadeDelay: 1.0,

		CollisionWidth:  12,
		CollisionHeight: 12,

		TintColor: color.RGBA{R: 255, G: 80, B: 80, A: 255},
	}

	heavy := base
	heavy.Name = "Heavy"
	heavy.Health = 60
	heavy.PatrolSpeed = 35.0
	heavy.ChaseSpeed = 70.0
	heavy.FireRate = 1.2
	heavy.Damage = 14
	heavy.TintColor = color.RGBA{R: 200, G: 60, B: 200, A: 255}

	sentry := base
	sentry.Name = "Sentry"
	sentry.Health = 20
	sentry.VisionRange = 280.0
	sentry.HearingRange = 120.0
	sentry.DetectionRate = 1.6
	sentry.ChaseSpeed = 110.0
	sentry.TintColor = color.RGBA{R: 255, G: 160, B: 60, A: 255}

	Guard = GuardConfig{
		Types: map[string]GuardTypeConfig{
			"Marine": base,
			"Heavy":  heavy,
			"Sentry": sentry,
		},
		StealthRangePenalty: 0.5,
	}
}
