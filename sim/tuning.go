package sim

import (
	"errors"
	"fmt"
)

// Tuning holds every gameplay constant. Units are pixels and seconds.
type Tuning struct {
	Gravity      float64
	JumpVelocity float64
	Acceleration float64
	MaxSpeed     float64
	PlayerRadius float64
	Restitution  float64

	// AutoBounce keeps a grounded player permanently re-launching at
	// JumpVelocity. When false a grounded player's vertical velocity is zeroed.
	AutoBounce bool

	// Friction scales tangential velocity on floor and ceiling contacts.
	Friction float64

	GroundProbe        float64
	GroundNormalY      float64
	GroundMinVelocityY float64

	SpawnDistance      float64
	DespawnDistance    float64
	PlatformWidth      float64
	MinPlatformWidth   float64
	PlatformHeight     float64
	PlatformSpacing    float64
	WidthJitter        float64
	SpacingJitter      float64
	MinBatch           int
	MaxBatch           int
	MaxHorizontalReach float64
	DifficultyHeight   float64
	MaxDifficulty      float64

	Seed uint64
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      3000,
		JumpVelocity: 1500,
		Acceleration: 2400,
		MaxSpeed:     800,
		PlayerRadius: 20,
		Restitution:  0,
		AutoBounce:   true,
		Friction:     0.9,

		GroundProbe:        5,
		GroundNormalY:      -0.7,
		GroundMinVelocityY: -50,

		SpawnDistance:      1200,
		DespawnDistance:    1000,
		PlatformWidth:      150,
		MinPlatformWidth:   60,
		PlatformHeight:     20,
		PlatformSpacing:    120,
		WidthJitter:        0.15,
		SpacingJitter:      0.2,
		MinBatch:           3,
		MaxBatch:           5,
		MaxHorizontalReach: 250,
		DifficultyHeight:   20000,
		MaxDifficulty:      2,

		Seed: 1,
	}
}

// Validate rejects constants the pipeline cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value float64
	}{
		{"gravity", t.Gravity},
		{"jump velocity", t.JumpVelocity},
		{"max speed", t.MaxSpeed},
		{"player radius", t.PlayerRadius},
		{"platform width", t.PlatformWidth},
		{"min platform width", t.MinPlatformWidth},
		{"platform height", t.PlatformHeight},
		{"platform spacing", t.PlatformSpacing},
		{"max horizontal reach", t.MaxHorizontalReach},
		{"difficulty height", t.DifficultyHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}
	if t.MinBatch < 1 || t.MaxBatch < t.MinBatch {
		errs = append(errs, fmt.Errorf("batch size range [%d, %d] is invalid", t.MinBatch, t.MaxBatch))
	}
	if t.MaxDifficulty < 1 {
		errs = append(errs, fmt.Errorf("max difficulty must be at least 1, got %v", t.MaxDifficulty))
	}
	if t.Friction < 0 || t.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be within [0, 1], got %v", t.Friction))
	}
	return errors.Join(errs...)
}
