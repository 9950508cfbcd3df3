package config

import (
	_ "embed"
)

//go:embed defaults/stashdash.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. Used as the last
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		World: WorldConfig{
			ViewportWidth:  800,
			ViewportHeight: 600,
			GroundY:        584,
			TileSize:       64,
			ChunkWidth:     400,
			CleanupBuffer:  200,
			DistanceScale:  10,
		},
		Physics: PhysicsConfig{
			BaseSpeed:          200,
			SpeedRamp:          0.05,
			MaxSpeedMultiplier: 3.0,
			JumpImpulse:        -550,
			Gravity:            1200,
			GapGravity:         4000,
			HitSpeedFactor:     0.5,
			HitStunSeconds:     1.0,
			BounceImpulse:      -200,
		},
		Player: PlayerConfig{
			StartX:   100,
			Width:    110,
			Height:   110,
			MaxLives: 3,
		},
		Camera: CameraConfig{
			LerpRate:      5.0,
			SlowLookahead: 0.3,
			FastLookahead: 0.5,
		},
		Generator: GeneratorConfig{
			DifficultyRate:      0.3,
			BaseGapChance:       0.05,
			GapMinDistance:      100,
			GapMinTiles:         2,
			GapMaxTiles:         3,
			RescueMargin:        40,
			BushChance:          0.06,
			BushMinDistance:     50,
			PlatformChance:      0.08,
			PlatformMinDistance: 80,
			PlatformMinSpacing:  250,
			PlatformWidths:      []float64{96, 128, 160},
			PlatformLowY:        514,
			PlatformMidY:        474,
			PlatformHighY:       434,
			HighPlatformAt:      200,
		},
		Pickups: PickupConfig{
			Size:                 56,
			RareChance:           0.05,
			BaseAirChance:        0.20,
			AirChanceDecay:       0.004,
			AirChanceMaxDecay:    0.08,
			PlatformPickupChance: 0.7,
			ScatterTTLSeconds:    3.0,
			ScatterGraceSeconds:  0.5,
			ScatterCap:           10,
		},
		Run: RunConfig{
			LifeMilestones: []int{1000, 2000, 4000, 8000, 16000, 32000},
			GapDeathDepth:  50,
		},
	}
}
