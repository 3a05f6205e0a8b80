package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyhopYAML []byte

// DefaultSkyhopConfig returns the built-in tuning, matching defaults/skyhop.yaml.
func DefaultSkyhopConfig() SkyhopConfig {
	return SkyhopConfig{
		Physics: PhysicsConfig{
			Gravity:             0.8,
			JumpStrength:        -12,
			BoostedJumpStrength: -15,
			Friction:            0.9,
			Accel:               0.5,
			PlayerSpeed:         5,
			BoostedSpeed:        10,
			JumpHoldTicks:       20,
			JumpHoldImpulse:     0.4,
			WallBand:            10,
			WallSlideSpeed:      0.5,
			SpeedBoostMode:      SpeedBoostReference,
		},
		Player: PlayerConfig{
			StartX:      50,
			StartOffset: 100,
			Width:       50,
			Height:      50,
		},
		Platforms: PlatformConfig{
			Count:        10,
			Width:        100,
			Height:       20,
			Gap:          150,
			BottomOffset: 20,
		},
		Obstacles: ObstacleConfig{
			Width:  50,
			Height: 20,
			Speed:  2,
			Every:  2,
		},
		PowerUps: PowerUpConfig{
			Size:  20,
			Every: 3,
		},
		Scroll: ScrollConfig{
			Speed:     5,
			Threshold: 0.5,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			HoldTicks:  8,
		},
	}
}

// DefaultYAML returns the embedded default config file, for `skyhop config` style dumps.
func DefaultYAML() []byte {
	return defaultSkyhopYAML
}
