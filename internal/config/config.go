// Package config provides YAML-based tuning for the game: every physics and
// world constant the simulation uses, plus frontend settings for terminal play.
package config

import (
	"errors"
	"fmt"
)

// SkyhopConfig contains all tunable parameters of the game.
type SkyhopConfig struct {
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Platforms PlatformConfig `yaml:"platforms"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Scroll    ScrollConfig   `yaml:"scroll"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// SpeedBoostMode selects how the speed-boost power-up affects movement.
type SpeedBoostMode string

const (
	// SpeedBoostReference computes the boosted max speed but never applies it.
	SpeedBoostReference SpeedBoostMode = "reference"
	// SpeedBoostScaled scales horizontal acceleration by boosted_speed / player_speed.
	SpeedBoostScaled SpeedBoostMode = "scaled"
)

// PhysicsConfig defines per-tick movement constants. All velocities are px/tick.
type PhysicsConfig struct {
	Gravity             float64        `yaml:"gravity"`
	JumpStrength        float64        `yaml:"jump_strength"`         // Negative = up
	BoostedJumpStrength float64        `yaml:"boosted_jump_strength"` // After a doubleJump power-up
	Friction            float64        `yaml:"friction"`              // dx multiplier per tick
	Accel               float64        `yaml:"accel"`                 // dx change per tick while a direction is held
	PlayerSpeed         float64        `yaml:"player_speed"`
	BoostedSpeed        float64        `yaml:"boosted_speed"`
	JumpHoldTicks       int            `yaml:"jump_hold_ticks"`   // Ticks of extra lift while jump is held
	JumpHoldImpulse     float64        `yaml:"jump_hold_impulse"` // Extra upward dy per held tick
	WallBand            float64        `yaml:"wall_band"`         // Distance from a platform edge that counts as wall contact
	WallSlideSpeed      float64        `yaml:"wall_slide_speed"`
	SpeedBoostMode      SpeedBoostMode `yaml:"speed_boost_mode"`
}

// PlayerConfig defines the player's spawn point and size.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the world bottom
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// PlatformConfig defines the platform ladder.
type PlatformConfig struct {
	Count        int     `yaml:"count"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gap          float64 `yaml:"gap"`           // Vertical distance between platforms
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the first platform above the world bottom
}

// ObstacleConfig defines moving obstacles.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Every  int     `yaml:"every"` // An obstacle on every Nth platform, starting at index 0
}

// PowerUpConfig defines power-up placement.
type PowerUpConfig struct {
	Size  float64 `yaml:"size"`
	Every int     `yaml:"every"` // A power-up on every Nth platform, starting at index 0
}

// ScrollConfig defines the world scroller.
type ScrollConfig struct {
	Speed     float64 `yaml:"speed"`     // Pixels shifted per scrolling tick
	Threshold float64 `yaml:"threshold"` // Fraction of world height the player must rise above
}

// TerminalConfig defines how the pixel world maps onto terminal cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HoldTicks  int     `yaml:"hold_ticks"` // Ticks a key stays held after its last key event
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first parameter that would make the simulation degenerate.
func (c SkyhopConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"platforms.count", c.Platforms.Count > 0},
		{"platforms.width", c.Platforms.Width > 0},
		{"platforms.height", c.Platforms.Height > 0},
		{"platforms.gap", c.Platforms.Gap > 0},
		{"obstacles.width", c.Obstacles.Width > 0},
		{"obstacles.height", c.Obstacles.Height > 0},
		{"obstacles.every", c.Obstacles.Every > 0},
		{"powerups.size", c.PowerUps.Size > 0},
		{"powerups.every", c.PowerUps.Every > 0},
		{"physics.friction", c.Physics.Friction >= 0 && c.Physics.Friction <= 1},
		{"physics.player_speed", c.Physics.PlayerSpeed > 0},
		{"scroll.threshold", c.Scroll.Threshold > 0 && c.Scroll.Threshold < 1},
		{"terminal.cell_width", c.Terminal.CellWidth > 0},
		{"terminal.cell_height", c.Terminal.CellHeight > 0},
		{"terminal.hold_ticks", c.Terminal.HoldTicks > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, chk.name)
		}
	}

	switch c.Physics.SpeedBoostMode {
	case SpeedBoostReference, SpeedBoostScaled:
	default:
		return fmt.Errorf("%w: physics.speed_boost_mode %q", ErrInvalidConfig, c.Physics.SpeedBoostMode)
	}
	return nil
}

// Preset represents a named physics tuning.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFloaty  Preset = "floaty"
	PresetHeavy   Preset = "heavy"
)

// ErrUnknownPreset is returned for preset names not listed above.
var ErrUnknownPreset = errors.New("unknown preset")

// ParsePreset converts a CLI value into a Preset. The empty string means classic.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetClassic:
		return PresetClassic, nil
	case PresetFloaty:
		return PresetFloaty, nil
	case PresetHeavy:
		return PresetHeavy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the config's physics for a preset.
func ApplyPreset(cfg *SkyhopConfig, preset Preset) {
	switch preset {
	case PresetFloaty:
		cfg.Physics.Gravity = 0.5
		cfg.Physics.JumpHoldTicks = 30
		cfg.Physics.WallSlideSpeed = 0.3
	case PresetHeavy:
		cfg.Physics.Gravity = 1.1
		cfg.Physics.JumpStrength = -14
		cfg.Physics.BoostedJumpStrength = -17
		cfg.Physics.JumpHoldTicks = 12
	}
}
