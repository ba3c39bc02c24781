// Package config provides YAML-based configuration loading for the game.
// Gameplay rules are fixed in the simulation; this package only covers the
// values consumed at startup (window, timing, input, display, logging).
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// InvadersConfig contains all configuration for Spacey Invader.
type InvadersConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig defines the playfield and desktop window.
// Width and Height are playfield units; the window frontend uses them as pixels.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the fixed simulation step.
type TimingConfig struct {
	TickRate  int     `yaml:"tick_rate"`  // Ticks per second
	GameSpeed float64 `yaml:"game_speed"` // Velocity scale applied every tick
}

// InputConfig tunes the terminal frontend, which only sees key presses.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press counts as held
}

// DisplayConfig tunes the terminal projection of the playfield.
type DisplayConfig struct {
	HUDRows int `yaml:"hud_rows"` // Rows reserved above the playfield for overlay text
}

// LoggingConfig configures the charmbracelet logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means the frontend default
}

// Validate checks that every value is usable by the simulation and frontends.
func (c InvadersConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Timing.TickRate)
	}
	if c.Timing.GameSpeed <= 0 {
		return fmt.Errorf("%w: game_speed %v", ErrInvalid, c.Timing.GameSpeed)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("%w: hold_ms %d", ErrInvalid, c.Input.HoldMS)
	}
	if c.Display.HUDRows < 1 {
		return fmt.Errorf("%w: hud_rows %d", ErrInvalid, c.Display.HUDRows)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
