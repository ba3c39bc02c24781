package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hardcoded default configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded file is unusable.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Window: WindowConfig{
			Title:  "Spacey invader",
			Width:  600,
			Height: 800,
		},
		Timing: TimingConfig{
			TickRate:  60,
			GameSpeed: 500,
		},
		Input: InputConfig{
			HoldMS: 160,
		},
		Display: DisplayConfig{
			HUDRows: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
