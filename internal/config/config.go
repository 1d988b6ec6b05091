// Package config provides YAML-based platform configuration with embedded
// defaults. Physics and world tuning are compile-time constants in the game
// package; config covers the surrounding platform concerns: key bindings,
// audio, and frame delivery.
package config

// Config is the full platform configuration.
type Config struct {
	Controls ControlsConfig `yaml:"controls"`
	Audio    AudioConfig    `yaml:"audio"`
	Display  DisplayConfig  `yaml:"display"`
}

// ControlsConfig maps terminal keys to game inputs. Each action accepts a
// list of Bubble Tea key names.
type ControlsConfig struct {
	Run     []string `yaml:"run"`     // Start running from the ready screen
	Jump    []string `yaml:"jump"`    // Jump while running
	Slide   []string `yaml:"slide"`   // Slide while running
	Restart []string `yaml:"restart"` // New game after a knock-out
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DisplayConfig controls frame delivery. FPS is the host frame callback
// rate; the logical simulation always runs at 60 Hz.
type DisplayConfig struct {
	FPS int `yaml:"fps"`
}
