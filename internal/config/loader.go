package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/runner.yaml
var defaultYAML []byte

// Load reads the platform configuration.
// Search order: customPath -> ~/.rooftop/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// An explicitly given path must work; anything else falls through.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("runner.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Default returns the hardcoded fallback configuration, matching the
// embedded YAML.
func Default() Config {
	return Config{
		Controls: ControlsConfig{
			Run:     []string{"right", "d"},
			Jump:    []string{" ", "up", "w"},
			Slide:   []string{"down", "s"},
			Restart: []string{"r"},
		},
		Audio:   AudioConfig{Enabled: true},
		Display: DisplayConfig{FPS: 60},
	}
}

// userConfigPath returns ~/.rooftop/configs/<name> if the home directory can
// be resolved, else the empty string.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rooftop", "configs", name)
}
