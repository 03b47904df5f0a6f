package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and reports.
const AppDir = ".typeracer"

// LoadRacer loads the typing racer configuration.
// Search order: customPath -> ~/.typeracer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may override only some keys.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeRacer(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeRacer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/racer.yaml"); err == nil {
		if cfg, err := decodeRacer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeRacer(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeRacer parses YAML over the hardcoded defaults and validates the result.
func decodeRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c RacerConfig) Validate() error {
	var errs []error
	if c.Gameplay.MaxLives < 0 {
		errs = append(errs, fmt.Errorf("gameplay.max_lives must be >= 0, got %d", c.Gameplay.MaxLives))
	}
	if c.World.Step <= 0 {
		errs = append(errs, fmt.Errorf("world.step must be > 0, got %g", c.World.Step))
	}
	if c.World.SpawnSpread < 0 {
		errs = append(errs, fmt.Errorf("world.spawn_spread must be >= 0, got %d", c.World.SpawnSpread))
	}
	if c.World.ExitX > 0 {
		errs = append(errs, fmt.Errorf("world.exit_x must be <= 0, got %g", c.World.ExitX))
	}
	if c.World.TopMargin < 0 || c.World.BottomMargin < 0 {
		errs = append(errs, errors.New("world margins must be >= 0"))
	}
	switch c.Difficulty.Progression.Type {
	case "level", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of level, time, none", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ApplyRacerPreset modifies the config based on a difficulty preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxLives = 7
		cfg.World.Step = 0.08
	case DifficultyHard:
		cfg.Gameplay.MaxLives = 3
		cfg.World.Step = 0.14
	}
}
