// Package config provides YAML-based game configuration loading and
// difficulty management for the typing racer.
package config

// RacerConfig contains all tunable parameters of the typing racer.
type RacerConfig struct {
	Gameplay   RacerGameplay    `yaml:"gameplay"`
	World      RacerWorld       `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerGameplay defines lives and feedback parameters.
type RacerGameplay struct {
	MaxLives       int `yaml:"max_lives"`
	MissFlashTicks int `yaml:"miss_flash_ticks"` // How long the input line flashes after a miss
}

// RacerWorld defines the geometry and pace of the playfield, in screen cells.
type RacerWorld struct {
	Step         float64 `yaml:"step"`          // Cells moved per tick per unit of word speed
	SpawnSpread  int     `yaml:"spawn_spread"`  // Words spawn in [screenW, screenW+spread]
	ExitX        float64 `yaml:"exit_x"`        // A word whose X drops below this is missed
	TopMargin    int     `yaml:"top_margin"`    // Rows reserved for the HUD
	BottomMargin int     `yaml:"bottom_margin"` // Rows reserved for the input panel
}

// DifficultyConfig defines the pace progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Wave number or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	StepMultiplier float64 `yaml:"step_multiplier"` // Multiplier added to world step at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown or empty values
// return the empty preset, which keeps the config file's settings.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
