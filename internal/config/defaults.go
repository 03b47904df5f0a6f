package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the hardcoded typing racer configuration.
// It mirrors defaults/racer.yaml and is used if the embedded copy cannot be parsed.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Gameplay: RacerGameplay{
			MaxLives:       5,
			MissFlashTicks: 20,
		},
		World: RacerWorld{
			Step:         0.1,
			SpawnSpread:  120,
			ExitX:        -8,
			TopMargin:    2,
			BottomMargin: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				StepMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default racer.yaml.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
