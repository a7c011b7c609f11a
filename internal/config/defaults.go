package config

import (
	_ "embed"
)

//go:embed defaults/friday.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default game configuration. Mirrors the
// embedded YAML so there is a working fallback even if the embed fails to
// parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  330,
			Height: 250,
		},
		Player: PlayerConfig{
			Width:        30,
			Height:       30,
			Speed:        3,
			Health:       3,
			BottomMargin: 20,
		},
		Objects: ObjectConfig{
			Width:  20,
			Height: 20,
			Speed:  3,
		},
		Difficulty: DifficultyConfig{
			RampTicks:         600,
			RampStep:          0.2,
			BaseSpawnInterval: 45,
			MinSpawnInterval:  10,
			BonusThreshold:    2.0,
			BonusChance:       0.25,
			GoodChanceBase:    0.6,
			GoodChanceSlope:   0.15,
			GoodChanceFloor:   0.25,
		},
		Scoring: ScoringConfig{
			GoodPoints:      10,
			LeaderboardSize: 10,
		},
	}
}
