// Package config provides YAML-based tuning configuration for the game.
// The values here are the observable difficulty surface: changing them
// changes how the game plays, so they are config rather than hidden
// constants.
package config

// GameConfig contains all tuning parameters for a round.
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Objects    ObjectConfig     `yaml:"objects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// FieldConfig defines the logical playfield dimensions. The playfield is a
// fixed-size coordinate space; the renderer scales it to the terminal.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player actor parameters.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal movement per tick
	Health       int     `yaml:"health"`        // Starting health per round
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between actor and field bottom
}

// ObjectConfig defines falling object parameters.
type ObjectConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Base fall speed, scaled by difficulty
}

// DifficultyConfig defines the difficulty progression system.
// The multiplier starts at 1.0 and ramps by RampStep every RampTicks; the
// spawn accumulator fills at 1.0*multiplier per tick and triggers a spawn
// each time it crosses the effective interval.
type DifficultyConfig struct {
	RampTicks         int     `yaml:"ramp_ticks"`          // Ticks between multiplier bumps
	RampStep          float64 `yaml:"ramp_step"`           // Multiplier increase per bump
	BaseSpawnInterval float64 `yaml:"base_spawn_interval"` // Accumulator threshold at multiplier 1.0
	MinSpawnInterval  float64 `yaml:"min_spawn_interval"`  // Floor so spawns stay playable
	BonusThreshold    float64 `yaml:"bonus_threshold"`     // Multiplier at which bonus spawns start
	BonusChance       float64 `yaml:"bonus_chance"`        // Chance of an extra object per spawn
	GoodChanceBase    float64 `yaml:"good_chance_base"`    // Good-object chance at multiplier 1.0
	GoodChanceSlope   float64 `yaml:"good_chance_slope"`   // Reduction per multiplier point
	GoodChanceFloor   float64 `yaml:"good_chance_floor"`   // Minimum good-object chance
}

// ScoringConfig defines scoring parameters.
type ScoringConfig struct {
	GoodPoints      int `yaml:"good_points"`      // Score for catching a good object
	LeaderboardSize int `yaml:"leaderboard_size"` // Entries kept on the leaderboard
}
