// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake arcade.
package config

// SnakeConfig contains all tunable parameters for the snake game.
// The grid itself is a fixed 20x20 and is not configurable.
type SnakeConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Board    BoardConfig    `yaml:"board"`
}

// GameplayConfig defines the movement cadence and its progression.
// The platform ticks at the configured FPS; the snake advances one cell
// every MoveEveryTicks ticks (9 ticks at 60 fps is the classic 150 ms).
type GameplayConfig struct {
	MoveEveryTicks   int `yaml:"move_every_ticks"`
	MinMoveTicks     int `yaml:"min_move_ticks"`
	SpeedUpEveryFood int `yaml:"speed_up_every_food"` // 0 disables speed-up
}

// BoardConfig defines the default boundary policy.
type BoardConfig struct {
	DefaultMode string `yaml:"default_mode"` // "walled" or "wrap"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySnakePreset adjusts the config for a difficulty preset.
// Fixed disables the speed-up progression entirely.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MoveEveryTicks = 12
		cfg.Gameplay.SpeedUpEveryFood = 8
	case DifficultyNormal:
		cfg.Gameplay.MoveEveryTicks = 9
		cfg.Gameplay.SpeedUpEveryFood = 5
	case DifficultyHard:
		cfg.Gameplay.MoveEveryTicks = 6
		cfg.Gameplay.SpeedUpEveryFood = 3
	case DifficultyFixed:
		cfg.Gameplay.SpeedUpEveryFood = 0
	}
}
