package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Gameplay: GameplayConfig{
			MoveEveryTicks:   9, // ~150 ms at 60 fps
			MinMoveTicks:     3,
			SpeedUpEveryFood: 5,
		},
		Board: BoardConfig{
			DefaultMode: "walled",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
