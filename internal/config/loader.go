package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snaketui/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

	// An explicit path must exist and parse; the fallbacks are best-effort.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snaketui", "configs", filename)
}

// normalize fills zero values with defaults so a partial YAML file
// still yields a playable config.
func normalize(cfg SnakeConfig) SnakeConfig {
	def := DefaultSnakeConfig()
	if cfg.Gameplay.MoveEveryTicks <= 0 {
		cfg.Gameplay.MoveEveryTicks = def.Gameplay.MoveEveryTicks
	}
	if cfg.Gameplay.MinMoveTicks <= 0 {
		cfg.Gameplay.MinMoveTicks = def.Gameplay.MinMoveTicks
	}
	if cfg.Gameplay.SpeedUpEveryFood < 0 {
		cfg.Gameplay.SpeedUpEveryFood = 0
	}
	if cfg.Board.DefaultMode != "walled" && cfg.Board.DefaultMode != "wrap" {
		cfg.Board.DefaultMode = def.Board.DefaultMode
	}
	return cfg
}
