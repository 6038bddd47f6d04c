package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSnakeEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake(\"\") failed: %v", err)
	}

	if cfg.Gameplay.MoveEveryTicks != 9 {
		t.Errorf("MoveEveryTicks = %d, expected 9", cfg.Gameplay.MoveEveryTicks)
	}
	if cfg.Board.DefaultMode != "walled" {
		t.Errorf("DefaultMode = %q, expected walled", cfg.Board.DefaultMode)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")
	data := []byte("gameplay:\n  move_every_ticks: 4\nboard:\n  default_mode: wrap\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%q) failed: %v", path, err)
	}

	if cfg.Gameplay.MoveEveryTicks != 4 {
		t.Errorf("MoveEveryTicks = %d, expected 4", cfg.Gameplay.MoveEveryTicks)
	}
	if cfg.Board.DefaultMode != "wrap" {
		t.Errorf("DefaultMode = %q, expected wrap", cfg.Board.DefaultMode)
	}
	// Unset fields are filled from defaults
	if cfg.Gameplay.MinMoveTicks != 3 {
		t.Errorf("MinMoveTicks = %d, expected default 3", cfg.Gameplay.MinMoveTicks)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	if _, err := LoadSnake("/nonexistent/snake.yaml"); err == nil {
		t.Error("LoadSnake with missing explicit path should fail")
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantTicks     int
		wantSpeedFood int
	}{
		{DifficultyEasy, 12, 8},
		{DifficultyNormal, 9, 5},
		{DifficultyHard, 6, 3},
	}

	for _, tc := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tc.preset)
		if cfg.Gameplay.MoveEveryTicks != tc.wantTicks {
			t.Errorf("%s: MoveEveryTicks = %d, expected %d", tc.preset, cfg.Gameplay.MoveEveryTicks, tc.wantTicks)
		}
		if cfg.Gameplay.SpeedUpEveryFood != tc.wantSpeedFood {
			t.Errorf("%s: SpeedUpEveryFood = %d, expected %d", tc.preset, cfg.Gameplay.SpeedUpEveryFood, tc.wantSpeedFood)
		}
	}

	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg.Gameplay.SpeedUpEveryFood != 0 {
		t.Errorf("fixed: SpeedUpEveryFood = %d, expected 0", cfg.Gameplay.SpeedUpEveryFood)
	}
}
