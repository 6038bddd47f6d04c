// Package core provides the platform-facing types shared by the game
// and the terminal host: the screen buffer, input actions, and runtime
// configuration. It has no external dependencies (especially no Bubble
// Tea) so game logic built on it stays pure and testable.
package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates a game's status to the platform after a tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
}
