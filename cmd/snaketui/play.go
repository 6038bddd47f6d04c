package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov/snaketui/internal/core"
	"github.com/akarpov/snaketui/internal/games/snake"
	"github.com/akarpov/snaketui/internal/platform/tui"
	"github.com/akarpov/snaketui/internal/registry"
	"github.com/akarpov/snaketui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play snake",
	Long: `Start playing in the given mode. When the mode is omitted an
interactive selector is shown.

Modes:
  walled - Hitting an edge ends the game
  wrap   - The snake teleports to the opposite edge

Controls:
  W/A/S/D, Arrows - Change direction
  P               - Pause/resume
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow pace, gentle speed-up
  normal - Classic pace
  hard   - Fast pace, quick speed-up
  fixed  - No speed progression

Examples:
  snaketui play walled
  snaketui play wrap --difficulty hard
  snaketui play walled --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveGameID maps a CLI mode argument to a registered game ID.
func resolveGameID(arg string) (string, bool) {
	switch arg {
	case "walled", "snake":
		return "snake", true
	case "wrap", "wraparound", "snake_wrap":
		return "snake_wrap", true
	}
	return "", false
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size is needed before the selector runs
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		id, ok := resolveGameID(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'snaketui list' to see available modes.")
			os.Exit(1)
		}
		gameID = id
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	} else {
		// No mode given; show the boundary/difficulty selector
		selection, updatedCfg, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = selection.GameID
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(string(selection.Difficulty))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
