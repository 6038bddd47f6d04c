// snaketui is a terminal snake game with walled and wrap-around modes.
//
// Usage:
//
//	snaketui list              - List available modes
//	snaketui play [mode]       - Play (walled or wrap); prompts when omitted
//	snaketui menu              - Start menu to pick a mode interactively
//	snaketui serve             - Start SSH server for remote play
//	snaketui scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snaketui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/akarpov/snaketui/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snaketui",
	Short: "Snake in your terminal",
	Long: `snaketui is a terminal-based snake game on a 20x20 board.

Two boundary behaviors are available: walled (hitting an edge ends the
game) and wrap-around (the snake teleports to the opposite edge).

Available commands:
  list     - Show available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snaketui play walled
  snaketui play wrap --difficulty hard
  snaketui menu
  snaketui serve --ssh :2222
  snaketui scores snake`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketui/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
