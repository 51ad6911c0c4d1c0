// sumrush is a terminal number-sum puzzle: pick tiles that add up to the
// target before the grid reaches the top.
//
// Usage:
//
//	sumrush list              - List available modes
//	sumrush play [mode]       - Play a mode (classic by default)
//	sumrush menu              - Start menu to pick a mode interactively
//	sumrush serve             - Start SSH server for remote play
//	sumrush scores <mode>     - Show scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sumrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-sumrush/internal/games/sumgrid"
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
	Use:   "sumrush",
	Short: "Sum Rush - A number-sum puzzle in your terminal",
	Long: `Sum Rush is a terminal puzzle game. A grid of numbered tiles fills
from the bottom; select tiles whose values add up to the target to clear
them. Overshoot and the selection resets. When the grid reaches the top,
the game is over.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View scores

Examples:
  sumrush list
  sumrush play
  sumrush play sumgrid_time
  sumrush menu
  sumrush serve --ssh :2222
  sumrush scores sumgrid`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumrush/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
