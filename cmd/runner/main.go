// runner is a terminal rendition of a side-scrolling rooftop platformer.
//
// Usage:
//
//	runner play              - Play the game
//	runner scores            - Show high scores
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Frame delivery rate (0 = use config)
//	--seed <value>  - RNG seed for reproducible courses
//	--db <path>     - Database path (default: ~/.rooftop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/rooftop-runner/internal/runner"
)

const gameID = "rooftop"

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
	Use:   "runner",
	Short: "Rooftop Runner - an endless rooftop dash in your terminal",
	Long: `Rooftop Runner is a side-scrolling platformer played in the terminal.
Run right, jump the gaps, slide under whatever you can't jump.

Available commands:
  play     - Start a run
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --seed 42
  runner scores
  runner serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame delivery rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rooftop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
