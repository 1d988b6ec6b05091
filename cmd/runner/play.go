package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rooftop-runner/internal/config"
	"github.com/vovakirdan/rooftop-runner/internal/core"
	"github.com/vovakirdan/rooftop-runner/internal/platform/tui"
	"github.com/vovakirdan/rooftop-runner/internal/registry"
	"github.com/vovakirdan/rooftop-runner/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start playing.

Controls (defaults, see config file):
  Right/D    - Run
  Space/Up/W - Jump
  Down/S     - Slide
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Screenshot to ~/.rooftop/screenshots

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-controls.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fps := flagFPS
	if fps <= 0 {
		fps = appCfg.Display.FPS
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: fps,
		Seed:      flagSeed,
		Mute:      !appCfg.Audio.Enabled,
	}

	// Bubble Tea owns the terminal; route runtime warnings to a log file.
	logPath := filepath.Join(os.Getenv("HOME"), ".rooftop", "runner.log")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(logPath), 0o755)
	if f, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); openErr == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, appCfg.Controls)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
