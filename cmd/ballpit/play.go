package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ballpit/internal/config"
	"github.com/vovakirdan/tui-ballpit/internal/core"
	"github.com/vovakirdan/tui-ballpit/internal/game"
	"github.com/vovakirdan/tui-ballpit/internal/platform/tui"
	"github.com/vovakirdan/tui-ballpit/internal/registry"
	"github.com/vovakirdan/tui-ballpit/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the ball pit",
	Long: `Drop into the pit. With no argument the classic mode starts.

Controls:
  Mouse drag - Grab a ball, throw it, feed the delete zone or the ring
  Space      - Drop a new ball
  1-9        - Eject a caught ball from that inventory slot
  P          - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Preset options:
  normal - The classic pit
  floaty - Low gravity, lazy bounces
  dense  - Twice the balls, tighter fit

Examples:
  ballpit play
  ballpit play ballpit_zerog
  ballpit play --preset floaty
  ballpit play --config ./my-pit.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pit config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Physics preset: normal, floaty, dense")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "ballpit"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ballpit list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the preset selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	game.SetConfigPath(flagConfig)

	// Preset from flag, or ask interactively
	if flagPreset != "" {
		preset, presetErr := config.ParsePreset(flagPreset)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		game.SetPreset(preset)
	} else {
		selection, selErr := tui.RunPresetSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}
		game.SetPreset(*selection)
	}

	// Create game instance
	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the pit still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
