// ballpit is a terminal toy: a pit of bouncing balls you can drag
// around with the mouse, mix into new colors, and collect.
//
// Usage:
//
//	ballpit list              - List available modes
//	ballpit play [mode]       - Play the pit (default: classic)
//	ballpit menu              - Start menu to pick modes interactively
//	ballpit serve             - Start SSH server for remote play
//	ballpit scores <mode>     - Show high scores for a mode
//	ballpit demo              - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.ballpit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-ballpit/internal/game"
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
	Use:   "ballpit",
	Short: "Ball Pit - A draggable physics toy in your terminal",
	Long: `Ball Pit fills your terminal with bouncing balls. Drag them with
the mouse, smash them together to mix colors, and collect the best
mixes on the inventory ring.

Available commands:
  list     - Show all available modes
  play     - Jump straight into the pit
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and best catches
  demo     - Run a headless simulation and print the result

Examples:
  ballpit play
  ballpit play ballpit_zerog
  ballpit menu
  ballpit serve --ssh :2222
  ballpit scores ballpit --catches`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballpit/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
}
