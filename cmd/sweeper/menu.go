package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board.
Leaving a board (b or Esc) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Q            - Quit

Examples:
  sweeper menu
  sweeper menu --fps 60`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg, appConfig.DefaultPreset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Only the first board honours --seed.
		if err := tui.Run(game, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		cfg.Seed = time.Now().UnixNano()
	}
}
