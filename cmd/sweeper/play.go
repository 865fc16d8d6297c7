package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	flagSize  int
	flagMines int
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing a board preset, or a custom board with --size and --mines.
Without arguments the configured default preset is used.

Controls:
  Arrows/hjkl/wasd  - Move cursor
  Space/Enter       - Reveal (left click works too)
  F                 - Toggle flag (right click works too)
  R                 - New board
  ?                 - Full help
  Q/Ctrl+C          - Quit

Examples:
  sweeper play
  sweeper play large
  sweeper play --size 12 --mines 20
  sweeper play small --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Custom board side length")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count (with --size)")
}

func runPlay(cmd *cobra.Command, args []string) {
	var game registry.Game

	switch {
	case cmd.Flags().Changed("size"):
		custom, err := minesweeper.NewCustom(flagSize, flagMines)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		game = custom

	default:
		gameID := appConfig.DefaultPreset
		if len(args) == 1 {
			gameID = args[0]
		}
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
			os.Exit(1)
		}
		created, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		game = created
	}

	if err := tui.Run(game, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
