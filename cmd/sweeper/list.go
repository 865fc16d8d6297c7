package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board presets",
	Long:  `Shows every registered board preset.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		marker := ""
		if g.ID == appConfig.DefaultPreset {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, g.ID, g.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a board.")
}
