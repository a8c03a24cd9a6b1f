package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigames/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade, grouped by kind.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	groups := registry.ByCategory()
	for _, cat := range registry.Categories {
		if len(groups[cat]) == 0 {
			continue
		}
		fmt.Fprintln(out, strings.ToUpper(string(cat)))
		for _, g := range groups[cat] {
			fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
}
