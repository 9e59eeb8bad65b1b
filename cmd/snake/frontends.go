package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available terminal front-ends",
	Long:  `Shows the front-ends that can be selected with --ui.`,
	Args:  cobra.NoArgs,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	list := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range list {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range list {
		marker := ""
		if f.ID == defaultUI {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, f.ID, f.Title, marker)
	}
}
