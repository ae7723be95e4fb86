package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

var (
	controlsTitle = lipgloss.NewStyle().Bold(true)
	controlsKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func runControls(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	groups := tui.DefaultKeyMap().FullHelp()

	// Calculate column width
	maxKeyLen := 3 // "Key" header
	for _, group := range groups {
		for _, b := range group {
			maxKeyLen = max(maxKeyLen, lipgloss.Width(b.Help().Key))
		}
	}

	fmt.Fprintln(out, controlsTitle.Render("Controls"))
	fmt.Fprintln(out)
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, b := range group {
			k := b.Help().Key
			pad := maxKeyLen - lipgloss.Width(k)
			fmt.Fprintf(out, "  %s%*s  %s\n", controlsKey.Render(k), pad, "", b.Help().Desc)
		}
	}
}
