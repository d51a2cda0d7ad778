// Package cli provides the command-line interface for faitout.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlevasseur/faitout/internal/app"
	"github.com/mlevasseur/faitout/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for faitout.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "faitout",
		Short: "Markdown notebook for the terminal",
		Long: `faitout is a personal notebook that lives in the terminal.
Pages are written in markdown, tagged, colored and searched from one
keyboard-driven screen. Every change is saved to plain JSON files as
you work; there is nothing to sync and no daemon to run.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Surface config warnings before the alternate screen hides them
			if c != nil {
				for _, warning := range c.Config.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
				}
			}
			return launchTUIFunc(c)
		},
	}

	return root
}

// launchTUI runs the interactive interface until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(
		tui.New(c),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
