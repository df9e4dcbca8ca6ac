package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/billyrieger/hashlife/cmd/hashlife/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Open an interactive viewer for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		u, err := loadPattern(args[0], logger)
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.New(u), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
