package main

import (
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a pattern and print its population and bounding box",
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
		printSummary(u)
		return nil
	},
}
