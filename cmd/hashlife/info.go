package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Report population, generation, and bounding box without stepping",
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
		stats := u.Stats()
		logger.Info("loaded pattern",
			zap.Int("node_count", stats.NodeCount),
			zap.Int("cache_entries", stats.CacheEntries),
		)
		printSummary(u)
		return nil
	},
}
