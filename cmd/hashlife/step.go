package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/billyrieger/hashlife/internal/telemetry"
)

var (
	flagStepLog2        uint8
	flagStepGenerations int64
)

var stepCmd = &cobra.Command{
	Use:   "step <file>",
	Short: "Advance a pattern and print the resulting population and generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		u, err := loadPattern(args[0], logger)
		if err != nil {
			return err
		}

		log2 := flagStepLog2
		if !cmd.Flags().Changed("log2") {
			log2 = cfg.DefaultStepLog2
		}
		if err := u.SetStepLog2(log2); err != nil {
			return err
		}

		var collector *telemetry.Collector
		addr := flagMetricsAddr
		if addr == "" {
			addr = cfg.MetricsAddr
		}
		if addr != "" {
			collector = telemetry.NewCollector()
			if err := serveMetrics(addr, collector, logger); err != nil {
				return err
			}
		}

		target := new(big.Int).SetInt64(flagStepGenerations)
		for u.Generation().Cmp(target) < 0 {
			if err := u.Step(); err != nil {
				return err
			}
			if collector != nil {
				s := u.Stats()
				collector.Observe(telemetry.Stats{
					NodeCount:    s.NodeCount,
					CacheEntries: s.CacheEntries,
					Population:   s.Population,
					Generation:   s.Generation,
				})
			}
		}

		fmt.Printf("step exponent: %d\n", u.StepLog2())
		printSummary(u)
		return nil
	},
}

func init() {
	stepCmd.Flags().Uint8Var(&flagStepLog2, "log2", 0, "advance 2^log2 generations per Step call")
	stepCmd.Flags().Int64Var(&flagStepGenerations, "generations", 1, "total generations to reach")
}
