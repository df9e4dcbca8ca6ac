package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	flagConfig      string
	flagMetricsAddr string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "hashlife",
	Short: "Load, step, and render Game of Life patterns with a HashLife engine",
	Long: `hashlife loads Life patterns (RLE or Golly macrocell), advances them with
a hash-consed quadtree engine, and can render or interactively browse the
result.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tuiCmd)
}
