package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	hashlife "github.com/billyrieger/hashlife"
	"github.com/billyrieger/hashlife/internal/config"
	"github.com/billyrieger/hashlife/internal/telemetry"
)

// newLogger builds a zap logger stamped with a per-run correlation ID,
// following forestrie-go-merklelog's practice of tagging structured log
// lines with a request/run identifier.
func newLogger(verbose bool) (*zap.Logger, error) {
	var base *zap.Logger
	var err error
	if verbose {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return base.With(zap.String("run_id", uuid.NewString())), nil
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// loadPattern reads path and decodes it as RLE or macrocell, detected by
// extension first and falling back to sniffing the "[M2]" magic header.
func loadPattern(path string, logger *zap.Logger) (*hashlife.Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".mc"):
		return hashlife.FromMacrocell(data, logger)
	case strings.HasSuffix(lower, ".rle"):
		return hashlife.FromRLE(data, logger)
	case strings.HasPrefix(strings.TrimSpace(string(data)), "[M2]"):
		return hashlife.FromMacrocell(data, logger)
	default:
		return hashlife.FromRLE(data, logger)
	}
}

// serveMetrics starts the Prometheus handler for collector on addr in a
// background goroutine; it logs (rather than fails the command on) a
// server error, since metrics serving is a diagnostic side-channel.
func serveMetrics(addr string, collector *telemetry.Collector, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))
	return nil
}

func printSummary(u *hashlife.Universe) {
	box, ok := u.BoundingBox()
	fmt.Printf("population: %s\n", u.Population().String())
	fmt.Printf("generation: %s\n", u.Generation().String())
	if !ok {
		fmt.Println("bounding box: (empty)")
		return
	}
	fmt.Printf("bounding box: {%d, %d, %d, %d}\n", box.XMin, box.YMin, box.XMax, box.YMax)
}
