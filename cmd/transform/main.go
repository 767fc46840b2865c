// Package main re-runs the transform stage over an existing raw snapshot.
// Useful when the normalization rules or the data contract change after a
// run has already been captured.
//
// Usage: transform <raw-snapshot.json> [output.json]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awardscan/award-scraper/internal/config"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/usecase"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <raw-snapshot.json> [output.json]\n", os.Args[0])
		os.Exit(2)
	}
	inputPath := os.Args[1]
	outputPath := ""
	if len(os.Args) == 3 {
		outputPath = os.Args[2]
	}

	cfg := config.MustLoad()
	log := logger.New(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := usecase.NewPipeline(nil, cfg.Paths.OutputDir, cfg.Paths.DataContractFile, nil, log)

	path, violations, err := pipeline.TransformSnapshot(ctx, inputPath, outputPath)
	if err != nil {
		log.Error().Err(err).Msg("transform failed")
		os.Exit(1)
	}

	log.Info().
		Str("output", path).
		Int("violations", len(violations)).
		Msg("transform completed")
}
