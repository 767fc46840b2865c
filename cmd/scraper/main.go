// Package main is the entry point for the award availability scraper: one
// invocation performs a full acquisition run and writes the raw and
// transformed snapshots, optionally mirroring them to Drive.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/awardscan/award-scraper/internal/adapter/drive"
	"github.com/awardscan/award-scraper/internal/adapter/httpexec"
	"github.com/awardscan/award-scraper/internal/adapter/seatsaero"
	"github.com/awardscan/award-scraper/internal/config"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/infrastructure/ratelimit"
	"github.com/awardscan/award-scraper/internal/infrastructure/timeutil"
	"github.com/awardscan/award-scraper/internal/usecase"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Logging)

	log.Info().
		Str("env", cfg.App.Env).
		Str("routes_file", cfg.Paths.RoutesFile).
		Str("output_dir", cfg.Paths.OutputDir).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("run interrupted")
			os.Exit(130)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	routes, err := config.LoadRoutes(cfg.Paths.RoutesFile)
	if err != nil {
		return err
	}
	log.Info().Int("routes", len(routes)).Msg("routes loaded")

	exec, err := httpexec.New(cfg.Scrape.Timeout, log, httpexec.WithUserAgent(cfg.Scrape.UserAgent))
	if err != nil {
		return err
	}
	defer exec.Close()

	pacer := ratelimit.NewPacer(cfg.Pacing.MinRequestInterval, cfg.Pacing.Burst)
	client := seatsaero.NewClient(exec, pacer, cfg.ScrapeSettings(), log)

	var uploader usecase.SnapshotUploader
	if cfg.Drive.Enabled() {
		driveUploader, err := drive.NewUploader(ctx, cfg.Drive.CredentialsFile, cfg.Drive.FolderID, log)
		if err != nil {
			return err
		}
		uploader = driveUploader
	}

	acquirer := usecase.NewAcquirer(
		client,
		routes,
		cfg.ScrapeSettings(),
		usecase.DefaultAcquireConfig(),
		timeutil.NewRealClock(),
		timeutil.NewRealSleeper(),
		log,
	)

	pipeline := usecase.NewPipeline(acquirer, cfg.Paths.OutputDir, cfg.Paths.DataContractFile, uploader, log)

	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	log.Info().
		Str("raw", result.RawPath).
		Str("transformed", result.TransformedPath).
		Int("records", result.Records).
		Int("violations", len(result.Violations)).
		Msg("run completed")
	return nil
}
