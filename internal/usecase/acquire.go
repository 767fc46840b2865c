// Package usecase contains the acquisition engine and the pipeline driver.
// The engine walks the configured routes, collects offers through the
// availability client, and assembles the raw run snapshot; the driver owns
// persistence, transformation, and the optional storage mirror.
package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/infrastructure/retry"
	"github.com/awardscan/award-scraper/internal/infrastructure/timeutil"
)

// AcquireConfig tunes the pacing and degradation behavior of one run.
type AcquireConfig struct {
	// InterOfferDelay is the base pause between enrichment calls;
	// InterOfferJitter is added on top at random.
	InterOfferDelay  time.Duration
	InterOfferJitter time.Duration

	// InterRouteDelay is the base pause between routes;
	// InterRouteJitter is added on top at random.
	InterRouteDelay  time.Duration
	InterRouteJitter time.Duration

	// RateLimitThreshold is how many terminal rate-limit failures a route
	// tolerates before the rest of its offers fall back to minimal records.
	RateLimitThreshold int
}

// DefaultAcquireConfig returns the pacing used in production runs.
func DefaultAcquireConfig() AcquireConfig {
	return AcquireConfig{
		InterOfferDelay:    1500 * time.Millisecond,
		InterOfferJitter:   2 * time.Second,
		InterRouteDelay:    3 * time.Second,
		InterRouteJitter:   2 * time.Second,
		RateLimitThreshold: 2,
	}
}

// Acquirer runs the acquisition stage: search each active route, enrich the
// matching offers, and collect everything into one raw run snapshot.
type Acquirer struct {
	client   domain.AvailabilityClient
	routes   []domain.Route
	settings domain.ScrapeSettings
	cfg      AcquireConfig
	clock    timeutil.Clock
	sleeper  timeutil.Sleeper
	log      *logger.Logger
}

// NewAcquirer wires an acquisition engine.
func NewAcquirer(
	client domain.AvailabilityClient,
	routes []domain.Route,
	settings domain.ScrapeSettings,
	cfg AcquireConfig,
	clock timeutil.Clock,
	sleeper timeutil.Sleeper,
	log *logger.Logger,
) *Acquirer {
	return &Acquirer{
		client:   client,
		routes:   routes,
		settings: settings,
		cfg:      cfg,
		clock:    clock,
		sleeper:  sleeper,
		log:      log,
	}
}

// Run executes one acquisition pass over all active routes. A route whose
// search fails is skipped with its offers lost; an offer whose enrichment
// fails degrades to a minimal record. Only context cancellation aborts the
// run, and the snapshot collected so far is still returned alongside the
// error so partial work is never discarded.
func (a *Acquirer) Run(ctx context.Context) (*domain.RunOutput, error) {
	runTimestamp := a.clock.Now().UTC().Format(domain.RunTimestampLayout)
	targetDate := a.settings.TargetDate(a.clock.Now())
	log := a.log.WithRun(runTimestamp)
	out := domain.NewRunOutput(runTimestamp)

	if err := a.client.Warmup(ctx); err != nil {
		log.Warn().Err(err).Msg("warmup failed, continuing")
	}

	log.Info().
		Str("target_date", targetDate).
		Int("routes", len(a.routes)).
		Msg("acquisition started")

	for _, route := range a.routes {
		if !route.Active {
			log.Debug().Str("route", route.Label()).Msg("route inactive, skipping")
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		a.processRoute(ctx, route, targetDate, out, log.WithRoute(route.Label()))

		if err := a.pause(ctx, a.cfg.InterRouteDelay, a.cfg.InterRouteJitter); err != nil {
			return out, err
		}
	}

	log.Info().Int("records", len(out.OriginDestPairs)).Msg("acquisition completed")
	return out, nil
}

// processRoute searches one route and enriches its matching offers. Once the
// rate-limit threshold is crossed, the remaining offers are captured as
// minimal records without further upstream calls.
func (a *Acquirer) processRoute(ctx context.Context, route domain.Route, targetDate string, out *domain.RunOutput, log *logger.Logger) {
	searchCfg := retry.SearchConfig.
		WithMaxAttempts(a.settings.Retries).
		WithOnRetry(func(attempt int, err error) {
			log.Warn().Err(err).Int("attempt", attempt).Msg("retrying search")
		})

	offers, err := retry.DoWithResult(ctx, func() ([]domain.RawOffer, error) {
		return a.client.Search(ctx, route, targetDate)
	}, searchCfg)
	if err != nil {
		log.Error().Err(err).Msg("search failed, skipping route")
		return
	}

	if max := a.settings.MaxOffersPerRoute; max > 0 && len(offers) > max {
		log.Debug().Int("total", len(offers)).Int("kept", max).Msg("truncating offers")
		offers = offers[:max]
	}

	degraded := false
	rateLimitHits := 0

	for i, offer := range offers {
		// Degraded mode preserves every remaining offer, even ones whose
		// program is not configured for the route.
		if degraded {
			out.Append(domain.NewMinimalRecord(offer, targetDate, out.RunTimestampUTC))
			continue
		}

		if !route.MatchesProgram(offer.Source) {
			log.Debug().Str("source", offer.Source).Msg("offer program not configured, skipping")
			continue
		}

		records, err := a.enrichOffer(ctx, offer, route, targetDate, out.RunTimestampUTC, log)
		if err != nil {
			log.Warn().Err(err).Str("availability_id", offer.ID).Msg("enrichment failed, capturing minimal record")
			out.Append(domain.NewMinimalRecord(offer, targetDate, out.RunTimestampUTC))

			if domain.IsRateLimited(err) {
				rateLimitHits++
				if rateLimitHits >= a.cfg.RateLimitThreshold {
					degraded = true
					log.Warn().Int("rate_limit_hits", rateLimitHits).Msg("entering degraded mode for route")
				}
			}
		} else {
			out.Append(records...)
		}

		if !degraded && i < len(offers)-1 {
			if err := a.pause(ctx, a.cfg.InterOfferDelay, a.cfg.InterOfferJitter); err != nil {
				return
			}
		}
	}
}

// enrichOffer fetches priced detail for one offer with retry. An enrichment
// that succeeds but carries no trips still yields a minimal record, so the
// offer is never lost.
func (a *Acquirer) enrichOffer(ctx context.Context, offer domain.RawOffer, route domain.Route, targetDate, runTimestamp string, log *logger.Logger) ([]domain.FlightRecord, error) {
	enrichCfg := retry.EnrichmentConfig.
		WithMaxAttempts(a.settings.Retries).
		WithOnRetry(func(attempt int, err error) {
			log.Warn().Err(err).Int("attempt", attempt).Str("availability_id", offer.ID).Msg("retrying enrichment")
		})

	detail, err := retry.DoWithResult(ctx, func() (domain.EnrichmentDetail, error) {
		return a.client.Enrich(ctx, offer.ID, route, targetDate)
	}, enrichCfg)
	if err != nil {
		return nil, err
	}

	records := domain.BuildTripRecords(offer, detail, a.clock.Now(), runTimestamp)
	if len(records) == 0 {
		return []domain.FlightRecord{domain.NewMinimalRecord(offer, targetDate, runTimestamp)}, nil
	}
	return records, nil
}

// pause sleeps for base plus a random share of jitter, honoring cancellation.
func (a *Acquirer) pause(ctx context.Context, base, jitter time.Duration) error {
	d := base
	if jitter > 0 {
		d += time.Duration(rand.Int63n(int64(jitter)))
	}
	if d <= 0 {
		return nil
	}
	return a.sleeper.Sleep(ctx, d)
}
