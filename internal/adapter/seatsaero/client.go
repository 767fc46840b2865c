// Package seatsaero implements the availability client against the seats.aero
// internal API: a partial-search call listing candidate offers per route, and
// a per-offer enrichment call carrying priced trip detail. All calls go
// through a shared pacer so the two endpoints cannot stampede the upstream.
package seatsaero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
	"github.com/awardscan/award-scraper/internal/infrastructure/ratelimit"
)

const (
	baseURL       = "https://seats.aero"
	warmupURL     = baseURL + "/search"
	searchURL     = baseURL + "/_api/search_partial"
	enrichmentURL = baseURL + "/_api/enrichment_modern/"

	// maxFees is the upstream fee ceiling, in minor currency units. The
	// value is opaque to this client; it is forwarded verbatim.
	maxFees = "40000"
)

// Client talks to the seats.aero API through a page executor.
type Client struct {
	exec     domain.PageExecutor
	pacer    *ratelimit.Pacer
	settings domain.ScrapeSettings
	log      *logger.Logger
}

// NewClient creates a seats.aero availability client.
func NewClient(exec domain.PageExecutor, pacer *ratelimit.Pacer, settings domain.ScrapeSettings, log *logger.Logger) *Client {
	return &Client{
		exec:     exec,
		pacer:    pacer,
		settings: settings,
		log:      log.WithContext("component", "seatsaero"),
	}
}

// Warmup loads the public search page so the session carries the cookies and
// headers the API endpoints expect.
func (c *Client) Warmup(ctx context.Context) error {
	if err := c.exec.Navigate(ctx, warmupURL); err != nil {
		return fmt.Errorf("warmup: %w", err)
	}
	return nil
}

// Search lists the candidate offers for a route on the target date.
func (c *Client) Search(ctx context.Context, route domain.Route, targetDate string) ([]domain.RawOffer, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.exec.FetchJSON(ctx, searchURL, c.searchParams(route, targetDate))
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", route.Label(), err)
	}
	if !res.Success {
		return nil, domain.NewStatusError(searchURL, res.StatusCode)
	}

	var decoded searchResponse
	if err := json.Unmarshal(res.Body, &decoded); err != nil {
		return nil, fmt.Errorf("search %s: decode response: %w", route.Label(), err)
	}

	offers := make([]domain.RawOffer, 0, len(decoded.Metadata))
	for _, meta := range decoded.Metadata {
		offers = append(offers, meta.toDomain())
	}

	c.log.Debug().
		Str("route", route.Label()).
		Str("date", targetDate).
		Int("offers", len(offers)).
		Msg("search completed")

	return offers, nil
}

// Enrich fetches the priced detail for one offer by availability ID.
func (c *Client) Enrich(ctx context.Context, availabilityID string, route domain.Route, targetDate string) (domain.EnrichmentDetail, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return domain.EnrichmentDetail{}, err
	}

	endpoint := enrichmentURL + url.PathEscape(availabilityID)
	params := c.baseParams(route, targetDate)
	params.Set("m", "1")

	res, err := c.exec.FetchJSON(ctx, endpoint, params)
	if err != nil {
		return domain.EnrichmentDetail{}, fmt.Errorf("enrich %s: %w", availabilityID, err)
	}
	if !res.Success {
		return domain.EnrichmentDetail{}, domain.NewStatusError(endpoint, res.StatusCode)
	}

	var decoded enrichmentResponse
	if err := json.Unmarshal(res.Body, &decoded); err != nil {
		return domain.EnrichmentDetail{}, fmt.Errorf("enrich %s: decode response: %w", availabilityID, err)
	}

	c.log.Debug().
		Str("route", route.Label()).
		Str("availability_id", availabilityID).
		Int("trips", len(decoded.Trips)).
		Msg("enrichment completed")

	return decoded.toDomain(), nil
}

// baseParams builds the query set shared by the search and enrichment
// endpoints.
func (c *Client) baseParams(route domain.Route, targetDate string) url.Values {
	return url.Values{
		"min_seats":              {"1"},
		"applicable_cabin":       {"any"},
		"additional_days":        {"true"},
		"additional_days_num":    {strconv.Itoa(c.settings.SearchWindowDays)},
		"max_fees":               {maxFees},
		"disable_live_filtering": {"false"},
		"date":                   {targetDate},
		"origins":                {route.Origin},
		"destinations":           {route.Destination},
	}
}

// searchParams extends the base set with the search-only flags. The "c"
// parameter is a per-request cache-busting token.
func (c *Client) searchParams(route domain.Route, targetDate string) url.Values {
	params := c.baseParams(route, targetDate)
	params.Set("seamless", "true")
	params.Set("c", uuid.NewString())
	return params
}
