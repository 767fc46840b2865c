package domain

import (
	"context"
	"net/url"
)

// FetchResult is the structured outcome of one remote call made through the
// page executor. Success mirrors the HTTP 2xx range; the body is returned
// as-is for the caller to decode.
type FetchResult struct {
	Success    bool
	StatusCode int
	Body       []byte
}

// PageExecutor is the port to the remote page execution capability. The
// concrete engine (a browser automation layer, or plain HTTP in this
// implementation) is an external collaborator hidden behind this interface.
//
// FetchJSON returns an error only for transport-level failures; a completed
// call with a non-2xx status is reported through FetchResult.
type PageExecutor interface {
	// Navigate loads a page to establish session state before API calls.
	Navigate(ctx context.Context, rawURL string) error

	// FetchJSON performs one GET against rawURL with the given query
	// parameters, subject to the executor's timeout.
	FetchJSON(ctx context.Context, rawURL string, params url.Values) (FetchResult, error)

	// Close releases executor resources.
	Close() error
}

// AvailabilityClient is the port the acquisition engine uses to talk to the
// award search API: a search call producing candidate offers, and an
// enrichment call producing priced detail for one offer.
type AvailabilityClient interface {
	// Warmup prepares the underlying executor (landing page load).
	// Failures are advisory; acquisition proceeds regardless.
	Warmup(ctx context.Context) error

	// Search returns the candidate offers for a route on the target date.
	Search(ctx context.Context, route Route, targetDate string) ([]RawOffer, error)

	// Enrich returns the priced detail for one offer by availability ID.
	Enrich(ctx context.Context, availabilityID string, route Route, targetDate string) (EnrichmentDetail, error)
}
