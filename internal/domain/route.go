// Package domain contains the core entities and rules of the award
// availability pipeline. These types are source-agnostic and form the
// foundation the acquisition, transform, and persistence layers build on.
package domain

import (
	"strings"
	"time"
)

// Route is one origin/destination pair to scrape, together with the loyalty
// programs whose offers we care about. Routes are immutable once loaded.
type Route struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// Programs is the ordered set of loyalty program names to match
	// against offer sources (e.g., "AAdvantage", "SkyMiles")
	Programs []string `json:"programs"`

	// Active controls whether this route is processed during a run
	Active bool `json:"active"`
}

// Label returns the "ORIG-DEST" display form used in logs.
func (r Route) Label() string {
	return r.Origin + "-" + r.Destination
}

// MatchesProgram reports whether an offer's program source matches any of the
// route's configured programs. Matching is case-insensitive and bidirectional:
// "AAdvantage" matches a source of "American AAdvantage" and vice versa, so
// naming variations between the API and the config still line up.
func (r Route) MatchesProgram(source string) bool {
	src := strings.ToLower(source)
	for _, p := range r.Programs {
		prog := strings.ToLower(p)
		if prog == "" || src == "" {
			continue
		}
		if strings.Contains(src, prog) || strings.Contains(prog, src) {
			return true
		}
	}
	return false
}

// ScrapeSettings holds the knobs that shape one acquisition run. The value is
// immutable for the run and shared read-only across all route processing.
type ScrapeSettings struct {
	// Headless controls whether the page executor runs without a UI
	Headless bool

	// Timeout bounds each remote call issued through the page executor
	Timeout time.Duration

	// UserAgent is sent on every request
	UserAgent string

	// Retries is the attempt budget for each search/enrichment call.
	// Must be at least 1 for any call to be issued.
	Retries int

	// SearchWindowDays is the +/- flex window, in days, passed upstream
	SearchWindowDays int

	// DepartureDate optionally pins the target date (YYYY-MM-DD).
	// Empty means "one week from now".
	DepartureDate string

	// MaxOffersPerRoute caps the offers considered per route; 0 = unbounded
	MaxOffersPerRoute int
}

// TargetDate resolves the departure date to search for: the configured
// override when present, otherwise one week from now.
func (s ScrapeSettings) TargetDate(now time.Time) string {
	if s.DepartureDate != "" {
		return s.DepartureDate
	}
	return now.AddDate(0, 0, 7).Format("2006-01-02")
}
