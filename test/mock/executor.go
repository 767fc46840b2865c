// Package mock provides test doubles for the award availability pipeline.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted responses).
package mock

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/awardscan/award-scraper/internal/domain"
)

// response is one scripted answer keyed by a URL substring.
type response struct {
	urlContains string
	result      domain.FetchResult
	err         error
}

// Executor is a configurable mock implementation of domain.PageExecutor.
// Responses are scripted per URL substring; unmatched URLs answer 404.
// It supports configurable delays for testing timeout behavior.
type Executor struct {
	responses []response
	navErr    error
	delay     time.Duration

	mu        sync.Mutex
	fetched   []string
	navigated []string
}

// NewExecutor creates a new scripted executor. Behavior is configured using
// the builder pattern methods.
func NewExecutor() *Executor {
	return &Executor{}
}

// RespondJSON scripts a 200 response with the given body for any URL
// containing the substring.
func (e *Executor) RespondJSON(urlContains, body string) *Executor {
	e.responses = append(e.responses, response{
		urlContains: urlContains,
		result:      domain.FetchResult{Success: true, StatusCode: 200, Body: []byte(body)},
	})
	return e
}

// RespondStatus scripts a completed non-2xx response for any URL containing
// the substring.
func (e *Executor) RespondStatus(urlContains string, code int) *Executor {
	e.responses = append(e.responses, response{
		urlContains: urlContains,
		result:      domain.FetchResult{Success: code >= 200 && code < 300, StatusCode: code},
	})
	return e
}

// RespondError scripts a transport-level failure for any URL containing the
// substring.
func (e *Executor) RespondError(urlContains string, err error) *Executor {
	e.responses = append(e.responses, response{urlContains: urlContains, err: err})
	return e
}

// WithNavigateError makes every Navigate call fail with the given error.
func (e *Executor) WithNavigateError(err error) *Executor {
	e.navErr = err
	return e
}

// WithDelay makes every FetchJSON call wait before responding.
func (e *Executor) WithDelay(d time.Duration) *Executor {
	e.delay = d
	return e
}

// Navigate implements domain.PageExecutor.Navigate.
func (e *Executor) Navigate(_ context.Context, rawURL string) error {
	e.mu.Lock()
	e.navigated = append(e.navigated, rawURL)
	e.mu.Unlock()
	return e.navErr
}

// FetchJSON implements domain.PageExecutor.FetchJSON. It respects context
// cancellation, applies the configured delay, and returns the first scripted
// response whose substring matches the URL.
func (e *Executor) FetchJSON(ctx context.Context, rawURL string, _ url.Values) (domain.FetchResult, error) {
	e.mu.Lock()
	e.fetched = append(e.fetched, rawURL)
	e.mu.Unlock()

	if e.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.FetchResult{}, ctx.Err()
		case <-time.After(e.delay):
		}
	}
	if ctx.Err() != nil {
		return domain.FetchResult{}, ctx.Err()
	}

	for _, r := range e.responses {
		if strings.Contains(rawURL, r.urlContains) {
			return r.result, r.err
		}
	}
	return domain.FetchResult{Success: false, StatusCode: 404}, nil
}

// Close implements domain.PageExecutor.Close.
func (e *Executor) Close() error {
	return nil
}

// FetchedURLs returns the URLs passed to FetchJSON, in call order.
func (e *Executor) FetchedURLs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.fetched...)
}

// NavigatedURLs returns the URLs passed to Navigate, in call order.
func (e *Executor) NavigatedURLs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.navigated...)
}

// Ensure Executor implements domain.PageExecutor at compile time.
var _ domain.PageExecutor = (*Executor)(nil)
