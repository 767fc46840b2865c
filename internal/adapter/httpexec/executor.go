// Package httpexec is the plain-HTTP page executor. It satisfies the same
// port a browser automation engine would, keeping session cookies across the
// warmup navigation and the API calls that follow it.
package httpexec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Executor performs page loads and JSON fetches over net/http.
type Executor struct {
	client    *http.Client
	userAgent string
	referer   string
	log       *logger.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(e *Executor) {
		if ua != "" {
			e.userAgent = ua
		}
	}
}

// New creates an HTTP executor. The timeout bounds every individual request;
// a cookie jar keeps session state between navigation and API calls.
func New(timeout time.Duration, log *logger.Logger, opts ...Option) (*Executor, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: cookie jar: %v", domain.ErrSetup, err)
	}

	e := &Executor{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		userAgent: defaultUserAgent,
		log:       log.WithContext("component", "httpexec"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Navigate loads a page and discards its body. The visited URL becomes the
// Referer for subsequent FetchJSON calls, mirroring what a browser would send.
func (e *Executor) Navigate(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewStatusError(rawURL, resp.StatusCode)
	}

	e.referer = rawURL
	e.log.Debug().Str("url", rawURL).Msg("navigation completed")
	return nil
}

// FetchJSON performs one GET with the given query parameters. A completed
// request always returns a FetchResult; the error path is transport-level
// failures only.
func (e *Executor) FetchJSON(ctx context.Context, rawURL string, params url.Values) (domain.FetchResult, error) {
	endpoint := rawURL
	if len(params) > 0 {
		endpoint = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if e.referer != "" {
		req.Header.Set("Referer", e.referer)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FetchResult{}, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}

	return domain.FetchResult{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Close releases idle connections held by the underlying client.
func (e *Executor) Close() error {
	e.client.CloseIdleConnections()
	return nil
}
