package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the acquisition pipeline. Callers branch on these with
// errors.Is rather than matching message text.
var (
	// ErrRateLimited marks a terminal failure caused by upstream rate
	// limiting. The engine counts these per route to trigger degraded mode.
	ErrRateLimited = errors.New("rate limited by upstream")

	// ErrSetup marks an unrecoverable setup failure (the page executor
	// could not be started, a raw snapshot could not be read). These abort
	// the run instead of degrading.
	ErrSetup = errors.New("setup failed")
)

// StatusError reports a non-2xx outcome from a remote call. Transport-level
// failures are ordinary errors; a StatusError means the call completed and the
// server answered with a failure status. Retry logic branches on the carried
// status code instead of parsing messages.
type StatusError struct {
	// URL is the endpoint that answered
	URL string

	// Code is the HTTP status code
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s returned %d", e.URL, e.Code)
}

// Is lets errors.Is(err, ErrRateLimited) recognize 429 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrRateLimited && e.Code == http.StatusTooManyRequests
}

// NewStatusError creates a StatusError for the given endpoint and code.
func NewStatusError(url string, code int) *StatusError {
	return &StatusError{URL: url, Code: code}
}

// IsRateLimited reports whether the error chain contains a rate-limit signal.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
