package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingBaseURL is returned when constructing a client without a base URL.
	ErrMissingBaseURL = errors.New("apiclient: base URL is required")

	// ErrInvalidBaseURL is returned when the configured base URL does not parse.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")

	// ErrUnavailable classifies transport-level failures (DNS, refused
	// connections, timeouts) where no HTTP response was received.
	ErrUnavailable = errors.New("apiclient: service unavailable")
)

// Error is a non-2xx HTTP response from the API. Message carries the
// server's own error text unmodified, so domain-level failures such as
// "only the owner may transfer this gift card" reach the caller verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: unexpected status %d", e.StatusCode)
	}
	return e.Message
}

// IsUnauthorized reports whether err is an HTTP response rejecting the
// caller's credentials (401 or 403). Transport failures are not
// unauthorized: an unreachable server says nothing about the token.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsUnavailable reports whether err is a transport-level failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
