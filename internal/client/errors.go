package client

import (
	"errors"
	"fmt"
)

// ExcerptLen is how many characters of an error body are kept in HTTPError messages.
const ExcerptLen = 100

var (
	// ErrAborted is returned when the request context is cancelled or its
	// deadline passes before the exchange completes.
	ErrAborted = errors.New("request aborted")

	// ErrUnreachable is returned when the request fails before any response
	// is received (dial, DNS, TLS or transport failure).
	ErrUnreachable = errors.New("failed to fetch")
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d - %s", e.StatusCode, Excerpt(e.Body, ExcerptLen))
}

// Excerpt returns at most n characters of s.
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// IsAborted reports whether err stems from a cancelled or timed-out request.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted)
}

// IsUnreachable reports whether err stems from a failure to reach the server.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// AsHTTPError returns the *HTTPError in err's chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
