package session

import (
	"net/http"
	"strings"
	"time"
)

// HeaderTransport implements Transport over HTTP headers, for proxy chains
// and server-to-server hops where cookies do not traverse: the upstream
// strips the client cookie and forwards the id in a header instead. The
// response carries the id in the same header plus a companion
// "<header>-Expires" HTTP date so intermediaries can drop stale ids without
// a store round-trip.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// NewHeaderTransport creates a new header-based transport. The value scheme
// defaults to "Bearer ".
func NewHeaderTransport(headerName string, opts ...HeaderOption) *HeaderTransport {
	t := &HeaderTransport{
		headerName: headerName,
		prefix:     "Bearer ",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// HeaderOption is a functional option for HeaderTransport.
type HeaderOption func(*HeaderTransport)

// WithHeaderPrefix sets a custom prefix for the header value. An empty
// prefix means the header carries the bare id.
func WithHeaderPrefix(prefix string) HeaderOption {
	return func(t *HeaderTransport) {
		t.prefix = prefix
	}
}

// GetID extracts the session id from the request header. An absent header
// yields ErrSessionNotFound; a present header with the wrong scheme or no id
// behind the prefix is malformed, not absent, and yields ErrInvalidSession.
func (t *HeaderTransport) GetID(r *http.Request) (string, error) {
	value := r.Header.Get(t.headerName)
	if value == "" {
		return "", ErrSessionNotFound
	}

	if t.prefix != "" {
		if !strings.HasPrefix(value, t.prefix) {
			return "", ErrInvalidSession
		}
		value = strings.TrimPrefix(value, t.prefix)
	}

	if value == "" {
		return "", ErrInvalidSession
	}

	return value, nil
}

// SetID sends the session id in the response header, with the expiry
// companion when a ttl is set.
func (t *HeaderTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	w.Header().Set(t.headerName, t.prefix+id)

	if ttl > 0 {
		w.Header().Set(t.headerName+"-Expires", time.Now().Add(ttl).UTC().Format(http.TimeFormat))
	}

	return nil
}

// ClearID removes the session header and its expiry companion from the
// response.
func (t *HeaderTransport) ClearID(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
