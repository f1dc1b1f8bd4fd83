package session

import (
	"net/http"
	"time"
)

// Transport defines how session ids travel between client and server.
type Transport interface {
	// GetID extracts the session id from the request.
	GetID(r *http.Request) (string, error)

	// SetID sends the session id in the response.
	SetID(w http.ResponseWriter, id string, ttl time.Duration) error

	// ClearID removes the session id from the response.
	ClearID(w http.ResponseWriter) error
}
