package remoteauth

import "github.com/dmitrymomot/remoteauth/pkg/user"

// SessionInfo describes the session this provider resolved for a request.
//
// Two shapes occur. Rehydrated: an existing session id was found on the
// request; Priority is the configured static priority, User is nil because
// resolving the id to a user is the session store's job. Provisioned: the
// identity was just re-verified against the trusted header, so Priority is
// MaxPriority, User carries the bound account and Verified is true.
type SessionInfo struct {
	// Priority arbitrates among concurrently active session providers.
	Priority int

	// ID is the opaque session id.
	ID string

	// User is the bound account. Only set on the provisioning path.
	User *user.Account

	// Persisted reports whether the session is backed by the session store.
	Persisted bool

	// Verified reports whether the identity behind this session was checked
	// against the trusted header during this request.
	Verified bool
}

// IsProvisioned reports whether this info was produced by the
// first-login provisioning path.
func (i *SessionInfo) IsProvisioned() bool {
	return i != nil && i.User != nil
}
