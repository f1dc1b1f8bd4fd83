package remoteauth

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/remoteauth/pkg/user"
)

// Session provider priority bounds. The enclosing application arbitrates
// among concurrently active session providers by priority; higher wins.
const (
	MinPriority = 1
	MaxPriority = 100
)

// Config holds the provider configuration.
type Config struct {
	// Priority is the arbitration priority of sessions rehydrated from an
	// existing cookie. Required, must lie in [MinPriority, MaxPriority].
	// Freshly provisioned sessions always carry MaxPriority since their
	// identity was just re-verified against the trusted header.
	Priority int `env:"REMOTEAUTH_PRIORITY,required"`

	// CookieName is the name of the session cookie.
	CookieName string `env:"REMOTEAUTH_COOKIE_NAME" envDefault:"_AuthRemoteuserSession"`

	// Header is the trusted identity header set by the reverse proxy. The
	// proxy must strip or overwrite any client-supplied value of the same
	// name.
	Header string `env:"REMOTEAUTH_TRUSTED_HEADER" envDefault:"X-Remote-User"`

	// Domain, when set, is stripped from the raw identity in both the
	// `DOMAIN\user` and `user@DOMAIN` forms.
	Domain string `env:"REMOTEAUTH_DOMAIN" envDefault:""`

	// SessionTTL bounds the lifetime of issued sessions.
	SessionTTL time.Duration `env:"REMOTEAUTH_SESSION_TTL" envDefault:"720h"`

	// CleanupInterval for expired sessions in the default memory store
	// (0 to disable).
	CleanupInterval time.Duration `env:"REMOTEAUTH_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"REMOTEAUTH_SECURE_COOKIES" envDefault:"false"`

	// Accounts configures account defaulting for auto-created users.
	Accounts user.Config
}

// DefaultConfig returns default provider configuration. Priority is left
// unset on purpose: deployers must choose it relative to their other session
// providers.
func DefaultConfig() Config {
	return Config{
		CookieName:      "_AuthRemoteuserSession",
		Header:          "X-Remote-User",
		SessionTTL:      30 * 24 * time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}

// withDefaults fills unset optional fields with their defaults so that a
// sparse Config literal behaves like DefaultConfig plus overrides.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CookieName == "" {
		c.CookieName = def.CookieName
	}
	if c.Header == "" {
		c.Header = def.Header
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = def.SessionTTL
	}
	return c
}

// Validate checks configuration invariants that must hold before the
// provider can be constructed.
func (c Config) Validate() error {
	if c.Priority == 0 {
		return ErrPriorityRequired
	}
	if c.Priority < MinPriority || c.Priority > MaxPriority {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPriorityOutOfRange, c.Priority, MinPriority, MaxPriority)
	}
	return nil
}
