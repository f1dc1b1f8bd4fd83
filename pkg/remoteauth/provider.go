package remoteauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/remoteauth/pkg/cookie"
	"github.com/dmitrymomot/remoteauth/pkg/logger"
	"github.com/dmitrymomot/remoteauth/pkg/session"
	"github.com/dmitrymomot/remoteauth/pkg/user"
)

// UserProvisioner looks up or idempotently creates the account for a
// normalized identity.
type UserProvisioner interface {
	EnsureUser(ctx context.Context, name string) (*user.Account, error)
}

// Provider binds proxy-verified identities to application accounts and
// issues immutable sessions. It never performs or validates a credential
// handshake, never prompts, and trusts the configured header
// unconditionally: keeping that header unspoofable is the proxy's job.
type Provider struct {
	cfg          Config
	transport    session.Transport
	sessions     session.Store
	ownsSessions bool
	users        UserProvisioner
	log          *slog.Logger

	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
}

// New creates a provider from the given configuration. A missing or
// out-of-range priority fails construction; nothing is validated lazily.
func New(cfg Config, opts ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		cfg: cfg.withDefaults(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.sessions == nil {
		p.sessions = session.NewMemoryStore(p.cfg.CleanupInterval)
		p.ownsSessions = true
	}

	if p.users == nil {
		p.users = user.NewProvisioner(user.NewMemoryStore(), p.cfg.Accounts)
	}

	if p.transport == nil {
		if p.cookieManager == nil {
			return nil, ErrNoTransport
		}
		p.transport = session.NewCookieTransportWithSecurity(p.cookieManager, p.cfg.CookieName, p.cfg.SecureCookies, p.cookieOptions...)
	}

	if p.log == nil {
		p.log = logger.New(logger.WithAttr(slog.String("component", "remoteauth")))
	}

	return p, nil
}

// Close releases resources the provider owns, currently the default
// in-memory session store's cleanup goroutine. Stores supplied via
// WithSessionStore are left open; their lifecycle belongs to the caller.
func (p *Provider) Close() error {
	if !p.ownsSessions {
		return nil
	}
	if c, ok := p.sessions.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// ResolveSession is the sole per-request entry point.
//
// With an existing session id on the request it returns a rehydrated
// SessionInfo at the configured priority without touching any store; the
// session store resolves the id to a user on demand. Without one it extracts
// the trusted identity, provisions the account, and issues a new session at
// MaxPriority — persisting it synchronously within this request, because an
// immutable provider has no later mutation point to do so.
func (p *Provider) ResolveSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (*SessionInfo, error) {
	id, err := p.transport.GetID(r)
	if err == nil && id != "" {
		return &SessionInfo{
			Priority:  p.cfg.Priority,
			ID:        id,
			Persisted: true,
		}, nil
	}
	if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		// Tampered or malformed carrier. Clear it so the replacement
		// session issued below is the only one the client keeps.
		_ = p.transport.ClearID(w)
	}

	username := p.extractUsername(r)
	if username == "" {
		return nil, ErrNoIdentity
	}

	account, err := p.users.EnsureUser(ctx, username)
	if err != nil {
		return nil, err
	}

	info := &SessionInfo{
		Priority: MaxPriority,
		User:     account,
		Verified: true,
	}

	sess, err := session.New(account.ID, account.Name, p.cfg.SessionTTL)
	if err != nil {
		return nil, errors.Join(ErrSessionPersist, err)
	}

	if err := p.sessions.Create(ctx, sess); err != nil {
		return nil, errors.Join(ErrSessionPersist, err)
	}

	if err := p.transport.SetID(w, sess.ID, p.cfg.SessionTTL); err != nil {
		_ = p.sessions.Delete(ctx, sess.ID)
		return nil, errors.Join(ErrSessionPersist, err)
	}

	info.ID = sess.ID
	info.Persisted = true

	return info, nil
}

// SessionIDIsValid reports whether a bare session id could have originated
// from this provider. Intentionally conservative: the provider never vouches
// for an id without backing context, so this is unconditionally false and
// final trust stays with the session store.
func (p *Provider) SessionIDIsValid(id string) bool {
	return false
}

// Logout deletes the session behind the request's session id and clears the
// cookie. The provider never mutates issued sessions; deleting one is the
// only lifecycle operation it supports after issuance.
func (p *Provider) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if id, err := p.transport.GetID(r); err == nil && id != "" {
		if err := p.sessions.Delete(ctx, id); err != nil {
			return err
		}
	}

	return p.transport.ClearID(w)
}

// isRecoverable reports whether a resolution failure means "no session from
// this provider" rather than a hard error. Callers fall through to other
// session providers or anonymous state.
func isRecoverable(err error) bool {
	return errors.Is(err, ErrNoIdentity) || errors.Is(err, user.ErrInvalidUsername)
}
