package remoteauth

import (
	"log/slog"

	"github.com/dmitrymomot/remoteauth/pkg/cookie"
	"github.com/dmitrymomot/remoteauth/pkg/session"
)

// Option is a functional option for configuring the Provider.
type Option func(*Provider)

// WithSessionStore sets a custom session store.
func WithSessionStore(store session.Store) Option {
	return func(p *Provider) {
		p.sessions = store
	}
}

// WithTransport sets a custom session transport.
func WithTransport(transport session.Transport) Option {
	return func(p *Provider) {
		p.transport = transport
	}
}

// WithProvisioner sets a custom user provisioner.
func WithProvisioner(users UserProvisioner) Option {
	return func(p *Provider) {
		p.users = users
	}
}

// WithCookieManager sets the cookie manager for the default cookie
// transport. The extra options pass through to every cookie write.
func WithCookieManager(cookieMgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(p *Provider) {
		p.cookieManager = cookieMgr
		p.cookieOptions = opts
	}
}

// WithLogger sets the logger used by the middleware to report hard
// resolution failures.
func WithLogger(log *slog.Logger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}
