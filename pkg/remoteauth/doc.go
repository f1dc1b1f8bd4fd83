// Package remoteauth is a session provider for users already authenticated
// by a front-facing reverse proxy or web server (HTTP basic, Negotiate,
// client certificates). The proxy performs the credential handshake and
// injects the verified identity into a trusted request header; this package
// consumes that header's value unconditionally, binds it to an application
// account — auto-provisioning the account on first sight — and issues a
// durable session, all without ever prompting for credentials.
//
// # Trust boundary
//
// The provider never validates credentials. Deployers are responsible for
// ensuring the trusted header cannot be spoofed by end clients, i.e. the
// proxy strips or overwrites any client-supplied value of the same name.
//
// # Session resolution
//
// ResolveSession is the single per-request entry point. A request carrying a
// valid session cookie is rehydrated at the configured static priority with
// no store access; a request without one has its identity extracted,
// normalized (domain affix stripping) and provisioned, and leaves with a
// brand-new persisted session at maximum priority. Requests with an empty or
// invalid identity yield no session — the caller falls through to other
// session providers or anonymous state.
//
// Issued sessions are immutable: the provider can create them, rehydrate
// them as-is, or delete them on logout, but it never mutates an established
// session's stored metadata.
//
// # Usage
//
//	cookieMgr, err := cookie.New([]string{secret})
//	if err != nil {
//	    // handle error
//	}
//
//	provider, err := remoteauth.New(remoteauth.Config{
//	    Priority:   50,
//	    Domain:     "CORP",
//	    SessionTTL: 30 * 24 * time.Hour,
//	}, remoteauth.WithCookieManager(cookieMgr))
//	if err != nil {
//	    // handle error
//	}
//
//	defer provider.Close()
//
//	r := chi.NewRouter()
//	r.Use(provider.Middleware)
//	r.Mount("/auth", provider.Router())
//
// NewFromEnv builds the same provider from REMOTEAUTH_* environment
// variables (and a .env file when present).
//
// Stores default to in-memory; production setups plug in the Postgres
// account store and the Redis session store via options:
//
//	remoteauth.WithProvisioner(user.NewProvisioner(user.NewPostgresStore(pool), cfg.Accounts)),
//	remoteauth.WithSessionStore(session.NewRedisStore(redisClient)),
package remoteauth
