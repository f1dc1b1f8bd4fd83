package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/remoteauth/pkg/cookie"
)

// CookieTransport implements Transport using signed cookies.
type CookieTransport struct {
	cookieMgr     *cookie.Manager
	cookieName    string
	options       []cookie.Option
	secureCookies bool
}

// NewCookieTransport creates a new cookie-based transport.
func NewCookieTransport(cookieMgr *cookie.Manager, cookieName string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
		options:    opts,
	}
}

// NewCookieTransportWithSecurity creates a cookie-based transport with the
// Secure flag controlled by configuration.
func NewCookieTransportWithSecurity(cookieMgr *cookie.Manager, cookieName string, secureCookies bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookieMgr:     cookieMgr,
		cookieName:    cookieName,
		options:       opts,
		secureCookies: secureCookies,
	}
}

// GetID extracts the session id from the signed cookie. An absent cookie
// yields ErrSessionNotFound; a cookie that fails signature or format checks
// yields ErrInvalidSession so callers can discard the bad carrier.
func (t *CookieTransport) GetID(r *http.Request) (string, error) {
	id, err := t.cookieMgr.GetSigned(r, t.cookieName)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			return "", ErrSessionNotFound
		}
		return "", errors.Join(ErrInvalidSession, err)
	}
	return id, nil
}

// SetID stores the session id in a signed cookie.
func (t *CookieTransport) SetID(w http.ResponseWriter, id string, ttl time.Duration) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}

	if t.secureCookies {
		opts = append(opts, cookie.WithSecure(true))
	}

	opts = append(opts, t.options...)

	return t.cookieMgr.SetSigned(w, t.cookieName, id, opts...)
}

// ClearID removes the session cookie.
func (t *CookieTransport) ClearID(w http.ResponseWriter) error {
	t.cookieMgr.Delete(w, t.cookieName)
	return nil
}
