package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remoteauth/pkg/cookie"
	"github.com/dmitrymomot/remoteauth/pkg/session"
)

func TestCookieTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	transport := session.NewCookieTransport(cookieMgr, "sid")

	w := httptest.NewRecorder()
	require.NoError(t, transport.SetID(w, "session-id-1", time.Hour))

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	id, err := transport.GetID(r)
	require.NoError(t, err)
	assert.Equal(t, "session-id-1", id)
}

func TestCookieTransport_GetID_Missing(t *testing.T) {
	t.Parallel()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	transport := session.NewCookieTransport(cookieMgr, "sid")

	r := httptest.NewRequest("GET", "/", nil)
	_, err = transport.GetID(r)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestCookieTransport_GetID_Forged(t *testing.T) {
	t.Parallel()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	transport := session.NewCookieTransport(cookieMgr, "sid")

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: "unsigned-raw-value"})

	_, err = transport.GetID(r)
	assert.ErrorIs(t, err, session.ErrInvalidSession, "a tampered cookie is malformed, not absent")
	assert.NotErrorIs(t, err, session.ErrSessionNotFound)
}

func TestCookieTransport_SecureFlag(t *testing.T) {
	t.Parallel()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	transport := session.NewCookieTransportWithSecurity(cookieMgr, "sid", true)

	w := httptest.NewRecorder()
	require.NoError(t, transport.SetID(w, "x", time.Hour))

	c := w.Result().Cookies()[0]
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
}

func TestCookieTransport_ClearID(t *testing.T) {
	t.Parallel()

	cookieMgr, err := cookie.New([]string{"test-secret-key-that-is-long-enough"})
	require.NoError(t, err)

	transport := session.NewCookieTransport(cookieMgr, "sid")

	w := httptest.NewRecorder()
	require.NoError(t, transport.ClearID(w))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestHeaderTransport(t *testing.T) {
	t.Parallel()

	t.Run("round trip with prefix", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID")

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetID(w, "abc", time.Hour))
		assert.Equal(t, "Bearer abc", w.Header().Get("X-Session-ID"))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Session-ID", "Bearer abc")

		id, err := transport.GetID(r)
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID", session.WithHeaderPrefix(""))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Session-ID", "abc")

		id, err := transport.GetID(r)
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID")

		r := httptest.NewRequest("GET", "/", nil)
		_, err := transport.GetID(r)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID")

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Session-ID", "Basic abc")

		_, err := transport.GetID(r)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("empty id behind prefix", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID")

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Session-ID", "Bearer ")

		_, err := transport.GetID(r)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("expiry companion", func(t *testing.T) {
		t.Parallel()

		transport := session.NewHeaderTransport("X-Session-ID")

		w := httptest.NewRecorder()
		require.NoError(t, transport.SetID(w, "abc", time.Hour))

		expires, err := time.Parse(http.TimeFormat, w.Header().Get("X-Session-ID-Expires"))
		require.NoError(t, err)
		assert.True(t, expires.After(time.Now()))

		require.NoError(t, transport.ClearID(w))
		assert.Empty(t, w.Header().Get("X-Session-ID"))
		assert.Empty(t, w.Header().Get("X-Session-ID-Expires"))
	})
}
