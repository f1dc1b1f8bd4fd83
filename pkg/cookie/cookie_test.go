package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remoteauth/pkg/cookie"
)

const testSecret = "test-secret-key-that-is-long-enough!"

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no secrets", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("empty secrets filtered", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("secret too short", func(t *testing.T) {
		t.Parallel()

		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("valid secret", func(t *testing.T) {
		t.Parallel()

		mgr, err := cookie.New([]string{testSecret})
		require.NoError(t, err)
		assert.NotNil(t, mgr)
	})
}

func TestSignedRoundTrip(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.SetSigned(w, "sid", "abc123"))

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	value, err := mgr.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestGetSigned_TamperedValue(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.SetSigned(w, "sid", "abc123"))

	raw := w.Result().Cookies()[0].Value
	parts := strings.SplitN(raw, "|", 2)
	require.Len(t, parts, 2)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: parts[0] + "|forgedsignature"})

	_, err = mgr.GetSigned(r, "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}

func TestGetSigned_InvalidFormat(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: "no-separator-here"})

	_, err = mgr.GetSigned(r, "sid")
	assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
}

func TestSecretRotation(t *testing.T) {
	t.Parallel()

	oldSecret := "old-secret-key-that-is-long-enough!!"

	oldMgr, err := cookie.New([]string{oldSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, oldMgr.SetSigned(w, "sid", "rotated"))

	// New manager signs with a fresh key but still accepts the old one
	newMgr, err := cookie.New([]string{testSecret, oldSecret})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	value, err := newMgr.GetSigned(r, "sid")
	require.NoError(t, err)
	assert.Equal(t, "rotated", value)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	_, err = mgr.Get(r, "missing")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mgr.Delete(w, "sid")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSet_OptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	mgr, err := cookie.New([]string{testSecret}, cookie.WithSecure(true))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, mgr.Set(w, "sid", "v", cookie.WithPath("/app"), cookie.WithMaxAge(60)))

	c := w.Result().Cookies()[0]
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
}
