package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Manager issues and reads cookies. Signed variants carry an HMAC-SHA256
// signature; all configured secrets are tried on read so keys can be rotated
// without invalidating cookies signed with an older key.
type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie manager. The first secret signs new cookies; the rest
// are accepted on verification only.
func New(secrets []string, opts ...Option) (*Manager, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(secrets, func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign(value), opts...)
}

func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	return m.verify(signed)
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, []byte(m.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

func (m *Manager) verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Try all secrets so cookies signed before a key rotation remain valid
	for _, secret := range m.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}
