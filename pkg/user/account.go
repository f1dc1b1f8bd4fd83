package user

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// NotificationPrefs holds the email notification switches of an account.
type NotificationPrefs struct {
	WatchlistPages bool `json:"watchlist_pages"`
	UserTalkPages  bool `json:"user_talk_pages"`
	MinorEdits     bool `json:"minor_edits"`
	RevealAddress  bool `json:"reveal_address"`
}

// AllEnabled reports whether every notification category is turned on.
func (p NotificationPrefs) AllEnabled() bool {
	return p.WatchlistPages && p.UserTalkPages && p.MinorEdits && p.RevealAddress
}

// Account is an application user provisioned from a proxy-verified identity.
// Name is the normalized identity and the unique account key.
type Account struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	RealName        string            `json:"real_name"`
	Email           string            `json:"email"`
	EmailVerifiedAt *time.Time        `json:"email_verified_at,omitempty"`
	AuthToken       string            `json:"-"`
	Notifications   NotificationPrefs `json:"notifications"`
	CreatedAt       time.Time         `json:"created_at"`
}

// GenerateAuthToken creates a cryptographically secure account token.
func GenerateAuthToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
