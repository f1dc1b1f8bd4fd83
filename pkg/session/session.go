package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind a session id. The provider that
// issues it never mutates it afterwards; it can only be rehydrated as-is or
// deleted.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New creates a session record for the given user with a fresh random id.
func New(userID uuid.UUID, username string, ttl time.Duration) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        id,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired returns true if the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// GenerateID creates a cryptographically secure session id with 256 bits of
// entropy.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
