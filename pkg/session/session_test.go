package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remoteauth/pkg/session"
)

func TestNew(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sess, err := session.New(userID, "alice", time.Hour)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.False(t, sess.IsExpired())
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
}

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id, err := session.GenerateID()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(id), 43) // 32 bytes base64url
		assert.False(t, seen[id], "ids must be unique")
		seen[id] = true
	}
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	sess, err := session.New(uuid.New(), "bob", -time.Minute)
	require.NoError(t, err)
	assert.True(t, sess.IsExpired())
}
