package remoteauth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/remoteauth/pkg/remoteauth"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("missing priority", func(t *testing.T) {
		t.Parallel()

		cfg := remoteauth.DefaultConfig()
		assert.ErrorIs(t, cfg.Validate(), remoteauth.ErrPriorityRequired)
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()

		for _, priority := range []int{-1, remoteauth.MaxPriority + 1, 1000} {
			cfg := remoteauth.DefaultConfig()
			cfg.Priority = priority
			assert.ErrorIs(t, cfg.Validate(), remoteauth.ErrPriorityOutOfRange, "priority %d", priority)
		}
	})

	t.Run("valid bounds", func(t *testing.T) {
		t.Parallel()

		for _, priority := range []int{remoteauth.MinPriority, 50, remoteauth.MaxPriority} {
			cfg := remoteauth.DefaultConfig()
			cfg.Priority = priority
			assert.NoError(t, cfg.Validate(), "priority %d", priority)
		}
	})
}

func TestNew_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid priority fails construction", func(t *testing.T) {
		t.Parallel()

		_, err := remoteauth.New(remoteauth.Config{})
		assert.ErrorIs(t, err, remoteauth.ErrPriorityRequired)
	})

	t.Run("no transport fails construction", func(t *testing.T) {
		t.Parallel()

		cfg := remoteauth.DefaultConfig()
		cfg.Priority = 50

		_, err := remoteauth.New(cfg)
		assert.ErrorIs(t, err, remoteauth.ErrNoTransport)
	})
}
