package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remoteauth/pkg/user"
)

func testAccount(name string) *user.Account {
	return &user.Account{
		ID:        uuid.New(),
		Name:      name,
		Email:     name + "@example.com",
		CreatedAt: time.Now(),
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	ctx := context.Background()

	account := testAccount("alice")
	require.NoError(t, store.Create(ctx, account))

	got, err := store.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Email, got.Email)
}

func TestMemoryStore_Create_NameTaken(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testAccount("alice")))

	err := store.Create(ctx, testAccount("alice"))
	assert.ErrorIs(t, err, user.ErrNameTaken)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Create_Invalid(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Create(ctx, nil), user.ErrInvalidAccount)
	assert.ErrorIs(t, store.Create(ctx, &user.Account{}), user.ErrInvalidAccount)
}

func TestMemoryStore_GetByName_NotFound(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()

	_, err := store.GetByName(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := user.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testAccount("alice")))

	first, err := store.GetByName(ctx, "alice")
	require.NoError(t, err)
	first.Email = "mutated@example.com"

	second, err := store.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", second.Email)
}
