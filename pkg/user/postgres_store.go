package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/remoteauth/pkg/config"
	"github.com/dmitrymomot/remoteauth/pkg/pg"
)

// PostgresStore implements Store backed by PostgreSQL. The unique index on
// users.name supplies the create-if-absent guarantee: a lost first-login race
// surfaces as ErrNameTaken and the caller re-fetches the winner.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed account store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// NewPostgresStoreFromEnv loads the database configuration from environment
// variables and connects through NewPostgresStoreFromConfig.
func NewPostgresStoreFromEnv(ctx context.Context, log *slog.Logger) (*PostgresStore, error) {
	var cfg pg.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewPostgresStoreFromConfig(ctx, cfg, log)
}

// NewPostgresStoreFromConfig connects using cfg, runs pending migrations,
// and returns a store over the resulting pool.
func NewPostgresStoreFromConfig(ctx context.Context, cfg pg.Config, log *slog.Logger) (*PostgresStore, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
		pool.Close()
		return nil, err
	}

	return NewPostgresStore(pool), nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

const getByNameQuery = `
SELECT id, name, real_name, email, email_verified_at, auth_token,
       notify_watchlist, notify_user_talk, notify_minor_edits, notify_reveal_address,
       created_at
FROM users
WHERE name = $1`

// GetByName retrieves an account by its normalized name.
func (s *PostgresStore) GetByName(ctx context.Context, name string) (*Account, error) {
	var account Account
	err := s.pool.QueryRow(ctx, getByNameQuery, name).Scan(
		&account.ID,
		&account.Name,
		&account.RealName,
		&account.Email,
		&account.EmailVerifiedAt,
		&account.AuthToken,
		&account.Notifications.WatchlistPages,
		&account.Notifications.UserTalkPages,
		&account.Notifications.MinorEdits,
		&account.Notifications.RevealAddress,
		&account.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	return &account, nil
}

const createQuery = `
INSERT INTO users (id, name, real_name, email, email_verified_at, auth_token,
                   notify_watchlist, notify_user_talk, notify_minor_edits, notify_reveal_address,
                   created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Create stores a new account, rejecting duplicates by name.
func (s *PostgresStore) Create(ctx context.Context, account *Account) error {
	if account == nil || account.Name == "" {
		return ErrInvalidAccount
	}

	_, err := s.pool.Exec(ctx, createQuery,
		account.ID,
		account.Name,
		account.RealName,
		account.Email,
		account.EmailVerifiedAt,
		account.AuthToken,
		account.Notifications.WatchlistPages,
		account.Notifications.UserTalkPages,
		account.Notifications.MinorEdits,
		account.Notifications.RevealAddress,
		account.CreatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrNameTaken
		}
		return errors.Join(ErrStoreFailure, err)
	}

	return nil
}
