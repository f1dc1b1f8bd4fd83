package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/remoteauth/pkg/config"
	redisconn "github.com/dmitrymomot/remoteauth/pkg/redis"
)

const defaultKeyPrefix = "session:"

// RedisStore implements Store backed by Redis. Expiry is delegated to Redis
// key TTLs, so DeleteExpired is a no-op.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
}

// NewRedisStoreFromEnv loads the Redis configuration from environment
// variables and connects through NewRedisStoreFromConfig.
func NewRedisStoreFromEnv(ctx context.Context) (*RedisStore, error) {
	var cfg redisconn.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewRedisStoreFromConfig(ctx, cfg)
}

// NewRedisStoreFromConfig connects to Redis using cfg and returns a store
// over the resulting client. The caller owns the client lifecycle through
// the returned store's Close.
func NewRedisStoreFromConfig(ctx context.Context, cfg redisconn.Config) (*RedisStore, error) {
	client, err := redisconn.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(client), nil
}

// Close releases the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Create stores a new session. SETNX guarantees an existing record is never
// overwritten.
func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	ok, err := s.client.SetNX(ctx, s.key(session.ID), data, ttl).Result()
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if !ok {
		return ErrDuplicateID
	}

	return nil
}

// Get retrieves a session by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	if session.IsExpired() {
		_ = s.client.Del(ctx, s.key(id)).Err()
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Delete removes a session by id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (s *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
