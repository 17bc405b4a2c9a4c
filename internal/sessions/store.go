// Package sessions issues and resolves bearer tokens backed by a
// time-expiring key-value store. Expiry is delegated to the store's own
// eviction, so no sweep process exists.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces session keys in the shared cache.
const keyPrefix = "auth_"

// ErrNoSession is returned when a token is absent, expired, or revoked.
var ErrNoSession = errors.New("no active session")

// KV is the slice of the cache the store needs: atomic writes with TTL.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns ErrNoSession when the key is missing or expired.
	Get(ctx context.Context, key string) (string, error)
	// Del reports whether the key existed.
	Del(ctx context.Context, key string) (bool, error)
}

type Store struct {
	kv  KV
	ttl time.Duration
}

func NewStore(kv KV, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

// Create issues an opaque random token mapped to userID for the configured
// TTL and returns it.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.kv.Set(ctx, keyPrefix+token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// UserID resolves a token to the owning user id.
func (s *Store) UserID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoSession
	}
	return s.kv.Get(ctx, keyPrefix+token)
}

// Destroy revokes a token. Revoking an unknown or already-revoked token
// reports ErrNoSession rather than failing hard.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSession
	}
	deleted, err := s.kv.Del(ctx, keyPrefix+token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoSession
	}
	return nil
}

// redisKV adapts a redis client to the KV port.
type redisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	return val, err
}

func (r *redisKV) Del(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, key).Result()
	return n > 0, err
}
