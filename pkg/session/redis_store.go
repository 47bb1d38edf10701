package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash key used when none is configured.
const DefaultRedisKey = "giftchain:session"

const (
	redisFieldToken   = "token"
	redisFieldAddress = "walletAddress"
)

// RedisStore implements Store on a Redis hash, for deployments (kiosk
// terminals, shared signage hosts) that already carry a Redis handle.
// Both credentials live in one hash so a single HSET keeps them atomic.
type RedisStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisStore creates a Redis-backed session store.
// An empty key falls back to DefaultRedisKey.
func NewRedisStore(client redis.Cmdable, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Get retrieves the current session.
func (r *RedisStore) Get(ctx context.Context) (Session, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Session{}, errors.Join(ErrStoreUnavailable, err)
	}

	sess := Session{
		Token:         fields[redisFieldToken],
		WalletAddress: fields[redisFieldAddress],
	}
	if sess.IsZero() {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Set stores both credentials with a single HSET.
func (r *RedisStore) Set(ctx context.Context, token, walletAddress string) error {
	if token == "" || walletAddress == "" {
		return ErrInvalidSession
	}

	if err := r.client.HSet(ctx, r.key,
		redisFieldToken, token,
		redisFieldAddress, walletAddress,
	).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Clear removes both credentials.
func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
