package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis as JSON, one key per session.
// Redis handles expiry; the key TTL follows Session.ExpiresAt.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces session keys as "{prefix}:{id}". Default: "session".
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *RedisStore) { r.prefix = prefix }
}

// NewRedisStore creates a store on an open client. The client's lifecycle is
// owned by the caller.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	r := &RedisStore{client: client, prefix: "session"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrUnmarshal, err)
	}
	if s.IsExpired() {
		return nil, ErrNotFound
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return r.Delete(ctx, s.ID)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return r.client.Set(ctx, r.key(s.ID), data, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

// Close is a no-op; close the client with redis.Shutdown.
func (r *RedisStore) Close() error { return nil }

func (r *RedisStore) key(id string) string {
	if r.prefix == "" {
		return id
	}
	return r.prefix + ":" + id
}

var _ Store = (*RedisStore)(nil)
