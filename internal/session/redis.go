package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// RedisStore keeps sessions in Redis under a "session:" prefix.  Every
// read refreshes the TTL so an active user stays logged in; an idle
// session expires server-side the same way browser session storage is
// dropped when the tab closes.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing Redis client.  The client must be
// non-nil; callers that got nil from config.NewRedisClient should fall
// back to NewMemoryStore instead.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttlOrDefault(ttl)}
}

func sessionKey(id string) string { return "session:" + id }

// Create stores a fresh session holding the credential and returns its ID.
func (s *RedisStore) Create(ctx context.Context, cred model.Credential) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := s.write(ctx, id, Data{Credential: cred}); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads a session and slides its expiry.
func (s *RedisStore) Get(ctx context.Context, id string) (Data, error) {
	bs, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}
	var d Data
	if err := json.Unmarshal(bs, &d); err != nil {
		// Corrupt payload is indistinguishable from no session.
		return Data{}, ErrNotFound
	}
	_ = s.rdb.Expire(ctx, sessionKey(id), s.ttl).Err()
	return d, nil
}

// Delete removes the session.  Deleting an unknown ID is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

// PushFlash appends a flash notice to the session's queue.
func (s *RedisStore) PushFlash(ctx context.Context, id string, f Flash) error {
	d, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	d.Flashes = append(d.Flashes, f)
	return s.write(ctx, id, d)
}

// PopFlashes returns all queued notices and clears the queue.
func (s *RedisStore) PopFlashes(ctx context.Context, id string) ([]Flash, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := d.Flashes
	if len(out) == 0 {
		return nil, nil
	}
	d.Flashes = nil
	if err := s.write(ctx, id, d); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisStore) write(ctx context.Context, id string, d Data) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(id), bs, s.ttl).Err()
}
