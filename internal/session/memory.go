package session

import (
	"context"
	"sync"
	"time"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// MemoryStore is an in-process session store used when Redis is
// unreachable at startup and throughout the tests.  Sessions live in a
// map guarded by a mutex and expire lazily on access.  Restarting the
// process logs everyone out, which matches the session-scoped
// semantics of the credential anyway.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memEntry
}

type memEntry struct {
	data    Data
	expires time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttlOrDefault(ttl), m: make(map[string]memEntry)}
}

// Create stores a fresh session holding the credential and returns its ID.
func (s *MemoryStore) Create(_ context.Context, cred model.Credential) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = memEntry{data: Data{Credential: cred}, expires: time.Now().Add(s.ttl)}
	return id, nil
}

// Get loads a session and slides its expiry.
func (s *MemoryStore) Get(_ context.Context, id string) (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.m, id)
		return Data{}, ErrNotFound
	}
	e.expires = time.Now().Add(s.ttl)
	s.m[id] = e
	return e.data, nil
}

// Delete removes the session.  Deleting an unknown ID is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

// PushFlash appends a flash notice to the session's queue.
func (s *MemoryStore) PushFlash(_ context.Context, id string, f Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.m, id)
		return ErrNotFound
	}
	e.data.Flashes = append(e.data.Flashes, f)
	s.m[id] = e
	return nil
}

// PopFlashes returns all queued notices and clears the queue.
func (s *MemoryStore) PopFlashes(_ context.Context, id string) ([]Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.m, id)
		return nil, ErrNotFound
	}
	out := e.data.Flashes
	e.data.Flashes = nil
	s.m[id] = e
	return out, nil
}
