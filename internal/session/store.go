// Package session implements the server-side session store that holds
// each logged-in user's encoded Basic credential for the lifetime of
// the browser session.  Sessions are keyed by an opaque random ID; the
// ID travels in a signed cookie while the credential itself never
// leaves the server.  A session also queues flash notices that the
// next rendered page displays and discards.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ErrNotFound is returned when a session ID does not resolve to a
// live session: it was never created, expired, or was cleared by
// logout.  Handlers translate this into a redirect to the login page;
// it is never surfaced as an in-page error.
var ErrNotFound = errors.New("session not found")

// Flash is a transient notice queued for the next page render.  Kind
// is "success" or "error" and selects the notification style.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Data is everything kept for one session: the credential attached to
// every backend request and any flash notices not yet shown.
type Data struct {
	Credential model.Credential `json:"credential"`
	Flashes    []Flash          `json:"flashes,omitempty"`
}

// Store persists sessions for the configured TTL.  Create returns the
// new session's ID.  Get returns ErrNotFound for unknown or expired
// IDs so callers can distinguish "not logged in" from a store outage.
type Store interface {
	Create(ctx context.Context, cred model.Credential) (string, error)
	Get(ctx context.Context, id string) (Data, error)
	Delete(ctx context.Context, id string) error
	PushFlash(ctx context.Context, id string, f Flash) error
	PopFlashes(ctx context.Context, id string) ([]Flash, error)
}

// newSessionID produces a 32-byte random hex identifier.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ttlOrDefault guards against a zero TTL, which some backends would
// interpret as "never expire".
func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 30 * time.Minute
	}
	return ttl
}
