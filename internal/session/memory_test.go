package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicore/admin-dashboard/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	cred := model.NewCredential("alice", "secret")
	id, err := s.Create(ctx, cred)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty session id")
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if d.Credential != cred {
		t.Errorf("credential = %+v, want %+v", d.Credential, cred)
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	id, err := s.Create(ctx, model.NewCredential("alice", "secret"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after Delete: err = %v, want ErrNotFound", err)
	}
	// Deleting again must not error.
	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	id, err := s.Create(ctx, model.NewCredential("alice", "secret"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after expiry: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreFlashes(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	id, err := s.Create(ctx, model.NewCredential("alice", "secret"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.PushFlash(ctx, id, Flash{Kind: "success", Message: "first"}); err != nil {
		t.Fatalf("PushFlash: %v", err)
	}
	if err := s.PushFlash(ctx, id, Flash{Kind: "error", Message: "second"}); err != nil {
		t.Fatalf("PushFlash: %v", err)
	}

	got, err := s.PopFlashes(ctx, id)
	if err != nil {
		t.Fatalf("PopFlashes: %v", err)
	}
	if len(got) != 2 || got[0].Message != "first" || got[1].Message != "second" {
		t.Fatalf("PopFlashes = %+v, want [first second] in order", got)
	}

	// The queue drains on pop.
	got, err = s.PopFlashes(ctx, id)
	if err != nil {
		t.Fatalf("second PopFlashes: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("second PopFlashes returned %d flashes, want 0", len(got))
	}
}

func TestMemoryStoreFlashUnknownSession(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	if err := s.PushFlash(context.Background(), "nope", Flash{Kind: "success", Message: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("PushFlash unknown id: err = %v, want ErrNotFound", err)
	}
}
