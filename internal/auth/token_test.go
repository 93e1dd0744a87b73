package auth

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("test-secret", "sess-123", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	sid, err := ParseSessionToken("test-secret", tok)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if sid != "sess-123" {
		t.Errorf("session id = %q, want sess-123", sid)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret-a", "sess-123", time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("secret-b", tok); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	tok, err := NewSessionToken("test-secret", "sess-123", -time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("test-secret", tok); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseSessionToken("test-secret", raw); err == nil {
			t.Errorf("garbage token %q was accepted", raw)
		}
	}
}
