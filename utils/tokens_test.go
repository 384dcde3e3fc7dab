package utils

import (
	"testing"
	"time"
)

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("empty signing key must be rejected")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.NewJWT(42, time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	userID, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestParseRejectsForeignKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewJWT(1, time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Fatal("token signed with another key must not parse")
	}
}

func TestNewRefreshTokenIsRandom(t *testing.T) {
	m, _ := NewManager("test-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatal("two refresh tokens must differ")
	}
}
