package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Generate("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", userID)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	if _, err := manager.Parse("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Hour)
	token, err := manager.Generate("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := manager.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
