package session

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreIssueAndValidate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "Admin"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	ident, err := store.Validate(ctx, token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ident.Email != "alice@example.com" || ident.Role != "Admin" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestMemoryStoreSingleSessionPerEmail(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "User"})
	if err != nil {
		t.Fatalf("first Issue failed: %v", err)
	}

	if _, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "User"}); !errors.Is(err, ErrActiveSession) {
		t.Fatalf("expected ErrActiveSession, got %v", err)
	}

	// The rejected attempt must leave the live session intact.
	if _, err := store.Validate(ctx, first); err != nil {
		t.Fatalf("live session broken: %v", err)
	}
	if got := store.ActiveCount(); got != 1 {
		t.Fatalf("expected 1 active session, got %d", got)
	}
}

func TestMemoryStoreDistinctEmailsCoexist(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Issue(ctx, Identity{Email: "a@example.com", Role: "User"})
	if err != nil {
		t.Fatalf("Issue a failed: %v", err)
	}
	b, err := store.Issue(ctx, Identity{Email: "b@example.com", Role: "Admin"})
	if err != nil {
		t.Fatalf("Issue b failed: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct tokens")
	}
	if got := store.ActiveCount(); got != 2 {
		t.Fatalf("expected 2 active sessions, got %d", got)
	}
}

func TestMemoryStoreRevoke(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "User"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if _, err := store.Validate(ctx, token); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound after revoke, got %v", err)
	}
	if err := store.Revoke(ctx, token); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound on double revoke, got %v", err)
	}

	// Revocation must free the email for a fresh session.
	if _, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "User"}); err != nil {
		t.Fatalf("Issue after revoke failed: %v", err)
	}
}

func TestMemoryStoreRevokeAllFor(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, Identity{Email: "alice@example.com", Role: "User"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if err := store.RevokeAllFor(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RevokeAllFor failed: %v", err)
	}
	if _, err := store.Validate(ctx, token); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	// Unknown emails are a no-op, not an error.
	if err := store.RevokeAllFor(ctx, "nobody@example.com"); err != nil {
		t.Fatalf("RevokeAllFor for unknown email failed: %v", err)
	}
}

func TestNewTokenShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		token, err := NewToken()
		if err != nil {
			t.Fatalf("NewToken failed: %v", err)
		}
		if err := CheckToken(token); err != nil {
			t.Fatalf("generated token fails CheckToken: %v", err)
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}

	for _, bad := range []string{"", "short", "not base64 ***", "admin-token"} {
		if err := CheckToken(bad); err == nil {
			t.Fatalf("expected CheckToken to reject %q", bad)
		}
	}
}
