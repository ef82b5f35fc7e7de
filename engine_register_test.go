package goTravel

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterSuccess(t *testing.T) {
	engine := newTestEngine(t)

	acct, err := engine.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw-one",
		Role:     "Admin",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if acct.Name != "Alice" || acct.Email != "alice@example.com" || acct.Role != RoleAdmin {
		t.Fatalf("unexpected account: %+v", acct)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	engine := newTestEngine(t)
	mustRegister(t, engine, "Alice", "alice@example.com", "pw-one", "")

	user, ok := engine.credentials.Lookup("alice@example.com")
	if !ok {
		t.Fatal("expected stored record")
	}
	if user.PasswordHash == "" || user.PasswordHash == "pw-one" {
		t.Fatal("expected hashed password in store")
	}
	verified, err := engine.passwordHash.Verify("pw-one", user.PasswordHash)
	if err != nil || !verified {
		t.Fatalf("expected stored hash to verify, ok=%v err=%v", verified, err)
	}
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	engine := newTestEngine(t)

	cases := []RegisterRequest{
		{Email: "a@b.c", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@b.c"},
	}
	for _, req := range cases {
		if _, err := engine.Register(context.Background(), req); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	engine := newTestEngine(t)
	mustRegister(t, engine, "Alice", "alice@example.com", "pw-one", "")

	_, err := engine.Register(context.Background(), RegisterRequest{
		Name:     "Other",
		Email:    "alice@example.com",
		Password: "different",
	})
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	// The original record must be untouched by the rejected attempt.
	user, ok := engine.credentials.Lookup("alice@example.com")
	if !ok || user.Name != "Alice" {
		t.Fatalf("original record modified: %+v ok=%v", user, ok)
	}
}

func TestRegisterUnknownRoleRejected(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw-one",
		Role:     "SuperAdmin",
	})
	if !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("expected ErrRoleInvalid, got %v", err)
	}
	if _, ok := engine.credentials.Lookup("alice@example.com"); ok {
		t.Fatal("rejected registration must not create a record")
	}
}

func TestRegisterDefaultRoleApplied(t *testing.T) {
	engine := newTestEngine(t)

	acct, err := engine.Register(context.Background(), RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "pw-one",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if acct.Role != RoleUser {
		t.Fatalf("expected default role User, got %s", acct.Role)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(""); err != nil || r != RoleUser {
		t.Fatalf("empty role: got %s, %v", r, err)
	}
	if r, err := ParseRole("Admin"); err != nil || r != RoleAdmin {
		t.Fatalf("Admin role: got %s, %v", r, err)
	}
	for _, bad := range []string{"admin", "user", "ADMIN", "Moderator"} {
		if _, err := ParseRole(bad); !errors.Is(err, ErrRoleInvalid) {
			t.Fatalf("expected ErrRoleInvalid for %q, got %v", bad, err)
		}
	}
}
