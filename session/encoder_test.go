package session

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeIdentity(t *testing.T) {
	ident := Identity{Email: "alice@example.com", Role: "Admin"}

	blob, err := Encode(ident)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != ident {
		t.Fatalf("roundtrip mismatch: %+v != %+v", decoded, ident)
	}
}

func TestEncodeRejectsOversizedFields(t *testing.T) {
	long := strings.Repeat("a", 256)

	if _, err := Encode(Identity{Email: long, Role: "User"}); err == nil {
		t.Fatal("expected error for oversized email")
	}
	if _, err := Encode(Identity{Email: "a@b.c", Role: long}); err == nil {
		t.Fatal("expected error for oversized role")
	}
}

func TestDecodeRejectsCorruptBlobs(t *testing.T) {
	valid, err := Encode(Identity{Email: "alice@example.com", Role: "User"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	cases := map[string][]byte{
		"empty":             {},
		"too short":         {identityFormatVersion, 5},
		"bad version":       append([]byte{0xFF}, valid[1:]...),
		"truncated email":   valid[:4],
		"trailing garbage":  append(append([]byte{}, valid...), 0x00),
		"empty email field": {identityFormatVersion, 0, 4, 'U', 's', 'e', 'r'},
	}

	for name, blob := range cases {
		if _, err := Decode(blob); !errors.Is(err, ErrCorruptIdentity) {
			t.Fatalf("%s: expected ErrCorruptIdentity, got %v", name, err)
		}
	}
}
