package password

import (
	"strings"
	"testing"
)

func testHasher(t *testing.T) *Argon2 {
	t.Helper()

	hasher, err := NewArgon2(Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	})
	if err != nil {
		t.Fatalf("NewArgon2 failed: %v", err)
	}
	return hasher
}

func TestHashAndVerify(t *testing.T) {
	hasher := testHasher(t)

	encoded, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}
	if strings.Contains(encoded, "password123") {
		t.Fatal("encoded hash leaks the plaintext")
	}

	ok, err := hasher.Verify("password123", encoded)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("correct password did not verify")
	}

	ok, err = hasher.Verify("password124", encoded)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := testHasher(t)

	first, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	hasher := testHasher(t)

	if _, err := hasher.Hash(""); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	hasher := testHasher(t)

	encoded, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	cases := map[string]string{
		"empty":             "",
		"not PHC":           "plainhash",
		"wrong algorithm":   strings.Replace(encoded, "argon2id", "argon2i", 1),
		"wrong version":     strings.Replace(encoded, "v=19", "v=18", 1),
		"missing sections":  "$argon2id$v=19$m=8192,t=1,p=1",
		"bad parameter":     strings.Replace(encoded, "m=8192", "m=zero", 1),
		"unknown parameter": strings.Replace(encoded, "p=1", "p=1,x=2", 1),
		"corrupt salt":      "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA==",
	}

	for name, bad := range cases {
		if _, err := hasher.Verify("password123", bad); err == nil {
			t.Fatalf("%s: expected parse error for %q", name, bad)
		}
	}
}

func TestNewArgon2RejectsWeakConfig(t *testing.T) {
	base := Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	}

	cases := map[string]func(*Config){
		"low memory":     func(c *Config) { c.Memory = 1024 },
		"zero time":      func(c *Config) { c.Time = 0 },
		"no parallelism": func(c *Config) { c.Parallelism = 0 },
		"short salt":     func(c *Config) { c.SaltLength = 4 },
		"short key":      func(c *Config) { c.KeyLength = 8 },
	}

	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if _, err := NewArgon2(cfg); err == nil {
			t.Fatalf("%s: expected config rejection", name)
		}
	}
}
