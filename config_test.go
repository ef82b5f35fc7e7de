package goTravel

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejectsEmptyRedisPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Session.RedisPrefix = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty redis prefix")
	}
}

func TestConfigValidateRejectsUnknownDefaultRole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Account.DefaultRole = "Moderator"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown default role")
	}
}

func TestBuilderRejectsReuse(t *testing.T) {
	b := New().WithConfig(testConfig())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected error on second Build")
	}
}

func TestBuilderRejectsInvalidPasswordConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Password.SaltLength = 4
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected error for weak salt length")
	}
}
