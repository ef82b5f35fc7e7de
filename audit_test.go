package goTravel

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestChannelSinkReceivesLoginEvents(t *testing.T) {
	sink := NewChannelSink(16)

	engine, err := New().WithConfig(testConfig()).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	mustRegister(t, engine, "Alice", "alice@example.com", "pw-one", "")
	mustLogin(t, engine, "alice@example.com", "pw-one")
	_, _ = engine.Login(context.Background(), "alice@example.com", "wrong")

	seen := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for len(seen) < 3 {
		select {
		case event := <-sink.Events():
			seen[event.EventType] = true
		case <-deadline:
			t.Fatalf("timed out waiting for audit events, saw %v", seen)
		}
	}

	for _, want := range []string{auditEventRegisterSuccess, auditEventLoginSuccess, auditEventLoginFailure} {
		if !seen[want] {
			t.Fatalf("missing audit event %s, saw %v", want, seen)
		}
	}
}

func TestAuditEventsNeverCarryTokens(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	engine, err := New().WithConfig(testConfig()).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	mustRegister(t, engine, "Alice", "alice@example.com", "pw-one", "")
	token := mustLogin(t, engine, "alice@example.com", "pw-one")
	if err := engine.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	// Close drains the dispatcher before we inspect the output.
	engine.Close()

	out := buf.String()
	if out == "" {
		t.Fatal("expected audit output")
	}
	if strings.Contains(out, token) {
		t.Fatal("audit output leaked a session token")
	}
	if strings.Contains(out, "pw-one") {
		t.Fatal("audit output leaked a password")
	}
}

func TestJSONWriterSinkEmitsOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: auditEventLoginSuccess,
		Email:     "alice@example.com",
		Success:   true,
	})

	line := strings.TrimSpace(buf.String())
	var decoded AuditEvent
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if decoded.EventType != auditEventLoginSuccess || decoded.Email != "alice@example.com" {
		t.Fatalf("unexpected event: %+v", decoded)
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// An unbuffered sink that never consumes forces drops once the channel fills.
	blocked := make(chan struct{})
	sink := blockingSink{release: blocked}

	cfg := AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}
	d := newAuditDispatcher(cfg, sink)
	defer func() {
		close(blocked)
		d.Close()
	}()

	for i := 0; i < 64; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventLoginSuccess})
	}

	if d.Dropped() == 0 {
		t.Fatal("expected dropped events with a full buffer")
	}
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Emit(context.Context, AuditEvent) {
	<-s.release
}

func TestDisabledAuditProducesNoDispatcher(t *testing.T) {
	cfg := AuditConfig{Enabled: false}
	if d := newAuditDispatcher(cfg, NoOpSink{}); d != nil {
		t.Fatal("expected nil dispatcher when audit is disabled")
	}

	// Engine methods must tolerate a nil dispatcher.
	engineCfg := testConfig()
	engineCfg.Audit.Enabled = false
	engine, err := New().WithConfig(engineCfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	mustRegister(t, engine, "Alice", "alice@example.com", "pw-one", "")
	mustLogin(t, engine, "alice@example.com", "pw-one")
	if engine.AuditDropped() != 0 {
		t.Fatal("expected zero drops with audit disabled")
	}
}
