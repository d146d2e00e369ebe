package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_DefaultsAppliedForInvalidConfig(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{})

	defaults := DefaultCircuitBreakerConfig()
	if b.failureThreshold != defaults.FailureThreshold {
		t.Fatalf("unexpected failure threshold: got=%d want=%d", b.failureThreshold, defaults.FailureThreshold)
	}
	if b.openTimeout != defaults.OpenTimeout {
		t.Fatalf("unexpected open timeout: got=%s want=%s", b.openTimeout, defaults.OpenTimeout)
	}
	if b.halfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("unexpected half-open max req: got=%d want=%d", b.halfOpenMaxReq, defaults.HalfOpenMaxReq)
	}
}
