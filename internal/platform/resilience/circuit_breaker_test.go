package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(2, time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker rejected request: %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenProbeClosesOnSuccess(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	// A second caller during the probe is rejected.
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected concurrent probe rejection, got %v", err)
	}

	b.RecordSuccess()
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", got)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker rejected request: %v", err)
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}
