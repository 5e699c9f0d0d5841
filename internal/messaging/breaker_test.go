package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func newTestBreaker(next *flakyPublisher, maxFailures int) (*CircuitBreaker, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(next, maxFailures, time.Minute, nil)
	cb.now = func() time.Time { return now }
	return cb, &now
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cause := errors.New("broker down")
	next := &flakyPublisher{errs: []error{cause, cause}}
	cb, _ := newTestBreaker(next, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := cb.Publish(ctx, testEvent()); !errors.Is(err, cause) {
			t.Fatalf("attempt %d: expected cause, got %v", i, err)
		}
	}
	if cb.State() != CircuitOpen {
		t.Fatalf("expected open state, got %s", cb.State())
	}
	if err := cb.Publish(ctx, testEvent()); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected broker to be skipped while open, got %d calls", next.calls)
	}
	if err := cb.Check(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected health check to fail, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cause := errors.New("broker down")
	next := &flakyPublisher{errs: []error{cause}}
	cb, now := newTestBreaker(next, 1)
	ctx := context.Background()

	_ = cb.Publish(ctx, testEvent())
	if cb.State() != CircuitOpen {
		t.Fatalf("expected open state, got %s", cb.State())
	}

	*now = now.Add(2 * time.Minute)
	if cb.State() != CircuitHalfOpen {
		t.Fatalf("expected half-open state, got %s", cb.State())
	}
	if err := cb.Publish(ctx, testEvent()); err != nil {
		t.Fatalf("expected probe to succeed, got %v", err)
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected closed state, got %s", cb.State())
	}
	if err := cb.Check(); err != nil {
		t.Fatalf("expected healthy breaker, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cause := errors.New("broker down")
	next := &flakyPublisher{errs: []error{cause, cause}}
	cb, now := newTestBreaker(next, 1)
	ctx := context.Background()

	_ = cb.Publish(ctx, testEvent())
	*now = now.Add(2 * time.Minute)

	if err := cb.Publish(ctx, testEvent()); !errors.Is(err, cause) {
		t.Fatalf("expected probe failure, got %v", err)
	}
	if cb.State() != CircuitOpen {
		t.Fatalf("expected reopened breaker, got %s", cb.State())
	}
}

func TestCircuitState_String(t *testing.T) {
	tests := map[CircuitState]string{
		CircuitClosed:    "closed",
		CircuitOpen:      "open",
		CircuitHalfOpen:  "half-open",
		CircuitState(42): "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("%d: expected %q, got %q", state, want, got)
		}
	}
}

func TestCircuitBreaker_IgnoresCallerCancellation(t *testing.T) {
	errs := []error{
		fmt.Errorf("publish: %w", context.Canceled),
		fmt.Errorf("publish: %w", context.DeadlineExceeded),
		context.Canceled,
	}
	next := &flakyPublisher{errs: errs}
	cb, _ := newTestBreaker(next, 1)

	for i := range errs {
		if err := cb.Publish(context.Background(), testEvent()); err == nil {
			t.Fatalf("attempt %d: expected cancellation error", i)
		}
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected closed breaker after cancellations, got %s", cb.State())
	}
	if err := cb.Check(); err != nil {
		t.Fatalf("expected healthy breaker, got %v", err)
	}
}
