package hubstaff

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithRetry_SucceedsWithoutRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	err := withRetry(context.Background(), time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestWithRetry_ReturnsOriginalErrorUnwrapped(t *testing.T) {
	t.Parallel()

	original := &TransportError{Method: "GET", Path: "/v454/institution", Status: 503, Err: errors.New("try later")}
	calls := 0
	err := withRetry(context.Background(), time.Millisecond, func() error {
		calls++
		return original
	})
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if err != original {
		t.Fatalf("expected the original error unchanged, got %v", err)
	}
}

func TestWithRetry_ValidationAbortsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	err := withRetry(context.Background(), time.Millisecond, func() error {
		calls++
		return &ValidationError{Field: "users[0].email", Err: errFieldMissing}
	})
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestWithRetry_AuthRejectionAbortsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	err := withRetry(context.Background(), time.Millisecond, func() error {
		calls++
		return &AuthError{Status: 401, Err: errors.New("bad credentials")}
	})
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T", err)
	}
}

func TestWithRetry_StopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := withRetry(ctx, time.Hour, func() error {
		calls++
		cancel()
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected no further attempts after cancellation, got %d", calls)
	}
}
