package retry

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestDo_ReturnsFirstSuccess(t *testing.T) {
	calls := 0
	out, err := Do(context.Background(), 3, zap.NewNop(), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if out != "ok" {
		t.Fatalf("expected ok, got %q", out)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	out, err := Do(context.Background(), 3, zap.NewNop(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if out != 42 {
		t.Fatalf("expected 42, got %d", out)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDo_ExhaustedWrapsLastError(t *testing.T) {
	lastErr := errors.New("boom 3")
	calls := 0
	errs := []error{errors.New("boom 1"), errors.New("boom 2"), lastErr}

	_, err := Do(context.Background(), 3, zap.NewNop(), func(ctx context.Context) (int, error) {
		calls++
		return 0, errs[calls-1]
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}

	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *retry.Error, got %T", err)
	}
	if rerr.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", rerr.Attempts)
	}
	if !errors.Is(err, lastErr) {
		t.Fatalf("expected last error in chain, got %v", err)
	}
}

func TestDo_ZeroAttemptsUsesDefault(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), 0, nil, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("always")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != DefaultAttempts {
		t.Fatalf("expected %d calls, got %d", DefaultAttempts, calls)
	}
}

func TestDo_ContextCanceledStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, 3, zap.NewNop(), func(ctx context.Context) (int, error) {
		calls++
		cancel() // se cancela durante el primer intento
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
