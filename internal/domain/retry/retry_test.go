package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo_SucceedsAfterRetry(t *testing.T) {
	callCount := 0
	err := Do(context.Background(), func() error {
		callCount++
		if callCount < 2 {
			return errors.New("temporary error")
		}
		return nil
	}, WithMaxAttempts(3), WithInitialDelay(time.Millisecond))

	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if callCount != 2 {
		t.Errorf("expected 2 calls, got %d", callCount)
	}
}

func TestDo_MaxAttemptsExceeded(t *testing.T) {
	callCount := 0
	err := Do(context.Background(), func() error {
		callCount++
		return errors.New("persistent error")
	}, WithMaxAttempts(3), WithInitialDelay(time.Millisecond))

	if !errors.Is(err, ErrMaxAttemptsExceeded) {
		t.Errorf("expected ErrMaxAttemptsExceeded, got %v", err)
	}
	if callCount != 3 {
		t.Errorf("expected 3 calls, got %d", callCount)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	callCount := 0
	err := Do(ctx, func() error {
		callCount++
		return errors.New("error")
	}, WithMaxAttempts(3))

	if !errors.Is(err, ErrContextCanceled) {
		t.Errorf("expected ErrContextCanceled, got %v", err)
	}
	if callCount != 0 {
		t.Errorf("expected 0 calls, got %d", callCount)
	}
}

func TestDo_NonRetryableError(t *testing.T) {
	fatalErr := errors.New("bad credentials")
	callCount := 0
	err := Do(context.Background(), func() error {
		callCount++
		return fatalErr
	}, WithMaxAttempts(3), WithIsRetryable(func(err error) bool {
		return false
	}))

	if !errors.Is(err, fatalErr) {
		t.Errorf("expected the original error, got %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	callCount := 0
	result, err := DoWithResult(context.Background(), func() ([]string, error) {
		callCount++
		if callCount < 2 {
			return nil, errors.New("temporary error")
		}
		return []string{"example.com"}, nil
	}, WithMaxAttempts(3), WithInitialDelay(time.Millisecond))

	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if len(result) != 1 || result[0] != "example.com" {
		t.Errorf("unexpected result %v", result)
	}
}
