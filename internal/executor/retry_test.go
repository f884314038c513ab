package executor

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTransient = errors.New("server busy")
	errPermanent = errors.New("validation failed")
)

func transientOnly(err error) bool {
	return errors.Is(err, errTransient)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errTransient
		}
		return "ok", nil
	}

	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: transientOnly}
	value, attempts, err := Retry(context.Background(), policy, op)

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if value != "ok" {
		t.Errorf("expected value ok, got %q", value)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetry_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (string, error) {
		calls++
		return "", errPermanent
	}

	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: transientOnly}
	_, attempts, err := Retry(context.Background(), policy, op)

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
	if !errors.Is(err, errPermanent) {
		t.Errorf("expected wrapped permanent error, got %v", err)
	}
	if got := AttemptCount(err); got != 1 {
		t.Errorf("AttemptCount = %d, want 1", got)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		return 0, errTransient
	}

	policy := Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: transientOnly}
	_, attempts, err := Retry(context.Background(), policy, op)

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}

	var re *RetryError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RetryError, got %T", err)
	}
	if re.Attempts != 3 {
		t.Errorf("RetryError.Attempts = %d, want 3", re.Attempts)
	}
	if !errors.Is(err, errTransient) {
		t.Errorf("expected last error preserved, got %v", err)
	}
	if got := AttemptCount(err); got != 3 {
		t.Errorf("AttemptCount = %d, want 3", got)
	}
}

func TestRetry_NilPredicateRetriesEverything(t *testing.T) {
	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		return 0, errPermanent
	}

	policy := Policy{MaxAttempts: 2, BaseDelay: time.Millisecond}
	_, _, err := Retry(context.Background(), policy, op)

	if calls != 2 {
		t.Errorf("expected 2 calls with nil predicate, got %d", calls)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	op := func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errTransient
	}

	policy := Policy{MaxAttempts: 3, BaseDelay: time.Hour, Retryable: transientOnly}
	_, attempts, err := Retry(ctx, policy, op)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt before cancellation, got %d", attempts)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestAttemptCount(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errPermanent, want: 1},
		{name: "retry error", err: &RetryError{Attempts: 3, Err: errTransient}, want: 3},
		{
			name: "wrapped retry error",
			err:  errors.Join(errors.New("outer"), &RetryError{Attempts: 2, Err: errTransient}),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttemptCount(tt.err); got != tt.want {
				t.Errorf("AttemptCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name string
		base time.Duration
		n    int
		want time.Duration
	}{
		{name: "first retry", base: 100 * time.Millisecond, n: 0, want: 100 * time.Millisecond},
		{name: "second retry", base: 100 * time.Millisecond, n: 1, want: 200 * time.Millisecond},
		{name: "third retry", base: 100 * time.Millisecond, n: 2, want: 400 * time.Millisecond},
		{name: "zero base", base: 0, n: 2, want: 0},
		{name: "negative attempt", base: time.Second, n: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backoffDelay(tt.base, tt.n, false); got != tt.want {
				t.Errorf("backoffDelay = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBackoffDelay_Jitter(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 20; i++ {
		got := backoffDelay(base, 1, true)
		if got < 200*time.Millisecond || got > 300*time.Millisecond {
			t.Fatalf("jittered delay %s outside [200ms, 300ms]", got)
		}
	}
}
