package executor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Policy controls retry behavior for a single remote operation
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int

	// BaseDelay is the delay before the first retry; subsequent retries
	// double it: BaseDelay * 2^n
	BaseDelay time.Duration

	// Jitter adds up to 50% random slack to each delay to avoid
	// synchronized retries across workers
	Jitter bool

	// Retryable classifies errors: only errors for which it returns
	// true consume further attempts. A nil predicate retries every
	// error.
	Retryable func(error) bool
}

// DefaultPolicy returns the retry policy used for remote calls when the
// configuration does not override it
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		Jitter:      true,
	}
}

// RetryError tags a failed operation with the number of attempts that
// were consumed before giving up
type RetryError struct {
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *RetryError) Error() string {
	return fmt.Sprintf("after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the last observed error
func (e *RetryError) Unwrap() error {
	return e.Err
}

// AttemptCount extracts the attempt count from an error chain.
// Errors that never went through Retry count as a single attempt.
func AttemptCount(err error) int {
	if err == nil {
		return 0
	}
	var re *RetryError
	if errors.As(err, &re) {
		return re.Attempts
	}
	return 1
}

// Retry runs op up to policy.MaxAttempts times with exponential backoff
// between attempts. A non-retryable error fails immediately without
// consuming further attempts. The attempt count is returned alongside
// the value; on failure the error is a *RetryError wrapping the last
// observed error.
func Retry[R any](ctx context.Context, policy Policy, op func(context.Context) (R, error)) (R, int, error) {
	var zero R

	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoffDelay(policy.BaseDelay, attempt-1, policy.Jitter)):
			case <-ctx.Done():
				return zero, attempt, &RetryError{Attempts: attempt, Err: ctx.Err()}
			}
		}

		value, err := op(ctx)
		if err == nil {
			return value, attempt + 1, nil
		}
		lastErr = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			return zero, attempt + 1, &RetryError{Attempts: attempt + 1, Err: err}
		}
	}

	return zero, maxAttempts, &RetryError{Attempts: maxAttempts, Err: lastErr}
}

// backoffDelay computes the exponential backoff delay for a retry.
// n is 0-indexed: base, 2*base, 4*base, ...
func backoffDelay(base time.Duration, n int, jitter bool) time.Duration {
	if base <= 0 || n < 0 {
		return 0
	}
	d := time.Duration(float64(base) * math.Pow(2, float64(n)))
	if jitter {
		d += time.Duration(rand.Int63n(int64(d/2 + 1)))
	}
	return d
}
