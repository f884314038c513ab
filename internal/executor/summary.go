package executor

import (
	"fmt"
	"strings"
	"time"
)

// Result is the terminal outcome of one item. Exactly one Result is
// produced per submitted item, regardless of internal retries.
type Result[R any] struct {
	// Label identifies the item this result belongs to
	Label string

	// Value is the handler's return value (zero on failure)
	Value R

	// Err is the final error, nil on success
	Err error

	// Attempts is how many handler attempts were consumed before the
	// failure; zero on success and on items never dispatched
	Attempts int

	// Duration is how long the item was active
	Duration time.Duration
}

// Summary aggregates the outcome of one batch.
// Results are in completion order, which depends on scheduling and is
// unrelated to submission order.
type Summary[R any] struct {
	Total     int
	Succeeded int
	Failed    int

	// Peak is the maximum number of simultaneously active handlers
	// observed during the batch
	Peak int

	// Workers is the configured pool bound, kept so utilization can be
	// derived without reaching back to the pool
	Workers int

	Duration time.Duration
	Results  []Result[R]
}

// Snapshot is a point-in-time view of a running batch, safe to poll
// concurrently with execution
type Snapshot struct {
	// Active is the number of handlers currently running
	Active int

	// Completed is the number of items that reached a terminal state
	Completed int

	// Peak is the maximum active count observed so far
	Peak int

	// Total is the batch size
	Total int
}

// Failures returns only the failed results
func (s *Summary[R]) Failures() []Result[R] {
	out := make([]Result[R], 0, s.Failed)
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Successes returns only the successful results
func (s *Summary[R]) Successes() []Result[R] {
	out := make([]Result[R], 0, s.Succeeded)
	for _, r := range s.Results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// HasFailures reports whether any item failed
func (s *Summary[R]) HasFailures() bool {
	return s.Failed > 0
}

// Utilization returns peak concurrency as a percentage of the pool
// bound. It is derived, not stored.
func (s *Summary[R]) Utilization() float64 {
	if s.Workers == 0 {
		return 0
	}
	return float64(s.Peak) / float64(s.Workers) * 100
}

// String returns a one-line human-readable summary
func (s *Summary[R]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Succeeded: %d, ", s.Succeeded))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))
	if s.Total > 0 {
		sb.WriteString(fmt.Sprintf(", Peak: %d/%d", s.Peak, s.Workers))
		sb.WriteString(fmt.Sprintf(", Duration: %s", s.Duration.Round(time.Millisecond)))
	}
	return sb.String()
}
