package output

import (
	"time"

	"github.com/aryankumar/panosctl/internal/executor"
)

// BatchRow is one object's outcome in a bulk operation
type BatchRow struct {
	// Name is the object name the row describes
	Name string

	// Err is the final error for the object, nil on success
	Err error

	// Attempts is how many attempts were consumed before failure; zero
	// on success
	Attempts int

	// Duration is how long the object was being processed
	Duration time.Duration

	// Detail carries the device's response message or other
	// per-object information, shown in wide mode
	Detail string
}

// BatchReport is the formatter-facing view of a bulk operation
type BatchReport struct {
	Rows      []BatchRow
	Total     int
	Succeeded int
	Failed    int

	// Peak and Workers describe observed concurrency against the
	// configured bound
	Peak    int
	Workers int

	// Utilization is Peak as a percentage of Workers
	Utilization float64

	Duration time.Duration
}

// Report converts an execution summary into a BatchReport.
// The detail function renders a handler's return value for display and
// may be nil.
func Report[R any](s *executor.Summary[R], detail func(R) string) *BatchReport {
	rows := make([]BatchRow, 0, len(s.Results))
	for _, r := range s.Results {
		row := BatchRow{
			Name:     r.Label,
			Err:      r.Err,
			Attempts: r.Attempts,
			Duration: r.Duration,
		}
		if r.Err == nil && detail != nil {
			row.Detail = detail(r.Value)
		}
		if r.Err != nil {
			row.Detail = r.Err.Error()
		}
		rows = append(rows, row)
	}

	return &BatchReport{
		Rows:        rows,
		Total:       s.Total,
		Succeeded:   s.Succeeded,
		Failed:      s.Failed,
		Peak:        s.Peak,
		Workers:     s.Workers,
		Utilization: s.Utilization(),
		Duration:    s.Duration,
	}
}
