package output

import (
	"errors"
	"testing"
	"time"

	"github.com/aryankumar/panosctl/internal/executor"
)

func sampleSummary() *executor.Summary[string] {
	return &executor.Summary[string]{
		Total:     3,
		Succeeded: 2,
		Failed:    1,
		Peak:      2,
		Workers:   4,
		Duration:  120 * time.Millisecond,
		Results: []executor.Result[string]{
			{Label: "web-1", Value: "command succeeded", Duration: 40 * time.Millisecond},
			{Label: "web-2", Err: errors.New("object already in use"), Attempts: 3, Duration: 90 * time.Millisecond},
			{Label: "api", Value: "command succeeded", Duration: 35 * time.Millisecond},
		},
	}
}

func TestReport(t *testing.T) {
	report := Report(sampleSummary(), func(v string) string { return v })

	if report.Total != 3 || report.Succeeded != 2 || report.Failed != 1 {
		t.Errorf("unexpected counts: %+v", report)
	}
	if report.Peak != 2 || report.Workers != 4 {
		t.Errorf("unexpected concurrency fields: %+v", report)
	}
	if report.Utilization != 50 {
		t.Errorf("utilization = %v, want 50", report.Utilization)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Rows))
	}

	success := report.Rows[0]
	if success.Name != "web-1" || success.Err != nil || success.Detail != "command succeeded" {
		t.Errorf("unexpected success row %+v", success)
	}

	failure := report.Rows[1]
	if failure.Err == nil || failure.Attempts != 3 {
		t.Errorf("unexpected failure row %+v", failure)
	}
	if failure.Detail != "object already in use" {
		t.Errorf("failure detail = %q", failure.Detail)
	}
}

func TestReportNilDetail(t *testing.T) {
	report := Report(sampleSummary(), nil)

	if report.Rows[0].Detail != "" {
		t.Errorf("expected empty detail without renderer, got %q", report.Rows[0].Detail)
	}
	// Failures still carry the error text.
	if report.Rows[1].Detail == "" {
		t.Error("failure rows should carry the error text")
	}
}
