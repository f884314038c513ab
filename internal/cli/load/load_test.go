package load

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aryankumar/panosctl/internal/executor"
	"github.com/aryankumar/panosctl/internal/util"
)

func TestBatchErrorAggregatesFailures(t *testing.T) {
	summary := &executor.Summary[string]{
		Results: []executor.Result[string]{
			{Label: "web-1", Value: "set"},
			{Label: "web-2", Err: fmt.Errorf("device busy")},
			{Label: "web-3", Err: fmt.Errorf("malformed value")},
		},
	}

	err := batchError(summary)
	if err == nil {
		t.Fatal("expected an error for a summary with failures")
	}

	var merr *util.MultiError
	if !errors.As(err, &merr) {
		t.Fatalf("expected a MultiError, got %T: %v", err, err)
	}
	if len(merr.Errors) != 2 {
		t.Fatalf("expected 2 aggregated errors, got %d", len(merr.Errors))
	}

	var oerr *util.ObjectError
	if !errors.As(merr.Errors[0], &oerr) || oerr.Name != "web-2" {
		t.Errorf("first aggregated error should name web-2, got %v", merr.Errors[0])
	}
	if !strings.Contains(err.Error(), "web-3") {
		t.Errorf("message %q should name every failed object", err)
	}
}

func TestBatchErrorNilWhenAllSucceed(t *testing.T) {
	summary := &executor.Summary[string]{
		Results: []executor.Result[string]{
			{Label: "web-1", Value: "set"},
		},
	}

	if err := batchError(summary); err != nil {
		t.Errorf("expected nil for an all-success summary, got %v", err)
	}
}
