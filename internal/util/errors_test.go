package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestObjectError(t *testing.T) {
	base := errors.New("device busy")
	err := WrapObjectError("web-1", base)

	if err == nil {
		t.Fatal("expected wrapped error")
	}
	if !strings.Contains(err.Error(), "web-1") {
		t.Errorf("error %q should name the object", err)
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to the base error")
	}

	if WrapObjectError("web-1", nil) != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestMultiError(t *testing.T) {
	m := &MultiError{}
	if m.ErrorOrNil() != nil {
		t.Error("empty MultiError should report nil")
	}

	m.Add(nil)
	if m.ErrorOrNil() != nil {
		t.Error("adding nil should not count as an error")
	}

	first := errors.New("first")
	m.Add(first)
	if m.ErrorOrNil() == nil {
		t.Fatal("expected error after adding one")
	}
	if m.Error() != "first" {
		t.Errorf("single-error message = %q", m.Error())
	}

	m.Add(errors.New("second"))
	msg := m.Error()
	if !strings.Contains(msg, "2 errors occurred") {
		t.Errorf("multi-error message = %q", msg)
	}
	if !errors.Is(m, first) {
		t.Error("errors.Is should see aggregated errors")
	}
}

func TestMultiErrorTruncatesLongLists(t *testing.T) {
	m := &MultiError{}
	for i := 0; i < 15; i++ {
		m.Add(fmt.Errorf("error %d", i))
	}

	msg := m.Error()
	if !strings.Contains(msg, "and 5 more errors") {
		t.Errorf("expected truncation notice in %q", msg)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("ip_netmask", "10.0.0.300/32", "not a valid address")
	msg := err.Error()
	for _, want := range []string{"ip_netmask", "10.0.0.300/32", "not a valid address"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}

	noValue := NewValidationError("name", nil, "must not be empty")
	if strings.Contains(noValue.Error(), "value:") {
		t.Errorf("message %q should omit the value clause", noValue.Error())
	}
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("boom")
	err := WrapErrorf(base, "loading %s", "file.yaml")

	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap")
	}
	if !strings.Contains(err.Error(), "loading file.yaml") {
		t.Errorf("message = %q", err.Error())
	}

	if WrapErrorf(nil, "anything") != nil {
		t.Error("wrapping nil should return nil")
	}
}
