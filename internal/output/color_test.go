package output

import (
	"bytes"
	"testing"
)

func TestNewColorSchemeNonTTY(t *testing.T) {
	// bytes.Buffer is never a TTY, so colors must be disabled even
	// without the no-color option.
	cs := NewColorScheme(&bytes.Buffer{}, false)
	if !cs.Disabled {
		t.Error("expected colors disabled for non-TTY writer")
	}

	// No-op color functions must pass text through unchanged.
	if got := cs.Success("ok"); got != "ok" {
		t.Errorf("Success(%q) = %q", "ok", got)
	}
	if got := cs.Error("boom %d", 7); got != "boom 7" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewColorSchemeNoColorFlag(t *testing.T) {
	cs := NewColorScheme(&bytes.Buffer{}, true)
	if !cs.Disabled {
		t.Error("expected colors disabled with noColor")
	}
}

func TestStatusColor(t *testing.T) {
	cs := NewColorScheme(&bytes.Buffer{}, true)

	success := cs.StatusColor(false)
	failure := cs.StatusColor(true)

	if success("x") != "x" || failure("x") != "x" {
		t.Error("disabled scheme should pass text through")
	}
}
