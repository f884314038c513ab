package output

import (
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{"table", FormatTable, "*output.TableFormatter"},
		{"json", FormatJSON, "*output.JSONFormatter"},
		{"yaml", FormatYAML, "*output.YAMLFormatter"},
		{"unknown falls back to table", Format("csv"), "*output.TableFormatter"},
		{"empty falls back to table", Format(""), "*output.TableFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.format)
			if f == nil {
				t.Fatal("NewFormatter returned nil")
			}
			got := typeName(f)
			if got != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(f Formatter) string {
	switch f.(type) {
	case *TableFormatter:
		return "*output.TableFormatter"
	case *JSONFormatter:
		return "*output.JSONFormatter"
	case *YAMLFormatter:
		return "*output.YAMLFormatter"
	default:
		return "unknown"
	}
}

func TestOptions(t *testing.T) {
	opts := &Options{}
	for _, opt := range []Option{WithNoColor(true), WithNoHeaders(true), WithWide(true)} {
		opt(opts)
	}

	if !opts.NoColor || !opts.NoHeaders || !opts.Wide {
		t.Errorf("options not applied: %+v", opts)
	}
}
