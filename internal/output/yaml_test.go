package output

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLFormatBatch(t *testing.T) {
	formatter := NewYAMLFormatter(nil)

	var buf bytes.Buffer
	report := Report(sampleSummary(), nil)
	if err := formatter.FormatBatch(&buf, report); err != nil {
		t.Fatalf("FormatBatch failed: %v", err)
	}

	var doc struct {
		Results []map[string]interface{} `yaml:"results"`
		Summary map[string]interface{}   `yaml:"summary"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	if len(doc.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(doc.Results))
	}
	if doc.Summary["succeeded"] != 2 {
		t.Errorf("summary succeeded = %v", doc.Summary["succeeded"])
	}
}

func TestYAMLFormatSingle(t *testing.T) {
	formatter := NewYAMLFormatter(nil)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, map[string]string{"name": "web-1"}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var out map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if out["name"] != "web-1" {
		t.Errorf("name = %q", out["name"])
	}
}
