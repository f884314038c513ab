package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatBatch outputs a bulk operation report as JSON
func (f *JSONFormatter) FormatBatch(w io.Writer, report *BatchReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reportDoc(report))
}

// reportDoc converts a report into a serialization-friendly structure
// shared by the JSON and YAML formatters
func reportDoc(report *BatchReport) map[string]interface{} {
	rows := make([]map[string]interface{}, len(report.Rows))
	for i, row := range report.Rows {
		item := map[string]interface{}{
			"name":     row.Name,
			"duration": row.Duration.String(),
		}

		if row.Err != nil {
			item["status"] = "failed"
			item["error"] = row.Err.Error()
			item["attempts"] = row.Attempts
		} else {
			item["status"] = "success"
			if row.Detail != "" {
				item["detail"] = row.Detail
			}
		}

		rows[i] = item
	}

	return map[string]interface{}{
		"results": rows,
		"summary": map[string]interface{}{
			"total":       report.Total,
			"succeeded":   report.Succeeded,
			"failed":      report.Failed,
			"peak":        report.Peak,
			"workers":     report.Workers,
			"utilization": report.Utilization,
			"duration":    report.Duration.String(),
		},
	}
}
