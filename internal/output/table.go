package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	table := f.createTable(w)

	switch v := data.(type) {
	case map[string]interface{}:
		return f.formatMap(table, v)
	case []map[string]interface{}:
		return f.formatMapSlice(table, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		// Fallback to simple string representation
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatBatch outputs a bulk operation report as a table
func (f *TableFormatter) FormatBatch(w io.Writer, report *BatchReport) error {
	if report == nil || len(report.Rows) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)

	table := f.createTable(w)

	headers := []string{"NAME", "STATUS", "ATTEMPTS", "DURATION"}
	if f.options.Wide {
		headers = append(headers, "DETAIL")
	}

	if !f.options.NoHeaders {
		if colors.Disabled {
			table.SetHeader(headers)
		} else {
			coloredHeaders := make([]string, len(headers))
			for i, h := range headers {
				coloredHeaders[i] = colors.Header(h)
			}
			table.SetHeader(coloredHeaders)
		}
	}

	for _, row := range report.Rows {
		table.Append(f.formatRow(row, colors))
	}

	table.Render()

	f.printSummary(w, report, colors)

	return nil
}

// formatRow formats a single report row as a table row
func (f *TableFormatter) formatRow(row BatchRow, colors *ColorScheme) []string {
	name := row.Name
	if !colors.Disabled {
		name = colors.ObjectName(name)
	}

	status := "Success"
	if row.Err != nil {
		status = "Failed"
	}
	if !colors.Disabled {
		status = colors.StatusColor(row.Err != nil)(status)
	}

	attempts := "-"
	if row.Attempts > 0 {
		attempts = fmt.Sprintf("%d", row.Attempts)
	}

	duration := row.Duration.Round(time.Millisecond).String()
	if !colors.Disabled {
		duration = colors.Duration(duration)
	}

	out := []string{name, status, attempts, duration}

	if f.options.Wide {
		detail := row.Detail
		// Truncate long details
		if len(detail) > 60 {
			detail = detail[:57] + "..."
		}
		out = append(out, detail)
	}

	return out
}

// formatMap formats a map as a two-column table (key-value pairs)
func (f *TableFormatter) formatMap(table *tablewriter.Table, data map[string]interface{}) error {
	if !f.options.NoHeaders {
		table.SetHeader([]string{"KEY", "VALUE"})
	}

	for k, v := range data {
		table.Append([]string{k, fmt.Sprintf("%v", v)})
	}

	table.Render()
	return nil
}

// formatMapSlice formats a slice of maps as a table
func (f *TableFormatter) formatMapSlice(table *tablewriter.Table, data []map[string]interface{}) error {
	if len(data) == 0 {
		return nil
	}

	// Extract headers from the first map
	var headers []string
	for k := range data[0] {
		headers = append(headers, strings.ToUpper(k))
	}

	if !f.options.NoHeaders {
		table.SetHeader(headers)
	}

	for _, item := range data {
		var row []string
		for _, h := range headers {
			key := strings.ToLower(h)
			row = append(row, fmt.Sprintf("%v", item[key]))
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // Tab-separated like kubectl
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints a summary of the report
func (f *TableFormatter) printSummary(w io.Writer, report *BatchReport, colors *ColorScheme) {
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Summary: ")

	successText := fmt.Sprintf("%d successful", report.Succeeded)
	if !colors.Disabled {
		successText = colors.Success(successText)
	}

	failedText := fmt.Sprintf("%d failed", report.Failed)
	if !colors.Disabled && report.Failed > 0 {
		failedText = colors.Error(failedText)
	}

	concurrencyText := fmt.Sprintf("peak=%d/%d (%.0f%%)", report.Peak, report.Workers, report.Utilization)
	if !colors.Disabled {
		concurrencyText = colors.Duration(concurrencyText)
	}

	fmt.Fprintf(w, "%s, %s, %s in %s\n",
		successText, failedText, concurrencyText, report.Duration.Round(time.Millisecond))
}
