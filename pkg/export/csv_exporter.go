package export

import (
	"bytes"
	"fmt"
	"strings"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders Dataset records into CSV bytes.
//
// The output format is the one legacy spreadsheet tooling expects: a UTF-8
// byte-order mark, every value double-quoted, and internal double quotes
// escaped with a backslash rather than RFC 4180 doubling. encoding/csv
// cannot produce that escaping, so the quoting is done by hand.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	buf.WriteString("\uFEFF")
	buf.WriteString(strings.Join(data.Headers, ","))
	buf.WriteByte('\n')
	for _, row := range data.Rows {
		fields := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			fields[i] = quoteField(row[header])
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func quoteField(value string) string {
	escaped := strings.ReplaceAll(value, `"`, `\"`)
	return `"` + escaped + `"`
}
