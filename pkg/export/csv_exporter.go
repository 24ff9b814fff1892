package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var errNoColumns = errors.New("export: dataset has no columns")

// CSVExporter writes a header line followed by one line per row, columns in
// Dataset.Headers order.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Write streams data to w. An empty dataset still yields the header line.
func (e *CSVExporter) Write(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return errNoColumns
	}
	lines := make([][]string, 0, len(data.Rows)+1)
	lines = append(lines, data.Headers)
	for _, row := range data.Rows {
		lines = append(lines, data.Record(row))
	}
	if err := csv.NewWriter(w).WriteAll(lines); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Render returns the CSV document as bytes.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
