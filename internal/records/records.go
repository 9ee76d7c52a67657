// Package records reads tabular input (CSV) and extracts the text field
// to be rendered.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for record source operations.
var (
	ErrEmptyInput   = errors.New("record source is empty")
	ErrNoDataRows   = errors.New("record source has a header but no data rows")
	ErrFieldMissing = errors.New("field not found in record source")
	ErrParse        = errors.New("failed to parse record source")
)

// Table holds header-keyed rows from one tabular source.
type Table struct {
	Header []string
	Rows   []map[string]string
}

// Read parses CSV data into a Table. The first row is the header; rows
// shorter than the header leave the trailing fields empty.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated

	raw, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	if len(raw) == 1 {
		return nil, ErrNoDataRows
	}

	header := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(line) {
				row[name] = line[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// HasField reports whether the header contains field.
func (t *Table) HasField(field string) bool {
	for _, name := range t.Header {
		if name == field {
			return true
		}
	}
	return false
}

// Texts extracts the designated field from every row, in row order.
// A missing field is a fatal input error. Rows whose value is empty
// after trimming are skipped: they produce no text and no error.
func (t *Table) Texts(field string) ([]string, error) {
	if !t.HasField(field) {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrFieldMissing, field, strings.Join(t.Header, ", "))
	}

	texts := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		text := strings.TrimSpace(row[field])
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
