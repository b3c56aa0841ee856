package gridfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readCSV treats the first record as headers. Records may be shorter or
// longer than the header; longer ones are cut to the header width.
func readCSV(content string) (*Table, error) {
	cr := csv.NewReader(strings.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	t := &Table{Shape: ShapeArray, Headers: []string{}, Rows: [][]string{}}
	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read CSV headers: %w", ErrParse, err)
	}
	t.Headers = headers
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read CSV row %d: %w", ErrParse, len(t.Rows)+1, err)
		}
		if len(record) > len(headers) {
			record = record[:len(headers)]
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

func writeCSV(w io.Writer, t *Table) error {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := writeCSVRecord(w, cw, t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeCSVRecord(w, cw, row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRecord writes an empty record, or one holding a single empty
// field, as a quoted empty string. csv.Writer would emit a blank line there,
// and readers skip blank lines.
func writeCSVRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) > 1 || (len(record) == 1 && record[0] != "") {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}
