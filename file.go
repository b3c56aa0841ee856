package gridfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Read parses the full content of r as format f into a new table.
func Read(r io.Reader, f Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return parse(data, f)
}

func parse(data []byte, f Format) (*Table, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: stream did not contain valid UTF-8", ErrIO)
	}
	content := strings.TrimPrefix(string(data), byteOrderMark)

	var (
		t   *Table
		err error
	)
	switch f {
	case CSV:
		t, err = readCSV(content)
	case JSON:
		t, err = readJSON(content)
	case JSONL:
		t = readJSONL(content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}
	t.Format = f
	return t, nil
}

// Marshal serializes t in its own format.
func Marshal(t *Table) ([]byte, error) {
	switch t.Format {
	case CSV:
		var buf bytes.Buffer
		if err := writeCSV(&buf, t); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
		}
		return buf.Bytes(), nil
	case JSON:
		return marshalJSON(t)
	case JSONL:
		return marshalJSONL(t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, t.Format)
	}
}

// Write serializes t in its own format and writes it to w. Nothing is
// written when serialization fails.
func Write(w io.Writer, t *Table) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Load reads the file at path. The format is taken from the file extension,
// case-insensitively.
func Load(path string) (*Table, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	t, err := parse(data, f)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Save writes t to t.Path in t.Format. A failed write may leave a
// truncated file behind.
func Save(t *Table) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(t.Path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, t.Path, err)
	}
	return nil
}

// Export saves a copy of t to path in format f. The copy always uses
// [ShapeArray], so a Key/Value table is written as a list of records.
// t itself is left untouched.
func Export(t *Table, path string, f Format) error {
	out := t.Clone()
	out.Path = path
	out.Format = f
	out.Shape = ShapeArray
	return Save(out)
}

// SaveRequest is the string-typed form of a save, as sent by a UI shell.
type SaveRequest struct {
	FilePath   string     `json:"file_path"`
	FileType   string     `json:"file_type"`
	Headers    []string   `json:"headers"`
	Rows       [][]string `json:"rows"`
	JSONFormat string     `json:"json_format"`
}

// Table converts the request into a table. JSONFormat is only consulted for
// JSON output, so an unknown value falls back to [ShapeArray].
func (r SaveRequest) Table() (*Table, error) {
	f, err := ParseFormat(r.FileType)
	if err != nil {
		return nil, err
	}
	t := r.table()
	t.Format = f
	return t, nil
}

func (r SaveRequest) table() *Table {
	shape, err := ParseShape(r.JSONFormat)
	if err != nil {
		shape = ShapeArray
	}
	return &Table{
		Path:    r.FilePath,
		Shape:   shape,
		Headers: r.Headers,
		Rows:    r.Rows,
	}
}

// SaveFile saves the table described by r.
func SaveFile(r SaveRequest) error {
	t, err := r.Table()
	if err != nil {
		return err
	}
	return Save(t)
}

// ExportFile saves the table described by r to path in the named format.
// The request's own path, type, and JSON format are ignored.
func ExportFile(r SaveRequest, path, fileType string) error {
	f, err := ParseFormat(fileType)
	if err != nil {
		return err
	}
	return Export(r.table(), path, f)
}
