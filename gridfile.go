package gridfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrIO                = errors.New("i/o error")
	ErrParse             = errors.New("parse error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSerialize         = errors.New("serialize error")
	ErrOutOfRange        = errors.New("index out of range")
	ErrLastColumn        = errors.New("cannot delete last column")
	ErrLastRow           = errors.New("cannot delete last row")
	ErrUnsupportedStyle  = errors.New("unsupported style")
)

// Format is a persisted file format.
type Format string

const (
	CSV   Format = "csv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
)

var formats = []Format{CSV, JSON, JSONL}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from the file extension of path.
// The returned error names the extension that was not recognized.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return ParseFormat(ext)
}

// Shape records which JSON topology a table reconstructs into.
type Shape string

const (
	// ShapeArray is a list of flat records.
	ShapeArray Shape = "array"
	// ShapeObject is a single flat object held as a Key/Value table.
	ShapeObject Shape = "object"
)

// String returns the shape name. The zero Shape reports as array.
func (s Shape) String() string {
	if s == "" {
		return string(ShapeArray)
	}
	return string(s)
}

// ParseShape parses a shape name.
func ParseShape(s string) (Shape, error) {
	switch Shape(strings.ToLower(s)) {
	case ShapeArray:
		return ShapeArray, nil
	case ShapeObject:
		return ShapeObject, nil
	default:
		return "", fmt.Errorf("unsupported shape: %q", s)
	}
}

// Fixed headers of an object-shaped table.
const (
	KeyHeader   = "Key"
	ValueHeader = "Value"
)

// Table is the in-memory representation of a tabular file.
//
// Every row is positionally aligned with Headers and is never longer than
// it. A row shorter than Headers reads as empty text for the missing cells.
type Table struct {
	Path    string     `json:"file_path"`
	Format  Format     `json:"file_type"`
	Shape   Shape      `json:"json_format"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := *t
	c.Headers = make([]string, len(t.Headers))
	copy(c.Headers, t.Headers)
	c.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		c.Rows[i] = make([]string, len(row))
		copy(c.Rows[i], row)
	}
	return &c
}

// Cell returns the cell at row r, column c, or "" when the row is short or
// the position is out of range.
func (t *Table) Cell(r, c int) string {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Rows[r]) {
		return ""
	}
	return t.Rows[r][c]
}

// keyValue reports whether t reconstructs into a single JSON object.
func (t *Table) keyValue() bool {
	return t.Shape == ShapeObject &&
		len(t.Headers) == 2 &&
		t.Headers[0] == KeyHeader &&
		t.Headers[1] == ValueHeader
}
