package gridfile

import (
	"fmt"
	"slices"
	"strings"
)

// Blank returns a new untitled JSON table with three empty columns and one
// empty row.
func Blank() *Table {
	return &Table{
		Format:  JSON,
		Shape:   ShapeArray,
		Headers: []string{"column1", "column2", "column3"},
		Rows:    [][]string{{"", "", ""}},
	}
}

// AddColumn appends a column and returns its name. A blank name becomes
// "column<N>" where N is the new column count.
func (t *Table) AddColumn(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("column%d", len(t.Headers)+1)
	}
	width := len(t.Headers)
	t.Headers = append(t.Headers, name)
	for i, row := range t.Rows {
		t.Rows[i] = append(padRow(row, width), "")
	}
	return name
}

// DeleteColumn removes column i from the headers and every row.
func (t *Table) DeleteColumn(i int) error {
	if err := t.checkColumn(i); err != nil {
		return err
	}
	if len(t.Headers) <= 1 {
		return ErrLastColumn
	}
	t.Headers = slices.Delete(t.Headers, i, i+1)
	for r, row := range t.Rows {
		if i < len(row) {
			t.Rows[r] = slices.Delete(row, i, i+1)
		}
	}
	return nil
}

// RenameColumn renames column i. A blank name keeps the current one.
func (t *Table) RenameColumn(i int, name string) error {
	if err := t.checkColumn(i); err != nil {
		return err
	}
	if name != "" {
		t.Headers[i] = name
	}
	return nil
}

// AddRow appends an empty row and returns its index.
func (t *Table) AddRow() int {
	t.Rows = append(t.Rows, make([]string, len(t.Headers)))
	return len(t.Rows) - 1
}

// DeleteRow removes row i. The last remaining row cannot be deleted.
func (t *Table) DeleteRow(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	if len(t.Rows) <= 1 {
		return ErrLastRow
	}
	t.Rows = slices.Delete(t.Rows, i, i+1)
	return nil
}

// DuplicateRow inserts a copy of row i directly after it.
func (t *Table) DuplicateRow(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	dup := make([]string, len(t.Rows[i]))
	copy(dup, t.Rows[i])
	t.Rows = slices.Insert(t.Rows, i+1, dup)
	return nil
}

// SetCell sets the cell at row r, column c, padding a short row first.
func (t *Table) SetCell(r, c int, value string) error {
	if err := t.checkRow(r); err != nil {
		return err
	}
	if err := t.checkColumn(c); err != nil {
		return err
	}
	t.Rows[r] = padRow(t.Rows[r], c+1)
	t.Rows[r][c] = value
	return nil
}

func (t *Table) checkRow(i int) error {
	if i < 0 || i >= len(t.Rows) {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, len(t.Rows))
	}
	return nil
}

func (t *Table) checkColumn(i int) error {
	if i < 0 || i >= len(t.Headers) {
		return fmt.Errorf("%w: column %d of %d", ErrOutOfRange, i, len(t.Headers))
	}
	return nil
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
