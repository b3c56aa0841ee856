package gridfile

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 100

const (
	kindSampleSize = 100
	kindThreshold  = 0.9
)

// ColumnKind is the sniffed type of a column, used for display only.
type ColumnKind string

const (
	ColumnString  ColumnKind = "string"
	ColumnNumber  ColumnKind = "number"
	ColumnBoolean ColumnKind = "boolean"
)

// Stats summarizes the size of a table.
type Stats struct {
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
}

// Stats returns the row and column counts of t.
func (t *Table) Stats() Stats {
	return Stats{Rows: len(t.Rows), Columns: len(t.Headers)}
}

// Equal reports whether t and o hold the same headers and rows.
func (t *Table) Equal(o *Table) bool {
	return slices.Equal(t.Headers, o.Headers) &&
		slices.EqualFunc(t.Rows, o.Rows, slices.Equal[[]string])
}

// Search returns the indices of rows containing query in any cell, ignoring
// case. An empty query matches every row.
func (t *Table) Search(query string) []int {
	query = strings.ToLower(query)
	out := make([]int, 0, len(t.Rows))
	for i, row := range t.Rows {
		if query == "" || slices.ContainsFunc(row, func(cell string) bool {
			return strings.Contains(strings.ToLower(cell), query)
		}) {
			out = append(out, i)
		}
	}
	return out
}

// Page returns the zero-based page of rows and the total page count. The
// page is clamped into range and there is always at least one page. A size
// of zero or less uses [DefaultPageSize].
func Page(rows []int, page, size int) ([]int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := max(1, (len(rows)+size-1)/size)
	page = min(max(page, 0), total-1)
	start := page * size
	end := min(start+size, len(rows))
	if start >= end {
		return []int{}, total
	}
	return rows[start:end], total
}

// ColumnKinds sniffs the type of each column from the first rows. A column
// is numeric or boolean when more than 90% of its non-empty cells are.
func (t *Table) ColumnKinds() []ColumnKind {
	kinds := make([]ColumnKind, len(t.Headers))
	sample := t.Rows[:min(len(t.Rows), kindSampleSize)]
	for col := range kinds {
		kinds[col] = ColumnString
		var nonEmpty, numbers, bools int
		for _, row := range sample {
			cell := cellAt(row, col)
			if cell == "" {
				continue
			}
			nonEmpty++
			if isNumeric(cell) {
				numbers++
			}
			if b := strings.ToLower(strings.TrimSpace(cell)); b == "true" || b == "false" {
				bools++
			}
		}
		if nonEmpty == 0 {
			continue
		}
		switch {
		case float64(numbers)/float64(nonEmpty) > kindThreshold:
			kinds[col] = ColumnNumber
		case float64(bools)/float64(nonEmpty) > kindThreshold:
			kinds[col] = ColumnBoolean
		}
	}
	return kinds
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX_") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}
