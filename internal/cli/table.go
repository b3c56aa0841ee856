package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/bjaus/gridfile"
)

func loadTable(path string) (*gridfile.Table, error) {
	t, err := gridfile.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded table",
		"path", t.Path,
		"format", t.Format,
		"shape", t.Shape,
		"rows", len(t.Rows),
		"columns", len(t.Headers),
	)
	return t, nil
}

// saveTable writes t unless ctx is already done, so an interrupted command
// leaves the file as it was.
func saveTable(ctx context.Context, t *gridfile.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.Debug("saving table", "path", t.Path, "format", t.Format, "shape", t.Shape, "rows", len(t.Rows))
	return gridfile.Save(t)
}

// parseRow converts a one-based row number from the command line to an
// index. Range checks are left to the table.
func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: row %q is not a number", errUsage, s)
	}
	return n - 1, nil
}

// resolveColumn accepts a header name or a one-based column number. An
// exact header match wins over a number.
func resolveColumn(t *gridfile.Table, s string) (int, error) {
	if i := slices.Index(t.Headers, s); i >= 0 {
		return i, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: no column named %q", errUsage, s)
	}
	return n - 1, nil
}
