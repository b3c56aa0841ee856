package gridfile

import (
	"fmt"
	"io"
	"strings"
)

// renderMarkdown writes a GitHub-flavored Markdown table. Numeric columns
// get a right-alignment marker.
func renderMarkdown(w io.Writer, t *Table, opts RenderOptions) error {
	if len(t.Headers) == 0 {
		return nil
	}
	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = markdownCell(h)
	}
	indices := selectRows(t, opts.Rows)
	rows := make([][]string, len(indices))
	for i, r := range indices {
		cells := displayRow(t, r)
		for c := range cells {
			cells[c] = markdownCell(cells[c])
		}
		rows[i] = cells
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := computeWidths(header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := columnAligns(t)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func markdownCell(s string) string {
	return strings.ReplaceAll(displayCell(s), "|", `\|`)
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
