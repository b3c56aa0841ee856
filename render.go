package gridfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style selects the preview layout used by [Render].
type Style string

const (
	StyleTable    Style = "table"
	StyleMarkdown Style = "markdown"
	StyleYAML     Style = "yaml"
)

var styles = []Style{StyleTable, StyleMarkdown, StyleYAML}

// Styles returns all preview styles.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a preview style name.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border style name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: border %q", ErrUnsupportedStyle, s)
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// RenderOptions controls [Render].
type RenderOptions struct {
	Style Style

	// Table style only.
	Border   BorderStyle
	Title    string
	Caption  string
	Numbered bool
	// MaxWidth truncates every column to this many cells with "...".
	// Zero means no limit.
	MaxWidth int
	// HeaderStyle wraps each formatted header cell, e.g. to add color.
	// It runs after alignment so escape codes never affect widths.
	HeaderStyle func(string) string

	// Rows restricts output to these row indices, in order. Nil means all
	// rows.
	Rows []int
}

// Render writes a human-readable preview of t to w.
func Render(w io.Writer, t *Table, opts RenderOptions) error {
	switch opts.Style {
	case StyleTable, "":
		return renderTable(w, t, opts)
	case StyleMarkdown:
		return renderMarkdown(w, t, opts)
	case StyleYAML:
		return renderYAML(w, t, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedStyle, opts.Style)
	}
}

// selectRows resolves the row indices to render, dropping any that are out
// of range.
func selectRows(t *Table, rows []int) []int {
	if rows == nil {
		out := make([]int, len(t.Rows))
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if r >= 0 && r < len(t.Rows) {
			out = append(out, r)
		}
	}
	return out
}

// displayRow returns the cells of row r padded to the header width, with
// line breaks flattened so a cell stays on one line.
func displayRow(t *Table, r int) []string {
	cells := make([]string, len(t.Headers))
	for c := range cells {
		cells[c] = displayCell(t.Cell(r, c))
	}
	return cells
}

func displayCell(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}

// columnAligns right-aligns numeric columns.
func columnAligns(t *Table) []Alignment {
	kinds := t.ColumnKinds()
	aligns := make([]Alignment, len(kinds))
	for i, k := range kinds {
		if k == ColumnNumber {
			aligns[i] = AlignRight
		}
	}
	return aligns
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

func renderTable(w io.Writer, t *Table, opts RenderOptions) error {
	if len(t.Headers) == 0 {
		return writeCaption(w, opts.Caption)
	}

	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = displayCell(h)
	}
	indices := selectRows(t, opts.Rows)
	rows := make([][]string, len(indices))
	for i, r := range indices {
		rows[i] = displayRow(t, r)
	}
	aligns := columnAligns(t)

	// Row numbers follow the table's own indices, not the preview position.
	if opts.Numbered {
		header = append([]string{"#"}, header...)
		for i, r := range indices {
			rows[i] = append([]string{fmt.Sprintf("%d", r+1)}, rows[i]...)
		}
		aligns = append([]Alignment{AlignRight}, aligns...)
	}

	widths := computeWidths(header, rows)
	if opts.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], opts.MaxWidth)
		}
	}

	var err error
	if opts.Border == BorderNone {
		err = renderPlainTable(w, header, rows, widths, aligns, opts.HeaderStyle)
	} else {
		bc, ok := borderSets[opts.Border]
		if !ok {
			return fmt.Errorf("%w: border %d", ErrUnsupportedStyle, opts.Border)
		}
		err = renderBorderedTable(w, opts.Title, header, rows, widths, aligns, bc, opts.HeaderStyle)
	}
	if err != nil {
		return err
	}
	return writeCaption(w, opts.Caption)
}

func writeCaption(w io.Writer, caption string) error {
	if caption == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, caption)
	return err
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, headerStyle func(string) string) error {
	if err := writePlainRow(w, header, widths, aligns, headerStyle); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns, nil); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment, style func(string) string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = styleCell(formatTableCell(cells[i], width, aligns[i]), style)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, title string, header []string, rows [][]string, widths []int, aligns []Alignment, bc borderChars, headerStyle func(string) string) error {
	if title != "" {
		// Full-width top border (no column separators).
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(runewidth.Truncate(title, inner, "..."), inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical, headerStyle); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical, nil); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string, style func(string) string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(styleCell(formatTableCell(cells[i], width, aligns[i]), style))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func styleCell(s string, style func(string) string) string {
	if style == nil {
		return s
	}
	return style(s)
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
