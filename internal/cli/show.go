package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
)

func newShowCmd(e *env) *cobra.Command {
	var (
		style    string
		border   string
		search   string
		page     int
		pageSize int
		maxWidth int
		numbered bool
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Preview a file as a table, Markdown, or YAML",
		Example: `  gridfile show people.csv
  gridfile show data.jsonl --search alice --numbered
  gridfile show big.json --page 3 --page-size 50
  gridfile show people.json --style markdown`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !changed(flags, "style") {
				style = e.cfg.Style
			}
			if !changed(flags, "border") {
				border = e.cfg.Border
			}
			if !changed(flags, "page-size") {
				pageSize = e.cfg.PageSize
			}
			if !changed(flags, "max-width") {
				maxWidth = e.cfg.MaxWidth
			}
			if !changed(flags, "numbered") {
				numbered = e.cfg.Numbered
			}

			st, err := gridfile.ParseStyle(style)
			if err != nil {
				return err
			}
			b, err := gridfile.ParseBorder(border)
			if err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("%w: --page must be at least 1", errUsage)
			}
			if pageSize < 0 || maxWidth < 0 {
				return fmt.Errorf("%w: --page-size and --max-width must not be negative", errUsage)
			}

			t, err := loadTable(args[0])
			if err != nil {
				return err
			}

			matches := t.Search(search)
			rows, total := gridfile.Page(matches, page-1, pageSize)
			opts := gridfile.RenderOptions{
				Style:    st,
				Border:   b,
				Numbered: numbered,
				MaxWidth: maxWidth,
				Rows:     rows,
			}
			if st == gridfile.StyleTable {
				opts.Title = filepath.Base(t.Path)
				opts.Caption = pageCaption(len(matches), min(page, total), total, pageSize, len(rows), search)
				opts.HeaderStyle = e.data.HeaderStyle()
			}
			return gridfile.Render(cmd.OutOrStdout(), t, opts)
		},
	}

	cmd.Flags().StringVar(&style, "style", "table", "Preview style: table|markdown|yaml")
	cmd.Flags().StringVar(&border, "border", "rounded", "Table border: rounded|none|ascii|heavy|double")
	cmd.Flags().StringVar(&search, "search", "", "Only show rows containing this text (case-insensitive)")
	cmd.Flags().IntVar(&page, "page", 1, "Page number to show")
	cmd.Flags().IntVar(&pageSize, "page-size", gridfile.DefaultPageSize, "Rows per page")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Truncate columns wider than this (0 = no limit)")
	cmd.Flags().BoolVar(&numbered, "numbered", false, "Prefix rows with their row number")

	return cmd
}

// pageCaption describes which slice of the matching rows is on screen.
func pageCaption(matches, page, total, size, shown int, search string) string {
	if size <= 0 {
		size = gridfile.DefaultPageSize
	}
	var s string
	if shown == 0 {
		s = "No rows"
	} else {
		first := (page-1)*size + 1
		s = fmt.Sprintf("Rows %d-%d of %d, page %d of %d", first, first+shown-1, matches, page, total)
	}
	if search != "" {
		s += fmt.Sprintf(" matching %q", search)
	}
	return s
}
