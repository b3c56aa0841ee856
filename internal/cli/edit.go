package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
	"github.com/bjaus/gridfile/internal/ui"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply one edit to a file and save it in place",
		Long: `Each edit subcommand loads <file>, applies a single change, and saves the
file in its original format. Rows are numbered from 1. Columns may be given
by header name or by number, counting from 1.`,
		Example: `  gridfile edit set-cell people.csv 2 age 31
  gridfile edit add-column people.csv email
  gridfile edit delete-row people.json 4`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-cell <file> <row> <column> <value>",
		Short: "Set the text of one cell",
		Args:  usageArgs(cobra.ExactArgs(4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				r, err := parseRow(args[1])
				if err != nil {
					return "", err
				}
				c, err := resolveColumn(t, args[2])
				if err != nil {
					return "", err
				}
				if err := t.SetCell(r, c, args[3]); err != nil {
					return "", err
				}
				return fmt.Sprintf("Set row %d, column %q", r+1, t.Headers[c]), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-row <file>",
		Short: "Append an empty row",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				return fmt.Sprintf("Added row %d", t.AddRow()+1), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-row <file> <row>",
		Short: "Delete a row",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				r, err := parseRow(args[1])
				if err != nil {
					return "", err
				}
				if err := t.DeleteRow(r); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted row %d", r+1), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "duplicate-row <file> <row>",
		Short: "Insert a copy of a row directly below it",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				r, err := parseRow(args[1])
				if err != nil {
					return "", err
				}
				if err := t.DuplicateRow(r); err != nil {
					return "", err
				}
				return fmt.Sprintf("Duplicated row %d", r+1), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-column <file> [name]",
		Short: "Append a column (named column<N> when no name is given)",
		Args:  usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				return fmt.Sprintf("Added column %q", t.AddColumn(name)), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-column <file> <column>",
		Short: "Delete a column",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				c, err := resolveColumn(t, args[1])
				if err != nil {
					return "", err
				}
				name := ""
				if c >= 0 && c < len(t.Headers) {
					name = t.Headers[c]
				}
				if err := t.DeleteColumn(c); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted column %q", name), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename-column <file> <column> <name>",
		Short: "Rename a column",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd.Context(), args[0], func(t *gridfile.Table) (string, error) {
				c, err := resolveColumn(t, args[1])
				if err != nil {
					return "", err
				}
				if err := t.RenameColumn(c, args[2]); err != nil {
					return "", err
				}
				return fmt.Sprintf("Renamed column %d to %q", c+1, t.Headers[c]), nil
			})
		},
	})

	return cmd
}

// editFile loads path, applies edit, and saves the table back when it
// changed. The message returned by edit is reported on success.
func editFile(ctx context.Context, path string, edit func(*gridfile.Table) (string, error)) error {
	t, err := loadTable(path)
	if err != nil {
		return err
	}
	before := t.Clone()
	msg, err := edit(t)
	if err != nil {
		return err
	}
	if t.Equal(before) {
		ui.FromContext(ctx).Warning("No changes to %s", path)
		return nil
	}
	if err := saveTable(ctx, t); err != nil {
		return err
	}
	ui.FromContext(ctx).Success("%s in %s", msg, path)
	return nil
}
