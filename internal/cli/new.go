package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
	"github.com/bjaus/gridfile/internal/ui"
)

func newNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a blank three-column table",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := gridfile.FormatFromPath(path)
			if err != nil {
				return err
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%w: %w", gridfile.ErrIO, err)
				}
			}

			t := gridfile.Blank()
			t.Path = path
			t.Format = f
			if err := saveTable(cmd.Context(), t); err != nil {
				return err
			}
			ui.FromContext(cmd.Context()).Success("Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
