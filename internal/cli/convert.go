package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
	"github.com/bjaus/gridfile/internal/ui"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Convert a file to another format",
		Long: `Convert loads <src> and writes it to <dst>. The output format comes from the
extension of <dst> unless --to is given. JSON output is always an array of
records, even when <src> was a single JSON object.`,
		Example: `  gridfile convert people.csv people.json
  gridfile convert events.jsonl events.txt --to csv`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			var (
				f   gridfile.Format
				err error
			)
			if to != "" {
				f, err = gridfile.ParseFormat(to)
			} else {
				f, err = gridfile.FormatFromPath(dst)
			}
			if err != nil {
				return err
			}

			t, err := loadTable(src)
			if err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if err := gridfile.Export(t, dst, f); err != nil {
				return err
			}
			ui.FromContext(cmd.Context()).Success("Converted %s (%s) to %s (%s), %d rows", src, t.Format, dst, f, len(t.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output format: csv|json|jsonl (default from <dst> extension)")
	return cmd
}
