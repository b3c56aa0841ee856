package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
)

var formatDescriptions = map[gridfile.Format]string{
	gridfile.CSV:   "Comma-separated values, first record is the header",
	gridfile.JSON:  "Array of flat objects, or one object as Key/Value rows",
	gridfile.JSONL: "One JSON object per line",
}

func newFormatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported file formats",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &gridfile.Table{Headers: []string{"format", "description"}}
			for _, f := range gridfile.Formats() {
				t.Rows = append(t.Rows, []string{"." + f.String(), formatDescriptions[f]})
			}
			return gridfile.Render(cmd.OutOrStdout(), t, gridfile.RenderOptions{
				Border:      gridfile.BorderNone,
				HeaderStyle: e.data.HeaderStyle(),
			})
		},
	}
}
