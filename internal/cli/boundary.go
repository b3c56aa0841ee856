package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridfile"
	"github.com/bjaus/gridfile/internal/ui"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a loaded table as JSON",
		Long: `Dump prints the loaded table (file_path, file_type, json_format, headers,
rows) as JSON. The output is accepted by "gridfile save" on stdin.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			if t.Shape == "" {
				t.Shape = gridfile.ShapeArray
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(t)
		},
	}
}

func newSaveCmd() *cobra.Command {
	var (
		exportPath string
		to         string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write a table read from stdin as JSON",
		Long: `Save reads a table in the form printed by "gridfile dump" from stdin and writes
it to its file_path in its file_type. With --export the table is written to
another path instead, as an array of records.`,
		Example: `  gridfile dump people.csv | gridfile save
  gridfile dump people.json | gridfile save --export people.jsonl`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req gridfile.SaveRequest
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
				return fmt.Errorf("%w: decode table from stdin: %w", errUsage, err)
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			status := ui.FromContext(cmd.Context())

			if exportPath == "" {
				if req.FilePath == "" {
					return fmt.Errorf("%w: file_path is empty", errUsage)
				}
				if err := gridfile.SaveFile(req); err != nil {
					return err
				}
				status.Success("Saved %s (%d rows)", req.FilePath, len(req.Rows))
				return nil
			}

			fileType := to
			if fileType == "" {
				f, err := gridfile.FormatFromPath(exportPath)
				if err != nil {
					return err
				}
				fileType = f.String()
			}
			if err := gridfile.ExportFile(req, exportPath, fileType); err != nil {
				return err
			}
			status.Success("Exported %s (%d rows)", exportPath, len(req.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write to this path instead of file_path")
	cmd.Flags().StringVar(&to, "to", "", "Export format: csv|json|jsonl (default from --export extension)")
	return cmd
}
