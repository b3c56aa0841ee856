package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/gridfile"
)

type columnInfo struct {
	Name string              `json:"name" yaml:"name"`
	Kind gridfile.ColumnKind `json:"kind" yaml:"kind"`
}

type infoReport struct {
	File           string `json:"file" yaml:"file"`
	Format         string `json:"format" yaml:"format"`
	Shape          string `json:"shape" yaml:"shape"`
	gridfile.Stats `yaml:",inline"`
	Fields         []columnInfo `json:"fields" yaml:"fields"`
}

func newInfoCmd(e *env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Describe a file's format, shape, size, and column types",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			report := infoReport{
				File:   t.Path,
				Format: t.Format.String(),
				Shape:  t.Shape.String(),
				Stats:  t.Stats(),
				Fields: make([]columnInfo, len(t.Headers)),
			}
			for i, k := range t.ColumnKinds() {
				report.Fields[i] = columnInfo{Name: t.Headers[i], Kind: k}
			}

			w := cmd.OutOrStdout()
			switch output {
			case "text":
				return writeInfoText(w, report, e)
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("%w: invalid --output %q (want text, json, or yaml)", errUsage, output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text|json|yaml")
	return cmd
}

func writeInfoText(w io.Writer, r infoReport, e *env) error {
	if _, err := fmt.Fprintf(w, "File:    %s\nFormat:  %s\nShape:   %s\nRows:    %d\nColumns: %d\n\n",
		r.File, r.Format, r.Shape, r.Rows, r.Columns); err != nil {
		return err
	}
	columns := &gridfile.Table{Headers: []string{"column", "kind"}}
	for _, f := range r.Fields {
		columns.Rows = append(columns.Rows, []string{f.Name, string(f.Kind)})
	}
	return gridfile.Render(w, columns, gridfile.RenderOptions{
		Border:      gridfile.BorderNone,
		Numbered:    true,
		HeaderStyle: e.data.HeaderStyle(),
	})
}
