package gridfile

import (
	"io"

	"gopkg.in/yaml.v3"
)

// renderYAML writes one mapping per row with keys in header order. Every
// cell is emitted as a string so that "30" stays distinguishable from 30.
func renderYAML(w io.Writer, t *Table, opts RenderOptions) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range selectRows(t, opts.Rows) {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for c, h := range t.Headers {
			m.Content = append(m.Content, strNode(h), strNode(t.Cell(r, c)))
		}
		seq.Content = append(seq.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
