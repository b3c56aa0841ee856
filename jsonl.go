package gridfile

import (
	"bytes"
	"strings"
)

// readJSONL reads one JSON object per line. Blank lines and lines that are
// not a JSON object are skipped. The first pass fixes the header set, the
// second lays every object out along it.
func readJSONL(content string) *Table {
	lines := jsonLines(sanitize(content))

	ks := newKeySet()
	for _, line := range lines {
		if obj, ok := parseObjectLine(line); ok {
			ks.addObject(obj)
		}
	}

	t := &Table{Shape: ShapeArray, Headers: ks.keys(), Rows: [][]string{}}
	for _, line := range lines {
		if obj, ok := parseObjectLine(line); ok {
			t.Rows = append(t.Rows, objectRow(t.Headers, obj))
		}
	}
	return t
}

func jsonLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseObjectLine(line string) (Value, bool) {
	v, err := ParseValue([]byte(line))
	if err != nil || v.Kind() != KindObject {
		return Value{}, false
	}
	return v, true
}

func marshalJSONL(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	for _, row := range t.Rows {
		if err := rowObject(t.Headers, row).appendJSON(&buf); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
