package gridfile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func readJSON(content string) (*Table, error) {
	root, err := ParseValue([]byte(sanitize(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: parse JSON: %w", ErrParse, err)
	}
	switch root.Kind() {
	case KindArray:
		ks := newKeySet()
		for i := range root.Len() {
			ks.addObject(root.Index(i))
		}
		t := &Table{Shape: ShapeArray, Headers: ks.keys(), Rows: [][]string{}}
		for i := range root.Len() {
			if item := root.Index(i); item.Kind() == KindObject {
				t.Rows = append(t.Rows, objectRow(t.Headers, item))
			}
		}
		return t, nil
	case KindObject:
		t := &Table{
			Shape:   ShapeObject,
			Headers: []string{KeyHeader, ValueHeader},
			Rows:    make([][]string, 0, root.Len()),
		}
		for _, key := range root.Keys() {
			v, _ := root.Get(key)
			t.Rows = append(t.Rows, []string{key, EncodeCell(v)})
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: JSON must be an object or array", ErrParse)
	}
}

// jsonDocument rebuilds the JSON topology of t: a single object for a
// Key/Value table with object shape, an array of records otherwise.
func jsonDocument(t *Table) Value {
	if t.keyValue() {
		members := make([]Member, 0, len(t.Rows))
		for _, row := range t.Rows {
			key := cellAt(row, 0)
			if key == "" {
				continue
			}
			members = append(members, Member{Key: key, Value: DecodeCell(cellAt(row, 1))})
		}
		return Object(members...)
	}
	items := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		items[i] = rowObject(t.Headers, row)
	}
	return Array(items...)
}

func marshalJSON(t *Table) ([]byte, error) {
	compact, err := jsonDocument(t).MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
