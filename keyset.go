package gridfile

import orderedmap "github.com/wk8/go-ordered-map/v2"

// keySet collects keys in first-seen order.
type keySet struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func newKeySet() keySet {
	return keySet{m: orderedmap.New[string, struct{}]()}
}

// addObject adds the keys of obj. Non-objects add nothing.
func (k keySet) addObject(obj Value) {
	for _, key := range obj.Keys() {
		k.m.Set(key, struct{}{})
	}
}

func (k keySet) keys() []string {
	out := make([]string, 0, k.m.Len())
	for pair := k.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// objectRow lays obj out along headers. Missing keys become empty cells.
func objectRow(headers []string, obj Value) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		if v, ok := obj.Get(h); ok {
			row[i] = EncodeCell(v)
		}
	}
	return row
}

// rowObject builds an object from a row, keyed positionally by headers.
// Missing cells decode as empty text.
func rowObject(headers, row []string) Value {
	members := make([]Member, len(headers))
	for i, h := range headers {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		members[i] = Member{Key: h, Value: DecodeCell(cell)}
	}
	return Object(members...)
}
