package gridfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "bool", "number", "string", "array", "object"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a JSON value: null, bool, number, string, array, or object.
// The zero Value is null.
//
// Numbers keep their literal text. Object members keep insertion order; a
// repeated key keeps its first position and takes the last value.
type Value struct {
	kind    Kind
	boolean bool
	text    string
	items   []Value
	members *orderedmap.OrderedMap[string, Value]
}

// Member is a single object member.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns a number value holding i.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Float returns a number value holding f in its shortest decimal form.
// Non-finite values cannot be serialized.
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// Number returns a number value with the given literal text. The literal is
// validated when the value is serialized.
func Number(literal string) Value { return Value{kind: KindNumber, text: literal} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns an array value.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Object returns an object value with members in the given order.
func Object(members ...Member) Value {
	m := orderedmap.New[string, Value]()
	for _, mem := range members {
		m.Set(mem.Key, mem.Value)
	}
	return Value{kind: KindObject, members: m}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Boolean returns the boolean held by v, or false for other kinds.
func (v Value) Boolean() bool { return v.boolean }

// Text returns the literal of a number or the content of a string.
func (v Value) Text() string { return v.text }

// Len returns the number of array items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		if v.members == nil {
			return 0
		}
		return v.members.Len()
	default:
		return 0
	}
}

// Index returns the i-th array item.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Null()
	}
	return v.items[i]
}

// Keys returns object keys in insertion order.
func (v Value) Keys() []string {
	if v.kind != KindObject || v.members == nil {
		return nil
	}
	keys := make([]string, 0, v.members.Len())
	for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the member stored under key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject || v.members == nil {
		return Null(), false
	}
	return v.members.Get(key)
}

// Equal reports whether v and o are equal as JSON values. Numbers compare by
// numeric value and object member order is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == o.boolean
	case KindString:
		return v.text == o.text
	case KindNumber:
		if v.text == o.text {
			return true
		}
		a, aerr := strconv.ParseFloat(v.text, 64)
		b, berr := strconv.ParseFloat(o.text, 64)
		return aerr == nil && berr == nil && a == b
	case KindArray:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.Len() != o.Len() {
			return false
		}
		for _, k := range v.Keys() {
			a, _ := v.Get(k)
			b, ok := o.Get(k)
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ParseValue parses data as a single JSON document.
func ParseValue(data []byte) (Value, error) {
	if !json.Valid(data) {
		var discard any
		if err := json.Unmarshal(data, &discard); err != nil {
			return Value{}, err
		}
		return Value{}, errors.New("invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return decodeValue(dec)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if f, err := strconv.ParseFloat(t.String(), 64); err != nil && math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("number out of range: %s", t)
		}
		return Number(t.String()), nil
	case json.Delim:
		if t == '[' {
			items := []Value{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindArray, items: items}, nil
		}
		m := orderedmap.New[string, Value]()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return Value{}, err
			}
			key, _ := kt.(string)
			val, err := decodeValue(dec)
			if err != nil {
				return Value{}, err
			}
			m.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, members: m}, nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// MarshalJSON encodes v as compact JSON. Object member order is preserved
// and HTML characters are not escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) appendJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		if !validNumber(v.text) {
			return fmt.Errorf("%w: invalid number %q", ErrSerialize, v.text)
		}
		buf.WriteString(v.text)
	case KindString:
		writeString(buf, v.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		if v.members != nil {
			first := true
			for pair := v.members.Oldest(); pair != nil; pair = pair.Next() {
				if !first {
					buf.WriteByte(',')
				}
				first = false
				writeString(buf, pair.Key)
				buf.WriteByte(':')
				if err := pair.Value.appendJSON(buf); err != nil {
					return err
				}
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown value kind %s", ErrSerialize, v.kind)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // a string always encodes
	buf.Truncate(buf.Len() - 1)
}

func validNumber(lit string) bool {
	if lit == "" {
		return false
	}
	if c := lit[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(lit))
}

// EncodeCell converts v to its cell text. Null is empty, booleans are
// "true"/"false", numbers keep their literal, strings are verbatim, and
// arrays and objects become compact JSON.
func EncodeCell(v Value) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNumber, KindString:
		return v.text
	case KindArray, KindObject:
		b, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// DecodeCell converts cell text back to a value by sniffing its type.
//
// Empty text is null. Otherwise the text is tried as JSON, then as a
// literal true/false, then as a 64-bit integer, then as a finite decimal
// float, and finally kept as a string. Digit-only text such as "007"
// therefore decodes as a number even if it started out as a string.
func DecodeCell(s string) Value {
	if s == "" {
		return Null()
	}
	if v, err := ParseValue([]byte(s)); err == nil {
		return v
	}
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	// ParseFloat also takes hex mantissas and digit separators.
	if !strings.ContainsAny(s, "xX_") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return Float(f)
		}
	}
	return String(s)
}
