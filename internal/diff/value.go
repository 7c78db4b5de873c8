package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable JSON tree node. The zero Value is null.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	items  []Value
	fields map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// String wraps s.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps items.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object wraps fields.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, fields: fields}
}

// FromJSON parses a JSON document. Numbers keep their literal form.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("failed to decode JSON document: %w", err)
	}
	return fromInterface(raw)
}

// FromRecord converts v to a Value through its JSON encoding.
func FromRecord(v interface{}) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return FromJSON(data)
}

func fromInterface(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		return Number(v), nil
	case string:
		return String(v), nil
	case []interface{}:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			converted, err := fromInterface(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return Array(items...), nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(v))
		for key, item := range v {
			converted, err := fromInterface(item)
			if err != nil {
				return Value{}, err
			}
			fields[key] = converted
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value of type %T", raw)
	}
}

// Kind returns the type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Len returns the number of elements or fields of a container, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Keys returns the object keys in ascending order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field returns the field named key and whether it exists.
func (v Value) Field(key string) (Value, bool) {
	f, ok := v.fields[key]
	return f, ok
}

// Index returns the array element at i and whether it exists.
func (v Value) Index(i int) (Value, bool) {
	if i < 0 || i >= len(v.items) {
		return Value{}, false
	}
	return v.items[i], true
}

// Equal reports whether v and other are the same tree. Numbers compare by
// value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return numbersEqual(v.num, other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, f := range v.fields {
			o, ok := other.fields[k]
			if !ok || !f.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

func numbersEqual(a, b json.Number) bool {
	if a == b {
		return true
	}
	if ai, err := a.Int64(); err == nil {
		if bi, err := b.Int64(); err == nil {
			return ai == bi
		}
	}
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	return aerr == nil && berr == nil && af == bf
}

// String renders v as compact JSON with object keys in ascending order.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.num.String())
	case KindString:
		writeString(sb, v.str)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.write(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeString(sb, key)
			sb.WriteByte(':')
			v.fields[key].write(sb)
		}
		sb.WriteByte('}')
	}
}

func writeString(sb *strings.Builder, s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	sb.Write(bytes.TrimRight(buf.Bytes(), "\n"))
}
