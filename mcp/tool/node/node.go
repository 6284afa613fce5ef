package node

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a JSON value found in a tool schema. The set of implementations is
// closed: *Object, Array, String, Number, Bool and Null.
type Value interface {
	jsonValue()
}

// Field is a single object member.
type Field struct {
	Key   string
	Value Value
}

// Object is a JSON object that keeps its members in declaration order.
type Object struct {
	fields []Field
	index  map[string]int
}

// Array is a JSON array.
type Array []Value

// String is a JSON string.
type String string

// Number holds the literal text of a JSON number.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

func (*Object) jsonValue() {}
func (Array) jsonValue()   {}
func (String) jsonValue()  {}
func (Number) jsonValue()  {}
func (Bool) jsonValue()    {}
func (Null) jsonValue()    {}

// NewObject creates an object from fields. A repeated key replaces the earlier
// value but keeps its original position.
func NewObject(fields ...Field) *Object {
	o := &Object{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		o.set(f.Key, f.Value)
	}
	return o
}

func (o *Object) set(key string, value Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.fields[i].Value = value
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Get returns the member value for key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[i].Value, true
}

// Fields returns members in declaration order.
func (o *Object) Fields() []Field {
	if o == nil {
		return nil
	}
	return o.fields
}

// Keys returns member names in declaration order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// StringField returns the member value when it is a JSON string.
func (o *Object) StringField(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// Text renders a scalar value as plain text: strings as-is, numbers by their
// literal and booleans/null by keyword. Objects and arrays are not scalars.
func Text(v Value) (string, bool) {
	switch actual := v.(type) {
	case String:
		return string(actual), true
	case Number:
		return string(actual), true
	case Bool:
		return strconv.FormatBool(bool(actual)), true
	case Null:
		return "null", true
	case *Object, Array:
		return "", false
	}
	return "", false
}

// Format renders v as compact JSON.
func Format(v Value) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

func format(b *strings.Builder, v Value) {
	switch actual := v.(type) {
	case *Object:
		b.WriteByte('{')
		for i, f := range actual.Fields() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeString(b, f.Key)
			b.WriteByte(':')
			format(b, f.Value)
		}
		b.WriteByte('}')
	case Array:
		b.WriteByte('[')
		for i, item := range actual {
			if i > 0 {
				b.WriteByte(',')
			}
			format(b, item)
		}
		b.WriteByte(']')
	case String:
		writeString(b, string(actual))
	case Number:
		b.WriteString(string(actual))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(actual)))
	case Null, nil:
		b.WriteString("null")
	}
}

func writeString(b *strings.Builder, s string) {
	data, _ := json.Marshal(s)
	b.Write(data)
}
