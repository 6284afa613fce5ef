package descriptor

import (
	"strings"
)

// Kind identifies a parameter type variant.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindEnum
	KindList
	KindObject
)

var kindNames = [...]string{"string", "integer", "float", "boolean", "enum", "list", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Type is a resolved parameter type. Implementations: Primitive, *Enum, *List
// and *Object.
type Type interface {
	Kind() Kind
	String() string
}

// Primitive is a leaf type without payload.
type Primitive Kind

const (
	String  = Primitive(KindString)
	Integer = Primitive(KindInteger)
	Float   = Primitive(KindFloat)
	Boolean = Primitive(KindBoolean)
)

func (p Primitive) Kind() Kind     { return Kind(p) }
func (p Primitive) String() string { return Kind(p).String() }

// Enum is a closed string enumeration; values keep source order and duplicates.
type Enum struct {
	Values []string
}

func (e *Enum) Kind() Kind { return KindEnum }

func (e *Enum) String() string {
	return "enum[" + strings.Join(e.Values, ",") + "]"
}

// List is a homogeneous array.
type List struct {
	Items Type
}

func (l *List) Kind() Kind { return KindList }

func (l *List) String() string {
	return "list<" + typeString(l.Items) + ">"
}

// Object is a structured map type.
type Object struct {
	Properties []*Parameter
	Required   []string
	// AdditionalProperties is nil when the schema did not declare the keyword.
	AdditionalProperties     *bool
	AdditionalPropertiesType Type
}

func (o *Object) Kind() Kind { return KindObject }

// IsRequired reports whether name is listed as required.
func (o *Object) IsRequired(name string) bool {
	for _, candidate := range o.Required {
		if candidate == name {
			return true
		}
	}
	return false
}

// Property returns the named property or nil.
func (o *Object) Property(name string) *Parameter {
	for _, p := range o.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteString("object{")
	for i, p := range o.Properties {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if !o.IsRequired(p.Name) {
			b.WriteByte('?')
		}
		b.WriteByte(':')
		b.WriteString(typeString(p.Type))
	}
	if o.AdditionalPropertiesType != nil {
		if len(o.Properties) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("*:")
		b.WriteString(o.AdditionalPropertiesType.String())
	}
	b.WriteByte('}')
	return b.String()
}

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
