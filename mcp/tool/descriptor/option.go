package descriptor

import (
	"fmt"
	"strings"
)

// DefaultMaxDepth bounds nested nullable anyOf unwrapping.
const DefaultMaxDepth = 10

// DescriptionSource selects where nested object properties take their
// description from.
type DescriptionSource int

const (
	// PropertyDescription uses each property's own description.
	PropertyDescription DescriptionSource = iota
	// ParentDescription copies the enclosing object's description onto every
	// property, matching schema producers that rely on the legacy behaviour.
	ParentDescription
)

func (s DescriptionSource) String() string {
	if s == ParentDescription {
		return "parent"
	}
	return "property"
}

// ParseDescriptionSource parses "property" (default when empty) or "parent".
func ParseDescriptionSource(value string) (DescriptionSource, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "property":
		return PropertyDescription, nil
	case "parent":
		return ParentDescription, nil
	}
	return PropertyDescription, fmt.Errorf("invalid description source: %q", value)
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets the nullable unwrapping ceiling; negative values are
// treated as zero.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth < 0 {
			depth = 0
		}
		r.maxDepth = depth
	}
}

// WithDescriptionSource selects the nested property description source.
func WithDescriptionSource(source DescriptionSource) Option {
	return func(r *Resolver) {
		r.descriptions = source
	}
}
