package descriptor

import (
	"strconv"
	"strings"

	"github.com/viant/mcp-tooldesc/mcp/tool/node"
)

// Resolver converts JSON schema nodes into parameter types. A Resolver is
// immutable and safe for concurrent use.
type Resolver struct {
	maxDepth     int
	descriptions DescriptionSource
}

// New creates a resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve resolves n with the default resolver.
func Resolve(n node.Value) (Type, error) {
	return defaultResolver.Resolve(n)
}

// Resolve maps a schema node to its parameter type.
func (r *Resolver) Resolve(n node.Value) (Type, error) {
	obj, ok := n.(*node.Object)
	if !ok {
		return nil, newError(ErrNotAnObject, "", "")
	}
	return r.resolve(obj, "", 0)
}

// resolve keeps depth as the number of nullable anyOf wrappers unwrapped on the
// way to obj.
func (r *Resolver) resolve(obj *node.Object, path string, depth int) (Type, error) {
	typeValue, ok := obj.Get("type")
	if !ok {
		return r.resolveNullable(obj, path, depth)
	}
	typeName, ok := typeValue.(node.String)
	if !ok {
		return nil, newError(ErrUnsupportedType, node.Format(typeValue), path)
	}

	switch strings.ToLower(string(typeName)) {
	case "string":
		return String, nil
	case "integer":
		return Integer, nil
	case "number":
		return Float, nil
	case "boolean":
		return Boolean, nil
	case "enum":
		return r.resolveEnum(obj, path)
	case "array":
		items, ok := obj.Get("items")
		itemsObject, isObject := items.(*node.Object)
		if !ok || !isObject {
			return nil, newError(ErrMissingItems, label(obj), path)
		}
		itemType, err := r.resolve(itemsObject, path+"/items", depth)
		if err != nil {
			return nil, err
		}
		return &List{Items: itemType}, nil
	case "object":
		return r.resolveObject(obj, path, depth)
	}
	return nil, newError(ErrUnsupportedType, string(typeName), path)
}

func (r *Resolver) resolveNullable(obj *node.Object, path string, depth int) (Type, error) {
	branch, index, ok := nullableBranch(obj)
	if !ok {
		return nil, newError(ErrMissingType, label(obj), path)
	}
	if depth >= r.maxDepth {
		return nil, newError(ErrDepthExceeded, label(obj), path)
	}
	return r.resolve(branch, path+"/anyOf/"+strconv.Itoa(index), depth+1)
}

// nullableBranch returns the non-null arm of a two arm anyOf where exactly one
// arm is {"type": "null"}.
func nullableBranch(obj *node.Object) (*node.Object, int, bool) {
	value, ok := obj.Get("anyOf")
	if !ok {
		return nil, 0, false
	}
	arms, ok := value.(node.Array)
	if !ok || len(arms) != 2 {
		return nil, 0, false
	}
	var nonNull *node.Object
	index, nulls := 0, 0
	for i, arm := range arms {
		branch, ok := arm.(*node.Object)
		if !ok {
			return nil, 0, false
		}
		if typeName, _ := branch.StringField("type"); typeName == "null" {
			nulls++
			continue
		}
		nonNull, index = branch, i
	}
	if nulls != 1 {
		return nil, 0, false
	}
	return nonNull, index, true
}

func (r *Resolver) resolveEnum(obj *node.Object, path string) (Type, error) {
	value, ok := obj.Get("enum")
	values, isArray := value.(node.Array)
	if !ok || !isArray {
		return nil, newError(ErrMissingEnumValues, label(obj), path)
	}
	result := &Enum{Values: make([]string, 0, len(values))}
	for i, item := range values {
		text, ok := node.Text(item)
		if !ok {
			return nil, newError(ErrMissingEnumValues, label(obj), path+"/enum/"+strconv.Itoa(i))
		}
		result.Values = append(result.Values, text)
	}
	return result, nil
}

func (r *Resolver) resolveObject(obj *node.Object, path string, depth int) (Type, error) {
	result := &Object{}
	if value, ok := obj.Get("properties"); ok {
		properties, ok := value.(*node.Object)
		if !ok {
			return nil, newError(ErrNotAnObject, "properties", path)
		}
		parentDescription, _ := obj.StringField("description")
		result.Properties = make([]*Parameter, 0, properties.Len())
		for _, field := range properties.Fields() {
			propertyPath := path + "/properties/" + field.Key
			property, ok := field.Value.(*node.Object)
			if !ok {
				return nil, newError(ErrNotAnObject, field.Key, propertyPath)
			}
			propertyType, err := r.resolve(property, propertyPath, depth)
			if err != nil {
				return nil, err
			}
			description, _ := property.StringField("description")
			if r.descriptions == ParentDescription {
				description = parentDescription
			}
			result.Properties = append(result.Properties, &Parameter{Name: field.Key, Description: description, Type: propertyType})
		}
	}

	result.Required = stringList(obj, "required")

	if value, ok := obj.Get("additionalProperties"); ok {
		switch actual := value.(type) {
		case node.Bool:
			allowed := bool(actual)
			result.AdditionalProperties = &allowed
		case *node.Object:
			allowed := true
			additionalType, err := r.resolve(actual, path+"/additionalProperties", depth)
			if err != nil {
				return nil, err
			}
			result.AdditionalProperties = &allowed
			result.AdditionalPropertiesType = additionalType
		}
	}
	return result, nil
}

// stringList reads a JSON array member of scalars; non scalar items are
// skipped.
func stringList(obj *node.Object, key string) []string {
	value, ok := obj.Get(key)
	if !ok {
		return nil
	}
	items, ok := value.(node.Array)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := node.Text(item); ok {
			result = append(result, text)
		}
	}
	return result
}

// label names a node for diagnostics: title, then description.
func label(obj *node.Object) string {
	if title, ok := obj.StringField("title"); ok {
		return title
	}
	description, _ := obj.StringField("description")
	return description
}
