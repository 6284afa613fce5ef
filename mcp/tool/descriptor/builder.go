package descriptor

import (
	"github.com/viant/mcp-tooldesc/mcp/tool/node"
)

// Build builds a tool descriptor with the default resolver.
func Build(name, description string, properties *node.Object, required []string) (*Tool, error) {
	return defaultResolver.Build(name, description, properties, required)
}

// Build resolves every input property and partitions the parameters into
// required and optional ones, keeping declaration order in both. A required
// name without a matching property is ignored. The first schema defect aborts
// the whole tool.
func (r *Resolver) Build(name, description string, properties *node.Object, required []string) (*Tool, error) {
	requiredSet := make(map[string]struct{}, len(required))
	for _, n := range required {
		requiredSet[n] = struct{}{}
	}
	tool := &Tool{Name: name, Description: description, Required: []*Parameter{}, Optional: []*Parameter{}}
	for _, field := range properties.Fields() {
		path := "/properties/" + field.Key
		property, ok := field.Value.(*node.Object)
		if !ok {
			return nil, newError(ErrNotAnObject, field.Key, path)
		}
		paramType, err := r.resolve(property, path, 0)
		if err != nil {
			return nil, err
		}
		paramDescription, _ := property.StringField("description")
		param := &Parameter{Name: field.Key, Description: paramDescription, Type: paramType}
		if _, ok := requiredSet[field.Key]; ok {
			tool.Required = append(tool.Required, param)
		} else {
			tool.Optional = append(tool.Optional, param)
		}
	}
	return tool, nil
}

// BuildFromSchema builds a descriptor from a whole input schema object
// ({"type":"object","properties":{...},"required":[...]}).
func (r *Resolver) BuildFromSchema(name, description string, inputSchema *node.Object) (*Tool, error) {
	var properties *node.Object
	if value, ok := inputSchema.Get("properties"); ok {
		if properties, ok = value.(*node.Object); !ok {
			return nil, newError(ErrNotAnObject, "properties", "")
		}
	}
	return r.Build(name, description, properties, stringList(inputSchema, "required"))
}
