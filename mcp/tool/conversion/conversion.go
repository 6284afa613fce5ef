package conversion

import (
	"fmt"

	"github.com/viant/mcp-tooldesc/internal/conv"
	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
	"github.com/viant/mcp-tooldesc/mcp/tool/node"
	schema "github.com/viant/mcp-protocol/schema"
)

// ParseTool converts an MCP tool definition into a descriptor. The protocol
// type stores properties in a Go map, so parameters come out in name order;
// use ParseToolJSON to keep declaration order.
func ParseTool(tool schema.Tool, opts ...descriptor.Option) (*descriptor.Tool, error) {
	properties, _ := node.FromAny(tool.InputSchema.Properties).(*node.Object)
	result, err := descriptor.New(opts...).Build(tool.Name, conv.Dereference[string](tool.Description), properties, tool.InputSchema.Required)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool %q: %w", tool.Name, err)
	}
	return result, nil
}

// ParseToolJSON parses a tool document shaped as
// {"name": ..., "description": ..., "inputSchema": {...}}.
func ParseToolJSON(data []byte, opts ...descriptor.Option) (*descriptor.Tool, error) {
	doc, err := node.ParseObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool document: %w", err)
	}
	name, ok := doc.StringField("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("tool document has no name")
	}
	description, _ := doc.StringField("description")
	var inputSchema *node.Object
	if value, ok := doc.Get("inputSchema"); ok {
		if inputSchema, ok = value.(*node.Object); !ok {
			return nil, fmt.Errorf("tool %q: inputSchema must be an object", name)
		}
	}
	result, err := descriptor.New(opts...).BuildFromSchema(name, description, inputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool %q: %w", name, err)
	}
	return result, nil
}

// ParseInputSchemaJSON builds a descriptor from a bare input schema document.
func ParseInputSchemaJSON(name, description string, data []byte, opts ...descriptor.Option) (*descriptor.Tool, error) {
	inputSchema, err := node.ParseObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input schema of %q: %w", name, err)
	}
	result, err := descriptor.New(opts...).BuildFromSchema(name, description, inputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tool %q: %w", name, err)
	}
	return result, nil
}

// ParseTools converts tools one by one. With skip set, defective tools are
// reported through onSkip and left out; otherwise the first error is returned.
func ParseTools(tools []schema.Tool, skip bool, onSkip func(tool schema.Tool, err error), opts ...descriptor.Option) ([]*descriptor.Tool, error) {
	result := make([]*descriptor.Tool, 0, len(tools))
	for _, tool := range tools {
		parsed, err := ParseTool(tool, opts...)
		if err != nil {
			if !skip {
				return nil, err
			}
			if onSkip != nil {
				onSkip(tool, err)
			}
			continue
		}
		result = append(result, parsed)
	}
	return result, nil
}
