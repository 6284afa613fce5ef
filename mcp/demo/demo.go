// Package demo provides a small MCP server used by the serve command and by
// tests: hello greets an optional (nullable) name and sum adds numbers.
package demo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpLogger "github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	mcpclient "github.com/viant/mcp/client"
)

// NewHandler creates a handler exposing the demo tools; it matches the
// handler factory expected by mcp.NewServer.
func NewHandler(_ context.Context, notifier transport.Notifier, l mcpLogger.Logger, cli protocolclient.Operations) (protoserver.Handler, error) {
	impl := protoserver.NewDefaultHandler(notifier, l, cli)
	impl.RegisterToolWithSchema("hello", "Says hello", helloInput(), textOutput(), hello)
	impl.RegisterToolWithSchema("sum", "Adds numbers", sumInput(), textOutput(), sum)
	return impl, nil
}

// Client starts an in-process demo server and returns an initialized client
// bound to it.
func Client(ctx context.Context) (mcpclient.Interface, error) {
	srv, err := mcp.NewServer(NewHandler, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create demo server: %w", err)
	}
	cli := srv.AsClient(ctx)
	if _, err := cli.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize demo client: %w", err)
	}
	return cli, nil
}

func helloInput() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"name": {
				"anyOf": []interface{}{
					map[string]interface{}{"type": "string"},
					map[string]interface{}{"type": "null"},
				},
				"default":     nil,
				"title":       "Name",
				"description": "Who to greet",
			},
		},
	}
}

func sumInput() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"values": {
				"type":        "array",
				"items":       map[string]interface{}{"type": "number"},
				"description": "Numbers to add",
			},
		},
		Required: []string{"values"},
	}
}

func textOutput() *mcpschema.ToolOutputSchema {
	return &mcpschema.ToolOutputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{"text": {"type": "string"}},
	}
}

func hello(_ context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	name, _ := req.Params.Arguments["name"].(string)
	if name == "" {
		name = "stranger"
	}
	return textResult(fmt.Sprintf("Hello, %s!", name)), nil
}

func sum(_ context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	values, ok := req.Params.Arguments["values"].([]interface{})
	if !ok {
		return nil, jsonrpc.NewError(jsonrpc.InvalidParams, "values must be an array", nil)
	}
	var total float64
	for _, v := range values {
		f, ok := v.(float64)
		if !ok {
			return nil, jsonrpc.NewError(jsonrpc.InvalidParams, "values must be numbers", nil)
		}
		total += f
	}
	return textResult(strconv.FormatFloat(total, 'f', -1, 64)), nil
}

func textResult(text string) *mcpschema.CallToolResult {
	return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: text,
	}}}
}
