package tool_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coretool "github.com/viant/mcp-tooldesc/mcp/tool"
	"github.com/viant/mcp-tooldesc/mcp/demo"
	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"

	"github.com/viant/jsonrpc"
	transport "github.com/viant/jsonrpc/transport"
	mcp "github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpLogger "github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	mcpclient "github.com/viant/mcp/client"
)

// echoHandler is a minimal tool that echos back the provided message.
func echoHandler(_ context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	msg, _ := req.Params.Arguments["message"].(string)
	return &mcpschema.CallToolResult{Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: msg,
	}}}, nil
}

// failHandler reports a tool level failure.
func failHandler(_ context.Context, _ *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	isError := true
	return &mcpschema.CallToolResult{IsError: &isError, Content: []mcpschema.CallToolResultContentElem{{
		Type: "text",
		Text: "boom",
	}}}, nil
}

// newTestServer spins up an in-process server exposing echo, fail and a
// tool with a defective schema, and returns a client connected to it.
func newTestServer(t *testing.T) mcpclient.Interface {
	t.Helper()

	newImpl := func(ctx context.Context, notifier transport.Notifier, logger mcpLogger.Logger, client protocolclient.Operations) (protoserver.Handler, error) {
		impl := protoserver.NewDefaultHandler(notifier, logger, client)

		inputSchema := mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"message": {"type": "string"},
				"repeat":  {"type": "integer"},
			},
			Required: []string{"message"},
		}
		outputSchema := &mcpschema.ToolOutputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"message": {"type": "string"},
			},
			Required: []string{"message"},
		}
		brokenSchema := mcpschema.ToolInputSchema{
			Type: "object",
			Properties: map[string]map[string]interface{}{
				"ids": {"type": "array"},
			},
		}

		impl.RegisterToolWithSchema("echo", "echo message back", inputSchema, outputSchema, echoHandler)
		impl.RegisterToolWithSchema("fail", "always fails", mcpschema.ToolInputSchema{Type: "object"}, outputSchema, failHandler)
		impl.RegisterToolWithSchema("broken", "defective schema", brokenSchema, outputSchema, echoHandler)
		return impl, nil
	}

	srv, err := mcp.NewServer(newImpl, nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	ctx := context.Background()
	cli := srv.AsClient(ctx)
	if _, err := cli.Initialize(ctx); err != nil {
		t.Fatalf("failed to initialize client: %v", err)
	}
	return cli
}

func TestProxy_SkipsDefectiveTools(t *testing.T) {
	ctx := context.Background()
	cli := newTestServer(t)

	proxy, err := coretool.NewProxy(ctx, "test", cli)
	require.NoError(t, err)

	_, ok := proxy.Lookup("broken")
	assert.False(t, ok, "defective tool should be skipped")

	echo, ok := proxy.Lookup("echo")
	require.True(t, ok)
	require.Len(t, echo.Required, 1)
	assert.EqualValues(t, "message", echo.Required[0].Name)
	assert.EqualValues(t, descriptor.String, echo.Required[0].Type)
	require.Len(t, echo.Optional, 1)
	assert.EqualValues(t, descriptor.Integer, echo.Optional[0].Type)
	assert.Len(t, proxy.Tools(), 2)
}

func TestProxy_AbortOnError(t *testing.T) {
	ctx := context.Background()
	cli := newTestServer(t)

	_, err := coretool.NewProxy(ctx, "test", cli, coretool.WithErrorPolicy(coretool.AbortOnError))
	require.Error(t, err)
	assert.ErrorIs(t, err, descriptor.ErrMissingItems)
}

func TestProxy_Call(t *testing.T) {
	ctx := context.Background()
	proxy, err := coretool.NewProxy(ctx, "test", newTestServer(t))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		tool     string
		input    interface{}
		expected string
		err      error
	}{
		{name: "echo", tool: "echo", input: map[string]interface{}{"message": "hello"}, expected: "hello"},
		{name: "json input", tool: "echo", input: `{"message":"hi","repeat":2}`, expected: "hi"},
		{name: "missing required", tool: "echo", input: map[string]interface{}{"repeat": 1}, err: coretool.ErrMissingArgument},
		{name: "unknown argument", tool: "echo", input: map[string]interface{}{"message": "x", "loud": true}, err: coretool.ErrUnknownArgument},
		{name: "unknown tool", tool: "nope", input: nil, err: coretool.ErrUnknownTool},
		{name: "tool failure", tool: "fail", input: nil, err: coretool.ErrToolFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := proxy.Call(ctx, tc.tool, tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, out)
		})
	}

	_, err = proxy.Call(ctx, "echo", map[string]interface{}{"message": "x", "repeat": "twice"})
	assert.Error(t, err, "mistyped argument must be rejected before dispatch")
}

func TestProxy_Demo(t *testing.T) {
	ctx := context.Background()
	cli, err := demo.Client(ctx)
	require.NoError(t, err)

	proxy, err := coretool.NewProxy(ctx, "demo", cli)
	require.NoError(t, err)

	hello, ok := proxy.Lookup("hello")
	require.True(t, ok)
	assert.Empty(t, hello.Required)
	require.Len(t, hello.Optional, 1)
	assert.EqualValues(t, &descriptor.Parameter{Name: "name", Description: "Who to greet", Type: descriptor.String}, hello.Optional[0])

	out, err := proxy.Call(ctx, "hello", nil)
	require.NoError(t, err)
	assert.EqualValues(t, "Hello, stranger!", out)

	out, err = proxy.Call(ctx, "hello", map[string]interface{}{"name": "world"})
	require.NoError(t, err)
	assert.EqualValues(t, "Hello, world!", out)
}

func TestParseErrorPolicy(t *testing.T) {
	policy, err := coretool.ParseErrorPolicy("")
	require.NoError(t, err)
	assert.EqualValues(t, coretool.SkipOnError, policy)

	policy, err = coretool.ParseErrorPolicy("ABORT")
	require.NoError(t, err)
	assert.EqualValues(t, coretool.AbortOnError, policy)

	_, err = coretool.ParseErrorPolicy("retry")
	assert.Error(t, err)
}
