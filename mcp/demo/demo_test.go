package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

func TestClient(t *testing.T) {
	ctx := context.Background()
	cli, err := Client(ctx)
	require.NoError(t, err)

	res, err := cli.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"hello", "sum"}, names)

	testCases := []struct {
		name     string
		tool     string
		args     map[string]interface{}
		expected string
	}{
		{name: "hello without name", tool: "hello", args: map[string]interface{}{}, expected: "Hello, stranger!"},
		{name: "hello with name", tool: "hello", args: map[string]interface{}{"name": "world"}, expected: "Hello, world!"},
		{name: "sum", tool: "sum", args: map[string]interface{}{"values": []interface{}{1.5, 2.5, 3}}, expected: "7"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := cli.CallTool(ctx, &mcpschema.CallToolRequestParams{
				Name:      tc.tool,
				Arguments: mcpschema.CallToolRequestParamsArguments(tc.args),
			})
			require.NoError(t, err)
			require.Len(t, out.Content, 1)
			assert.EqualValues(t, tc.expected, out.Content[0].Text)
		})
	}
}
