package tool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coretool "github.com/viant/mcp-tooldesc/mcp/tool"
	"github.com/viant/mcp-tooldesc/mcp/tool/conversion"
)

func TestCheckArguments(t *testing.T) {
	d, err := conversion.ParseToolJSON([]byte(`{"name":"ticket","inputSchema":{"properties":{
		"status":{"type":"enum","enum":["open","closed"]},
		"labels":{"type":"array","items":{"type":"enum","enum":["bug","feature"]}},
		"owner":{"type":"object","properties":{"role":{"type":"enum","enum":["dev","qa"]}}},
		"flags":{"type":"object","additionalProperties":{"type":"enum","enum":["on","off"]}},
		"title":{"type":"string"}
	},"required":["title"]}}`))
	require.NoError(t, err)

	testCases := []struct {
		name string
		args map[string]interface{}
		err  error
	}{
		{name: "valid", args: map[string]interface{}{
			"title":  "x",
			"status": "open",
			"labels": []interface{}{"bug", "feature"},
			"owner":  map[string]interface{}{"role": "qa"},
			"flags":  map[string]interface{}{"beta": "on"},
		}},
		{name: "top level enum", args: map[string]interface{}{"title": "x", "status": "pending"}, err: coretool.ErrInvalidEnum},
		{name: "list item enum", args: map[string]interface{}{"title": "x", "labels": []interface{}{"bug", "chore"}}, err: coretool.ErrInvalidEnum},
		{name: "nested enum", args: map[string]interface{}{"title": "x", "owner": map[string]interface{}{"role": "pm"}}, err: coretool.ErrInvalidEnum},
		{name: "additional property enum", args: map[string]interface{}{"title": "x", "flags": map[string]interface{}{"beta": "maybe"}}, err: coretool.ErrInvalidEnum},
		{name: "non string enum left to marshal", args: map[string]interface{}{"title": "x", "status": 1}},
		{name: "missing", args: map[string]interface{}{"status": "open"}, err: coretool.ErrMissingArgument},
		{name: "unknown", args: map[string]interface{}{"title": "x", "priority": 1}, err: coretool.ErrUnknownArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := coretool.CheckArguments(d, tc.args)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
