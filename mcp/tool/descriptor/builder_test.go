package descriptor

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(params []*Parameter) []string {
	result := make([]string, len(params))
	for i, p := range params {
		result[i] = p.Name
	}
	return result
}

func TestBuild_Partition(t *testing.T) {
	testCases := []struct {
		name             string
		properties       string
		required         []string
		expectedRequired []string
		expectedOptional []string
	}{
		{
			name:             "required keep original order",
			properties:       `{"a":{"type":"string"},"b":{"type":"integer"},"c":{"type":"boolean"}}`,
			required:         []string{"c", "a"},
			expectedRequired: []string{"a", "c"},
			expectedOptional: []string{"b"},
		},
		{
			name:             "unknown required name is ignored",
			properties:       `{"a":{"type":"string"}}`,
			required:         []string{"z"},
			expectedRequired: []string{},
			expectedOptional: []string{"a"},
		},
		{
			name:             "no properties",
			properties:       `{}`,
			required:         []string{"a"},
			expectedRequired: []string{},
			expectedOptional: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tool, err := Build("tool", "desc", parseNode(t, tc.properties), tc.required)
			require.NoError(t, err)
			assert.EqualValues(t, "tool", tool.Name)
			assert.EqualValues(t, "desc", tool.Description)
			assert.EqualValues(t, tc.expectedRequired, names(tool.Required))
			assert.EqualValues(t, tc.expectedOptional, names(tool.Optional))
		})
	}
}

func TestBuild_Descriptions(t *testing.T) {
	tool, err := Build("hello", "Says hello", parseNode(t, `{"name":{"anyOf":[{"type":"string"},{"type":"null"}],"default":null,"title":"Name","description":"who to greet"},"loud":{"type":"boolean"}}`), nil)
	require.NoError(t, err)
	require.Len(t, tool.Optional, 2)
	assert.EqualValues(t, &Parameter{Name: "name", Description: "who to greet", Type: String}, tool.Optional[0])
	assert.EqualValues(t, &Parameter{Name: "loud", Type: Boolean}, tool.Optional[1])

	p, required := tool.Parameter("loud")
	require.NotNil(t, p)
	assert.False(t, required)
	assert.Len(t, tool.Parameters(), 2)
}

func TestBuild_NilProperties(t *testing.T) {
	tool, err := Build("noop", "", nil, []string{"x"})
	require.NoError(t, err)
	assert.Empty(t, tool.Required)
	assert.Empty(t, tool.Optional)
}

func TestBuild_FailFast(t *testing.T) {
	testCases := []struct {
		name       string
		properties string
		kind       error
	}{
		{name: "property not an object", properties: `{"a":{"type":"string"},"b":42}`, kind: ErrNotAnObject},
		{name: "missing type", properties: `{"a":{"description":"no type"}}`, kind: ErrMissingType},
		{name: "missing enum values", properties: `{"a":{"type":"enum"}}`, kind: ErrMissingEnumValues},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tool, err := Build("tool", "", parseNode(t, tc.properties), nil)
			assert.Nil(t, tool)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestBuildFromSchema(t *testing.T) {
	schema := parseNode(t, `{"type":"object","properties":{"q":{"type":"string"},"limit":{"type":"integer"}},"required":["q"]}`)
	tool, err := New().BuildFromSchema("search", "find things", schema)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"q"}, names(tool.Required))
	assert.EqualValues(t, []string{"limit"}, names(tool.Optional))

	_, err = New().BuildFromSchema("bad", "", parseNode(t, `{"properties":[]}`))
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestBuild_Concurrent(t *testing.T) {
	properties := parseNode(t, `{"a":{"type":"array","items":{"anyOf":[{"type":"integer"},{"type":"null"}]}},"b":{"type":"string"}}`)
	resolver := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tool, err := resolver.Build("t", "", properties, []string{"a"})
			if assert.NoError(t, err) {
				assert.EqualValues(t, &List{Items: Integer}, tool.Required[0].Type)
			}
		}()
	}
	wg.Wait()
}

func TestTool_MarshalJSON(t *testing.T) {
	tool, err := Build("t", "", parseNode(t, `{"tags":{"type":"array","items":{"type":"enum","enum":["x"]}},"meta":{"type":"object","additionalProperties":false}}`), []string{"tags"})
	require.NoError(t, err)
	data, err := json.Marshal(tool)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name":"t",
		"requiredParameters":[{"name":"tags","type":{"type":"list","items":{"type":"enum","values":["x"]}}}],
		"optionalParameters":[{"name":"meta","type":{"type":"object","additionalProperties":false}}]
	}`, string(data))
}
