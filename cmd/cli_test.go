package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConfigPath(t *testing.T) {
	testCases := []struct {
		args     []string
		expected string
	}{
		{args: []string{"list-tools", "-f", "cfg.yaml"}, expected: "cfg.yaml"},
		{args: []string{"--config=cfg.yaml", "tool"}, expected: "cfg.yaml"},
		{args: []string{"list-tools", "-f"}, expected: ""},
		{args: nil, expected: ""},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, extractConfigPath(tc.args), "%v", tc.args)
	}
}

func TestCommandName(t *testing.T) {
	assert.EqualValues(t, "tool", commandName([]string{"-f", "cfg.yaml", "tool", "-n", "x"}))
	assert.EqualValues(t, "parse", commandName([]string{"--config=cfg.yaml", "parse"}))
	assert.EqualValues(t, "", commandName([]string{"--help"}))
}

func TestParseCmd(t *testing.T) {
	document := `{"name":"search","description":"Find documents","inputSchema":{"type":"object",
		"properties":{"query":{"type":"string","description":"text"},"limit":{"anyOf":[{"type":"integer"},{"type":"null"}]}},
		"required":["query"]}}`
	path := filepath.Join(t.TempDir(), "search.json")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	var out bytes.Buffer
	stdout = &out
	defer func() { stdout = os.Stdout }()

	require.NoError(t, (&ParseCmd{Source: path}).Execute(nil))
	text := out.String()
	assert.Contains(t, text, "Name : search")
	assert.Contains(t, text, "Required:")
	assert.Contains(t, text, "query")
	assert.Contains(t, text, "Optional:")
	assert.Contains(t, text, "limit")

	out.Reset()
	require.NoError(t, (&ParseCmd{Source: path, JSON: true}).Execute(nil))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.EqualValues(t, "search", decoded["name"])

	assert.Error(t, (&ParseCmd{Source: filepath.Join(t.TempDir(), "missing.json")}).Execute(nil))
}
