package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap(t *testing.T) {
	type args struct {
		Name  string `json:"name"`
		Count int    `json:"count,omitempty"`
	}
	testCases := []struct {
		name      string
		input     any
		expected  map[string]interface{}
		expectErr bool
	}{
		{name: "nil", input: nil, expected: map[string]interface{}{}},
		{name: "map", input: map[string]interface{}{"a": 1}, expected: map[string]interface{}{"a": 1}},
		{name: "struct", input: args{Name: "world"}, expected: map[string]interface{}{"name": "world"}},
		{name: "json text", input: `{"name":"x","count":2}`, expected: map[string]interface{}{"name": "x", "count": float64(2)}},
		{name: "json null", input: []byte(`null`), expected: map[string]interface{}{}},
		{name: "empty bytes", input: []byte{}, expected: map[string]interface{}{}},
		{name: "json array", input: `[1]`, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ToMap(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}

func TestPointer(t *testing.T) {
	assert.EqualValues(t, "x", *Pointer("x"))
	assert.EqualValues(t, "", Dereference[string](nil))
	assert.EqualValues(t, 3, Dereference(Pointer(3)))
}
