package conv

import (
	"encoding/json"
	"fmt"
)

// Pointer returns a pointer to a copy of value.
func Pointer[T any](value T) *T {
	return &value
}

// Dereference returns the pointed value or the zero value for nil.
func Dereference[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// ToMap converts tool arguments into a JSON object. Maps pass through, nil
// yields an empty map and anything else goes through a JSON round-trip.
func ToMap(in any) (map[string]interface{}, error) {
	switch actual := in.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		if actual == nil {
			return map[string]interface{}{}, nil
		}
		return actual, nil
	case []byte:
		return decodeObject(actual)
	case json.RawMessage:
		return decodeObject(actual)
	case string:
		return decodeObject([]byte(actual))
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}
	return decodeObject(data)
}

func decodeObject(data []byte) (map[string]interface{}, error) {
	if len(data) == 0 {
		return map[string]interface{}{}, nil
	}
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	if result == nil {
		result = map[string]interface{}{}
	}
	return result, nil
}
