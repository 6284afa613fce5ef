package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/buger/jsonparser"
)

// Parse decodes a JSON document. Object members keep document order. Anything
// but whitespace after the first value is an error.
func Parse(data []byte) (Value, error) {
	value, dataType, offset, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if rest := bytes.TrimSpace(data[offset:]); len(rest) > 0 {
		return nil, fmt.Errorf("failed to parse json: unexpected data after value at offset %d", offset)
	}
	return parse(value, dataType)
}

// ParseObject decodes a JSON document that must hold an object.
func ParseObject(data []byte) (*Object, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("expected json object, but had: %s", Format(v))
	}
	return obj, nil
}

func parse(data []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(data, func(key []byte, value []byte, vType jsonparser.ValueType, _ int) error {
			item, err := parse(value, vType)
			if err != nil {
				return err
			}
			obj.set(string(key), item)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to parse json object: %w", err)
		}
		return obj, nil
	case jsonparser.Array:
		items := Array{}
		var itemErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, vType jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			item, err := parse(value, vType)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, item)
		})
		if err == nil {
			err = itemErr
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse json array: %w", err)
		}
		return items, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse json string: %w", err)
		}
		return String(s), nil
	case jsonparser.Number:
		return Number(data), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse json boolean: %w", err)
		}
		return Bool(b), nil
	case jsonparser.Null:
		return Null{}, nil
	}
	return nil, fmt.Errorf("unsupported json value: %q", data)
}

// FromAny converts a decoded Go value (as produced by encoding/json or the MCP
// protocol structs) into a Value. Map keys carry no order so they are sorted.
func FromAny(v interface{}) Value {
	switch actual := v.(type) {
	case nil:
		return Null{}
	case Value:
		return actual
	case map[string]interface{}:
		keys := make([]string, 0, len(actual))
		for k := range actual {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.set(k, FromAny(actual[k]))
		}
		return obj
	case map[string]map[string]interface{}:
		generic := make(map[string]interface{}, len(actual))
		for k, item := range actual {
			generic[k] = item
		}
		return FromAny(generic)
	case []interface{}:
		items := make(Array, len(actual))
		for i, item := range actual {
			items[i] = FromAny(item)
		}
		return items
	case []string:
		items := make(Array, len(actual))
		for i, item := range actual {
			items[i] = String(item)
		}
		return items
	case string:
		return String(actual)
	case bool:
		return Bool(actual)
	case json.Number:
		return Number(actual)
	case float64:
		return Number(strconv.FormatFloat(actual, 'g', -1, 64))
	case float32:
		return Number(strconv.FormatFloat(float64(actual), 'g', -1, 32))
	case int:
		return Number(strconv.Itoa(actual))
	case int64:
		return Number(strconv.FormatInt(actual, 10))
	case int32:
		return Number(strconv.FormatInt(int64(actual), 10))
	}
	rValue := reflect.ValueOf(v)
	if rValue.Kind() == reflect.Pointer && rValue.IsNil() {
		return Null{}
	}
	// structs and other typed values go through their JSON form
	data, err := json.Marshal(v)
	if err != nil {
		return String(fmt.Sprint(v))
	}
	parsed, err := Parse(data)
	if err != nil {
		return String(fmt.Sprint(v))
	}
	return parsed
}
