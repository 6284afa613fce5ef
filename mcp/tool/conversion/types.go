package conversion

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
	"github.com/viant/x"
)

// typeRegistry holds the argument structs generated for tools, keyed by
// package path (the server name, when known) and tool name.
var typeRegistry = x.NewRegistry()

// signatures records the descriptor each registered struct was built from;
// a tool redeclared with another shape gets a fresh struct.
var signatures = struct {
	sync.Mutex
	byKey map[string]string
}{byKey: map[string]string{}}

// Registry returns the registry of generated argument structs.
func Registry() *x.Registry {
	return typeRegistry
}

// TypeKey returns the registry key of the argument struct of tool name
// within pkgPath.
func TypeKey(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}

// LookupType returns the registered argument struct of a tool, or nil.
func LookupType(pkgPath, name string) reflect.Type {
	registered := typeRegistry.Lookup(TypeKey(pkgPath, name))
	if registered == nil {
		return nil
	}
	return registered.Type
}

var (
	stringType    = reflect.TypeOf("")
	int64Type     = reflect.TypeOf(int64(0))
	float64Type   = reflect.TypeOf(float64(0))
	boolType      = reflect.TypeOf(true)
	interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
	genericMap    = reflect.TypeOf(map[string]interface{}{})
)

// TypeOf returns the Go type matching a parameter type: primitives map to
// string/int64/float64/bool, enums to string, lists to slices and objects to
// generated structs. An object declaring only additionalProperties becomes a
// map.
func TypeOf(t descriptor.Type) reflect.Type {
	switch actual := t.(type) {
	case descriptor.Primitive:
		switch actual {
		case descriptor.String:
			return stringType
		case descriptor.Integer:
			return int64Type
		case descriptor.Float:
			return float64Type
		case descriptor.Boolean:
			return boolType
		}
	case *descriptor.Enum:
		return stringType
	case *descriptor.List:
		return reflect.SliceOf(TypeOf(actual.Items))
	case *descriptor.Object:
		if len(actual.Properties) == 0 {
			if actual.AdditionalPropertiesType != nil {
				return reflect.MapOf(stringType, TypeOf(actual.AdditionalPropertiesType))
			}
			if actual.AdditionalProperties != nil && !*actual.AdditionalProperties {
				return reflect.StructOf([]reflect.StructField{})
			}
			return genericMap
		}
		return reflect.StructOf(buildFields(actual.Properties, actual.IsRequired))
	}
	return interfaceType
}

// StructType returns the argument struct of a tool without a package path.
// A tool without parameters yields an empty struct.
func StructType(tool *descriptor.Tool) reflect.Type {
	return StructTypeIn("", tool)
}

// StructTypeIn returns the argument struct of a tool registered under pkgPath,
// generating and registering it when it is missing or was built from a
// different descriptor.
func StructTypeIn(pkgPath string, tool *descriptor.Tool) reflect.Type {
	key := TypeKey(pkgPath, tool.Name)
	signature := signatureOf(tool)

	signatures.Lock()
	defer signatures.Unlock()
	if signatures.byKey[key] == signature {
		if cached := LookupType(pkgPath, tool.Name); cached != nil {
			return cached
		}
	}
	structType := buildStruct(tool)
	typeRegistry.Register(x.NewType(structType, x.WithName(tool.Name), x.WithPkgPath(pkgPath)))
	signatures.byKey[key] = signature
	return structType
}

func buildStruct(tool *descriptor.Tool) reflect.Type {
	params := tool.Parameters()
	if len(params) == 0 {
		return reflect.StructOf([]reflect.StructField{})
	}
	required := func(name string) bool {
		_, isRequired := tool.Parameter(name)
		return isRequired
	}
	return reflect.StructOf(buildFields(params, required))
}

func signatureOf(tool *descriptor.Tool) string {
	data, err := json.Marshal(tool)
	if err != nil {
		return ""
	}
	return string(data)
}

// buildFields creates one exported field per parameter. Optional scalar and
// struct fields are pointers so that explicit zero values survive omitempty.
func buildFields(params []*descriptor.Parameter, isRequired func(string) bool) []reflect.StructField {
	fields := make([]reflect.StructField, 0, len(params))
	used := make(map[string]bool, len(params))
	for _, param := range params {
		fieldType := TypeOf(param.Type)
		tagName := param.Name
		if !isRequired(param.Name) {
			tagName += ",omitempty"
			switch fieldType.Kind() {
			case reflect.Slice, reflect.Map, reflect.Interface:
			default:
				fieldType = reflect.PointerTo(fieldType)
			}
		}
		tag := fmt.Sprintf("json:%q", tagName)
		if param.Description != "" {
			tag += fmt.Sprintf(" description:%q", param.Description)
		}
		if enum, ok := param.Type.(*descriptor.Enum); ok {
			for _, value := range enum.Values {
				tag += fmt.Sprintf(" choice:%q", value)
			}
		}
		fields = append(fields, reflect.StructField{
			Name: fieldName(param.Name, used),
			Type: fieldType,
			Tag:  reflect.StructTag(tag),
		})
	}
	return fields
}

// fieldName derives a unique exported Go identifier from a property name.
func fieldName(name string, used map[string]bool) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	candidate := b.String()
	if candidate == "" || !unicode.IsUpper([]rune(candidate)[0]) {
		candidate = "F" + candidate
	}
	unique := candidate
	for i := 2; used[unique]; i++ {
		unique = candidate + strconv.Itoa(i)
	}
	used[unique] = true
	return unique
}

// Marshal coerces call arguments into the tool's declared shape: values are
// decoded into the generated struct and encoded back, so mistyped values fail
// and undeclared fields are dropped. Enum values are only checked to be
// strings here; membership is checked by tool.CheckArguments.
func Marshal(tool *descriptor.Tool, args map[string]interface{}) (map[string]interface{}, error) {
	return MarshalIn("", tool, args)
}

// MarshalIn is Marshal with the argument struct registered under pkgPath.
func MarshalIn(pkgPath string, tool *descriptor.Tool, args map[string]interface{}) (map[string]interface{}, error) {
	instance := reflect.New(StructTypeIn(pkgPath, tool))
	if len(args) > 0 {
		data, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments of %q: %w", tool.Name, err)
		}
		if err := json.Unmarshal(data, instance.Interface()); err != nil {
			return nil, fmt.Errorf("invalid arguments for %q: %w", tool.Name, err)
		}
	}
	data, err := json.Marshal(instance.Interface())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments of %q: %w", tool.Name, err)
	}
	result := map[string]interface{}{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
