package descriptor

import (
	"errors"
	"fmt"
)

// Error kinds. All of them describe structural schema defects and are not
// retryable.
var (
	ErrMissingType       = errors.New("parameter must have type property")
	ErrMissingItems      = errors.New("array type parameters must have items property")
	ErrMissingEnumValues = errors.New("enum type parameters must have enum values")
	ErrUnsupportedType   = errors.New("unsupported parameter type")
	ErrNotAnObject       = errors.New("parameter must be a JSON object")
	ErrDepthExceeded     = errors.New("nullable type nesting exceeds max depth")
)

// SchemaError reports a schema defect found during conversion. Use errors.Is
// with one of the Err* kinds to classify it.
type SchemaError struct {
	Kind error
	// Name is the kind specific subject: node title/description for missing
	// types, the type string for unsupported types, the property name for
	// non-object properties.
	Name string
	// Path locates the offending node, e.g. /properties/tags/items.
	Path string
}

func newError(kind error, name, path string) *SchemaError {
	return &SchemaError{Kind: kind, Name: name, Path: path}
}

func (e *SchemaError) Error() string {
	msg := e.Kind.Error()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Name)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Kind }
