// Package descriptor converts MCP tool input JSON Schemas into typed parameter
// descriptors.
//
// Supported schema keywords are type (string, integer, number, boolean, enum,
// array, object), items, properties, required, additionalProperties, enum and
// a two arm nullable anyOf ({"anyOf": [X, {"type": "null"}]}) which resolves to
// X. Resolution is pure: no state survives a call.
package descriptor
