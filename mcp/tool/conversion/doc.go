// Package conversion connects MCP tool definitions with parameter
// descriptors. It parses tools coming from the MCP protocol types or raw JSON
// into descriptors and generates dynamic Go struct types from descriptors so
// that call arguments can be coerced into the declared shape before dispatch.
package conversion
