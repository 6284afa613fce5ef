// Package registry connects to the configured MCP servers, converts the tools
// they expose into descriptors and routes calls back to the owning server.
// Tools are addressed by registry-wide names of the form <server>-<tool>.
package registry
