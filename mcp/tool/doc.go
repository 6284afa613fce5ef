// Package tool bridges remote MCP tools and their descriptors. It provides
// registry-wide tool names and the Proxy that discovers the tools of one
// server, validates call arguments against their descriptors and forwards the
// calls.
package tool
