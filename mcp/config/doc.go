// Package config defines the YAML/JSON configuration of the tool descriptor
// service: resolver options, the schema error policy, logging, the demo server
// and the remote MCP servers whose tools are discovered.
package config
