// Package cmd implements all sub-commands that make up the tooldesc
// command-line interface. Each file in this directory registers a single
// sub-command (parse, list-tools, tool, exec, serve). The plumbing that is
// shared between commands such as configuration loading or registry
// initialisation is located in shared.go.
package cmd
