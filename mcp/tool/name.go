package tool

import "strings"

// Name is a registry-wide tool name in the form <server>-<tool>, where
// slashes in the server name are stored as underscores.
type Name string

// Server returns the server part in slash notation.
func (t Name) Server() string {
	tool := string(t)
	if idx := strings.Index(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return ""
}

// Tool returns the remote tool name.
func (t Name) Tool() string {
	tool := string(t)
	if idx := strings.Index(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return tool
}

func (t Name) String() string {
	return string(t)
}

// NewName qualifies a remote tool name with its server.
func NewName(server, tool string) Name {
	return Name(strings.ReplaceAll(server, "/", "_") + "-" + tool)
}
