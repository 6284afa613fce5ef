// Package matcher selects registry tool names with the pattern syntax shared by
// the CLI commands.
package matcher

import (
	"path"
	"strings"
)

// Match reports whether name satisfies pattern. A pattern is a comma separated
// list of alternatives; each alternative is either "*", a glob (when it holds
// *, ? or [) or a plain prefix. Slashes in an alternative are read as
// underscores so that server names can be given in either notation.
func Match(pattern, name string) bool {
	for _, alternative := range strings.Split(pattern, ",") {
		if matchOne(strings.TrimSpace(alternative), name) {
			return true
		}
	}
	return false
}

func matchOne(pattern, name string) bool {
	switch pattern {
	case "":
		return false
	case "*":
		return true
	}
	pattern = strings.ReplaceAll(pattern, "/", "_")
	name = strings.ReplaceAll(name, "/", "_")
	if strings.ContainsAny(pattern, "*?[") {
		matched, err := path.Match(pattern, name)
		return err == nil && matched
	}
	return strings.HasPrefix(name, pattern)
}

// Filter returns the names that satisfy pattern, keeping their order.
func Filter(pattern string, names []string) []string {
	var result []string
	for _, name := range names {
		if Match(pattern, name) {
			result = append(result, name)
		}
	}
	return result
}
