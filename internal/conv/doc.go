// Package conv holds small value helpers shared by the tool proxy and CLI:
// pointer helpers for optional protocol fields and argument coercion into
// generic JSON objects.
package conv
