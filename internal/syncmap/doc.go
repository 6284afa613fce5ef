// Package syncmap offers a concurrency-safe generic map that remembers
// insertion order, used to hold discovered tool entries.
package syncmap
