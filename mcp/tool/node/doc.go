// Package node defines a closed, order-preserving representation of JSON
// values used as input to schema conversion.
package node
