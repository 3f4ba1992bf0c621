// Package store provides persistence for named boolean algebra expressions.
// Implementations hold expression source text only; computed tables are
// never stored, they are recomputed on demand.
package store

import "errors"

// ErrNotFound is returned by Get when no expression has the given name.
var ErrNotFound = errors.New("expression not found")

// Store is the interface for expression persistence.
type Store interface {
	// Get retrieves an expression source by name.
	Get(name string) (string, error)
	// Put stores an expression source by name, overwriting if it exists.
	Put(name, source string) error
	// Delete removes an expression by name.
	Delete(name string) error
	// Names lists stored expression names in sorted order.
	Names() ([]string, error)
	// Close releases resources.
	Close() error
}
