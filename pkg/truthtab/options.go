// Package truthtab provides the public API for generating truth tables from
// infix boolean algebra expressions.
package truthtab

import (
	"nickandperla.net/truthtab/internal/store"
	"nickandperla.net/truthtab/internal/table"
)

// Option configures an Engine.
type Option func(*Engine)

// Store interface for custom stores.
type Store = store.Store

// WithSQLiteStore configures SQLite persistence at the given path.
func WithSQLiteStore(path string) Option {
	return func(e *Engine) {
		s, err := store.NewSQLite(path)
		if err == nil {
			e.store = s
		}
	}
}

// WithMemoryStore configures an in-memory store (for testing).
func WithMemoryStore() Option {
	return func(e *Engine) {
		e.store = store.NewMemory()
	}
}

// WithStore sets a custom store implementation.
func WithStore(s Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithNoBuiltins disables the builtin default expressions.
func WithNoBuiltins() Option {
	return func(e *Engine) {
		e.noBuiltins = true
	}
}

// WithLenientEval makes the engine keep the first leftover evaluation value
// instead of rejecting expressions that leave more than one. An expression
// that leaves no value at all is rejected either way.
func WithLenientEval() Option {
	return func(e *Engine) {
		e.mode = table.Lenient
	}
}
