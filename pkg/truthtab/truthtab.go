package truthtab

import (
	"errors"
	"fmt"
	"sort"

	"nickandperla.net/truthtab/internal/postfix"
	"nickandperla.net/truthtab/internal/render"
	"nickandperla.net/truthtab/internal/scanner"
	"nickandperla.net/truthtab/internal/store"
	"nickandperla.net/truthtab/internal/table"
)

// Table is the computed enumeration for one expression.
type Table = table.Table

// Row is a single table row.
type Row = table.Row

// Sentinel errors surfaced to callers. Both are terminal: no partial table
// is ever produced.
var (
	// ErrMismatchedBracket reports unbalanced brackets in the expression.
	ErrMismatchedBracket = postfix.ErrMismatchedBracket
	// ErrExpressionSyntax reports an expression that cannot be evaluated
	// to a single result.
	ErrExpressionSyntax = table.ErrExpressionSyntax
	// ErrNotFound reports a store lookup for a name that was never saved.
	ErrNotFound = store.ErrNotFound
)

// Compute tokenizes an expression, converts it to postfix order and
// evaluates it under every assignment of its identifiers. Leftover-value
// checking is strict; use an Engine with WithLenientEval for the permissive
// behavior.
func Compute(expression string) (*Table, error) {
	return compute(expression, table.Strict)
}

// Render computes the table for an expression and formats it as a bordered
// text grid titled with the expression.
func Render(expression string) (string, error) {
	t, err := Compute(expression)
	if err != nil {
		return "", err
	}
	return render.Render(expression, t), nil
}

func compute(expression string, mode table.Mode) (*Table, error) {
	rpn, err := postfix.Convert(scanner.Tokenize(expression))
	if err != nil {
		return nil, err
	}
	return table.Generate(rpn, mode)
}

// Engine couples the expression pipeline with an optional store of named
// expressions.
type Engine struct {
	store      store.Store
	mode       table.Mode
	noBuiltins bool
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute evaluates an expression with the engine's leftover-checking mode.
func (e *Engine) Compute(expression string) (*Table, error) {
	return compute(expression, e.mode)
}

// Render computes and formats an expression's table.
func (e *Engine) Render(expression string) (string, error) {
	t, err := e.Compute(expression)
	if err != nil {
		return "", err
	}
	return render.Render(expression, t), nil
}

// Save validates an expression and stores its source under name. Only the
// source text is persisted; tables are recomputed on demand.
func (e *Engine) Save(name, expression string) error {
	if e.store == nil {
		return errors.New("no store configured")
	}
	if _, err := e.Compute(expression); err != nil {
		return fmt.Errorf("refusing to save %q: %w", name, err)
	}
	return e.store.Put(name, expression)
}

// Load returns the expression source stored under name. Saved expressions
// shadow the builtin defaults.
func (e *Engine) Load(name string) (string, error) {
	if e.store != nil {
		source, err := e.store.Get(name)
		if err == nil {
			return source, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
	}
	if !e.noBuiltins {
		if source, ok := DefaultExpressions[name]; ok {
			return source, nil
		}
	}
	return "", store.ErrNotFound
}

// Delete removes the expression stored under name.
func (e *Engine) Delete(name string) error {
	if e.store == nil {
		return errors.New("no store configured")
	}
	return e.store.Delete(name)
}

// Names lists the available expression names in sorted order: everything in
// the store plus any builtin defaults not shadowed by a saved expression.
func (e *Engine) Names() ([]string, error) {
	seen := make(map[string]bool)
	var names []string

	if e.store != nil {
		stored, err := e.store.Names()
		if err != nil {
			return nil, err
		}
		for _, name := range stored {
			seen[name] = true
			names = append(names, name)
		}
	}
	if !e.noBuiltins {
		for name := range DefaultExpressions {
			if !seen[name] {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// Close releases resources.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}
