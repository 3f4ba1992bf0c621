// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package table evaluates postfix boolean programs over every possible
// assignment of their identifiers.
package table

import (
	"errors"
	"sort"

	"nickandperla.net/truthtab/internal/token"
)

// ErrExpressionSyntax is returned when a postfix program cannot be evaluated
// to a single result: an operator finds too few operands, or the program
// leaves the wrong number of values behind.
var ErrExpressionSyntax = errors.New("invalid boolean algebra expression syntax")

// Mode selects how leftover evaluation values are treated.
type Mode int

const (
	// Strict rejects any program that does not leave exactly one value on
	// the stack.
	Strict Mode = iota
	// Lenient takes the first leftover value as the result and ignores the
	// rest. A program that leaves no value at all is an error in both
	// modes.
	Lenient
)

// Row pairs one input assignment with the expression output. Inputs follow
// the table's identifier order.
type Row struct {
	Inputs []bool
	Out    bool
}

// Table is the complete enumeration for one expression: every assignment of
// the distinct identifiers, one row each.
type Table struct {
	Identifiers []rune // distinct, alphabetical
	Rows        []Row  // 2^len(Identifiers) rows in binary-counter order
}

// Generate evaluates the postfix program under every assignment of its
// identifiers. Rows run in binary-counter order: the first row is all-false,
// the alphabetically last identifier is the least significant bit, and the
// enumeration stops when the counter overflows back to all-false.
func Generate(postfix []token.Token, mode Mode) (*Table, error) {
	ids := identifiers(postfix)

	assignment := make(map[rune]bool, len(ids))
	for _, id := range ids {
		assignment[id] = false
	}

	t := &Table{Identifiers: ids}
	rows := 1 << len(ids)
	for i := 0; i < rows; i++ {
		out, err := run(postfix, assignment, mode)
		if err != nil {
			return nil, err
		}

		inputs := make([]bool, len(ids))
		for j, id := range ids {
			inputs[j] = assignment[id]
		}
		t.Rows = append(t.Rows, Row{Inputs: inputs, Out: out})

		increment(ids, assignment)
	}
	return t, nil
}

// identifiers returns the distinct identifier letters of a program in
// alphabetical order.
func identifiers(postfix []token.Token) []rune {
	seen := make(map[rune]bool)
	var ids []rune
	for _, tok := range postfix {
		if tok.Kind == token.Identifier && !seen[tok.Name] {
			seen[tok.Name] = true
			ids = append(ids, tok.Name)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// increment advances the assignment one step of a binary counter whose least
// significant bit is the alphabetically last identifier.
func increment(ids []rune, assignment map[rune]bool) {
	for i := len(ids) - 1; i >= 0; i-- {
		assignment[ids[i]] = !assignment[ids[i]]
		if assignment[ids[i]] {
			return
		}
	}
}

// run evaluates the postfix program under one assignment with a value stack.
func run(postfix []token.Token, assignment map[rune]bool, mode Mode) (bool, error) {
	var stack []bool

	pop := func() (bool, bool) {
		if len(stack) == 0 {
			return false, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range postfix {
		switch tok.Kind {
		case token.Identifier:
			stack = append(stack, assignment[tok.Name])
		case token.Constant:
			stack = append(stack, tok.Value)
		case token.Operator:
			if token.Operands(tok.Op) == 1 {
				a, ok := pop()
				if !ok {
					return false, ErrExpressionSyntax
				}
				stack = append(stack, !a)
				continue
			}
			// Right operand is on top of the stack.
			b, ok := pop()
			if !ok {
				return false, ErrExpressionSyntax
			}
			a, ok := pop()
			if !ok {
				return false, ErrExpressionSyntax
			}
			stack = append(stack, apply(tok.Op, a, b))
		default:
			// Brackets never survive conversion.
			return false, ErrExpressionSyntax
		}
	}

	if len(stack) == 0 {
		return false, ErrExpressionSyntax
	}
	if mode == Strict && len(stack) != 1 {
		return false, ErrExpressionSyntax
	}
	return stack[0], nil
}

func apply(op rune, a, b bool) bool {
	switch op {
	case token.RuneAnd:
		return a && b
	case token.RuneOr:
		return a || b
	case token.RuneXor:
		return (a && !b) || (!a && b)
	}
	return false
}
