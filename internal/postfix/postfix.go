// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package postfix converts infix token sequences to postfix
// (reverse-polish) order via the shunting-yard algorithm.
package postfix

import (
	"errors"

	"nickandperla.net/truthtab/internal/token"
)

// ErrMismatchedBracket is returned when brackets in the input do not pair
// up: a stray right bracket, or a left bracket that is never closed.
var ErrMismatchedBracket = errors.New("no matching bracket found")

// Convert reorders an infix token sequence into postfix order. Identifiers
// and constants pass straight through; operators are reordered by the
// precedence and associativity tables; brackets group and are consumed, so
// they never appear in the output.
func Convert(tokens []token.Token) ([]token.Token, error) {
	output := make([]token.Token, 0, len(tokens))
	var stack []token.Token

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Identifier, token.Constant:
			output = append(output, tok)

		case token.Operator:
			// Pop while the stacked operator should be applied first:
			// equal precedence wins for a left-associative operator,
			// strictly higher precedence wins regardless.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != token.Operator {
					break
				}
				left := token.Associativity(tok.Op) == token.AssocLeft &&
					token.Precedence(tok.Op) <= token.Precedence(top.Op)
				if !left && token.Precedence(tok.Op) >= token.Precedence(top.Op) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case token.LeftBracket:
			stack = append(stack, tok)

		case token.RightBracket:
			// Unwind to the matching left bracket, which is discarded.
			for {
				if len(stack) == 0 {
					return nil, ErrMismatchedBracket
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LeftBracket {
					break
				}
				output = append(output, top)
			}
		}
	}

	// Drain the stack. A leftover bracket means its partner never arrived.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LeftBracket || top.Kind == token.RightBracket {
			return nil, ErrMismatchedBracket
		}
		output = append(output, top)
	}

	return output, nil
}
