// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides the rune-by-rune tokenizer for boolean algebra
// expressions.
package scanner

import (
	"bufio"
	"io"
	"strings"

	"nickandperla.net/truthtab/internal/token"
)

// Scanner tokenizes expression input rune-by-rune. Each rune is classified
// independently; there is no lookahead.
type Scanner struct {
	reader *bufio.Reader
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Scan consumes the whole input and returns the token sequence. Runes that
// are not part of the expression grammar (whitespace, unknown symbols) are
// dropped without error; a malformed expression surfaces later, in the
// converter or the generator. The only failure mode is a reader error.
func (s *Scanner) Scan() ([]token.Token, error) {
	var tokens []token.Token
	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case token.IsIdentifier(r):
			tokens = append(tokens, token.NewIdentifier(r))
		case token.IsOperator(r):
			tokens = append(tokens, token.NewOperator(r))
		case r == token.RuneLeftBracket:
			tokens = append(tokens, token.LBracket)
		case r == token.RuneRightBracket:
			tokens = append(tokens, token.RBracket)
		case r == '1' || r == '0':
			tokens = append(tokens, token.NewConstant(r == '1'))
		}
		// Ignore all other inputs.
	}
}

// Tokenize scans a source string in one call. String reads cannot fail, so
// the error from Scan is discarded.
func Tokenize(source string) []token.Token {
	tokens, _ := NewFromString(source).Scan()
	return tokens
}
