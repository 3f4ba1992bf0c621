// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines truthtab token types and the boolean operator tables.
package token

// Kind classifies a scanned token.
type Kind int

const (
	Identifier   Kind = iota // single uppercase letter A-Z
	Constant                 // literal truth value, written 1 or 0
	Operator                 // one of the four boolean operators
	LeftBracket              // grouping open
	RightBracket             // grouping close
)

// Operator and bracket runes as they appear in expression source.
const (
	RuneOr  = '+'  // boolean OR
	RuneXor = '^'  // boolean XOR
	RuneAnd = '.'  // boolean AND
	RuneNot = '\'' // boolean negation

	RuneLeftBracket  = '('
	RuneRightBracket = ')'
)

// Assoc is an operator associativity tag.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

// Token is an immutable scanned token. Name is set for Identifier tokens,
// Value for Constant tokens, Op for Operator tokens.
type Token struct {
	Kind  Kind
	Name  rune
	Value bool
	Op    rune
}

// Bracket tokens carry no payload, so single values cover them.
var (
	LBracket = Token{Kind: LeftBracket}
	RBracket = Token{Kind: RightBracket}
)

// NewIdentifier returns an Identifier token for the given letter.
func NewIdentifier(name rune) Token {
	return Token{Kind: Identifier, Name: name}
}

// NewConstant returns a Constant token with the given truth value.
func NewConstant(value bool) Token {
	return Token{Kind: Constant, Value: value}
}

// NewOperator returns an Operator token for the given operator rune.
func NewOperator(op rune) Token {
	return Token{Kind: Operator, Op: op}
}

// Precedence ranks, lower binds looser: OR < XOR < AND < NOT.
var precedence = map[rune]int{
	RuneOr:  0,
	RuneXor: 1,
	RuneAnd: 2,
	RuneNot: 3,
}

// NOT carries a left-associative tag on purpose, so the converter can apply
// one comparison rule to every operator instead of special-casing unary
// negation. Changing this entry changes how expressions parse.
var associativity = map[rune]Assoc{
	RuneOr:  AssocLeft,
	RuneXor: AssocLeft,
	RuneAnd: AssocLeft,
	RuneNot: AssocLeft,
}

// Precedence returns the rank of an operator rune. Higher binds tighter.
func Precedence(op rune) int {
	return precedence[op]
}

// Associativity returns the associativity tag of an operator rune.
func Associativity(op rune) Assoc {
	return associativity[op]
}

// Operands returns the number of stack operands an operator consumes.
func Operands(op rune) int {
	if op == RuneNot {
		return 1
	}
	return 2
}

// IsOperator returns true if the rune is a boolean operator.
func IsOperator(r rune) bool {
	switch r {
	case RuneOr, RuneXor, RuneAnd, RuneNot:
		return true
	}
	return false
}

// IsIdentifier returns true if the rune names a boolean variable.
func IsIdentifier(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// String returns the source representation of a token.
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return string(t.Name)
	case Constant:
		if t.Value {
			return "1"
		}
		return "0"
	case Operator:
		return string(t.Op)
	case LeftBracket:
		return string(RuneLeftBracket)
	case RightBracket:
		return string(RuneRightBracket)
	}
	return "UNKNOWN"
}

// String returns the name of a token kind.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "IDENTIFIER"
	case Constant:
		return "CONSTANT"
	case Operator:
		return "OPERATOR"
	case LeftBracket:
		return "LBRACKET"
	case RightBracket:
		return "RBRACKET"
	}
	return "UNKNOWN"
}
