package token

import "testing"

func TestPrecedenceOrder(t *testing.T) {
	// OR binds loosest, NOT binds tightest.
	if !(Precedence(RuneOr) < Precedence(RuneXor)) {
		t.Errorf("expected OR < XOR, got %d vs %d", Precedence(RuneOr), Precedence(RuneXor))
	}
	if !(Precedence(RuneXor) < Precedence(RuneAnd)) {
		t.Errorf("expected XOR < AND, got %d vs %d", Precedence(RuneXor), Precedence(RuneAnd))
	}
	if !(Precedence(RuneAnd) < Precedence(RuneNot)) {
		t.Errorf("expected AND < NOT, got %d vs %d", Precedence(RuneAnd), Precedence(RuneNot))
	}
}

func TestAssociativityAllLeft(t *testing.T) {
	for _, op := range []rune{RuneOr, RuneXor, RuneAnd, RuneNot} {
		if Associativity(op) != AssocLeft {
			t.Errorf("operator %q: expected left associativity", op)
		}
	}
}

func TestOperands(t *testing.T) {
	if Operands(RuneNot) != 1 {
		t.Errorf("NOT should take 1 operand, got %d", Operands(RuneNot))
	}
	for _, op := range []rune{RuneOr, RuneXor, RuneAnd} {
		if Operands(op) != 2 {
			t.Errorf("operator %q should take 2 operands, got %d", op, Operands(op))
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		if !IsIdentifier(r) {
			t.Errorf("%q should be an identifier", r)
		}
	}
	for _, r := range "abz019 +.^'()" {
		if IsIdentifier(r) {
			t.Errorf("%q should not be an identifier", r)
		}
	}
}

func TestIsOperator(t *testing.T) {
	for _, r := range "+^.'" {
		if !IsOperator(r) {
			t.Errorf("%q should be an operator", r)
		}
	}
	for _, r := range "AZ10()!&|" {
		if IsOperator(r) {
			t.Errorf("%q should not be an operator", r)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{NewIdentifier('A'), "A"},
		{NewConstant(true), "1"},
		{NewConstant(false), "0"},
		{NewOperator(RuneAnd), "."},
		{NewOperator(RuneNot), "'"},
		{LBracket, "("},
		{RBracket, ")"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}
