// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package truthtab

// DefaultExpressions are reference expressions available by name without
// being saved first. They are resolved as a fallback: a saved expression
// with the same name shadows the builtin, and they are never written to the
// store.
var DefaultExpressions = map[string]string{
	"AND2":  "A.B",
	"OR2":   "A+B",
	"XOR2":  "A^B",
	"NAND2": "(A.B)'",
	"NOR2":  "(A+B)'",
	"XNOR2": "(A^B)'",

	"IMPLIES":  "A'+B",
	"MAJORITY": "A.B+B.C+A.C",

	"HALF_SUM":   "A^B",
	"HALF_CARRY": "A.B",
	"FULL_SUM":   "A^B^C",
	"FULL_CARRY": "A.B+C.(A^B)",
}
