// Package ast defines the typed syntax tree the parser emits: a forest of
// tagged variants mirroring SQL-92 grammar productions. Every composite
// node exclusively owns its subtrees; lexemes inside nodes borrow the
// caller's input buffer and own nothing.
package ast

import "github.com/oarkflow/sqltoast/lexeme"

// Node is implemented by every AST type.
type Node interface {
	isNode()
}

// Statement is a top-level parse result: one of the fourteen statement
// kinds the grammar recognizes.
type Statement interface {
	Node
	isStatement()
}

// Identifier is a single SQL name: a lexeme plus whether it was written
// delimited (quoted), which governs case sensitivity under SQL-92 rules.
type Identifier struct {
	Lex       lexeme.Lexeme
	Delimited bool
}

func (Identifier) isNode() {}

// Text returns the identifier's source text, quotes included.
func (i Identifier) Text() string { return i.Lex.String() }

// Empty reports whether the identifier is absent.
func (i Identifier) Empty() bool { return i.Lex.Empty() }

// Sign is an optional leading +/- applied to a numeric_factor.
type Sign int

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// ArithOp is the operator linking two terms in a left-associative chain:
// shared by numeric_value_expression (+ -), numeric_term (* /),
// interval_value_expression (+ -), and interval_term (* /).
type ArithOp int

const (
	ArithNone ArithOp = iota
	ArithAdd
	ArithSub
	ArithMul
	ArithDiv
)

// DropBehaviour governs what happens to dependents of a dropped schema
// object: CASCADE removes them too, RESTRICT (the default) refuses to
// drop if any exist.
type DropBehaviour int

const (
	Restrict DropBehaviour = iota
	Cascade
)
