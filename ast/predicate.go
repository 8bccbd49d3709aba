package ast

// CompOp enumerates every predicate comparison kind, mirroring the
// authoritative comp_op_t vocabulary this grammar is grounded on: plain
// comparisons plus the multi-word predicates (BETWEEN, IN, LIKE, IS NULL,
// EXISTS, UNIQUE) that share the same boolean_factor shape.
type CompOp int

const (
	CompEqual CompOp = iota
	CompNotEqual
	CompLess
	CompGreater
	CompLessEqual
	CompGreaterEqual
	CompBetween
	CompInValues
	CompInSubquery
	CompLike
	CompNull
	CompExists
	CompUnique
)

// Predicate is boolean_factor's PREDICATE payload: a comparison, BETWEEN,
// NULL test, IN (values or subquery), LIKE, EXISTS, or UNIQUE test.
type Predicate struct {
	Op CompOp

	// Negated records an inline NOT on a multi-word predicate: NOT
	// BETWEEN, NOT IN, NOT LIKE, IS NOT NULL. It only applies to Op
	// values CompBetween, CompInValues, CompInSubquery, CompLike, and
	// CompNull — a leading NOT on any other predicate is represented by
	// BooleanFactor.ReverseOp instead.
	Negated bool

	Left RowValueConstructor

	Right RowValueConstructor // comparison, LIKE pattern

	BetweenLow  RowValueConstructor
	BetweenHigh RowValueConstructor

	InValues   []RowValueConstructor
	InSubquery *QueryExpression

	LikeEscape RowValueConstructor // optional ESCAPE char

	ExistsQuery *QueryExpression // EXISTS / UNIQUE operand
}

func (*Predicate) isNode() {}

// BooleanFactorKind discriminates a predicate from a nested, parenthesized
// search condition used as a single boolean factor.
type BooleanFactorKind int

const (
	FactorPredicate BooleanFactorKind = iota
	FactorNestedCondition
)

// BooleanFactor is boolean_factor: [NOT] (predicate | '(' search_condition ')').
// ReverseOp records a leading NOT, which the original grammar represents as
// a flag on the factor rather than a wrapping node.
type BooleanFactor struct {
	Kind      BooleanFactorKind
	ReverseOp bool
	Predicate *Predicate
	Nested    *SearchCondition
}

func (*BooleanFactor) isNode() {}

// BooleanTerm is a chain of boolean_factors AND-linked together. And is
// nil once the chain ends; this sibling-wrapper shape (rather than a
// pointer-inside-the-factor shape) is the one the grammar actually builds
// the term from.
type BooleanTerm struct {
	Factor *BooleanFactor
	And    *BooleanTerm
}

func (*BooleanTerm) isNode() {}

// AppendAnd walks to the end of the AND chain and appends factor as a new
// trailing term.
func (bt *BooleanTerm) AppendAnd(factor *BooleanFactor) {
	t := bt
	for t.And != nil {
		t = t.And
	}
	t.And = &BooleanTerm{Factor: factor}
}

// SearchCondition is an ordered list of boolean_terms OR'd together:
// disjunctive-normal-form at the top level.
type SearchCondition struct {
	Terms []*BooleanTerm
}

func (*SearchCondition) isNode() {}
