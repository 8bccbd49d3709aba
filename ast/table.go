package ast

// TableReference is table_reference: a named table, a derived table
// (subquery), or a joined table.
type TableReference interface {
	Node
	isTableReference()
}

// TableName is the "table" table_reference variant: a name with an
// optional correlation (alias).
type TableName struct {
	Name        Identifier
	Correlation *Identifier
}

func (*TableName) isNode()           {}
func (*TableName) isTableReference() {}

// DerivedTable is a subquery appearing in FROM, always given a
// correlation name per SQL-92, with an optional column alias list.
type DerivedTable struct {
	Query       *QueryExpression
	Correlation Identifier
	ColumnNames []Identifier
}

func (*DerivedTable) isNode()           {}
func (*DerivedTable) isTableReference() {}

// JoinType enumerates the recognized join kinds, including the legacy
// UNION JOIN (removed in SQL-2003 but still accepted here).
type JoinType int

const (
	JoinCross JoinType = iota
	JoinInner
	JoinLeft
	JoinRight
	JoinFull
	JoinNatural
	JoinUnion
)

// JoinSpecification is join_specification: either an ON search condition
// or a USING named-column list — mutually exclusive.
type JoinSpecification struct {
	Condition    *SearchCondition
	NamedColumns []Identifier
}

func (*JoinSpecification) isNode() {}

// JoinedTable is a left table joined to a right table_reference under a
// join type and optional specification. Chains of joins are built by
// repeatedly wrapping the left-hand side: `a JOIN b JOIN c` becomes
// JoinedTable{Left: JoinedTable{Left: a, Right: b}, Right: c}.
type JoinedTable struct {
	Left  TableReference
	Right TableReference
	Type  JoinType
	Spec  *JoinSpecification
}

func (*JoinedTable) isNode()           {}
func (*JoinedTable) isTableReference() {}
