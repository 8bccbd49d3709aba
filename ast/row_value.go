package ast

// RowValueConstructor is row_value_constructor: a value expression, NULL,
// DEFAULT, a parenthesized value list, or a row subquery.
type RowValueConstructor interface {
	Node
	isRowValueConstructor()
}

// RowValueExpression wraps a bare value_expression as a row value
// constructor of degree one.
type RowValueExpression struct {
	Expr ValueExpression
}

func (*RowValueExpression) isNode()                {}
func (*RowValueExpression) isRowValueConstructor() {}

// RowValueNull is the NULL row value constructor.
type RowValueNull struct{}

func (*RowValueNull) isNode()                {}
func (*RowValueNull) isRowValueConstructor() {}

// RowValueDefault is the DEFAULT row value constructor, valid only in an
// INSERT/UPDATE context.
type RowValueDefault struct{}

func (*RowValueDefault) isNode()                {}
func (*RowValueDefault) isRowValueConstructor() {}

// RowValueList is a parenthesized, comma-separated row_value_constructor
// list: `(v1, v2, DEFAULT, NULL)`.
type RowValueList struct {
	Elements []RowValueConstructor
}

func (*RowValueList) isNode()                {}
func (*RowValueList) isRowValueConstructor() {}

// RowSubquery is a subquery used where a row value constructor is
// expected, e.g. `INSERT INTO t VALUES ((SELECT ...))`.
type RowSubquery struct {
	Query *QueryExpression
}

func (*RowSubquery) isNode()                {}
func (*RowSubquery) isRowValueConstructor() {}
