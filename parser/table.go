package parser

import (
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

// parseFromList parses table_reference [, table_reference]*, the comma
// list forming the FROM clause's cartesian product.
func (p *Parser) parseFromList() ([]ast.TableReference, bool) {
	var out []ast.TableReference
	ref, ok := p.parseJoinedTable()
	if !ok {
		return nil, false
	}
	if !p.disabled() {
		out = append(out, ref)
	}
	for p.tryEat(lexer.COMMA) {
		ref, ok = p.parseJoinedTable()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			out = append(out, ref)
		}
	}
	return out, true
}

// parseJoinedTable parses a table_primary followed by zero or more JOIN
// clauses, building a left-associative chain of JoinedTable nodes.
func (p *Parser) parseJoinedTable() (ast.TableReference, bool) {
	left, ok := p.parseTablePrimary()
	if !ok {
		return nil, false
	}
	for {
		joinType, natural, ok := p.tryParseJoinType()
		if !ok {
			return left, true
		}
		right, ok := p.parseTablePrimary()
		if !ok {
			return nil, false
		}
		var spec *ast.JoinSpecification
		if !natural && joinType != ast.JoinCross && joinType != ast.JoinUnion && (p.is(lexer.ON) || p.is(lexer.USING)) {
			var ok bool
			spec, ok = p.parseJoinSpecification()
			if !ok {
				return nil, false
			}
		}
		if p.disabled() {
			continue
		}
		jt := newNode[ast.JoinedTable](&p.arena)
		jt.Left = left
		jt.Right = right
		jt.Type = joinType
		if natural && joinType == ast.JoinInner {
			jt.Type = ast.JoinNatural
		}
		jt.Spec = spec
		left = jt
	}
}

// tryParseJoinType recognizes a leading join keyword sequence, reporting
// whether one was found. It commits no error when no join keyword is
// present, since a FROM clause may legally end with no JOIN at all; once
// a join keyword (or NATURAL) has been consumed, a missing JOIN is a
// syntax error.
func (p *Parser) tryParseJoinType() (ast.JoinType, bool, bool) {
	natural := p.tryEat(lexer.NATURAL)
	switch p.tok.Kind {
	case lexer.CROSS:
		p.advance()
		if !p.eat(lexer.JOIN) {
			return 0, false, false
		}
		return ast.JoinCross, natural, true
	case lexer.INNER:
		p.advance()
		if !p.eat(lexer.JOIN) {
			return 0, false, false
		}
		return ast.JoinInner, natural, true
	case lexer.LEFT:
		p.advance()
		p.tryEat(lexer.OUTER)
		if !p.eat(lexer.JOIN) {
			return 0, false, false
		}
		return ast.JoinLeft, natural, true
	case lexer.RIGHT:
		p.advance()
		p.tryEat(lexer.OUTER)
		if !p.eat(lexer.JOIN) {
			return 0, false, false
		}
		return ast.JoinRight, natural, true
	case lexer.FULL:
		p.advance()
		p.tryEat(lexer.OUTER)
		if !p.eat(lexer.JOIN) {
			return 0, false, false
		}
		return ast.JoinFull, natural, true
	case lexer.UNION:
		// UNION not followed by JOIN is a set operator, not a join.
		snap := p.snapshot()
		p.advance()
		if !p.is(lexer.JOIN) {
			p.restore(snap)
			return 0, false, false
		}
		p.advance()
		return ast.JoinUnion, natural, true
	case lexer.JOIN:
		p.advance()
		return ast.JoinInner, natural, true
	default:
		if natural {
			p.errorf("expected JOIN after NATURAL but found %s %q", p.tok.Kind, p.tok.Text())
			return 0, false, false
		}
		return 0, false, false
	}
}

func (p *Parser) parseJoinSpecification() (*ast.JoinSpecification, bool) {
	if p.tryEat(lexer.ON) {
		cond, ok := p.parseSearchCondition()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.JoinSpecification](&p.arena)
		s.Condition = cond
		return s, true
	}
	if p.tryEat(lexer.USING) {
		cols, ok := p.parseParenIdentList()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.JoinSpecification](&p.arena)
		s.NamedColumns = cols
		return s, true
	}
	p.errorf("expected ON or USING but found %s %q", p.tok.Kind, p.tok.Text())
	return nil, false
}

// parseTablePrimary parses a named table, a derived table, or a
// parenthesized joined table.
func (p *Parser) parseTablePrimary() (ast.TableReference, bool) {
	if p.is(lexer.LPAREN) {
		snap := p.snapshot()
		p.advance()
		if p.is(lexer.SELECT) {
			q, ok := p.parseQueryExpression()
			if ok && p.is(lexer.RPAREN) {
				p.advance()
				return p.finishDerivedTable(q)
			}
			p.restore(snap)
			p.advance()
		}
		inner, ok := p.parseJoinedTable()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		return inner, true
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var correlation *ast.Identifier
	if p.tryEat(lexer.AS) {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		correlation = &id
	} else if p.is(lexer.IDENTIFIER) {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		correlation = &id
	}
	if p.disabled() {
		return nil, true
	}
	t := newNode[ast.TableName](&p.arena)
	t.Name = name
	t.Correlation = correlation
	return t, true
}

func (p *Parser) finishDerivedTable(q *ast.QueryExpression) (ast.TableReference, bool) {
	p.tryEat(lexer.AS)
	correlation, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var columns []ast.Identifier
	if p.is(lexer.LPAREN) {
		columns, ok = p.parseParenIdentList()
		if !ok {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	d := newNode[ast.DerivedTable](&p.arena)
	d.Query = q
	d.Correlation = correlation
	d.ColumnNames = columns
	return d, true
}

// parseQueryExpression parses query_expression: a left-associative chain
// of query_terms combined by UNION/EXCEPT.
func (p *Parser) parseQueryExpression() (*ast.QueryExpression, bool) {
	term, ok := p.parseQueryTerm()
	if !ok {
		return nil, false
	}
	var expr *ast.QueryExpression
	if !p.disabled() {
		expr = newNode[ast.QueryExpression](&p.arena)
		expr.Term = term
	}
	for {
		var op ast.SetOpKind
		switch {
		case p.tryEat(lexer.UNION):
			op = ast.SetOpUnion
			if p.tryEat(lexer.ALL) {
				op = ast.SetOpUnionAll
			}
		case p.tryEat(lexer.EXCEPT):
			op = ast.SetOpExcept
			if p.tryEat(lexer.ALL) {
				op = ast.SetOpExceptAll
			}
		default:
			if p.disabled() {
				return nil, true
			}
			return expr, true
		}
		next, ok := p.parseQueryTerm()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			left := expr
			expr = newNode[ast.QueryExpression](&p.arena)
			expr.Left = left
			expr.Op = op
			expr.Term = next
		}
	}
}

// parseQueryTerm parses query_term: a left-associative chain of
// query_primaries combined by INTERSECT.
func (p *Parser) parseQueryTerm() (*ast.QueryTerm, bool) {
	primary, ok := p.parseQueryPrimary()
	if !ok {
		return nil, false
	}
	var term *ast.QueryTerm
	if !p.disabled() {
		term = newNode[ast.QueryTerm](&p.arena)
		term.Primary = primary
	}
	for p.is(lexer.INTERSECT) {
		p.advance()
		op := ast.SetOpIntersect
		if p.tryEat(lexer.ALL) {
			op = ast.SetOpIntersectAll
		}
		next, ok := p.parseQueryPrimary()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			left := term
			term = newNode[ast.QueryTerm](&p.arena)
			term.Left = left
			term.Op = op
			term.Primary = next
		}
	}
	if p.disabled() {
		return nil, true
	}
	return term, true
}

// parseQueryPrimary parses non_join_query_primary: a query specification,
// a VALUES table value constructor, TABLE <name>, or a parenthesized
// query_expression.
func (p *Parser) parseQueryPrimary() (*ast.QueryPrimary, bool) {
	switch p.tok.Kind {
	case lexer.SELECT:
		spec, ok := p.parseQuerySpecification()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		qp := newNode[ast.QueryPrimary](&p.arena)
		qp.Kind = ast.QueryPrimarySpecification
		qp.Specification = spec
		return qp, true
	case lexer.VALUES:
		p.advance()
		var rows []ast.RowValueConstructor
		for {
			row, ok := p.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
			if !p.disabled() {
				rows = append(rows, row)
			}
			if !p.tryEat(lexer.COMMA) {
				break
			}
		}
		if p.disabled() {
			return nil, true
		}
		qp := newNode[ast.QueryPrimary](&p.arena)
		qp.Kind = ast.QueryPrimaryTableValueConstructor
		qp.TableValues = rows
		return qp, true
	case lexer.TABLE:
		p.advance()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		qp := newNode[ast.QueryPrimary](&p.arena)
		qp.Kind = ast.QueryPrimaryExplicitTable
		tn := newNode[ast.TableName](&p.arena)
		tn.Name = name
		qp.ExplicitTable = tn
		return qp, true
	case lexer.LPAREN:
		p.advance()
		sub, ok := p.parseQueryExpression()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		qp := newNode[ast.QueryPrimary](&p.arena)
		qp.Kind = ast.QueryPrimarySubexpression
		qp.Sub = sub
		return qp, true
	default:
		p.errorf("expected SELECT, VALUES, TABLE, or '(' but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

// parseQuerySpecification parses query_specification: SELECT
// [DISTINCT|ALL] select-list FROM ... [WHERE ...] [GROUP BY ...]
// [HAVING ...].
func (p *Parser) parseQuerySpecification() (*ast.QuerySpecification, bool) {
	if !p.eat(lexer.SELECT) {
		return nil, false
	}
	distinct := false
	if p.tryEat(lexer.DISTINCT) {
		distinct = true
	} else {
		p.tryEat(lexer.ALL)
	}
	selectList, ok := p.parseSelectList()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.FROM) {
		return nil, false
	}
	from, ok := p.parseFromList()
	if !ok {
		return nil, false
	}
	var where *ast.SearchCondition
	if p.tryEat(lexer.WHERE) {
		where, ok = p.parseSearchCondition()
		if !ok {
			return nil, false
		}
	}
	var groupBy []ast.ValueExpression
	if p.tryEat(lexer.GROUP) {
		if !p.eat(lexer.BY) {
			return nil, false
		}
		for {
			v, ok := p.parseValueExpression()
			if !ok {
				return nil, false
			}
			if !p.disabled() {
				groupBy = append(groupBy, v)
			}
			if !p.tryEat(lexer.COMMA) {
				break
			}
		}
	}
	var having *ast.SearchCondition
	if p.tryEat(lexer.HAVING) {
		having, ok = p.parseSearchCondition()
		if !ok {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	table := newNode[ast.TableExpression](&p.arena)
	table.From = from
	table.Where = where
	table.GroupBy = groupBy
	table.Having = having
	qs := newNode[ast.QuerySpecification](&p.arena)
	qs.Distinct = distinct
	qs.SelectList = selectList
	qs.Table = table
	return qs, true
}

func (p *Parser) parseSelectList() ([]ast.DerivedColumn, bool) {
	var out []ast.DerivedColumn
	for {
		col, ok := p.parseDerivedColumn()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			out = append(out, col)
		}
		if !p.tryEat(lexer.COMMA) {
			break
		}
	}
	return out, true
}

func (p *Parser) parseDerivedColumn() (ast.DerivedColumn, bool) {
	if p.is(lexer.ASTERISK) {
		p.advance()
		return ast.DerivedColumn{Star: true}, true
	}
	v, ok := p.parseValueExpression()
	if !ok {
		return ast.DerivedColumn{}, false
	}
	var alias *ast.Identifier
	if p.tryEat(lexer.AS) {
		id, ok := p.parseIdent()
		if !ok {
			return ast.DerivedColumn{}, false
		}
		alias = &id
	} else if p.is(lexer.IDENTIFIER) {
		id, ok := p.parseIdent()
		if !ok {
			return ast.DerivedColumn{}, false
		}
		alias = &id
	}
	return ast.DerivedColumn{Expr: v, Alias: alias}, true
}
