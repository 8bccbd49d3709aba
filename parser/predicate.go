package parser

import (
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

// parseSearchCondition parses search_condition: boolean_term
// (OR boolean_term)*.
func (p *Parser) parseSearchCondition() (*ast.SearchCondition, bool) {
	term, ok := p.parseBooleanTerm()
	if !ok {
		return nil, false
	}
	var terms []*ast.BooleanTerm
	if !p.disabled() {
		terms = append(terms, term)
	}
	for p.tryEat(lexer.OR) {
		t, ok := p.parseBooleanTerm()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			terms = append(terms, t)
		}
	}
	if p.disabled() {
		return nil, true
	}
	sc := newNode[ast.SearchCondition](&p.arena)
	sc.Terms = terms
	return sc, true
}

// parseBooleanTerm parses boolean_term: boolean_factor (AND boolean_factor)*,
// built as the sibling-wrapper AND chain BooleanTerm.AppendAnd expects.
func (p *Parser) parseBooleanTerm() (*ast.BooleanTerm, bool) {
	factor, ok := p.parseBooleanFactor()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		for p.tryEat(lexer.AND) {
			if _, ok := p.parseBooleanFactor(); !ok {
				return nil, false
			}
		}
		return nil, true
	}
	term := newNode[ast.BooleanTerm](&p.arena)
	term.Factor = factor
	for p.tryEat(lexer.AND) {
		next, ok := p.parseBooleanFactor()
		if !ok {
			return nil, false
		}
		term.AppendAnd(next)
	}
	return term, true
}

// parseBooleanFactor parses boolean_factor: [NOT] (predicate | '('
// search_condition ')').
func (p *Parser) parseBooleanFactor() (*ast.BooleanFactor, bool) {
	reverse := p.tryEat(lexer.NOT)
	if p.is(lexer.LPAREN) {
		snap := p.snapshot()
		p.advance()
		cond, ok := p.parseSearchCondition()
		if ok && p.is(lexer.RPAREN) {
			p.advance()
			if p.disabled() {
				return nil, true
			}
			bf := newNode[ast.BooleanFactor](&p.arena)
			bf.Kind = ast.FactorNestedCondition
			bf.ReverseOp = reverse
			bf.Nested = cond
			return bf, true
		}
		p.restore(snap)
	}
	pred, ok := p.parsePredicate()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	bf := newNode[ast.BooleanFactor](&p.arena)
	bf.Kind = ast.FactorPredicate
	bf.ReverseOp = reverse
	bf.Predicate = pred
	return bf, true
}

var compOpByToken = map[lexer.TokenKind]ast.CompOp{
	lexer.EQUAL:         ast.CompEqual,
	lexer.NOT_EQUAL:     ast.CompNotEqual,
	lexer.LESS:          ast.CompLess,
	lexer.GREATER:       ast.CompGreater,
	lexer.LESS_EQUAL:    ast.CompLessEqual,
	lexer.GREATER_EQUAL: ast.CompGreaterEqual,
}

// parsePredicate parses predicate, checking first for the two forms that
// lead with a keyword (EXISTS, UNIQUE) and otherwise parsing one of the
// row-value-constructor-led forms (comparison, BETWEEN, IN, LIKE, IS NULL).
func (p *Parser) parsePredicate() (*ast.Predicate, bool) {
	switch p.tok.Kind {
	case lexer.EXISTS:
		p.advance()
		if !p.eat(lexer.LPAREN) {
			return nil, false
		}
		q, ok := p.parseQueryExpression()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompExists
		pr.ExistsQuery = q
		return pr, true
	case lexer.UNIQUE:
		p.advance()
		if !p.eat(lexer.LPAREN) {
			return nil, false
		}
		q, ok := p.parseQueryExpression()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompUnique
		pr.ExistsQuery = q
		return pr, true
	}

	left, ok := p.parseRowValueConstructor()
	if !ok {
		return nil, false
	}

	not := p.tryEat(lexer.NOT)

	switch p.tok.Kind {
	case lexer.EQUAL, lexer.NOT_EQUAL, lexer.LESS, lexer.GREATER, lexer.LESS_EQUAL, lexer.GREATER_EQUAL:
		op := compOpByToken[p.tok.Kind]
		p.advance()
		right, ok := p.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = op
		pr.Left = left
		pr.Right = right
		return pr, true

	case lexer.BETWEEN:
		p.advance()
		low, ok := p.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.AND) {
			return nil, false
		}
		high, ok := p.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompBetween
		pr.Negated = not
		pr.Left = left
		pr.BetweenLow = low
		pr.BetweenHigh = high
		return pr, true

	case lexer.IN:
		p.advance()
		if !p.eat(lexer.LPAREN) {
			return nil, false
		}
		if p.is(lexer.SELECT) {
			q, ok := p.parseQueryExpression()
			if !ok {
				return nil, false
			}
			if !p.eat(lexer.RPAREN) {
				return nil, false
			}
			if p.disabled() {
				return nil, true
			}
			pr := newNode[ast.Predicate](&p.arena)
			pr.Op = ast.CompInSubquery
			pr.Negated = not
			pr.Left = left
			pr.InSubquery = q
			return pr, true
		}
		var values []ast.RowValueConstructor
		for {
			v, ok := p.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
			if !p.disabled() {
				values = append(values, v)
			}
			if !p.tryEat(lexer.COMMA) {
				break
			}
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompInValues
		pr.Negated = not
		pr.Left = left
		pr.InValues = values
		return pr, true

	case lexer.LIKE:
		p.advance()
		pattern, ok := p.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		var escape ast.RowValueConstructor
		if p.tryEat(lexer.ESCAPE) {
			escape, ok = p.parseRowValueConstructor()
			if !ok {
				return nil, false
			}
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompLike
		pr.Negated = not
		pr.Left = left
		pr.Right = pattern
		pr.LikeEscape = escape
		return pr, true

	case lexer.IS:
		p.advance()
		isNot := p.tryEat(lexer.NOT)
		if !p.eat(lexer.NULL) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		pr := newNode[ast.Predicate](&p.arena)
		pr.Op = ast.CompNull
		pr.Negated = isNot
		pr.Left = left
		return pr, true

	default:
		if not {
			p.errorf("expected BETWEEN, IN, or LIKE after NOT but found %s %q", p.tok.Kind, p.tok.Text())
			return nil, false
		}
		p.errorf("expected a comparison operator or predicate keyword but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

// parseRowValueConstructor parses row_value_constructor: a bare value
// expression, NULL, DEFAULT, a parenthesized list, or a row subquery.
func (p *Parser) parseRowValueConstructor() (ast.RowValueConstructor, bool) {
	switch p.tok.Kind {
	case lexer.NULL:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return newNode[ast.RowValueNull](&p.arena), true
	case lexer.DEFAULT:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return newNode[ast.RowValueDefault](&p.arena), true
	case lexer.LPAREN:
		snap := p.snapshot()
		p.advance()
		if p.is(lexer.SELECT) {
			q, ok := p.parseQueryExpression()
			if ok && p.is(lexer.RPAREN) {
				p.advance()
				if p.disabled() {
					return nil, true
				}
				rs := newNode[ast.RowSubquery](&p.arena)
				rs.Query = q
				return rs, true
			}
			p.restore(snap)
			p.advance()
		}
		first, ok := p.parseRowValueConstructor()
		if !ok {
			return nil, false
		}
		if p.tryEat(lexer.COMMA) {
			var elems []ast.RowValueConstructor
			if !p.disabled() {
				elems = append(elems, first)
			}
			for {
				v, ok := p.parseRowValueConstructor()
				if !ok {
					return nil, false
				}
				if !p.disabled() {
					elems = append(elems, v)
				}
				if !p.tryEat(lexer.COMMA) {
					break
				}
			}
			if !p.eat(lexer.RPAREN) {
				return nil, false
			}
			if p.disabled() {
				return nil, true
			}
			rl := newNode[ast.RowValueList](&p.arena)
			rl.Elements = elems
			return rl, true
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		return first, true
	default:
		v, ok := p.parseValueExpression()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		rv := newNode[ast.RowValueExpression](&p.arena)
		rv.Expr = v
		return rv, true
	}
}
