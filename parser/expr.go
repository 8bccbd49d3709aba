package parser

import (
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

// parseValueExpression parses value_expression. This parser has no type
// information about columns or functions, so unlike a strict grammar
// split across numeric/character/datetime/interval nonterminals, it
// builds one left-associative +/-/*// chain over whatever primaries it
// finds and only special-cases the two unambiguous alternatives: a
// leading INTERVAL literal, and an operand followed by +/- of an INTERVAL
// term, which is taken as datetime arithmetic (a syntactic heuristic,
// since telling a numeric_primary from a datetime_primary in general
// requires semantic analysis this parser does not perform). Arithmetic
// written before a '||' becomes one parenthesized operand of the
// concatenation.
func (p *Parser) parseValueExpression() (ast.ValueExpression, bool) {
	if p.is(lexer.INTERVAL) {
		return p.parseIntervalValueExpression()
	}

	term, ok := p.parseNumericTerm()
	if !ok {
		return nil, false
	}
	numExpr := wrapFactorNode(&p.arena, p.disabled(), term)

	if dt, isDatetime := soleDatetimePrimary(term); isDatetime && (p.is(lexer.PLUS) || p.is(lexer.MINUS)) {
		op := ast.ArithAdd
		if p.is(lexer.MINUS) {
			op = ast.ArithSub
		}
		p.advance()
		interval, ok := p.parseIntervalTerm()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		dve := newNode[ast.DatetimeValueExpression](&p.arena)
		dve.Term = dt
		dve.Op = op
		dve.Interval = interval
		return dve, true
	}

	for {
		switch p.tok.Kind {
		case lexer.ASTERISK, lexer.SOLIDUS:
			op := ast.ArithMul
			if p.tok.Kind == lexer.SOLIDUS {
				op = ast.ArithDiv
			}
			p.advance()
			next, ok := p.parseNumericFactor()
			if !ok {
				return nil, false
			}
			if p.disabled() {
				continue
			}
			t := newNode[ast.NumericTerm](&p.arena)
			t.Left = numExpr.Term
			t.Op = op
			t.Factor = next
			numExpr.Term = t
		case lexer.PLUS, lexer.MINUS:
			op := ast.ArithAdd
			if p.tok.Kind == lexer.MINUS {
				op = ast.ArithSub
			}
			p.advance()
			if p.is(lexer.INTERVAL) {
				interval, ok := p.parseIntervalTerm()
				if !ok || p.disabled() {
					return nil, ok
				}
				dve := newNode[ast.DatetimeValueExpression](&p.arena)
				dve.Op, dve.Interval = op, interval
				dve.Term = numExpr.Term.Factor.Primary
				if numExpr.Left != nil || numExpr.Term.Left != nil || numExpr.Term.Factor.Sign != ast.SignNone {
					paren := newNode[ast.Parenthesized](&p.arena)
					paren.Inner = numExpr
					dve.Term = paren
				}
				return dve, true
			}
			nextTerm, ok := p.parseNumericTerm()
			if !ok {
				return nil, false
			}
			if p.disabled() {
				continue
			}
			left := numExpr
			numExpr = newNode[ast.NumericValueExpression](&p.arena)
			numExpr.Left = left
			numExpr.Op = op
			numExpr.Term = nextTerm
		case lexer.CONCATENATION:
			if !p.disabled() && (numExpr.Left != nil || numExpr.Term.Left != nil || numExpr.Term.Factor.Sign != ast.SignNone) {
				paren := newNode[ast.Parenthesized](&p.arena)
				paren.Inner = numExpr
				f := newNode[ast.NumericFactor](&p.arena)
				f.Primary = paren
				t := newNode[ast.NumericTerm](&p.arena)
				t.Factor = f
				return p.parseCharacterChain(t)
			}
			return p.parseCharacterChain(term)
		default:
			if p.disabled() {
				return nil, true
			}
			return numExpr, true
		}
	}
}

// wrapFactorNode builds the initial single-term NumericValueExpression
// for a freshly parsed numeric_term.
func wrapFactorNode(a *arena, disabled bool, term *ast.NumericTerm) *ast.NumericValueExpression {
	if disabled {
		return nil
	}
	e := newNode[ast.NumericValueExpression](a)
	e.Term = term
	return e
}

// soleDatetimePrimary reports whether term is a bare datetime-producing
// primary with no arithmetic of its own, returning that primary.
func soleDatetimePrimary(term *ast.NumericTerm) (ast.ValueExpressionPrimary, bool) {
	if term == nil || term.Left != nil || term.Factor == nil {
		return nil, false
	}
	f := term.Factor
	if _, ok := f.Primary.(*ast.DatetimeValueFunction); ok {
		return f.Primary, true
	}
	return nil, false
}

// parseCharacterChain continues parsing a character_value_expression
// after the '||' operator has been found following a first factor
// already captured in firstTerm.
func (p *Parser) parseCharacterChain(firstTerm *ast.NumericTerm) (ast.ValueExpression, bool) {
	var factors []ast.CharacterFactor
	if !p.disabled() && firstTerm != nil && firstTerm.Factor != nil {
		factors = append(factors, ast.CharacterFactor{Primary: firstTerm.Factor.Primary})
	}
	for p.tryEat(lexer.CONCATENATION) {
		primary, ok := p.parseValueExpressionPrimary()
		if !ok {
			return nil, false
		}
		var collation *ast.Identifier
		if p.tryEat(lexer.COLLATE) {
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			collation = &id
		}
		if !p.disabled() {
			factors = append(factors, ast.CharacterFactor{Primary: primary, Collation: collation})
		}
	}
	if p.disabled() {
		return nil, true
	}
	cve := newNode[ast.CharacterValueExpression](&p.arena)
	cve.Factors = factors
	return cve, true
}

func (p *Parser) parseNumericTerm() (*ast.NumericTerm, bool) {
	factor, ok := p.parseNumericFactor()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	t := newNode[ast.NumericTerm](&p.arena)
	t.Factor = factor
	return t, true
}

func (p *Parser) parseNumericFactor() (*ast.NumericFactor, bool) {
	sign := ast.SignNone
	if p.tryEat(lexer.PLUS) {
		sign = ast.SignPlus
	} else if p.tryEat(lexer.MINUS) {
		sign = ast.SignMinus
	}
	primary, ok := p.parseValueExpressionPrimary()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.NumericFactor](&p.arena)
	f.Sign = sign
	f.Primary = primary
	return f, true
}

// parseIntervalValueExpression parses an INTERVAL-led chain, e.g.
// `INTERVAL '3' DAY + INTERVAL '1' HOUR`.
func (p *Parser) parseIntervalValueExpression() (ast.ValueExpression, bool) {
	term, ok := p.parseIntervalTerm()
	if !ok {
		return nil, false
	}
	var expr *ast.IntervalValueExpression
	if !p.disabled() {
		expr = newNode[ast.IntervalValueExpression](&p.arena)
		expr.Term = term
	}
	for p.is(lexer.PLUS) || p.is(lexer.MINUS) {
		op := ast.ArithAdd
		if p.is(lexer.MINUS) {
			op = ast.ArithSub
		}
		p.advance()
		next, ok := p.parseIntervalTerm()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			left := expr
			expr = newNode[ast.IntervalValueExpression](&p.arena)
			expr.Left = left
			expr.Op = op
			expr.Term = next
		}
	}
	if p.disabled() {
		return nil, true
	}
	return expr, true
}

// parseIntervalTerm parses `INTERVAL ['+'|'-'] string_literal
// [interval_qualifier]`, optionally multiplied or divided by a numeric
// factor.
func (p *Parser) parseIntervalTerm() (*ast.IntervalTerm, bool) {
	if !p.eat(lexer.INTERVAL) {
		return nil, false
	}
	sign := ast.SignNone
	if p.tryEat(lexer.PLUS) {
		sign = ast.SignPlus
	} else if p.tryEat(lexer.MINUS) {
		sign = ast.SignMinus
	}
	if !p.is(lexer.LITERAL_CHARACTER_STRING) {
		p.errorf("expected a string literal but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
	lit := p.tok
	p.advance()
	var qualifier *ast.IntervalQualifier
	if p.tok.IsKeyword() {
		var ok bool
		qualifier, ok = p.parseIntervalQualifier()
		if !ok {
			return nil, false
		}
	}
	var mulDivOp ast.ArithOp
	var numFactor *ast.NumericFactor
	if p.is(lexer.ASTERISK) || p.is(lexer.SOLIDUS) {
		mulDivOp = ast.ArithMul
		if p.is(lexer.SOLIDUS) {
			mulDivOp = ast.ArithDiv
		}
		p.advance()
		var ok bool
		numFactor, ok = p.parseNumericFactor()
		if !ok {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	primary := newNode[ast.Literal](&p.arena)
	primary.Kind = ast.LitCharacterString
	primary.Lex = lit.Lex
	_ = sign // the leading sign is folded into the literal's own text by the lexer when adjacent; a detached sign here is rare and not separately represented
	u := newNode[ast.UnsignedValueSpecification](&p.arena)
	u.Kind = ast.UnsignedLiteral
	u.Literal = primary
	t := newNode[ast.IntervalTerm](&p.arena)
	t.Primary = u
	t.Qualifier = qualifier
	t.MulDivOp = mulDivOp
	t.Factor = numFactor
	return t, true
}

// parseValueExpressionPrimary parses value_expression_primary, including
// the function-form productions that this AST lets stand directly in a
// primary's place.
func (p *Parser) parseValueExpressionPrimary() (ast.ValueExpressionPrimary, bool) {
	switch p.tok.Kind {
	case lexer.LITERAL_UNSIGNED_INTEGER, lexer.LITERAL_SIGNED_INTEGER,
		lexer.LITERAL_UNSIGNED_DECIMAL, lexer.LITERAL_SIGNED_DECIMAL,
		lexer.LITERAL_APPROXIMATE_NUMBER, lexer.LITERAL_CHARACTER_STRING,
		lexer.LITERAL_NATIONAL_CHARACTER_STRING, lexer.LITERAL_BIT_STRING,
		lexer.LITERAL_HEX_STRING:
		return p.parseLiteralValueSpec()
	case lexer.NULL:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		u := newNode[ast.UnsignedValueSpecification](&p.arena)
		u.Kind = ast.UnsignedNull
		return u, true
	case lexer.USER:
		p.advance()
		return p.unsignedKeyword(ast.UnsignedUser), true
	case lexer.CURRENT_USER:
		p.advance()
		return p.unsignedKeyword(ast.UnsignedCurrentUser), true
	case lexer.SESSION_USER:
		p.advance()
		return p.unsignedKeyword(ast.UnsignedSessionUser), true
	case lexer.SYSTEM_USER:
		p.advance()
		return p.unsignedKeyword(ast.UnsignedSystemUser), true
	case lexer.VALUE:
		p.advance()
		return p.unsignedKeyword(ast.UnsignedValueKeyword), true
	case lexer.COUNT, lexer.AVG, lexer.MIN, lexer.MAX, lexer.SUM:
		return p.parseSetFunction()
	case lexer.CASE:
		return p.parseCaseExpression()
	case lexer.COALESCE:
		return p.parseCoalesce()
	case lexer.NULLIF:
		return p.parseNullif()
	case lexer.CAST:
		return p.parseCast()
	case lexer.EXTRACT:
		return p.parseExtract()
	case lexer.POSITION:
		return p.parsePosition()
	case lexer.CHAR_LENGTH, lexer.CHARACTER_LENGTH, lexer.BIT_LENGTH, lexer.OCTET_LENGTH:
		return p.parseLengthFunction()
	case lexer.UPPER, lexer.LOWER:
		return p.parseUpperLower()
	case lexer.SUBSTRING:
		return p.parseSubstring()
	case lexer.CONVERT:
		return p.parseConvert()
	case lexer.TRANSLATE:
		return p.parseTranslate()
	case lexer.TRIM:
		return p.parseTrim()
	case lexer.CURRENT_DATE:
		p.advance()
		return p.datetimeFunc(ast.FuncCurrentDate, -1), true
	case lexer.CURRENT_TIME:
		return p.parseCurrentTimeOrTimestamp(ast.FuncCurrentTime)
	case lexer.CURRENT_TIMESTAMP:
		return p.parseCurrentTimeOrTimestamp(ast.FuncCurrentTimestamp)
	case lexer.LPAREN:
		return p.parseParenOrSubquery()
	case lexer.IDENTIFIER:
		return p.parseColumnReference()
	default:
		if p.tok.IsKeyword() {
			// Many keywords double as unquoted identifiers in column
			// position (e.g. a column literally named "date").
			return p.parseColumnReference()
		}
		p.errorf("expected a value expression but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

func (p *Parser) unsignedKeyword(kind ast.UnsignedValueKind) ast.ValueExpressionPrimary {
	if p.disabled() {
		return nil
	}
	u := newNode[ast.UnsignedValueSpecification](&p.arena)
	u.Kind = kind
	return u
}

func (p *Parser) parseLiteralValueSpec() (ast.ValueExpressionPrimary, bool) {
	kind := literalKindOf(p.tok.Kind)
	lit := p.tok
	p.advance()
	if p.disabled() {
		return nil, true
	}
	l := newNode[ast.Literal](&p.arena)
	l.Kind = kind
	l.Lex = lit.Lex
	u := newNode[ast.UnsignedValueSpecification](&p.arena)
	u.Kind = ast.UnsignedLiteral
	u.Literal = l
	return u, true
}

func literalKindOf(k lexer.TokenKind) ast.LiteralKind {
	switch k {
	case lexer.LITERAL_UNSIGNED_INTEGER:
		return ast.LitUnsignedInteger
	case lexer.LITERAL_SIGNED_INTEGER:
		return ast.LitSignedInteger
	case lexer.LITERAL_UNSIGNED_DECIMAL:
		return ast.LitUnsignedDecimal
	case lexer.LITERAL_SIGNED_DECIMAL:
		return ast.LitSignedDecimal
	case lexer.LITERAL_APPROXIMATE_NUMBER:
		return ast.LitApproximateNumber
	case lexer.LITERAL_NATIONAL_CHARACTER_STRING:
		return ast.LitNationalCharacterString
	case lexer.LITERAL_BIT_STRING:
		return ast.LitBitString
	case lexer.LITERAL_HEX_STRING:
		return ast.LitHexString
	default:
		return ast.LitCharacterString
	}
}

func (p *Parser) parseColumnReference() (ast.ValueExpressionPrimary, bool) {
	first, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var qualifier *ast.Identifier
	name := first
	if p.tryEat(lexer.PERIOD) {
		second, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		qualifier = &first
		name = second
	}
	if p.disabled() {
		return nil, true
	}
	c := newNode[ast.ColumnReference](&p.arena)
	c.Qualifier = qualifier
	c.Name = name
	return c, true
}

var setFuncByToken = map[lexer.TokenKind]ast.SetFunctionKind{
	lexer.COUNT: ast.SetCount,
	lexer.AVG:   ast.SetAvg,
	lexer.MIN:   ast.SetMin,
	lexer.MAX:   ast.SetMax,
	lexer.SUM:   ast.SetSum,
}

func (p *Parser) parseSetFunction() (ast.ValueExpressionPrimary, bool) {
	kind := setFuncByToken[p.tok.Kind]
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	if kind == ast.SetCount && p.tryEat(lexer.ASTERISK) {
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.SetFunction](&p.arena)
		s.Kind = ast.SetCount
		s.Star = true
		return s, true
	}
	distinct := false
	if p.tryEat(lexer.DISTINCT) {
		distinct = true
	} else {
		p.tryEat(lexer.ALL)
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.SetFunction](&p.arena)
	s.Kind = kind
	s.Distinct = distinct
	s.Operand = operand
	return s, true
}

// parseParenOrSubquery disambiguates '(' SELECT ... ')' (a scalar
// subquery) from a parenthesized value expression.
func (p *Parser) parseParenOrSubquery() (ast.ValueExpressionPrimary, bool) {
	p.advance() // '('
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
		sq := newNode[ast.ScalarSubquery](&p.arena)
		sq.Query = q
		return sq, true
	}
	inner, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	paren := newNode[ast.Parenthesized](&p.arena)
	paren.Inner = inner
	return paren, true
}

func (p *Parser) parseCast() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	isNull := false
	var operand ast.ValueExpression
	if p.tryEat(lexer.NULL) {
		isNull = true
	} else {
		var ok bool
		operand, ok = p.parseValueExpression()
		if !ok {
			return nil, false
		}
	}
	if !p.eat(lexer.AS) {
		return nil, false
	}
	dt, ok := p.parseDataType()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	c := newNode[ast.CastSpecification](&p.arena)
	c.Operand = operand
	c.OperandIsNull = isNull
	c.TargetType = dt
	return c, true
}

func (p *Parser) parseExtract() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	unit, ok := p.parseIntervalUnit()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.FROM) {
		return nil, false
	}
	source, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.NumericValueFunction](&p.arena)
	f.Kind = ast.FuncExtract
	f.ExtractUnit = unit
	f.ExtractSource = source
	return f, true
}

func (p *Parser) parsePosition() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	needle, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.IN) {
		return nil, false
	}
	haystack, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.NumericValueFunction](&p.arena)
	f.Kind = ast.FuncPosition
	f.PositionNeedle = needle
	f.PositionHaystack = haystack
	return f, true
}

var lengthFuncByToken = map[lexer.TokenKind]ast.NumericFunctionKind{
	lexer.CHAR_LENGTH:      ast.FuncCharLength,
	lexer.CHARACTER_LENGTH: ast.FuncCharacterLength,
	lexer.BIT_LENGTH:       ast.FuncBitLength,
	lexer.OCTET_LENGTH:     ast.FuncOctetLength,
}

func (p *Parser) parseLengthFunction() (ast.ValueExpressionPrimary, bool) {
	kind := lengthFuncByToken[p.tok.Kind]
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.NumericValueFunction](&p.arena)
	f.Kind = kind
	f.LengthOperand = operand
	return f, true
}

func (p *Parser) parseUpperLower() (ast.ValueExpressionPrimary, bool) {
	kind := ast.StrUpper
	if p.tok.Kind == lexer.LOWER {
		kind = ast.StrLower
	}
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.StringFunction](&p.arena)
	f.Kind = kind
	f.Operand = operand
	return f, true
}

func (p *Parser) parseSubstring() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.FROM) {
		return nil, false
	}
	from, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	var forLen ast.ValueExpression
	if p.tryEat(lexer.FOR) {
		forLen, ok = p.parseValueExpression()
		if !ok {
			return nil, false
		}
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.StringFunction](&p.arena)
	f.Kind = ast.StrSubstring
	f.Operand = operand
	f.SubstringFrom = from
	f.SubstringFor = forLen
	return f, true
}

func (p *Parser) parseConvert() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.USING) {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.StringFunction](&p.arena)
	f.Kind = ast.StrConvert
	f.Operand = operand
	f.ConversionName = &name
	return f, true
}

func (p *Parser) parseTranslate() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	operand, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.USING) {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.StringFunction](&p.arena)
	f.Kind = ast.StrTranslate
	f.Operand = operand
	f.TranslationName = &name
	return f, true
}

func (p *Parser) parseTrim() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	spec := ast.TrimNone
	switch p.tok.Kind {
	case lexer.LEADING:
		spec = ast.TrimLeading
		p.advance()
	case lexer.TRAILING:
		spec = ast.TrimTrailing
		p.advance()
	case lexer.BOTH:
		spec = ast.TrimBoth
		p.advance()
	}
	var trimChar, operand ast.ValueExpression
	// An explicit trim character precedes FROM; without one the operand
	// follows directly, or FROM follows directly if spec was given alone.
	bare := false
	if !p.is(lexer.FROM) {
		v, ok := p.parseValueExpression()
		if !ok {
			return nil, false
		}
		bare = spec == ast.TrimNone && p.is(lexer.RPAREN)
		if bare {
			operand = v
		} else {
			trimChar = v
		}
	}
	if !bare {
		if !p.eat(lexer.FROM) {
			return nil, false
		}
		var ok bool
		if operand, ok = p.parseValueExpression(); !ok {
			return nil, false
		}
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	f := newNode[ast.StringFunction](&p.arena)
	f.Kind = ast.StrTrim
	f.Operand = operand
	f.TrimSpec = spec
	f.TrimChar = trimChar
	return f, true
}

func (p *Parser) datetimeFunc(kind ast.DatetimeFunctionKind, precision int) ast.ValueExpressionPrimary {
	if p.disabled() {
		return nil
	}
	f := newNode[ast.DatetimeValueFunction](&p.arena)
	f.Kind = kind
	f.Precision = precision
	return f
}

func (p *Parser) parseCurrentTimeOrTimestamp(kind ast.DatetimeFunctionKind) (ast.ValueExpressionPrimary, bool) {
	p.advance()
	precision, ok := p.parseOptionalPrecision()
	if !ok {
		return nil, false
	}
	return p.datetimeFunc(kind, precision), true
}

func (p *Parser) parseCoalesce() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	var list []ast.ValueExpression
	for {
		v, ok := p.parseValueExpression()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			list = append(list, v)
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
	c := newNode[ast.CaseExpression](&p.arena)
	c.Kind = ast.CaseCoalesce
	c.CoalesceList = list
	return c, true
}

func (p *Parser) parseNullif() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	left, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.COMMA) {
		return nil, false
	}
	right, ok := p.parseValueExpression()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	c := newNode[ast.CaseExpression](&p.arena)
	c.Kind = ast.CaseNullif
	c.NullifLeft = left
	c.NullifRight = right
	return c, true
}

func (p *Parser) parseCaseExpression() (ast.ValueExpressionPrimary, bool) {
	p.advance()
	var simpleOperand ast.ValueExpression
	simple := false
	if !p.is(lexer.WHEN) {
		simple = true
		var ok bool
		simpleOperand, ok = p.parseValueExpression()
		if !ok {
			return nil, false
		}
	}
	var whens []ast.WhenClause
	for p.tryEat(lexer.WHEN) {
		var wc ast.WhenClause
		if simple {
			v, ok := p.parseValueExpression()
			if !ok {
				return nil, false
			}
			wc.CompareValue = v
		} else {
			cond, ok := p.parseSearchCondition()
			if !ok {
				return nil, false
			}
			wc.Condition = cond
		}
		if !p.eat(lexer.THEN) {
			return nil, false
		}
		if p.tryEat(lexer.NULL) {
			wc.ResultIsNull = true
		} else {
			v, ok := p.parseValueExpression()
			if !ok {
				return nil, false
			}
			wc.Result = v
		}
		if !p.disabled() {
			whens = append(whens, wc)
		}
	}
	hasElse := false
	var elseResult ast.ValueExpression
	elseIsNull := false
	if p.tryEat(lexer.ELSE) {
		hasElse = true
		if p.tryEat(lexer.NULL) {
			elseIsNull = true
		} else {
			v, ok := p.parseValueExpression()
			if !ok {
				return nil, false
			}
			elseResult = v
		}
	}
	if !p.eat(lexer.END) {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	c := newNode[ast.CaseExpression](&p.arena)
	if simple {
		c.Kind = ast.CaseSimple
	} else {
		c.Kind = ast.CaseSearched
	}
	c.SimpleOperand = simpleOperand
	c.WhenClauses = whens
	c.HasElse = hasElse
	c.ElseResult = elseResult
	c.ElseIsNull = elseIsNull
	return c, true
}
