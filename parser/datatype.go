package parser

import (
	"strings"

	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

// parseDataType parses data_type_descriptor: one of the character,
// bit, exact-numeric, approximate-numeric, datetime, or interval types.
func (p *Parser) parseDataType() (*ast.DataTypeDescriptor, bool) {
	switch p.tok.Kind {
	case lexer.CHARACTER, lexer.CHAR:
		return p.parseCharType(false)
	case lexer.NATIONAL, lexer.NCHAR:
		return p.parseCharType(true)
	case lexer.BIT:
		return p.parseBitType(false)
	case lexer.VARBIT:
		return p.parseBitType(true)
	case lexer.NUMERIC, lexer.DECIMAL, lexer.DEC:
		return p.parseExactNumericType()
	case lexer.INT, lexer.INTEGER, lexer.SMALLINT:
		return p.parseSimpleExactType()
	case lexer.FLOAT:
		return p.parseFloatType()
	case lexer.REAL:
		return p.parseApproxNoPrecisionType("real")
	case lexer.DOUBLE:
		p.advance()
		if !p.eat(lexer.PRECISION) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		dt := newNode[ast.DataTypeDescriptor](&p.arena)
		dt.Kind = ast.DataTypeApproximateNumeric
		dt.Name = "double precision"
		dt.Length, dt.Precision, dt.Scale = -1, -1, -1
		return dt, true
	case lexer.DATE:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		dt := newNode[ast.DataTypeDescriptor](&p.arena)
		dt.Kind = ast.DataTypeDatetime
		dt.Name = "date"
		dt.Length, dt.Precision, dt.Scale = -1, -1, -1
		return dt, true
	case lexer.TIME:
		return p.parseTimeType("time")
	case lexer.TIMESTAMP:
		return p.parseTimeType("timestamp")
	case lexer.INTERVAL:
		return p.parseIntervalType()
	default:
		if p.is(lexer.IDENTIFIER) && strings.EqualFold(p.tok.Text(), "varchar") {
			dt, ok := p.parseCharType(false)
			if dt != nil {
				dt.Name = "varchar"
				dt.Varying = true
			}
			return dt, ok
		}
		p.errorf("expected a data type but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

func (p *Parser) parseOptionalPrecision() (int, bool) {
	if !p.tryEat(lexer.LPAREN) {
		return -1, true
	}
	n, ok := p.parseUnsignedIntLiteral()
	if !ok {
		return 0, false
	}
	if !p.eat(lexer.RPAREN) {
		return 0, false
	}
	return n, true
}

// parseUnsignedIntLiteral consumes an unsigned integer literal token and
// returns its numeric value (small, so a direct byte-scan suffices).
func (p *Parser) parseUnsignedIntLiteral() (int, bool) {
	if !p.is(lexer.LITERAL_UNSIGNED_INTEGER) {
		p.errorf("expected an unsigned integer but found %s %q", p.tok.Kind, p.tok.Text())
		return 0, false
	}
	raw := p.tok.Lex.Raw
	n := 0
	for _, c := range raw {
		n = n*10 + int(c-'0')
	}
	p.advance()
	return n, true
}

func (p *Parser) parseCharType(national bool) (*ast.DataTypeDescriptor, bool) {
	name := "character"
	if national {
		if p.is(lexer.NCHAR) {
			name = "nchar"
			p.advance()
		} else {
			p.advance() // NATIONAL
			if !p.eat(lexer.CHARACTER) {
				return nil, false
			}
			name = "national character"
		}
	} else {
		if p.is(lexer.CHAR) {
			name = "char"
		}
		p.advance()
	}
	varying := p.tryEat(lexer.VARYING)
	if varying {
		name += " varying"
	}
	length, ok := p.parseOptionalPrecision()
	if !ok {
		return nil, false
	}
	var charset *ast.Identifier
	if p.tryEat(lexer.CHARACTER) {
		if !p.eat(lexer.SET) {
			return nil, false
		}
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		charset = &id
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeCharString
	dt.Name = name
	dt.Varying = varying
	dt.National = national
	dt.Length = length
	dt.Precision, dt.Scale = -1, -1
	dt.Charset = charset
	return dt, true
}

func (p *Parser) parseBitType(isVarbit bool) (*ast.DataTypeDescriptor, bool) {
	name := "bit"
	varying := isVarbit
	p.advance()
	if !isVarbit && p.tryEat(lexer.VARYING) {
		varying = true
	}
	if varying && !isVarbit {
		name = "bit varying"
	} else if isVarbit {
		name = "bit varying"
	}
	length, ok := p.parseOptionalPrecision()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeBitString
	dt.Name = name
	dt.Varying = varying
	dt.Length = length
	dt.Precision, dt.Scale = -1, -1
	return dt, true
}

func (p *Parser) parseExactNumericType() (*ast.DataTypeDescriptor, bool) {
	name := strings.ToLower(p.tok.Text())
	p.advance()
	precision, scale := -1, -1
	if p.tryEat(lexer.LPAREN) {
		n, ok := p.parseUnsignedIntLiteral()
		if !ok {
			return nil, false
		}
		precision = n
		if p.tryEat(lexer.COMMA) {
			s, ok := p.parseUnsignedIntLiteral()
			if !ok {
				return nil, false
			}
			scale = s
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeExactNumeric
	dt.Name = name
	dt.Length = -1
	dt.Precision = precision
	dt.Scale = scale
	return dt, true
}

func (p *Parser) parseSimpleExactType() (*ast.DataTypeDescriptor, bool) {
	name := strings.ToLower(p.tok.Text())
	p.advance()
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeExactNumeric
	dt.Name = name
	dt.Length, dt.Precision, dt.Scale = -1, -1, -1
	return dt, true
}

func (p *Parser) parseFloatType() (*ast.DataTypeDescriptor, bool) {
	p.advance()
	precision, ok := p.parseOptionalPrecision()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeApproximateNumeric
	dt.Name = "float"
	dt.Length, dt.Scale = -1, -1
	dt.Precision = precision
	return dt, true
}

func (p *Parser) parseApproxNoPrecisionType(name string) (*ast.DataTypeDescriptor, bool) {
	p.advance()
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeApproximateNumeric
	dt.Name = name
	dt.Length, dt.Precision, dt.Scale = -1, -1, -1
	return dt, true
}

func (p *Parser) parseTimeType(name string) (*ast.DataTypeDescriptor, bool) {
	p.advance()
	precision, ok := p.parseOptionalPrecision()
	if !ok {
		return nil, false
	}
	withTZ := false
	if p.tryEat(lexer.WITH) {
		if !p.eat(lexer.TIME) || !p.eat(lexer.ZONE) {
			return nil, false
		}
		withTZ = true
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeDatetime
	dt.Name = name
	dt.Length, dt.Scale = -1, -1
	dt.Precision = precision
	dt.WithTimeZone = withTZ
	return dt, true
}

var unitByToken = map[lexer.TokenKind]ast.IntervalUnit{
	lexer.YEAR:   ast.UnitYear,
	lexer.MONTH:  ast.UnitMonth,
	lexer.DAY:    ast.UnitDay,
	lexer.HOUR:   ast.UnitHour,
	lexer.MINUTE: ast.UnitMinute,
	lexer.SECOND: ast.UnitSecond,
}

func (p *Parser) parseIntervalUnit() (ast.IntervalUnit, bool) {
	u, ok := unitByToken[p.tok.Kind]
	if !ok {
		p.errorf("expected an interval field but found %s %q", p.tok.Kind, p.tok.Text())
		return 0, false
	}
	p.advance()
	return u, true
}

// parseIntervalQualifier parses start_field TO end_field (with optional
// leading and fractional-seconds precision), or a bare SECOND field with
// its own optional precision pair.
func (p *Parser) parseIntervalQualifier() (*ast.IntervalQualifier, bool) {
	startUnit, ok := p.parseIntervalUnit()
	if !ok {
		return nil, false
	}
	startPrecision := -1
	secondPrecision := -1
	if p.tryEat(lexer.LPAREN) {
		n, ok := p.parseUnsignedIntLiteral()
		if !ok {
			return nil, false
		}
		if startUnit == ast.UnitSecond {
			secondPrecision = n
			if p.tryEat(lexer.COMMA) {
				n2, ok := p.parseUnsignedIntLiteral()
				if !ok {
					return nil, false
				}
				secondPrecision = n2
				startPrecision = n
			}
		} else {
			startPrecision = n
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
	}
	hasEnd := false
	var endUnit ast.IntervalUnit
	if p.tryEat(lexer.TO) {
		hasEnd = true
		endUnit, ok = p.parseIntervalUnit()
		if !ok {
			return nil, false
		}
		if endUnit == ast.UnitSecond && p.tryEat(lexer.LPAREN) {
			n, ok := p.parseUnsignedIntLiteral()
			if !ok {
				return nil, false
			}
			secondPrecision = n
			if !p.eat(lexer.RPAREN) {
				return nil, false
			}
		}
	}
	if p.disabled() {
		return nil, true
	}
	q := newNode[ast.IntervalQualifier](&p.arena)
	q.StartUnit = startUnit
	q.StartPrecision = startPrecision
	q.HasEndUnit = hasEnd
	q.EndUnit = endUnit
	q.SecondPrecision = secondPrecision
	return q, true
}

func (p *Parser) parseIntervalType() (*ast.DataTypeDescriptor, bool) {
	p.advance()
	q, ok := p.parseIntervalQualifier()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	dt := newNode[ast.DataTypeDescriptor](&p.arena)
	dt.Kind = ast.DataTypeInterval
	dt.Name = "interval"
	dt.Length, dt.Precision, dt.Scale = -1, -1, -1
	dt.IntervalQualifier = q
	return dt, true
}
