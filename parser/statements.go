package parser

import (
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

func (p *Parser) parseDropBehaviour() ast.DropBehaviour {
	if p.tryEat(lexer.CASCADE) {
		return ast.Cascade
	}
	p.tryEat(lexer.RESTRICT)
	return ast.Restrict
}

// parseCreate dispatches CREATE SCHEMA | [GLOBAL|LOCAL] TEMPORARY TABLE |
// TABLE | VIEW.
func (p *Parser) parseCreate() (ast.Statement, bool) {
	p.advance() // CREATE
	switch p.tok.Kind {
	case lexer.SCHEMA:
		return p.parseCreateSchema()
	case lexer.VIEW:
		return p.parseCreateView()
	case lexer.TABLE, lexer.GLOBAL, lexer.LOCAL, lexer.TEMPORARY:
		return p.parseCreateTable()
	default:
		p.errorf("expected SCHEMA, TABLE, or VIEW after CREATE but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

func (p *Parser) parseCreateSchema() (ast.Statement, bool) {
	p.advance() // SCHEMA
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var auth, charset, collation *ast.Identifier
	for {
		switch {
		case p.tryEat(lexer.AUTHORIZATION):
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			auth = &id
		case p.is(lexer.CHARACTER):
			p.advance()
			if !p.eat(lexer.SET) {
				return nil, false
			}
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			charset = &id
		case p.tryEat(lexer.COLLATE):
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			collation = &id
		default:
			if p.disabled() {
				return nil, true
			}
			s := newNode[ast.CreateSchemaStatement](&p.arena)
			s.Name = name
			s.Authorization = auth
			s.DefaultCharset = charset
			s.Collation = collation
			return s, true
		}
	}
}

func (p *Parser) parseCreateTable() (ast.Statement, bool) {
	tableType := ast.TableNormal
	switch {
	case p.tryEat(lexer.GLOBAL):
		if !p.eat(lexer.TEMPORARY) {
			return nil, false
		}
		tableType = ast.TableTemporaryGlobal
	case p.tryEat(lexer.LOCAL):
		if !p.eat(lexer.TEMPORARY) {
			return nil, false
		}
		tableType = ast.TableTemporaryLocal
	case p.tryEat(lexer.TEMPORARY):
		tableType = ast.TableTemporaryGlobal
	}
	if !p.eat(lexer.TABLE) {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	var columns []*ast.ColumnDefinition
	var constraints []*ast.Constraint
	for {
		if p.startsConstraint() {
			c, ok := p.parseTableConstraint()
			if !ok {
				return nil, false
			}
			if !p.disabled() {
				constraints = append(constraints, c)
			}
		} else {
			c, ok := p.parseColumnDefinition()
			if !ok {
				return nil, false
			}
			if !p.disabled() {
				columns = append(columns, c)
			}
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
	s := newNode[ast.CreateTableStatement](&p.arena)
	s.Type = tableType
	s.Name = name
	s.Columns = columns
	s.Constraints = constraints
	return s, true
}

func (p *Parser) startsConstraint() bool {
	switch p.tok.Kind {
	case lexer.CONSTRAINT, lexer.UNIQUE, lexer.PRIMARY, lexer.FOREIGN, lexer.CHECK:
		return true
	default:
		return false
	}
}

func (p *Parser) parseColumnDefinition() (*ast.ColumnDefinition, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	dt, ok := p.parseDataType()
	if !ok {
		return nil, false
	}
	var def *ast.ColumnDefault
	if p.tryEat(lexer.DEFAULT) {
		def, ok = p.parseColumnDefault()
		if !ok {
			return nil, false
		}
	}
	var constraints []*ast.Constraint
	for p.startsColumnConstraint() {
		c, ok := p.parseColumnConstraint()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			constraints = append(constraints, c)
		}
	}
	var collation *ast.Identifier
	if p.tryEat(lexer.COLLATE) {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		collation = &id
	}
	if p.disabled() {
		return nil, true
	}
	c := newNode[ast.ColumnDefinition](&p.arena)
	c.Name = name
	c.DataType = dt
	c.Default = def
	c.Constraints = constraints
	c.Collation = collation
	return c, true
}

func (p *Parser) startsColumnConstraint() bool {
	switch p.tok.Kind {
	case lexer.CONSTRAINT, lexer.NOT, lexer.UNIQUE, lexer.PRIMARY, lexer.REFERENCES, lexer.CHECK:
		return true
	default:
		return false
	}
}

func (p *Parser) parseColumnDefault() (*ast.ColumnDefault, bool) {
	switch p.tok.Kind {
	case lexer.NULL:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultNull}, true
	case lexer.USER:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultUser}, true
	case lexer.CURRENT_USER:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultCurrentUser}, true
	case lexer.CURRENT_DATE:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultCurrentDate}, true
	case lexer.CURRENT_TIME:
		p.advance()
		p.parseOptionalPrecision()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultCurrentTime}, true
	case lexer.CURRENT_TIMESTAMP:
		p.advance()
		p.parseOptionalPrecision()
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultCurrentTimestamp}, true
	default:
		v, ok := p.parseValueExpression()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.ColumnDefault{Kind: ast.DefaultLiteral, Value: v}, true
	}
}

func (p *Parser) parseColumnConstraint() (*ast.Constraint, bool) {
	var name *ast.Identifier
	if p.tryEat(lexer.CONSTRAINT) {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		name = &id
	}
	switch p.tok.Kind {
	case lexer.NOT:
		p.advance()
		if !p.eat(lexer.NULL) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintNotNull}, true
	case lexer.UNIQUE:
		p.advance()
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintUnique}, true
	case lexer.PRIMARY:
		p.advance()
		if !p.eat(lexer.KEY) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintPrimaryKey}, true
	case lexer.REFERENCES:
		ref, ok := p.parseForeignKeyRef()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintForeignKey, ForeignKey: ref}, true
	case lexer.CHECK:
		p.advance()
		if !p.eat(lexer.LPAREN) {
			return nil, false
		}
		cond, ok := p.parseSearchCondition()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintCheck, CheckCondition: cond}, true
	default:
		p.errorf("expected a column constraint but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

// parseTableConstraint parses a table-level constraint: an optional
// CONSTRAINT name followed by the kind-specific body (named or anonymous
// UNIQUE/PRIMARY KEY/FOREIGN KEY column lists, or CHECK).
func (p *Parser) parseTableConstraint() (*ast.Constraint, bool) {
	var name *ast.Identifier
	if p.tryEat(lexer.CONSTRAINT) {
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		name = &id
	}
	return p.parseTableConstraintBody(name)
}

var refActionByToken = map[lexer.TokenKind]ast.RefAction{
	lexer.CASCADE:  ast.RefCascade,
	lexer.RESTRICT: ast.RefRestrict,
}

func (p *Parser) parseRefAction() (ast.RefAction, bool) {
	switch p.tok.Kind {
	case lexer.CASCADE, lexer.RESTRICT:
		a := refActionByToken[p.tok.Kind]
		p.advance()
		return a, true
	case lexer.SET:
		p.advance()
		switch p.tok.Kind {
		case lexer.NULL:
			p.advance()
			return ast.RefSetNull, true
		case lexer.DEFAULT:
			p.advance()
			return ast.RefSetDefault, true
		}
		p.errorf("expected NULL or DEFAULT after SET but found %s %q", p.tok.Kind, p.tok.Text())
		return 0, false
	case lexer.NO:
		p.advance()
		if !p.eat(lexer.ACTION) {
			return 0, false
		}
		return ast.RefNoAction, true
	default:
		p.errorf("expected a referential action but found %s %q", p.tok.Kind, p.tok.Text())
		return 0, false
	}
}

func (p *Parser) parseForeignKeyRef() (*ast.ForeignKeyRef, bool) {
	if !p.eat(lexer.REFERENCES) {
		return nil, false
	}
	refTable, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var refColumns []ast.Identifier
	if p.is(lexer.LPAREN) {
		refColumns, ok = p.parseParenIdentList()
		if !ok {
			return nil, false
		}
	}
	ref := &ast.ForeignKeyRef{RefTable: refTable, RefColumns: refColumns}
	if p.tryEat(lexer.MATCH) {
		ref.HasMatch = true
		switch p.tok.Kind {
		case lexer.FULL:
			ref.Match = ast.MatchFull
		case lexer.PARTIAL:
			ref.Match = ast.MatchPartial
		case lexer.SIMPLE:
			ref.Match = ast.MatchSimple
		default:
			p.errorf("expected FULL, PARTIAL, or SIMPLE after MATCH but found %s %q", p.tok.Kind, p.tok.Text())
			return nil, false
		}
		p.advance()
	}
	for {
		if p.tryEat(lexer.ON) {
			switch p.tok.Kind {
			case lexer.DELETE:
				p.advance()
				a, ok := p.parseRefAction()
				if !ok {
					return nil, false
				}
				ref.HasOnDelete = true
				ref.OnDelete = a
			case lexer.UPDATE:
				p.advance()
				a, ok := p.parseRefAction()
				if !ok {
					return nil, false
				}
				ref.HasOnUpdate = true
				ref.OnUpdate = a
			default:
				p.errorf("expected DELETE or UPDATE after ON but found %s %q", p.tok.Kind, p.tok.Text())
				return nil, false
			}
			continue
		}
		break
	}
	return ref, true
}

func (p *Parser) parseDrop() (ast.Statement, bool) {
	p.advance() // DROP
	switch p.tok.Kind {
	case lexer.SCHEMA:
		p.advance()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		behaviour := p.parseDropBehaviour()
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.DropSchemaStatement](&p.arena)
		s.Name = name
		s.Behaviour = behaviour
		return s, true
	case lexer.TABLE:
		p.advance()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		behaviour := p.parseDropBehaviour()
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.DropTableStatement](&p.arena)
		s.Name = name
		s.Behaviour = behaviour
		return s, true
	case lexer.VIEW:
		p.advance()
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		behaviour := p.parseDropBehaviour()
		if p.disabled() {
			return nil, true
		}
		s := newNode[ast.DropViewStatement](&p.arena)
		s.Name = name
		s.Behaviour = behaviour
		return s, true
	default:
		p.errorf("expected SCHEMA, TABLE, or VIEW after DROP but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

func (p *Parser) parseAlterTable() (ast.Statement, bool) {
	p.advance() // ALTER
	if !p.eat(lexer.TABLE) {
		return nil, false
	}
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	var actions []*ast.AlterTableAction
	for {
		a, ok := p.parseAlterTableAction()
		if !ok {
			return nil, false
		}
		if !p.disabled() {
			actions = append(actions, a)
		}
		if !p.tryEat(lexer.COMMA) {
			break
		}
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.AlterTableStatement](&p.arena)
	s.Name = name
	s.Actions = actions
	return s, true
}

func (p *Parser) parseAlterTableAction() (*ast.AlterTableAction, bool) {
	switch p.tok.Kind {
	case lexer.ADD:
		p.advance()
		var constraintName *ast.Identifier
		hasConstraint := p.tryEat(lexer.CONSTRAINT)
		if hasConstraint {
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			constraintName = &id
		}
		if hasConstraint || p.is(lexer.UNIQUE) || p.is(lexer.PRIMARY) || p.is(lexer.FOREIGN) || p.is(lexer.CHECK) {
			c, ok := p.parseTableConstraintBody(constraintName)
			if !ok {
				return nil, false
			}
			if p.disabled() {
				return nil, true
			}
			return &ast.AlterTableAction{Kind: ast.AlterAddConstraint, Constraint: c}, true
		}
		p.tryEat(lexer.COLUMN)
		col, ok := p.parseColumnDefinition()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.AlterTableAction{Kind: ast.AlterAddColumn, Column: col}, true
	case lexer.DROP:
		p.advance()
		if p.tryEat(lexer.CONSTRAINT) {
			id, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			if p.disabled() {
				return nil, true
			}
			return &ast.AlterTableAction{Kind: ast.AlterDropConstraint, ConstraintName: id}, true
		}
		p.tryEat(lexer.COLUMN)
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.AlterTableAction{Kind: ast.AlterDropColumn, ColumnName: id}, true
	case lexer.ALTER:
		p.advance()
		p.tryEat(lexer.COLUMN)
		id, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if p.tryEat(lexer.SET) {
			if !p.eat(lexer.DEFAULT) {
				return nil, false
			}
			def, ok := p.parseColumnDefault()
			if !ok {
				return nil, false
			}
			if p.disabled() {
				return nil, true
			}
			return &ast.AlterTableAction{Kind: ast.AlterAlterColumn, ColumnName: id, AlterColumnKind: ast.AlterColumnSetDefault, DefaultValue: def}, true
		}
		if !p.eat(lexer.DROP) {
			return nil, false
		}
		if !p.eat(lexer.DEFAULT) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.AlterTableAction{Kind: ast.AlterAlterColumn, ColumnName: id, AlterColumnKind: ast.AlterColumnDropDefault}, true
	default:
		p.errorf("expected ADD, DROP, or ALTER but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

// parseTableConstraintBody parses a table constraint's kind-specific
// body, given a constraint name that may already have been consumed.
func (p *Parser) parseTableConstraintBody(name *ast.Identifier) (*ast.Constraint, bool) {
	switch p.tok.Kind {
	case lexer.UNIQUE:
		p.advance()
		cols, ok := p.parseParenIdentList()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintUnique, Columns: cols}, true
	case lexer.PRIMARY:
		p.advance()
		if !p.eat(lexer.KEY) {
			return nil, false
		}
		cols, ok := p.parseParenIdentList()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintPrimaryKey, Columns: cols}, true
	case lexer.FOREIGN:
		p.advance()
		if !p.eat(lexer.KEY) {
			return nil, false
		}
		cols, ok := p.parseParenIdentList()
		if !ok {
			return nil, false
		}
		ref, ok := p.parseForeignKeyRef()
		if !ok {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintForeignKey, Columns: cols, ForeignKey: ref}, true
	case lexer.CHECK:
		p.advance()
		if !p.eat(lexer.LPAREN) {
			return nil, false
		}
		cond, ok := p.parseSearchCondition()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.RPAREN) {
			return nil, false
		}
		if p.disabled() {
			return nil, true
		}
		return &ast.Constraint{Name: name, Kind: ast.ConstraintCheck, CheckCondition: cond}, true
	default:
		p.errorf("expected a table constraint but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}

func (p *Parser) parseCreateView() (ast.Statement, bool) {
	p.advance() // VIEW
	name, ok := p.parseIdent()
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
	if !p.eat(lexer.AS) {
		return nil, false
	}
	query, ok := p.parseQueryExpression()
	if !ok {
		return nil, false
	}
	checkOption := ast.CheckOptionNone
	if p.tryEat(lexer.WITH) {
		if p.tryEat(lexer.CASCADED) {
			checkOption = ast.CheckOptionCascaded
		} else if p.tryEat(lexer.LOCAL) {
			checkOption = ast.CheckOptionLocal
		} else {
			checkOption = ast.CheckOptionCascaded
		}
		if !p.eat(lexer.CHECK) || !p.eat(lexer.OPTION) {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.CreateViewStatement](&p.arena)
	s.Name = name
	s.Columns = columns
	s.Query = query
	s.CheckOption = checkOption
	return s, true
}

func (p *Parser) parseSelectStatement() (ast.Statement, bool) {
	q, ok := p.parseQueryExpression()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.SelectStatement](&p.arena)
	s.Query = q
	return s, true
}

func (p *Parser) parseInsert() (ast.Statement, bool) {
	p.advance() // INSERT
	if !p.eat(lexer.INTO) {
		return nil, false
	}
	name, ok := p.parseIdent()
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
	query, ok := p.parseQueryExpression()
	if !ok {
		return nil, false
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.InsertStatement](&p.arena)
	s.TableName = name
	s.Columns = columns
	s.Query = query
	return s, true
}

func (p *Parser) parseUpdate() (ast.Statement, bool) {
	p.advance() // UPDATE
	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.SET) {
		return nil, false
	}
	var setCols []*ast.SetColumn
	for {
		colName, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if !p.eat(lexer.EQUAL) {
			return nil, false
		}
		sc := &ast.SetColumn{Name: colName}
		switch p.tok.Kind {
		case lexer.NULL:
			p.advance()
			sc.Kind = ast.SetColumnNull
		case lexer.DEFAULT:
			p.advance()
			sc.Kind = ast.SetColumnDefault
		default:
			v, ok := p.parseValueExpression()
			if !ok {
				return nil, false
			}
			sc.Kind = ast.SetColumnValue
			sc.Value = v
		}
		if !p.disabled() {
			setCols = append(setCols, sc)
		}
		if !p.tryEat(lexer.COMMA) {
			break
		}
	}
	var where *ast.SearchCondition
	if p.tryEat(lexer.WHERE) {
		where, ok = p.parseSearchCondition()
		if !ok {
			return nil, false
		}
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.UpdateStatement](&p.arena)
	s.TableName = name
	s.SetColumns = setCols
	s.Where = where
	return s, true
}

func (p *Parser) parseDelete() (ast.Statement, bool) {
	p.advance() // DELETE
	if !p.eat(lexer.FROM) {
		return nil, false
	}
	name, ok := p.parseIdent()
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
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.DeleteStatement](&p.arena)
	s.TableName = name
	s.Where = where
	return s, true
}

var grantActionByToken = map[lexer.TokenKind]ast.GrantActionKind{
	lexer.SELECT:     ast.GrantSelect,
	lexer.DELETE:     ast.GrantDelete,
	lexer.INSERT:     ast.GrantInsert,
	lexer.UPDATE:     ast.GrantUpdate,
	lexer.REFERENCES: ast.GrantReferences,
	lexer.USAGE:      ast.GrantUsage,
}

func (p *Parser) parseGrant() (ast.Statement, bool) {
	p.advance() // GRANT
	var privileges []ast.GrantAction
	if p.tryEat(lexer.ALL) {
		p.tryEat(lexer.PRIVILEGES)
	} else {
		for {
			kind, ok := grantActionByToken[p.tok.Kind]
			if !ok {
				p.errorf("expected a privilege name but found %s %q", p.tok.Kind, p.tok.Text())
				return nil, false
			}
			p.advance()
			action := ast.GrantAction{Kind: kind}
			if (kind == ast.GrantUpdate || kind == ast.GrantReferences || kind == ast.GrantUsage) && p.is(lexer.LPAREN) {
				cols, ok := p.parseParenIdentList()
				if !ok {
					return nil, false
				}
				action.Columns = cols
			}
			if !p.disabled() {
				privileges = append(privileges, action)
			}
			if !p.tryEat(lexer.COMMA) {
				break
			}
		}
	}
	if !p.eat(lexer.ON) {
		return nil, false
	}
	objectType := ast.GrantObjectTable
	switch p.tok.Kind {
	case lexer.TABLE:
		p.advance()
	case lexer.DOMAIN:
		p.advance()
		objectType = ast.GrantObjectDomain
	case lexer.COLLATION:
		p.advance()
		objectType = ast.GrantObjectCollation
	case lexer.CHARACTER:
		p.advance()
		if !p.eat(lexer.SET) {
			return nil, false
		}
		objectType = ast.GrantObjectCharacterSet
	case lexer.TRANSLATION:
		p.advance()
		objectType = ast.GrantObjectTranslation
	}
	on, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.TO) {
		return nil, false
	}
	var to ast.Identifier
	if !p.tryEat(lexer.PUBLIC) {
		to, ok = p.parseIdent()
		if !ok {
			return nil, false
		}
	}
	withGrant := false
	if p.tryEat(lexer.WITH) {
		if !p.eat(lexer.GRANT) || !p.eat(lexer.OPTION) {
			return nil, false
		}
		withGrant = true
	}
	if p.disabled() {
		return nil, true
	}
	s := newNode[ast.GrantStatement](&p.arena)
	s.ObjectType = objectType
	s.On = on
	s.To = to
	s.WithGrantOption = withGrant
	s.Privileges = privileges
	return s, true
}
