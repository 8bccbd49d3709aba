// Package render turns a parsed syntax tree back into SQL text. It is a
// single canonical pretty-printer, not a byte-for-byte reconstruction of
// the original source and not a multi-target dialect converter: every
// statement renders the same way regardless of how its source was
// spaced, cased, or quoted.
package render

import (
	"fmt"
	"strings"

	"github.com/oarkflow/sqltoast/ast"
)

// Render prints a single statement as SQL text, without a trailing
// semicolon.
func Render(stmt ast.Statement) (string, error) {
	var b strings.Builder
	if err := renderStatement(&b, stmt); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderAll prints a slice of statements separated by "; ", joined into
// a single string suitable for re-parsing with ParseAll.
func RenderAll(stmts []ast.Statement) (string, error) {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteString("; ")
		}
		if err := renderStatement(&b, s); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func renderStatement(b *strings.Builder, stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.CreateSchemaStatement:
		renderCreateSchema(b, s)
	case *ast.DropSchemaStatement:
		renderDropSchema(b, s)
	case *ast.CreateTableStatement:
		renderCreateTable(b, s)
	case *ast.DropTableStatement:
		b.WriteString("DROP TABLE ")
		renderIdent(b, s.Name)
		renderDropBehaviour(b, s.Behaviour)
	case *ast.AlterTableStatement:
		renderAlterTable(b, s)
	case *ast.SelectStatement:
		renderQueryExpression(b, s.Query)
	case *ast.InsertStatement:
		renderInsert(b, s)
	case *ast.UpdateStatement:
		renderUpdate(b, s)
	case *ast.DeleteStatement:
		b.WriteString("DELETE FROM ")
		renderIdent(b, s.TableName)
		if s.Where != nil {
			b.WriteString(" WHERE ")
			renderSearchCondition(b, s.Where)
		}
	case *ast.CreateViewStatement:
		renderCreateView(b, s)
	case *ast.DropViewStatement:
		b.WriteString("DROP VIEW ")
		renderIdent(b, s.Name)
		renderDropBehaviour(b, s.Behaviour)
	case *ast.GrantStatement:
		renderGrant(b, s)
	case *ast.CommitStatement:
		b.WriteString("COMMIT WORK")
	case *ast.RollbackStatement:
		b.WriteString("ROLLBACK WORK")
	default:
		return fmt.Errorf("render: unsupported statement type %T", s)
	}
	return nil
}

func renderIdent(b *strings.Builder, id ast.Identifier) {
	b.WriteString(id.Text())
}

func renderIdentPtr(b *strings.Builder, id *ast.Identifier) {
	if id == nil {
		return
	}
	b.WriteString(id.Text())
}

func renderDropBehaviour(b *strings.Builder, d ast.DropBehaviour) {
	if d == ast.Cascade {
		b.WriteString(" CASCADE")
	} else {
		b.WriteString(" RESTRICT")
	}
}

func renderCreateSchema(b *strings.Builder, s *ast.CreateSchemaStatement) {
	b.WriteString("CREATE SCHEMA ")
	renderIdent(b, s.Name)
	if s.Authorization != nil {
		b.WriteString(" AUTHORIZATION ")
		renderIdentPtr(b, s.Authorization)
	}
	if s.DefaultCharset != nil {
		b.WriteString(" CHARACTER SET ")
		renderIdentPtr(b, s.DefaultCharset)
	}
	if s.Collation != nil {
		b.WriteString(" COLLATE ")
		renderIdentPtr(b, s.Collation)
	}
}

func renderDropSchema(b *strings.Builder, s *ast.DropSchemaStatement) {
	b.WriteString("DROP SCHEMA ")
	renderIdent(b, s.Name)
	renderDropBehaviour(b, s.Behaviour)
}

func renderCreateTable(b *strings.Builder, s *ast.CreateTableStatement) {
	b.WriteString("CREATE ")
	switch s.Type {
	case ast.TableTemporaryGlobal:
		b.WriteString("GLOBAL TEMPORARY ")
	case ast.TableTemporaryLocal:
		b.WriteString("LOCAL TEMPORARY ")
	}
	b.WriteString("TABLE ")
	renderIdent(b, s.Name)
	b.WriteString(" (")
	first := true
	for _, c := range s.Columns {
		if !first {
			b.WriteString(", ")
		}
		first = false
		renderColumnDefinition(b, c)
	}
	for _, c := range s.Constraints {
		if !first {
			b.WriteString(", ")
		}
		first = false
		renderConstraint(b, c)
	}
	b.WriteByte(')')
}

func renderColumnDefinition(b *strings.Builder, c *ast.ColumnDefinition) {
	renderIdent(b, c.Name)
	b.WriteByte(' ')
	renderDataType(b, c.DataType)
	if c.Default != nil {
		b.WriteString(" DEFAULT ")
		renderColumnDefault(b, c.Default)
	}
	for _, con := range c.Constraints {
		b.WriteByte(' ')
		renderConstraint(b, con)
	}
	if c.Collation != nil {
		b.WriteString(" COLLATE ")
		renderIdentPtr(b, c.Collation)
	}
}

func renderColumnDefault(b *strings.Builder, d *ast.ColumnDefault) {
	switch d.Kind {
	case ast.DefaultNull:
		b.WriteString("NULL")
	case ast.DefaultCurrentUser:
		b.WriteString("CURRENT_USER")
	case ast.DefaultCurrentDate:
		b.WriteString("CURRENT_DATE")
	case ast.DefaultCurrentTime:
		b.WriteString("CURRENT_TIME")
	case ast.DefaultCurrentTimestamp:
		b.WriteString("CURRENT_TIMESTAMP")
	case ast.DefaultUser:
		b.WriteString("USER")
	default:
		renderValueExpression(b, d.Value)
	}
}

func renderConstraint(b *strings.Builder, c *ast.Constraint) {
	if c.Name != nil {
		b.WriteString("CONSTRAINT ")
		renderIdentPtr(b, c.Name)
		b.WriteByte(' ')
	}
	switch c.Kind {
	case ast.ConstraintNotNull:
		b.WriteString("NOT NULL")
	case ast.ConstraintUnique:
		b.WriteString("UNIQUE")
		renderColumnParenList(b, c.Columns)
	case ast.ConstraintPrimaryKey:
		b.WriteString("PRIMARY KEY")
		renderColumnParenList(b, c.Columns)
	case ast.ConstraintForeignKey:
		b.WriteString("FOREIGN KEY")
		renderColumnParenList(b, c.Columns)
		b.WriteByte(' ')
		renderForeignKeyRef(b, c.ForeignKey)
	case ast.ConstraintCheck:
		b.WriteString("CHECK (")
		renderSearchCondition(b, c.CheckCondition)
		b.WriteByte(')')
	}
}

func renderColumnParenList(b *strings.Builder, cols []ast.Identifier) {
	if len(cols) == 0 {
		return
	}
	b.WriteString(" (")
	for i, c := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		renderIdent(b, c)
	}
	b.WriteByte(')')
}

func renderForeignKeyRef(b *strings.Builder, fk *ast.ForeignKeyRef) {
	b.WriteString("REFERENCES ")
	renderIdent(b, fk.RefTable)
	renderColumnParenList(b, fk.RefColumns)
	if fk.HasMatch {
		b.WriteString(" MATCH ")
		switch fk.Match {
		case ast.MatchFull:
			b.WriteString("FULL")
		case ast.MatchPartial:
			b.WriteString("PARTIAL")
		case ast.MatchSimple:
			b.WriteString("SIMPLE")
		}
	}
	if fk.HasOnDelete {
		b.WriteString(" ON DELETE ")
		renderRefAction(b, fk.OnDelete)
	}
	if fk.HasOnUpdate {
		b.WriteString(" ON UPDATE ")
		renderRefAction(b, fk.OnUpdate)
	}
}

func renderRefAction(b *strings.Builder, a ast.RefAction) {
	switch a {
	case ast.RefCascade:
		b.WriteString("CASCADE")
	case ast.RefSetNull:
		b.WriteString("SET NULL")
	case ast.RefSetDefault:
		b.WriteString("SET DEFAULT")
	case ast.RefRestrict:
		b.WriteString("RESTRICT")
	default:
		b.WriteString("NO ACTION")
	}
}

func renderDataType(b *strings.Builder, d *ast.DataTypeDescriptor) {
	switch d.Kind {
	case ast.DataTypeCharString:
		if d.National {
			b.WriteString("NATIONAL ")
		}
		b.WriteString(strings.ToUpper(d.Name))
		if d.Length >= 0 {
			fmt.Fprintf(b, "(%d)", d.Length)
		}
		if d.Charset != nil {
			b.WriteString(" CHARACTER SET ")
			renderIdentPtr(b, d.Charset)
		}
	case ast.DataTypeBitString:
		b.WriteString(strings.ToUpper(d.Name))
		if d.Length >= 0 {
			fmt.Fprintf(b, "(%d)", d.Length)
		}
	case ast.DataTypeExactNumeric:
		b.WriteString(strings.ToUpper(d.Name))
		if d.Precision >= 0 {
			if d.Scale >= 0 {
				fmt.Fprintf(b, "(%d,%d)", d.Precision, d.Scale)
			} else {
				fmt.Fprintf(b, "(%d)", d.Precision)
			}
		}
	case ast.DataTypeApproximateNumeric:
		b.WriteString(strings.ToUpper(d.Name))
		if d.Precision >= 0 {
			fmt.Fprintf(b, "(%d)", d.Precision)
		}
	case ast.DataTypeDatetime:
		b.WriteString(strings.ToUpper(d.Name))
		if d.Precision >= 0 {
			fmt.Fprintf(b, "(%d)", d.Precision)
		}
		if d.WithTimeZone {
			b.WriteString(" WITH TIME ZONE")
		}
	case ast.DataTypeInterval:
		b.WriteString("INTERVAL ")
		renderIntervalQualifier(b, d.IntervalQualifier)
	}
}

func renderIntervalQualifier(b *strings.Builder, q *ast.IntervalQualifier) {
	renderIntervalUnit(b, q.StartUnit)
	if q.StartPrecision >= 0 {
		if q.StartUnit == ast.UnitSecond && q.SecondPrecision >= 0 {
			fmt.Fprintf(b, "(%d,%d)", q.StartPrecision, q.SecondPrecision)
		} else {
			fmt.Fprintf(b, "(%d)", q.StartPrecision)
		}
	}
	if q.HasEndUnit {
		b.WriteString(" TO ")
		renderIntervalUnit(b, q.EndUnit)
		if q.EndUnit == ast.UnitSecond && q.SecondPrecision >= 0 {
			fmt.Fprintf(b, "(%d)", q.SecondPrecision)
		}
	}
}

func renderIntervalUnit(b *strings.Builder, u ast.IntervalUnit) {
	switch u {
	case ast.UnitYear:
		b.WriteString("YEAR")
	case ast.UnitMonth:
		b.WriteString("MONTH")
	case ast.UnitDay:
		b.WriteString("DAY")
	case ast.UnitHour:
		b.WriteString("HOUR")
	case ast.UnitMinute:
		b.WriteString("MINUTE")
	case ast.UnitSecond:
		b.WriteString("SECOND")
	}
}

func renderAlterTable(b *strings.Builder, s *ast.AlterTableStatement) {
	b.WriteString("ALTER TABLE ")
	renderIdent(b, s.Name)
	for i, a := range s.Actions {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		renderAlterTableAction(b, a)
	}
}

func renderAlterTableAction(b *strings.Builder, a *ast.AlterTableAction) {
	switch a.Kind {
	case ast.AlterAddColumn:
		b.WriteString("ADD COLUMN ")
		renderColumnDefinition(b, a.Column)
	case ast.AlterAlterColumn:
		b.WriteString("ALTER COLUMN ")
		renderIdent(b, a.ColumnName)
		if a.AlterColumnKind == ast.AlterColumnSetDefault {
			b.WriteString(" SET DEFAULT ")
			renderColumnDefault(b, a.DefaultValue)
		} else {
			b.WriteString(" DROP DEFAULT")
		}
	case ast.AlterDropColumn:
		b.WriteString("DROP COLUMN ")
		renderIdent(b, a.ColumnName)
	case ast.AlterAddConstraint:
		b.WriteString("ADD ")
		renderConstraint(b, a.Constraint)
	case ast.AlterDropConstraint:
		b.WriteString("DROP CONSTRAINT ")
		renderIdent(b, a.ConstraintName)
	}
}

func renderCreateView(b *strings.Builder, s *ast.CreateViewStatement) {
	b.WriteString("CREATE VIEW ")
	renderIdent(b, s.Name)
	renderColumnParenList(b, s.Columns)
	b.WriteString(" AS ")
	renderQueryExpression(b, s.Query)
	switch s.CheckOption {
	case ast.CheckOptionLocal:
		b.WriteString(" WITH LOCAL CHECK OPTION")
	case ast.CheckOptionCascaded:
		b.WriteString(" WITH CASCADED CHECK OPTION")
	}
}

func renderInsert(b *strings.Builder, s *ast.InsertStatement) {
	b.WriteString("INSERT INTO ")
	renderIdent(b, s.TableName)
	renderColumnParenList(b, s.Columns)
	b.WriteByte(' ')
	renderQueryExpression(b, s.Query)
}

func renderUpdate(b *strings.Builder, s *ast.UpdateStatement) {
	b.WriteString("UPDATE ")
	renderIdent(b, s.TableName)
	b.WriteString(" SET ")
	for i, sc := range s.SetColumns {
		if i > 0 {
			b.WriteString(", ")
		}
		renderIdent(b, sc.Name)
		b.WriteString(" = ")
		switch sc.Kind {
		case ast.SetColumnNull:
			b.WriteString("NULL")
		case ast.SetColumnDefault:
			b.WriteString("DEFAULT")
		default:
			renderValueExpression(b, sc.Value)
		}
	}
	if s.Where != nil {
		b.WriteString(" WHERE ")
		renderSearchCondition(b, s.Where)
	}
}

func renderGrant(b *strings.Builder, s *ast.GrantStatement) {
	b.WriteString("GRANT ")
	if s.AllPrivileges() {
		b.WriteString("ALL PRIVILEGES")
	} else {
		for i, p := range s.Privileges {
			if i > 0 {
				b.WriteString(", ")
			}
			renderGrantAction(b, p)
		}
	}
	b.WriteString(" ON ")
	switch s.ObjectType {
	case ast.GrantObjectDomain:
		b.WriteString("DOMAIN ")
	case ast.GrantObjectCollation:
		b.WriteString("COLLATION ")
	case ast.GrantObjectCharacterSet:
		b.WriteString("CHARACTER SET ")
	case ast.GrantObjectTranslation:
		b.WriteString("TRANSLATION ")
	}
	renderIdent(b, s.On)
	b.WriteString(" TO ")
	if s.ToPublic() {
		b.WriteString("PUBLIC")
	} else {
		renderIdent(b, s.To)
	}
	if s.WithGrantOption {
		b.WriteString(" WITH GRANT OPTION")
	}
}

func renderGrantAction(b *strings.Builder, a ast.GrantAction) {
	switch a.Kind {
	case ast.GrantSelect:
		b.WriteString("SELECT")
	case ast.GrantDelete:
		b.WriteString("DELETE")
	case ast.GrantInsert:
		b.WriteString("INSERT")
	case ast.GrantUpdate:
		b.WriteString("UPDATE")
		renderColumnParenList(b, a.Columns)
	case ast.GrantReferences:
		b.WriteString("REFERENCES")
		renderColumnParenList(b, a.Columns)
	case ast.GrantUsage:
		b.WriteString("USAGE")
		renderColumnParenList(b, a.Columns)
	}
}

func renderQueryExpression(b *strings.Builder, qe *ast.QueryExpression) {
	if qe == nil {
		return
	}
	if qe.Joined != nil {
		renderTableReference(b, qe.Joined)
		return
	}
	if qe.Left != nil {
		renderQueryExpression(b, qe.Left)
		b.WriteByte(' ')
		renderSetOp(b, qe.Op)
		b.WriteByte(' ')
	}
	renderQueryTerm(b, qe.Term)
}

func renderQueryTerm(b *strings.Builder, qt *ast.QueryTerm) {
	if qt.Left != nil {
		renderQueryTerm(b, qt.Left)
		b.WriteByte(' ')
		renderSetOp(b, qt.Op)
		b.WriteByte(' ')
	}
	renderQueryPrimary(b, qt.Primary)
}

func renderSetOp(b *strings.Builder, op ast.SetOpKind) {
	switch op {
	case ast.SetOpUnion:
		b.WriteString("UNION")
	case ast.SetOpUnionAll:
		b.WriteString("UNION ALL")
	case ast.SetOpIntersect:
		b.WriteString("INTERSECT")
	case ast.SetOpIntersectAll:
		b.WriteString("INTERSECT ALL")
	case ast.SetOpExcept:
		b.WriteString("EXCEPT")
	case ast.SetOpExceptAll:
		b.WriteString("EXCEPT ALL")
	}
}

func renderQueryPrimary(b *strings.Builder, qp *ast.QueryPrimary) {
	switch qp.Kind {
	case ast.QueryPrimarySpecification:
		renderQuerySpecification(b, qp.Specification)
	case ast.QueryPrimaryTableValueConstructor:
		b.WriteString("VALUES ")
		for i, row := range qp.TableValues {
			if i > 0 {
				b.WriteString(", ")
			}
			renderRowValueConstructor(b, row)
		}
	case ast.QueryPrimaryExplicitTable:
		b.WriteString("TABLE ")
		renderIdent(b, qp.ExplicitTable.Name)
	case ast.QueryPrimarySubexpression:
		b.WriteByte('(')
		renderQueryExpression(b, qp.Sub)
		b.WriteByte(')')
	}
}

func renderQuerySpecification(b *strings.Builder, qs *ast.QuerySpecification) {
	b.WriteString("SELECT ")
	if qs.Distinct {
		b.WriteString("DISTINCT ")
	}
	for i, col := range qs.SelectList {
		if i > 0 {
			b.WriteString(", ")
		}
		if col.Star {
			b.WriteByte('*')
		} else {
			renderValueExpression(b, col.Expr)
		}
		if col.Alias != nil {
			b.WriteString(" AS ")
			renderIdentPtr(b, col.Alias)
		}
	}
	if qs.Table == nil {
		return
	}
	if len(qs.Table.From) > 0 {
		b.WriteString(" FROM ")
		for i, tr := range qs.Table.From {
			if i > 0 {
				b.WriteString(", ")
			}
			renderTableReference(b, tr)
		}
	}
	if qs.Table.Where != nil {
		b.WriteString(" WHERE ")
		renderSearchCondition(b, qs.Table.Where)
	}
	if len(qs.Table.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		for i, e := range qs.Table.GroupBy {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValueExpression(b, e)
		}
	}
	if qs.Table.Having != nil {
		b.WriteString(" HAVING ")
		renderSearchCondition(b, qs.Table.Having)
	}
}

func renderTableReference(b *strings.Builder, ref ast.TableReference) {
	switch t := ref.(type) {
	case *ast.TableName:
		renderIdent(b, t.Name)
		if t.Correlation != nil {
			b.WriteByte(' ')
			renderIdentPtr(b, t.Correlation)
		}
	case *ast.DerivedTable:
		b.WriteByte('(')
		renderQueryExpression(b, t.Query)
		b.WriteString(") ")
		renderIdent(b, t.Correlation)
		renderColumnParenList(b, t.ColumnNames)
	case *ast.JoinedTable:
		renderTableReference(b, t.Left)
		b.WriteByte(' ')
		renderJoinType(b, t.Type)
		b.WriteString(" JOIN ")
		renderTableReference(b, t.Right)
		if t.Spec != nil {
			if t.Spec.Condition != nil {
				b.WriteString(" ON ")
				renderSearchCondition(b, t.Spec.Condition)
			} else if len(t.Spec.NamedColumns) > 0 {
				b.WriteString(" USING")
				renderColumnParenList(b, t.Spec.NamedColumns)
			}
		}
	}
}

func renderJoinType(b *strings.Builder, jt ast.JoinType) {
	switch jt {
	case ast.JoinCross:
		b.WriteString("CROSS")
	case ast.JoinInner:
		b.WriteString("INNER")
	case ast.JoinLeft:
		b.WriteString("LEFT")
	case ast.JoinRight:
		b.WriteString("RIGHT")
	case ast.JoinFull:
		b.WriteString("FULL")
	case ast.JoinNatural:
		b.WriteString("NATURAL")
	case ast.JoinUnion:
		b.WriteString("UNION")
	}
}

func renderRowValueConstructor(b *strings.Builder, rvc ast.RowValueConstructor) {
	switch r := rvc.(type) {
	case *ast.RowValueExpression:
		renderValueExpression(b, r.Expr)
	case *ast.RowValueNull:
		b.WriteString("NULL")
	case *ast.RowValueDefault:
		b.WriteString("DEFAULT")
	case *ast.RowValueList:
		b.WriteByte('(')
		for i, e := range r.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			renderRowValueConstructor(b, e)
		}
		b.WriteByte(')')
	case *ast.RowSubquery:
		b.WriteByte('(')
		renderQueryExpression(b, r.Query)
		b.WriteByte(')')
	}
}

func renderSearchCondition(b *strings.Builder, sc *ast.SearchCondition) {
	for i, term := range sc.Terms {
		if i > 0 {
			b.WriteString(" OR ")
		}
		renderBooleanTerm(b, term)
	}
}

func renderBooleanTerm(b *strings.Builder, t *ast.BooleanTerm) {
	for cur := t; cur != nil; cur = cur.And {
		if cur != t {
			b.WriteString(" AND ")
		}
		renderBooleanFactor(b, cur.Factor)
	}
}

func renderBooleanFactor(b *strings.Builder, f *ast.BooleanFactor) {
	if f.ReverseOp {
		b.WriteString("NOT ")
	}
	if f.Kind == ast.FactorNestedCondition {
		b.WriteByte('(')
		renderSearchCondition(b, f.Nested)
		b.WriteByte(')')
		return
	}
	renderPredicate(b, f.Predicate)
}

func renderPredicate(b *strings.Builder, p *ast.Predicate) {
	switch p.Op {
	case ast.CompEqual, ast.CompNotEqual, ast.CompLess, ast.CompGreater, ast.CompLessEqual, ast.CompGreaterEqual:
		renderRowValueConstructor(b, p.Left)
		b.WriteByte(' ')
		b.WriteString(compOpText(p.Op))
		b.WriteByte(' ')
		renderRowValueConstructor(b, p.Right)
	case ast.CompBetween:
		renderRowValueConstructor(b, p.Left)
		b.WriteString(negatedKeyword(p.Negated, " BETWEEN "))
		renderRowValueConstructor(b, p.BetweenLow)
		b.WriteString(" AND ")
		renderRowValueConstructor(b, p.BetweenHigh)
	case ast.CompInValues:
		renderRowValueConstructor(b, p.Left)
		b.WriteString(negatedKeyword(p.Negated, " IN ("))
		for i, v := range p.InValues {
			if i > 0 {
				b.WriteString(", ")
			}
			renderRowValueConstructor(b, v)
		}
		b.WriteByte(')')
	case ast.CompInSubquery:
		renderRowValueConstructor(b, p.Left)
		b.WriteString(negatedKeyword(p.Negated, " IN ("))
		renderQueryExpression(b, p.InSubquery)
		b.WriteByte(')')
	case ast.CompLike:
		renderRowValueConstructor(b, p.Left)
		b.WriteString(negatedKeyword(p.Negated, " LIKE "))
		renderRowValueConstructor(b, p.Right)
		if p.LikeEscape != nil {
			b.WriteString(" ESCAPE ")
			renderRowValueConstructor(b, p.LikeEscape)
		}
	case ast.CompNull:
		renderRowValueConstructor(b, p.Left)
		if p.Negated {
			b.WriteString(" IS NOT NULL")
		} else {
			b.WriteString(" IS NULL")
		}
	case ast.CompExists:
		b.WriteString("EXISTS (")
		renderQueryExpression(b, p.ExistsQuery)
		b.WriteByte(')')
	case ast.CompUnique:
		b.WriteString("UNIQUE (")
		renderQueryExpression(b, p.ExistsQuery)
		b.WriteByte(')')
	}
}

// negatedKeyword prepends NOT to a multi-word predicate keyword (e.g.
// " BETWEEN " becomes " NOT BETWEEN ") when negated is set.
func negatedKeyword(negated bool, keyword string) string {
	if !negated {
		return keyword
	}
	return " NOT" + keyword
}

func compOpText(op ast.CompOp) string {
	switch op {
	case ast.CompEqual:
		return "="
	case ast.CompNotEqual:
		return "<>"
	case ast.CompLess:
		return "<"
	case ast.CompGreater:
		return ">"
	case ast.CompLessEqual:
		return "<="
	case ast.CompGreaterEqual:
		return ">="
	}
	return "?"
}

func renderValueExpression(b *strings.Builder, ve ast.ValueExpression) {
	switch e := ve.(type) {
	case *ast.NumericValueExpression:
		if e.Left != nil {
			renderValueExpression(b, e.Left)
			b.WriteByte(' ')
			b.WriteString(arithOpText(e.Op))
			b.WriteByte(' ')
		}
		renderNumericTerm(b, e.Term)
	case *ast.CharacterValueExpression:
		for i, f := range e.Factors {
			if i > 0 {
				b.WriteString(" || ")
			}
			renderValueExpressionPrimary(b, f.Primary)
			if f.Collation != nil {
				b.WriteString(" COLLATE ")
				renderIdentPtr(b, f.Collation)
			}
		}
	case *ast.DatetimeValueExpression:
		renderValueExpressionPrimary(b, e.Term)
		if e.Interval != nil {
			b.WriteByte(' ')
			b.WriteString(arithOpText(e.Op))
			b.WriteByte(' ')
			renderIntervalTerm(b, e.Interval)
		}
	case *ast.IntervalValueExpression:
		if e.Left != nil {
			renderValueExpression(b, e.Left)
			b.WriteByte(' ')
			b.WriteString(arithOpText(e.Op))
			b.WriteByte(' ')
		}
		renderIntervalTerm(b, e.Term)
	}
}

func renderNumericTerm(b *strings.Builder, t *ast.NumericTerm) {
	if t.Left != nil {
		renderNumericTerm(b, t.Left)
		b.WriteByte(' ')
		b.WriteString(arithOpText(t.Op))
		b.WriteByte(' ')
	}
	renderNumericFactor(b, t.Factor)
}

func renderNumericFactor(b *strings.Builder, f *ast.NumericFactor) {
	if f.Sign == ast.SignPlus {
		b.WriteByte('+')
	} else if f.Sign == ast.SignMinus {
		b.WriteByte('-')
	}
	renderValueExpressionPrimary(b, f.Primary)
}

func renderIntervalTerm(b *strings.Builder, t *ast.IntervalTerm) {
	b.WriteString("INTERVAL ")
	renderValueExpressionPrimary(b, t.Primary)
	if t.Qualifier != nil {
		b.WriteByte(' ')
		renderIntervalQualifier(b, t.Qualifier)
	}
	if t.Factor != nil {
		b.WriteByte(' ')
		b.WriteString(arithOpText(t.MulDivOp))
		b.WriteByte(' ')
		renderNumericFactor(b, t.Factor)
	}
}

func arithOpText(op ast.ArithOp) string {
	switch op {
	case ast.ArithAdd:
		return "+"
	case ast.ArithSub:
		return "-"
	case ast.ArithMul:
		return "*"
	case ast.ArithDiv:
		return "/"
	}
	return "?"
}

func renderValueExpressionPrimary(b *strings.Builder, p ast.ValueExpressionPrimary) {
	switch v := p.(type) {
	case *ast.UnsignedValueSpecification:
		renderUnsignedValueSpecification(b, v)
	case *ast.ColumnReference:
		if v.Qualifier != nil {
			renderIdentPtr(b, v.Qualifier)
			b.WriteByte('.')
		}
		renderIdent(b, v.Name)
	case *ast.SetFunction:
		renderSetFunction(b, v)
	case *ast.ScalarSubquery:
		b.WriteByte('(')
		renderQueryExpression(b, v.Query)
		b.WriteByte(')')
	case *ast.CaseExpression:
		renderCaseExpression(b, v)
	case *ast.Parenthesized:
		b.WriteByte('(')
		renderValueExpression(b, v.Inner)
		b.WriteByte(')')
	case *ast.CastSpecification:
		b.WriteString("CAST(")
		if v.OperandIsNull {
			b.WriteString("NULL")
		} else {
			renderValueExpression(b, v.Operand)
		}
		b.WriteString(" AS ")
		renderDataType(b, v.TargetType)
		b.WriteByte(')')
	case *ast.NumericValueFunction:
		renderNumericValueFunction(b, v)
	case *ast.StringFunction:
		renderStringFunction(b, v)
	case *ast.DatetimeValueFunction:
		renderDatetimeValueFunction(b, v)
	}
}

func renderUnsignedValueSpecification(b *strings.Builder, v *ast.UnsignedValueSpecification) {
	switch v.Kind {
	case ast.UnsignedLiteral:
		b.WriteString(v.Literal.Text())
	case ast.UnsignedNull:
		b.WriteString("NULL")
	case ast.UnsignedUser:
		b.WriteString("USER")
	case ast.UnsignedCurrentUser:
		b.WriteString("CURRENT_USER")
	case ast.UnsignedSessionUser:
		b.WriteString("SESSION_USER")
	case ast.UnsignedSystemUser:
		b.WriteString("SYSTEM_USER")
	case ast.UnsignedValueKeyword:
		b.WriteString("VALUE")
	}
}

func renderSetFunction(b *strings.Builder, f *ast.SetFunction) {
	b.WriteString(setFunctionName(f.Kind))
	b.WriteByte('(')
	if f.Star {
		b.WriteByte('*')
	} else {
		if f.Distinct {
			b.WriteString("DISTINCT ")
		}
		renderValueExpression(b, f.Operand)
	}
	b.WriteByte(')')
}

func setFunctionName(k ast.SetFunctionKind) string {
	switch k {
	case ast.SetCount:
		return "COUNT"
	case ast.SetAvg:
		return "AVG"
	case ast.SetMin:
		return "MIN"
	case ast.SetMax:
		return "MAX"
	case ast.SetSum:
		return "SUM"
	}
	return "?"
}

func renderCaseExpression(b *strings.Builder, c *ast.CaseExpression) {
	switch c.Kind {
	case ast.CaseCoalesce:
		b.WriteString("COALESCE(")
		for i, e := range c.CoalesceList {
			if i > 0 {
				b.WriteString(", ")
			}
			renderValueExpression(b, e)
		}
		b.WriteByte(')')
	case ast.CaseNullif:
		b.WriteString("NULLIF(")
		renderValueExpression(b, c.NullifLeft)
		b.WriteString(", ")
		renderValueExpression(b, c.NullifRight)
		b.WriteByte(')')
	case ast.CaseSimple:
		b.WriteString("CASE ")
		renderValueExpression(b, c.SimpleOperand)
		renderWhenClauses(b, c.WhenClauses, true)
		renderCaseElse(b, c)
		b.WriteString(" END")
	case ast.CaseSearched:
		b.WriteString("CASE")
		renderWhenClauses(b, c.WhenClauses, false)
		renderCaseElse(b, c)
		b.WriteString(" END")
	}
}

func renderWhenClauses(b *strings.Builder, whens []ast.WhenClause, simple bool) {
	for _, w := range whens {
		b.WriteString(" WHEN ")
		if simple {
			renderValueExpression(b, w.CompareValue)
		} else {
			renderSearchCondition(b, w.Condition)
		}
		b.WriteString(" THEN ")
		if w.ResultIsNull {
			b.WriteString("NULL")
		} else {
			renderValueExpression(b, w.Result)
		}
	}
}

func renderCaseElse(b *strings.Builder, c *ast.CaseExpression) {
	if !c.HasElse {
		return
	}
	b.WriteString(" ELSE ")
	if c.ElseIsNull {
		b.WriteString("NULL")
	} else {
		renderValueExpression(b, c.ElseResult)
	}
}

func renderNumericValueFunction(b *strings.Builder, f *ast.NumericValueFunction) {
	switch f.Kind {
	case ast.FuncExtract:
		b.WriteString("EXTRACT(")
		renderIntervalUnit(b, f.ExtractUnit)
		b.WriteString(" FROM ")
		renderValueExpression(b, f.ExtractSource)
		b.WriteByte(')')
	case ast.FuncPosition:
		b.WriteString("POSITION(")
		renderValueExpression(b, f.PositionNeedle)
		b.WriteString(" IN ")
		renderValueExpression(b, f.PositionHaystack)
		b.WriteByte(')')
	case ast.FuncCharLength:
		b.WriteString("CHAR_LENGTH(")
		renderValueExpression(b, f.LengthOperand)
		b.WriteByte(')')
	case ast.FuncCharacterLength:
		b.WriteString("CHARACTER_LENGTH(")
		renderValueExpression(b, f.LengthOperand)
		b.WriteByte(')')
	case ast.FuncBitLength:
		b.WriteString("BIT_LENGTH(")
		renderValueExpression(b, f.LengthOperand)
		b.WriteByte(')')
	case ast.FuncOctetLength:
		b.WriteString("OCTET_LENGTH(")
		renderValueExpression(b, f.LengthOperand)
		b.WriteByte(')')
	}
}

func renderStringFunction(b *strings.Builder, f *ast.StringFunction) {
	switch f.Kind {
	case ast.StrUpper:
		b.WriteString("UPPER(")
		renderValueExpression(b, f.Operand)
		b.WriteByte(')')
	case ast.StrLower:
		b.WriteString("LOWER(")
		renderValueExpression(b, f.Operand)
		b.WriteByte(')')
	case ast.StrSubstring:
		b.WriteString("SUBSTRING(")
		renderValueExpression(b, f.Operand)
		b.WriteString(" FROM ")
		renderValueExpression(b, f.SubstringFrom)
		if f.SubstringFor != nil {
			b.WriteString(" FOR ")
			renderValueExpression(b, f.SubstringFor)
		}
		b.WriteByte(')')
	case ast.StrConvert:
		b.WriteString("CONVERT(")
		renderValueExpression(b, f.Operand)
		b.WriteString(" USING ")
		renderIdentPtr(b, f.ConversionName)
		b.WriteByte(')')
	case ast.StrTranslate:
		b.WriteString("TRANSLATE(")
		renderValueExpression(b, f.Operand)
		b.WriteString(" USING ")
		renderIdentPtr(b, f.TranslationName)
		b.WriteByte(')')
	case ast.StrTrim:
		b.WriteString("TRIM(")
		switch f.TrimSpec {
		case ast.TrimLeading:
			b.WriteString("LEADING ")
		case ast.TrimTrailing:
			b.WriteString("TRAILING ")
		case ast.TrimBoth:
			b.WriteString("BOTH ")
		}
		if f.TrimChar != nil {
			renderValueExpression(b, f.TrimChar)
			b.WriteByte(' ')
		}
		b.WriteString("FROM ")
		renderValueExpression(b, f.Operand)
		b.WriteByte(')')
	}
}

func renderDatetimeValueFunction(b *strings.Builder, f *ast.DatetimeValueFunction) {
	switch f.Kind {
	case ast.FuncCurrentDate:
		b.WriteString("CURRENT_DATE")
	case ast.FuncCurrentTime:
		b.WriteString("CURRENT_TIME")
		if f.Precision >= 0 {
			fmt.Fprintf(b, "(%d)", f.Precision)
		}
	case ast.FuncCurrentTimestamp:
		b.WriteString("CURRENT_TIMESTAMP")
		if f.Precision >= 0 {
			fmt.Fprintf(b, "(%d)", f.Precision)
		}
	}
}
