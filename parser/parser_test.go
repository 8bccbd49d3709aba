package parser_test

import (
	"strings"
	"testing"

	"github.com/oarkflow/sqltoast"
	"github.com/oarkflow/sqltoast/ast"
)

// ---- helpers ----

func mustParse(t *testing.T, sql string) sqltoast.Statement {
	t.Helper()
	res := sqltoast.ParseStatement(sql)
	if res.Code != sqltoast.CodeSuccess {
		t.Fatalf("parse error: %v\nSQL: %s", errText(res), sql)
	}
	return res.Statement
}

func mustParseAll(t *testing.T, sql string) []sqltoast.Statement {
	t.Helper()
	p := sqltoast.NewString(sql, sqltoast.ParseOptions{})
	stmts, res := p.All()
	if res.Code != sqltoast.CodeSuccess {
		t.Fatalf("parse error: %v\nSQL: %s", errText(res), sql)
	}
	return stmts
}

func errText(res *sqltoast.ParseResult) string {
	if len(res.Errors) == 0 {
		return "unknown error"
	}
	return res.Errors[0].Error()
}

// ---- SELECT tests ----

func TestSelectSimple(t *testing.T) {
	stmt := mustParse(t, "SELECT 1 FROM t")
	sel, ok := stmt.(*ast.SelectStatement)
	if !ok {
		t.Fatalf("expected *SelectStatement, got %T", stmt)
	}
	spec := sel.Query.Term.Primary.Specification
	if len(spec.SelectList) != 1 {
		t.Fatalf("expected 1 select-list column, got %d", len(spec.SelectList))
	}
}

func TestSelectStar(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM users")
	sel := stmt.(*ast.SelectStatement)
	spec := sel.Query.Term.Primary.Specification
	if !spec.SelectList[0].Star {
		t.Fatalf("expected a bare * select item")
	}
}

func TestSelectMultiCol(t *testing.T) {
	stmt := mustParse(t, "SELECT id, name, email FROM users")
	sel := stmt.(*ast.SelectStatement)
	spec := sel.Query.Term.Primary.Specification
	if len(spec.SelectList) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(spec.SelectList))
	}
}

func TestSelectWhere(t *testing.T) {
	mustParse(t, "SELECT * FROM users WHERE id = 42 AND active = 1")
}

func TestSelectJoin(t *testing.T) {
	mustParse(t, `
		SELECT u.id, o.total
		FROM users u
		INNER JOIN orders o ON u.id = o.user_id
		WHERE o.total > 100`)
}

func TestSelectJoinUsing(t *testing.T) {
	mustParse(t, `SELECT * FROM a JOIN b USING (id)`)
}

func TestSelectMultipleJoins(t *testing.T) {
	stmt := mustParse(t, `
		SELECT a.id, b.name, c.total
		FROM a
		LEFT JOIN b ON a.b_id = b.id
		RIGHT JOIN c ON b.c_id = c.id
		CROSS JOIN d`)
	sel := stmt.(*ast.SelectStatement)
	from := sel.Query.Term.Primary.Specification.Table.From
	if len(from) != 1 {
		t.Fatalf("expected a single left-associative join chain in FROM, got %d entries", len(from))
	}
	joined, ok := from[0].(*ast.JoinedTable)
	if !ok {
		t.Fatalf("expected *JoinedTable, got %T", from[0])
	}
	if joined.Type != ast.JoinCross {
		t.Fatalf("expected the outermost join to be the trailing CROSS JOIN")
	}
}

func TestSelectSubquery(t *testing.T) {
	mustParse(t, `
		SELECT * FROM (
			SELECT id, name FROM users WHERE active = 1
		) sub WHERE sub.name LIKE 'A%'`)
}

func TestSelectCase(t *testing.T) {
	mustParse(t, `
		SELECT id,
		       CASE status
		           WHEN 1 THEN 'active'
		           WHEN 0 THEN 'inactive'
		           ELSE 'unknown'
		       END AS label
		FROM users`)
}

func TestSelectSearchedCase(t *testing.T) {
	mustParse(t, `SELECT CASE WHEN id > 0 THEN 'pos' ELSE 'neg' END FROM t`)
}

func TestSelectAggregates(t *testing.T) {
	mustParse(t, `
		SELECT dept, COUNT(*), AVG(salary), MAX(salary)
		FROM employees
		GROUP BY dept
		HAVING COUNT(*) > 5`)
}

func TestSelectDistinct(t *testing.T) {
	stmt := mustParse(t, "SELECT DISTINCT dept, role FROM employees")
	sel := stmt.(*ast.SelectStatement)
	if !sel.Query.Term.Primary.Specification.Distinct {
		t.Fatalf("expected DISTINCT to be recorded")
	}
}

func TestSelectUnion(t *testing.T) {
	mustParse(t, `
		SELECT id, name FROM users
		UNION ALL
		SELECT id, name FROM archived_users`)
}

func TestSelectSetOpChain(t *testing.T) {
	stmt := mustParse(t, `
		SELECT id FROM a
		UNION ALL
		SELECT id FROM b
		EXCEPT
		SELECT id FROM c`)
	sel, ok := stmt.(*ast.SelectStatement)
	if !ok {
		t.Fatalf("expected *SelectStatement, got %T", stmt)
	}
	if sel.Query.Left == nil || sel.Query.Op != ast.SetOpExcept {
		t.Fatalf("expected the outermost operator to be the trailing EXCEPT")
	}
}

func TestSelectIn(t *testing.T) {
	mustParse(t, "SELECT * FROM t WHERE id IN (1, 2, 3)")
	mustParse(t, "SELECT * FROM t WHERE id IN (SELECT id FROM blacklist)")
}

func TestSelectBetween(t *testing.T) {
	mustParse(t, "SELECT * FROM t WHERE age BETWEEN 18 AND 65")
}

func TestSelectLike(t *testing.T) {
	mustParse(t, "SELECT * FROM t WHERE name LIKE '%smith%' ESCAPE '\\'")
}

// wherePredicate digs out the single predicate in a "SELECT ... WHERE
// <predicate>" statement's first boolean factor.
func wherePredicate(t *testing.T, stmt sqltoast.Statement) *ast.Predicate {
	t.Helper()
	sel, ok := stmt.(*ast.SelectStatement)
	if !ok {
		t.Fatalf("expected *ast.SelectStatement, got %T", stmt)
	}
	where := sel.Query.Term.Primary.Specification.Table.Where
	if where == nil || len(where.Terms) == 0 || where.Terms[0].Factor == nil {
		t.Fatalf("statement has no WHERE predicate")
	}
	pr := where.Terms[0].Factor.Predicate
	if pr == nil {
		t.Fatalf("first boolean factor is not a predicate")
	}
	return pr
}

func TestSelectNotBetween(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM t WHERE age NOT BETWEEN 18 AND 65")
	pr := wherePredicate(t, stmt)
	if pr.Op != ast.CompBetween || !pr.Negated {
		t.Fatalf("expected negated CompBetween, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}
}

func TestSelectNotIn(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM t WHERE id NOT IN (1, 2, 3)")
	pr := wherePredicate(t, stmt)
	if pr.Op != ast.CompInValues || !pr.Negated {
		t.Fatalf("expected negated CompInValues, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}

	stmt = mustParse(t, "SELECT * FROM t WHERE id NOT IN (SELECT id FROM blacklist)")
	pr = wherePredicate(t, stmt)
	if pr.Op != ast.CompInSubquery || !pr.Negated {
		t.Fatalf("expected negated CompInSubquery, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}
}

func TestSelectNotLike(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM t WHERE name NOT LIKE '%smith%'")
	pr := wherePredicate(t, stmt)
	if pr.Op != ast.CompLike || !pr.Negated {
		t.Fatalf("expected negated CompLike, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}
}

func TestSelectIsNotNull(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM t WHERE name IS NOT NULL")
	pr := wherePredicate(t, stmt)
	if pr.Op != ast.CompNull || !pr.Negated {
		t.Fatalf("expected negated CompNull, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}

	stmt = mustParse(t, "SELECT * FROM t WHERE name IS NULL")
	pr = wherePredicate(t, stmt)
	if pr.Op != ast.CompNull || pr.Negated {
		t.Fatalf("expected non-negated CompNull, got Op=%v Negated=%v", pr.Op, pr.Negated)
	}
}

func TestSelectExists(t *testing.T) {
	mustParse(t, "SELECT * FROM t WHERE EXISTS (SELECT 1 FROM other WHERE other.id = t.id)")
}

func TestSelectCast(t *testing.T) {
	mustParse(t, "SELECT CAST(price AS DECIMAL(10,2)) FROM products")
}

func TestSelectExtract(t *testing.T) {
	mustParse(t, "SELECT EXTRACT(YEAR FROM order_date) FROM orders")
}

func TestSelectPosition(t *testing.T) {
	mustParse(t, "SELECT POSITION('a' IN name) FROM t")
}

func TestSelectSubstringTrim(t *testing.T) {
	mustParse(t, "SELECT SUBSTRING(name FROM 1 FOR 3), TRIM(BOTH ' ' FROM name) FROM t")
}

func TestSelectConvertTranslate(t *testing.T) {
	mustParse(t, "SELECT CONVERT(name USING latin1), TRANSLATE(name USING widechars) FROM t")
}

func TestSelectIntervalArithmetic(t *testing.T) {
	mustParse(t, "SELECT order_date + INTERVAL '3' DAY FROM orders")
	mustParse(t, "SELECT INTERVAL '1' YEAR TO MONTH FROM t")
}

func TestSelectNestedBooleanFactor(t *testing.T) {
	mustParse(t, "SELECT * FROM t WHERE (a = 1 OR b = 2) AND NOT c = 3")
}

func TestSelectCoalesceNullif(t *testing.T) {
	mustParse(t, "SELECT COALESCE(a, b, 0), NULLIF(a, b) FROM t")
}

// ---- INSERT tests ----

func TestInsertValues(t *testing.T) {
	mustParse(t, "INSERT INTO users (name, email) VALUES ('Alice', 'alice@example.com')")
}

func TestInsertMultiRow(t *testing.T) {
	stmt := mustParse(t, `INSERT INTO users (name, age) VALUES ('A', 1), ('B', 2), ('C', 3)`)
	ins := stmt.(*ast.InsertStatement)
	rows := ins.Query.Term.Primary.TableValues
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}

func TestInsertSelect(t *testing.T) {
	mustParse(t, "INSERT INTO archive SELECT * FROM users WHERE id < 100")
}

// ---- UPDATE tests ----

func TestUpdateSimple(t *testing.T) {
	mustParse(t, "UPDATE users SET name = 'Bob', age = 30 WHERE id = 1")
}

func TestUpdateSetNullDefault(t *testing.T) {
	stmt := mustParse(t, "UPDATE users SET phone = NULL, tier = DEFAULT WHERE id = 1")
	upd := stmt.(*ast.UpdateStatement)
	if upd.SetColumns[0].Kind != ast.SetColumnNull || upd.SetColumns[1].Kind != ast.SetColumnDefault {
		t.Fatalf("expected NULL then DEFAULT set-column kinds, got %#v", upd.SetColumns)
	}
}

func TestUpdateWithoutWhere(t *testing.T) {
	stmt := mustParse(t, "UPDATE users SET active = 1")
	upd := stmt.(*ast.UpdateStatement)
	if upd.Where != nil {
		t.Fatalf("expected no WHERE clause")
	}
}

// ---- DELETE tests ----

func TestDeleteSimple(t *testing.T) {
	mustParse(t, "DELETE FROM users WHERE id = 42")
}

func TestDeleteWithoutWhere(t *testing.T) {
	stmt := mustParse(t, "DELETE FROM logs")
	del := stmt.(*ast.DeleteStatement)
	if del.Where != nil {
		t.Fatalf("expected no WHERE clause")
	}
}

// ---- DDL tests ----

func TestCreateSchema(t *testing.T) {
	mustParse(t, "CREATE SCHEMA analytics")
	mustParse(t, "CREATE SCHEMA analytics AUTHORIZATION admin")
	mustParse(t, "CREATE SCHEMA analytics CHARACTER SET utf8 COLLATE utf8_bin")
}

func TestDropSchema(t *testing.T) {
	stmt := mustParse(t, "DROP SCHEMA analytics CASCADE")
	drop := stmt.(*ast.DropSchemaStatement)
	if drop.Behaviour != ast.Cascade {
		t.Fatalf("expected CASCADE behaviour")
	}
}

func TestDropSchemaQualifiedNameIsSyntaxError(t *testing.T) {
	res := sqltoast.ParseStatement("DROP SCHEMA a.b")
	if res.Code == sqltoast.CodeSuccess {
		t.Fatalf("expected a syntax error for a qualified schema name")
	}
	if len(res.Errors) == 0 {
		t.Fatalf("expected at least one parse error")
	}
	msg := res.Errors[0].Error()
	if !strings.Contains(msg, "\n") || !strings.Contains(msg, "^") {
		t.Fatalf("expected a two-line caret excerpt, got: %s", msg)
	}
}

func TestCreateTable(t *testing.T) {
	mustParse(t, `
		CREATE TABLE users (
			id         INTEGER NOT NULL,
			username   VARCHAR(64) NOT NULL UNIQUE,
			email      VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		)`)
}

func TestCreateTableForeignKey(t *testing.T) {
	mustParse(t, `
		CREATE TABLE orders (
			id      INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			total   DECIMAL(10,2) NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES users (id)
			    ON DELETE CASCADE ON UPDATE RESTRICT
		)`)
}

func TestCreateTemporaryTable(t *testing.T) {
	stmt := mustParse(t, "CREATE GLOBAL TEMPORARY TABLE scratch (id INT)")
	ct := stmt.(*ast.CreateTableStatement)
	if ct.Type != ast.TableTemporaryGlobal {
		t.Fatalf("expected TableTemporaryGlobal, got %v", ct.Type)
	}
}

func TestAlterTableAddColumn(t *testing.T) {
	mustParse(t, "ALTER TABLE users ADD COLUMN phone VARCHAR(20)")
}

func TestAlterTableAddConstraintWithName(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE users ADD CONSTRAINT uq_phone UNIQUE (phone)")
	at := stmt.(*ast.AlterTableStatement)
	action := at.Actions[0]
	if action.Kind != ast.AlterAddConstraint {
		t.Fatalf("expected AlterAddConstraint, got %v", action.Kind)
	}
	if action.Constraint.Name == nil || action.Constraint.Name.Text() != "uq_phone" {
		t.Fatalf("expected the constraint name to be threaded through, got %#v", action.Constraint.Name)
	}
}

func TestAlterTableMultiAction(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE users ADD COLUMN phone VARCHAR(20), DROP COLUMN fax")
	at := stmt.(*ast.AlterTableStatement)
	if len(at.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(at.Actions))
	}
}

func TestAlterTableSetDropDefault(t *testing.T) {
	stmt := mustParse(t, "ALTER TABLE users ALTER COLUMN tier SET DEFAULT 1")
	at := stmt.(*ast.AlterTableStatement)
	if at.Actions[0].AlterColumnKind != ast.AlterColumnSetDefault {
		t.Fatalf("expected AlterColumnSetDefault")
	}
	stmt = mustParse(t, "ALTER TABLE users ALTER COLUMN tier DROP DEFAULT")
	at = stmt.(*ast.AlterTableStatement)
	if at.Actions[0].AlterColumnKind != ast.AlterColumnDropDefault {
		t.Fatalf("expected AlterColumnDropDefault")
	}
}

func TestDropTable(t *testing.T) {
	mustParse(t, "DROP TABLE users")
	mustParse(t, "DROP TABLE users RESTRICT")
}

func TestCreateView(t *testing.T) {
	mustParse(t, `
		CREATE VIEW active_users AS
		SELECT id, name, email FROM users WHERE active = 1`)
}

func TestCreateViewWithCheckOption(t *testing.T) {
	stmt := mustParse(t, `
		CREATE VIEW active_users (id, name) AS
		SELECT id, name FROM users WHERE active = 1
		WITH CASCADED CHECK OPTION`)
	view := stmt.(*ast.CreateViewStatement)
	if view.CheckOption != ast.CheckOptionCascaded {
		t.Fatalf("expected CheckOptionCascaded, got %v", view.CheckOption)
	}
}

func TestDropView(t *testing.T) {
	mustParse(t, "DROP VIEW active_users")
}

func TestGrantAllPrivilegesToPublic(t *testing.T) {
	stmt := mustParse(t, "GRANT ALL PRIVILEGES ON employees TO PUBLIC")
	g := stmt.(*ast.GrantStatement)
	if !g.AllPrivileges() || !g.ToPublic() {
		t.Fatalf("expected ALL PRIVILEGES and PUBLIC grantee, got %#v", g)
	}
}

func TestGrantActionListWithGrantOption(t *testing.T) {
	stmt := mustParse(t, "GRANT SELECT, UPDATE (salary) ON employees TO hr_admin WITH GRANT OPTION")
	g := stmt.(*ast.GrantStatement)
	if g.AllPrivileges() {
		t.Fatalf("expected an explicit privilege list")
	}
	if !g.WithGrantOption {
		t.Fatalf("expected WITH GRANT OPTION to be recorded")
	}
	if g.Privileges[1].Kind != ast.GrantUpdate || len(g.Privileges[1].Columns) != 1 {
		t.Fatalf("expected UPDATE(salary), got %#v", g.Privileges[1])
	}
}

func TestCommitRollback(t *testing.T) {
	mustParse(t, "COMMIT")
	mustParse(t, "COMMIT WORK")
	mustParse(t, "ROLLBACK")
	mustParse(t, "ROLLBACK WORK")
}

// ---- Multiple statements ----

func TestMultipleStatements(t *testing.T) {
	stmts := mustParseAll(t, `
		CREATE TABLE t (id INT);
		INSERT INTO t VALUES (1), (2);
		SELECT * FROM t WHERE id > 0;
		DROP TABLE t;
	`)
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(stmts))
	}
}

func TestEmptyInputIsCleanEOS(t *testing.T) {
	p := sqltoast.NewString("", sqltoast.ParseOptions{})
	res := p.Next()
	if res.Code != sqltoast.CodeSuccess || res.Statement != nil {
		t.Fatalf("expected a clean success with no statement at EOS, got %#v", res)
	}
	// Idempotent: calling Next again at EOS behaves identically.
	res2 := p.Next()
	if res2.Code != sqltoast.CodeSuccess || res2.Statement != nil {
		t.Fatalf("expected EOS to remain idempotent, got %#v", res2)
	}
}

// ---- Disable-construction equivalence ----

func TestDisableStatementConstructionMatchesFullParse(t *testing.T) {
	cases := []string{
		"SELECT * FROM t WHERE id = 1",
		"INSERT INTO t (a) VALUES (1)",
		"UPDATE t SET a = 1 WHERE id = 2",
		"DELETE FROM t WHERE id = 3",
		"CREATE TABLE t (id INT)",
		"SELECT FROM", // deliberately invalid
	}
	for _, sql := range cases {
		full := sqltoast.ParseStatementWithOptions(sql, sqltoast.ParseOptions{})
		validated := sqltoast.ParseStatementWithOptions(sql, sqltoast.ParseOptions{DisableStatementConstruction: true})
		if full.Code != validated.Code {
			t.Fatalf("disable-construction outcome diverged for %q: full=%v validated=%v", sql, full.Code, validated.Code)
		}
		if validated.Statement != nil {
			t.Fatalf("expected no AST node when construction is disabled, got %#v", validated.Statement)
		}
	}
}

// ---- Tokenizer tests ----

func TestTokenize(t *testing.T) {
	sql := "SELECT id, name FROM users WHERE id = 1"
	buf := make([]sqltoast.Token, 0, 32)
	toks := sqltoast.Tokenize([]byte(sql), buf)
	if len(toks) == 0 {
		t.Fatal("expected tokens")
	}
	for _, tok := range toks {
		if int(tok.Lex.Pos) < 0 || int(tok.Lex.Pos)+len(tok.Lex.Raw) > len(sql) {
			t.Fatalf("token lexeme escapes source buffer: %#v", tok)
		}
	}
}

// ---- Benchmark suite ----

var benchSQL = `
SELECT
    u.id,
    u.username,
    u.email,
    COUNT(o.id),
    SUM(o.total),
    MAX(o.created_at)
FROM users u
LEFT JOIN orders o ON u.id = o.user_id
WHERE u.active = 1
  AND u.created_at BETWEEN '2023-01-01' AND '2024-01-01'
  AND u.country IN ('US', 'CA', 'GB')
GROUP BY u.id, u.username, u.email
HAVING COUNT(o.id) > 0`

var benchDDL = `
CREATE TABLE orders (
    id          INTEGER NOT NULL,
    user_id     INTEGER NOT NULL,
    state       INTEGER NOT NULL DEFAULT 0,
    total       DECIMAL(12,2) NOT NULL DEFAULT 0.00,
    created_at  TIMESTAMP NOT NULL,
    PRIMARY KEY (id)
)`

func BenchmarkParseSelect(b *testing.B) {
	src := []byte(benchSQL)
	p := sqltoast.New(src, sqltoast.ParseOptions{})
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Reset(src)
		if res := p.Next(); res.Code != sqltoast.CodeSuccess {
			b.Fatal(errText(res))
		}
	}
}

func BenchmarkParseCreateTable(b *testing.B) {
	src := []byte(benchDDL)
	p := sqltoast.New(src, sqltoast.ParseOptions{})
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Reset(src)
		if res := p.Next(); res.Code != sqltoast.CodeSuccess {
			b.Fatal(errText(res))
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := []byte(benchSQL)
	buf := make([]sqltoast.Token, 0, 128)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sqltoast.Tokenize(src, buf)
	}
}

func BenchmarkParseStatementString(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := sqltoast.ParseStatement(benchSQL); res.Code != sqltoast.CodeSuccess {
			b.Fatal(errText(res))
		}
	}
}
