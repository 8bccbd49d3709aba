package render_test

import (
	"strings"
	"testing"

	"github.com/oarkflow/sqltoast"
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/render"
)

func mustParse(t *testing.T, sql string) sqltoast.Statement {
	t.Helper()
	res := sqltoast.ParseStatement(sql)
	if res.Code != sqltoast.CodeSuccess {
		msg := "unknown error"
		if len(res.Errors) > 0 {
			msg = res.Errors[0].Error()
		}
		t.Fatalf("parse %q: %s", sql, msg)
	}
	return res.Statement
}

func selectListLen(t *testing.T, stmt ast.Statement) int {
	t.Helper()
	sel, ok := stmt.(*ast.SelectStatement)
	if !ok {
		t.Fatalf("expected *ast.SelectStatement, got %T", stmt)
	}
	spec := sel.Query.Term.Primary.Specification
	if spec == nil {
		t.Fatalf("query has no query specification")
	}
	return len(spec.SelectList)
}

// roundTrip renders stmt, reparses the rendered text, and checks that the
// two top-level statement types agree and (for SELECT) that the
// select-list length survives the trip.
func roundTrip(t *testing.T, sql string) {
	t.Helper()
	stmt := mustParse(t, sql)
	out, err := render.Render(stmt)
	if err != nil {
		t.Fatalf("render %q: %v", sql, err)
	}
	if out == "" {
		t.Fatalf("render %q: empty output", sql)
	}
	reparsed := mustParse(t, out)
	if got, want := typeName(reparsed), typeName(stmt); got != want {
		t.Fatalf("round trip changed statement type: got %s, want %s (rendered: %s)", got, want, out)
	}
	if sel, ok := stmt.(*ast.SelectStatement); ok {
		_ = sel
		if got, want := selectListLen(t, reparsed), selectListLen(t, stmt); got != want {
			t.Fatalf("round trip changed select-list length: got %d, want %d (rendered: %s)", got, want, out)
		}
	}
}

func typeName(stmt ast.Statement) string {
	switch stmt.(type) {
	case *ast.SelectStatement:
		return "select"
	case *ast.InsertStatement:
		return "insert"
	case *ast.UpdateStatement:
		return "update"
	case *ast.DeleteStatement:
		return "delete"
	case *ast.CreateTableStatement:
		return "create_table"
	case *ast.DropTableStatement:
		return "drop_table"
	case *ast.AlterTableStatement:
		return "alter_table"
	case *ast.CreateSchemaStatement:
		return "create_schema"
	case *ast.DropSchemaStatement:
		return "drop_schema"
	case *ast.CreateViewStatement:
		return "create_view"
	case *ast.DropViewStatement:
		return "drop_view"
	case *ast.GrantStatement:
		return "grant"
	case *ast.CommitStatement:
		return "commit"
	case *ast.RollbackStatement:
		return "rollback"
	default:
		return "unknown"
	}
}

func TestRenderRoundTripSelect(t *testing.T) {
	roundTrip(t, "SELECT a, b, c FROM employees WHERE salary > 1000")
}

func TestRenderRoundTripSelectStar(t *testing.T) {
	roundTrip(t, "SELECT * FROM employees")
}

func TestRenderRoundTripNegatedPredicates(t *testing.T) {
	roundTrip(t, "SELECT * FROM employees WHERE age NOT BETWEEN 18 AND 65")
	roundTrip(t, "SELECT * FROM employees WHERE id NOT IN (1, 2, 3)")
	roundTrip(t, "SELECT * FROM employees WHERE id NOT IN (SELECT id FROM blacklist)")
	roundTrip(t, "SELECT * FROM employees WHERE name NOT LIKE '%smith%'")
	roundTrip(t, "SELECT * FROM employees WHERE name IS NOT NULL")
}

func TestRenderNegatedPredicateTextContainsNot(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM t WHERE age NOT BETWEEN 18 AND 65")
	out, err := render.Render(stmt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "NOT BETWEEN") {
		t.Fatalf("expected rendered SQL to contain NOT BETWEEN, got: %s", out)
	}

	stmt = mustParse(t, "SELECT * FROM t WHERE name IS NOT NULL")
	out, err = render.Render(stmt)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "IS NOT NULL") {
		t.Fatalf("expected rendered SQL to contain IS NOT NULL, got: %s", out)
	}
}

func TestRenderRoundTripSelectJoin(t *testing.T) {
	roundTrip(t, "SELECT e.name, d.title FROM employees AS e INNER JOIN departments AS d ON e.dept_id = d.id")
}

func TestRenderRoundTripSelectUnion(t *testing.T) {
	roundTrip(t, "SELECT id FROM a UNION SELECT id FROM b")
}

func TestRenderRoundTripInsert(t *testing.T) {
	roundTrip(t, "INSERT INTO employees (id, name) VALUES (1, 'ann')")
}

func TestRenderRoundTripUpdate(t *testing.T) {
	roundTrip(t, "UPDATE employees SET salary = salary * 2 WHERE id = 1")
}

func TestRenderRoundTripDelete(t *testing.T) {
	roundTrip(t, "DELETE FROM employees WHERE id = 1")
}

func TestRenderRoundTripCreateTable(t *testing.T) {
	roundTrip(t, "CREATE TABLE employees (id INTEGER NOT NULL, name VARCHAR(40), PRIMARY KEY (id))")
}

func TestRenderRoundTripAlterTable(t *testing.T) {
	roundTrip(t, "ALTER TABLE employees ADD COLUMN hired DATE")
}

func TestRenderRoundTripCreateView(t *testing.T) {
	roundTrip(t, "CREATE VIEW active_employees AS SELECT id, name FROM employees WHERE active = 1")
}

func TestRenderRoundTripGrant(t *testing.T) {
	roundTrip(t, "GRANT SELECT, UPDATE ON employees TO analyst")
}

func TestRenderAllJoinsStatements(t *testing.T) {
	stmts := []ast.Statement{
		mustParse(t, "SELECT id FROM a"),
		mustParse(t, "SELECT id FROM b"),
	}
	out, err := render.RenderAll(stmts)
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if strings.Count(out, ";") != 1 {
		t.Fatalf("expected exactly one statement separator, got: %s", out)
	}
}

func TestRenderUnsupportedStatementType(t *testing.T) {
	_, err := render.Render(nil)
	if err == nil {
		t.Fatalf("expected an error rendering a nil statement")
	}
}
