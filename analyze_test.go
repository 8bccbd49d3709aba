package sqltoast_test

import (
	"testing"

	"github.com/oarkflow/sqltoast"
)

func TestAnalyzeParseError(t *testing.T) {
	report := sqltoast.Analyze("SELECT FROM")
	if report.Valid {
		t.Fatalf("expected invalid SQL")
	}
	if len(report.Findings) == 0 || report.Findings[0].Code != "PARSE_ERROR" {
		t.Fatalf("expected PARSE_ERROR finding, got %#v", report.Findings)
	}
}

func TestAnalyzeRiskyPatterns(t *testing.T) {
	sql := `SELECT * FROM users WHERE name LIKE '%abc';
UPDATE users SET active = 1;
DELETE FROM logs;`
	report := sqltoast.Analyze(sql)
	if !report.Valid {
		t.Fatalf("expected valid SQL, got findings: %#v", report.Findings)
	}
	codes := map[string]bool{}
	for _, f := range report.Findings {
		codes[f.Code] = true
	}
	for _, code := range []string{"SELECT_STAR", "LIKE_LEADING_WILDCARD", "UPDATE_WITHOUT_WHERE", "DELETE_WITHOUT_WHERE"} {
		if !codes[code] {
			t.Fatalf("expected finding %s, findings=%#v", code, report.Findings)
		}
	}
}

func TestAnalyzeCartesianJoin(t *testing.T) {
	report := sqltoast.Analyze(`SELECT * FROM a INNER JOIN b;`)
	if !report.Valid {
		t.Fatalf("expected valid SQL, got findings: %#v", report.Findings)
	}
	found := false
	for _, f := range report.Findings {
		if f.Code == "CARTESIAN_JOIN" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CARTESIAN_JOIN finding, got %#v", report.Findings)
	}
}

func TestAnalyzeGrantAllToPublic(t *testing.T) {
	report := sqltoast.Analyze(`GRANT ALL PRIVILEGES ON employees TO PUBLIC;`)
	if !report.Valid {
		t.Fatalf("expected valid SQL, got findings: %#v", report.Findings)
	}
	found := false
	for _, f := range report.Findings {
		if f.Code == "GRANT_ALL_TO_PUBLIC" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected GRANT_ALL_TO_PUBLIC finding, got %#v", report.Findings)
	}
}

func TestAnalyzeNotLikeStillFlagsLeadingWildcard(t *testing.T) {
	report := sqltoast.Analyze(`SELECT id FROM users WHERE name NOT LIKE '%abc';`)
	if !report.Valid {
		t.Fatalf("expected valid SQL, got findings: %#v", report.Findings)
	}
	found := false
	for _, f := range report.Findings {
		if f.Code == "LIKE_LEADING_WILDCARD" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected LIKE_LEADING_WILDCARD finding for NOT LIKE, got %#v", report.Findings)
	}
}

func TestAnalyzeCleanQueryHasNoWarnings(t *testing.T) {
	report := sqltoast.Analyze(`SELECT id, name FROM users WHERE id = 1;`)
	if !report.Valid {
		t.Fatalf("expected valid SQL, got findings: %#v", report.Findings)
	}
	for _, f := range report.Findings {
		if f.Severity >= sqltoast.SeverityWarning {
			t.Fatalf("unexpected warning-or-above finding on clean query: %#v", f)
		}
	}
}
