package sqltoast

import (
	"fmt"
	"strings"

	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/parser"
)

// FindingSeverity classifies how concerning an analysis finding is.
type FindingSeverity int

const (
	SeverityInfo FindingSeverity = iota
	SeverityWarning
	SeverityCritical
)

func (s FindingSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AnalysisFinding is one observation raised against a parsed statement.
type AnalysisFinding struct {
	Severity       FindingSeverity
	Code           string
	Message        string
	StatementIndex int
}

// AnalysisReport is the result of analyzing a SQL string, possibly
// containing many statements.
type AnalysisReport struct {
	Valid          bool
	StatementCount int
	Findings       []AnalysisFinding
}

// String renders the report as a multi-line summary, one line per
// finding, for the `sqltoast analyze` CLI command.
func (r AnalysisReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "statements=%d valid=%t findings=%d\n", r.StatementCount, r.Valid, len(r.Findings))
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "[%s] %s (stmt %d): %s\n", f.Severity, f.Code, f.StatementIndex, f.Message)
	}
	return b.String()
}

func addFinding(findings []AnalysisFinding, idx int, sev FindingSeverity, code, msg string) []AnalysisFinding {
	return append(findings, AnalysisFinding{Severity: sev, Code: code, Message: msg, StatementIndex: idx})
}

// Analyze parses sql and runs every check against each statement,
// stopping at the first parse error (which itself becomes a critical
// finding) since later statements cannot be recovered past it.
func Analyze(sql string) AnalysisReport {
	p := parser.NewString(sql, ParseOptions{})
	var findings []AnalysisFinding
	idx := 0
	for {
		res := p.ParseOne()
		if res.Code != CodeSuccess {
			findings = addFinding(findings, idx, SeverityCritical, "PARSE_ERROR", formatParseErrors(res))
			return AnalysisReport{Valid: false, StatementCount: idx, Findings: findings}
		}
		if res.Statement == nil {
			break // clean EOS
		}
		findings = append(findings, AnalyzeStatement(res.Statement, idx)...)
		idx++
	}
	return AnalysisReport{Valid: true, StatementCount: idx, Findings: findings}
}

func formatParseErrors(res *ParseResult) string {
	if len(res.Errors) == 0 {
		return "parse failed"
	}
	var b strings.Builder
	for i, e := range res.Errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// AnalyzeStatement runs every applicable check against a single parsed
// statement, tagging each finding with index for callers analyzing a
// batch of statements directly (bypassing Analyze's own parse loop).
func AnalyzeStatement(stmt ast.Statement, index int) []AnalysisFinding {
	var findings []AnalysisFinding
	switch s := stmt.(type) {
	case *ast.SelectStatement:
		findings = analyzeQueryExpression(findings, index, s.Query)
	case *ast.UpdateStatement:
		if s.Where == nil {
			findings = addFinding(findings, index, SeverityWarning, "UPDATE_WITHOUT_WHERE",
				"UPDATE has no WHERE clause and will affect every row")
		} else {
			findings = analyzeSearchCondition(findings, index, s.Where)
		}
	case *ast.DeleteStatement:
		if s.Where == nil {
			findings = addFinding(findings, index, SeverityWarning, "DELETE_WITHOUT_WHERE",
				"DELETE has no WHERE clause and will remove every row")
		} else {
			findings = analyzeSearchCondition(findings, index, s.Where)
		}
	case *ast.GrantStatement:
		if s.AllPrivileges() && s.ToPublic() {
			findings = addFinding(findings, index, SeverityWarning, "GRANT_ALL_TO_PUBLIC",
				"GRANT ALL PRIVILEGES ... TO PUBLIC grants every privilege to every user")
		}
	case *ast.InsertStatement:
		findings = analyzeQueryExpression(findings, index, s.Query)
	case *ast.CreateViewStatement:
		findings = analyzeQueryExpression(findings, index, s.Query)
	}
	return findings
}

func analyzeQueryExpression(findings []AnalysisFinding, index int, qe *ast.QueryExpression) []AnalysisFinding {
	if qe == nil {
		return findings
	}
	if qe.Joined != nil {
		findings = analyzeTableReference(findings, index, qe.Joined)
	}
	findings = analyzeQueryExpression(findings, index, qe.Left)
	findings = analyzeQueryTerm(findings, index, qe.Term)
	return findings
}

func analyzeQueryTerm(findings []AnalysisFinding, index int, qt *ast.QueryTerm) []AnalysisFinding {
	if qt == nil {
		return findings
	}
	findings = analyzeQueryTerm(findings, index, qt.Left)
	findings = analyzeQueryPrimary(findings, index, qt.Primary)
	return findings
}

func analyzeQueryPrimary(findings []AnalysisFinding, index int, qp *ast.QueryPrimary) []AnalysisFinding {
	if qp == nil {
		return findings
	}
	switch qp.Kind {
	case ast.QueryPrimarySpecification:
		findings = analyzeQuerySpecification(findings, index, qp.Specification)
	case ast.QueryPrimarySubexpression:
		findings = analyzeQueryExpression(findings, index, qp.Sub)
	}
	return findings
}

func analyzeQuerySpecification(findings []AnalysisFinding, index int, qs *ast.QuerySpecification) []AnalysisFinding {
	if qs == nil {
		return findings
	}
	for _, col := range qs.SelectList {
		if col.Star {
			findings = addFinding(findings, index, SeverityInfo, "SELECT_STAR",
				"SELECT * resolves column list at query time, which breaks when the table shape changes")
			break
		}
	}
	if qs.Table != nil {
		for _, ref := range qs.Table.From {
			findings = analyzeTableReference(findings, index, ref)
		}
		if qs.Table.Where != nil {
			findings = analyzeSearchCondition(findings, index, qs.Table.Where)
		}
	}
	return findings
}

func analyzeTableReference(findings []AnalysisFinding, index int, ref ast.TableReference) []AnalysisFinding {
	j, ok := ref.(*ast.JoinedTable)
	if !ok {
		return findings
	}
	findings = analyzeTableReference(findings, index, j.Left)
	findings = analyzeTableReference(findings, index, j.Right)
	if j.Type != ast.JoinCross && j.Type != ast.JoinNatural {
		noCondition := j.Spec == nil || (j.Spec.Condition == nil && len(j.Spec.NamedColumns) == 0)
		if noCondition {
			findings = addFinding(findings, index, SeverityWarning, "CARTESIAN_JOIN",
				"join has no ON or USING clause and produces a cartesian product")
		}
	}
	return findings
}

func analyzeSearchCondition(findings []AnalysisFinding, index int, sc *ast.SearchCondition) []AnalysisFinding {
	if sc == nil {
		return findings
	}
	if len(sc.Terms) > 1 {
		findings = addFinding(findings, index, SeverityInfo, "OR_PREDICATE",
			"top-level OR in a search condition can prevent index usage depending on the planner")
	}
	for _, term := range sc.Terms {
		for t := term; t != nil; t = t.And {
			findings = analyzeBooleanFactor(findings, index, t.Factor)
		}
	}
	return findings
}

func analyzeBooleanFactor(findings []AnalysisFinding, index int, f *ast.BooleanFactor) []AnalysisFinding {
	if f == nil {
		return findings
	}
	if f.Kind == ast.FactorNestedCondition {
		return analyzeSearchCondition(findings, index, f.Nested)
	}
	if f.Predicate != nil && f.Predicate.Op == ast.CompLike {
		if text, ok := literalText(f.Predicate.Right); ok && strings.HasPrefix(text, "'%") {
			findings = addFinding(findings, index, SeverityInfo, "LIKE_LEADING_WILDCARD",
				"LIKE pattern starts with a wildcard, which defeats most index scans")
		}
	}
	return findings
}

// literalText extracts the source text of a row value constructor that
// reduces, through the chain of single-element wrappers a bare literal
// produces, to a single unsigned literal value — e.g. the pattern operand
// of a LIKE predicate.
func literalText(rvc ast.RowValueConstructor) (string, bool) {
	rve, ok := rvc.(*ast.RowValueExpression)
	if !ok || rve.Expr == nil {
		return "", false
	}
	return literalFromValueExpression(rve.Expr)
}

func literalFromValueExpression(ve ast.ValueExpression) (string, bool) {
	switch e := ve.(type) {
	case *ast.NumericValueExpression:
		if e.Left != nil || e.Term == nil || e.Term.Left != nil {
			return "", false
		}
		return literalFromPrimary(e.Term.Factor.Primary)
	case *ast.CharacterValueExpression:
		if len(e.Factors) != 1 {
			return "", false
		}
		return literalFromPrimary(e.Factors[0].Primary)
	}
	return "", false
}

func literalFromPrimary(p ast.ValueExpressionPrimary) (string, bool) {
	uv, ok := p.(*ast.UnsignedValueSpecification)
	if !ok || uv.Kind != ast.UnsignedLiteral || uv.Literal == nil {
		return "", false
	}
	return uv.Literal.Lex.String(), true
}
