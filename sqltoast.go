// Package sqltoast parses SQL-92 (plus a handful of SQL-2003 additions)
// into a typed syntax tree, without performing semantic analysis,
// planning, or execution.
//
// Design goals:
//   - Most AST nodes bump-allocated from a reusable per-parser arena
//   - O(1) keyword recognition via length-bucketed tables
//   - Hand-rolled recursive-descent parser with one-token lookahead and
//     snapshot/restore backtracking
//   - Two-line caret-excerpt syntax errors
//
// Usage:
//
//	result := sqltoast.ParseStatement("SELECT id, name FROM users WHERE id = 1")
//	if len(result.Errors) > 0 { ... }
//	p := sqltoast.New([]byte(sql), sqltoast.ParseOptions{})
//	stmts, result := p.All()
package sqltoast

import (
	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
	"github.com/oarkflow/sqltoast/parser"
)

// Re-export core types so callers only need to import this package.
type (
	Statement    = ast.Statement
	ParseOptions = parser.ParseOptions
	ParseResult  = parser.ParseResult
	ParseError   = parser.ParseError
	ResultCode   = parser.ResultCode
	Token        = lexer.Token
	TokenKind    = lexer.TokenKind
)

const (
	CodeSuccess     = parser.CodeSuccess
	CodeSyntaxError = parser.CodeSyntaxError
	CodeLexError    = parser.CodeLexError
)

// ParseStatement parses a single SQL statement from a string.
func ParseStatement(sql string) *ParseResult {
	return parser.ParseStatement(sql)
}

// ParseStatementWithOptions is ParseStatement with explicit options.
func ParseStatementWithOptions(sql string, opts ParseOptions) *ParseResult {
	return parser.ParseStatementWithOptions(sql, opts)
}

// Parser is a reusable, stateful parser. Reuse one across calls to
// amortize arena allocations.
type Parser struct {
	p *parser.Parser
}

// New creates a Parser backed by the given SQL bytes.
func New(src []byte, opts ParseOptions) *Parser {
	return &Parser{p: parser.New(src, opts)}
}

// NewString creates a Parser backed by the given SQL string.
func NewString(src string, opts ParseOptions) *Parser {
	return &Parser{p: parser.NewString(src, opts)}
}

// Reset reuses the Parser with new input, reusing internal allocations.
func (p *Parser) Reset(src []byte) {
	p.p.Reset(src)
}

// Next parses the next statement, or returns a zero-value Statement with
// CodeSuccess at end of input.
func (p *Parser) Next() *ParseResult {
	return p.p.ParseOne()
}

// All parses every remaining statement, stopping at the first error.
func (p *Parser) All() ([]Statement, *ParseResult) {
	return p.p.ParseAll()
}

// Tokenize breaks a SQL string into tokens. Each token's lexeme borrows
// from the original byte slice to avoid copies. Tokens are appended to
// buf; provide a pre-allocated buffer to avoid a heap allocation:
//
//	buf := make([]lexer.Token, 0, 128)
//	tokens := sqltoast.Tokenize([]byte(sql), buf)
func Tokenize(src []byte, buf []Token) []Token {
	return lexer.Tokenize(src, buf)
}
