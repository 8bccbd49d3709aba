// Package parser implements a recursive-descent parser over the SQL-92
// grammar (plus limited SQL-2003 additions), producing the ast package's
// typed tree or a structured syntax error.
package parser

import (
	"fmt"
	"strings"

	"github.com/oarkflow/sqltoast/ast"
	"github.com/oarkflow/sqltoast/lexer"
)

// ResultCode classifies the outcome of a parse.
type ResultCode int

const (
	CodeSuccess ResultCode = iota
	CodeSyntaxError
	CodeLexError
)

// ParseError is a single self-contained diagnostic: a message plus a
// two-line caret excerpt pointing at the offending source position.
type ParseError struct {
	Msg  string
	Pos  int32
	Line uint32
	Col  uint32
	src  []byte
}

// Error renders the message, the full source line containing the fault,
// and a caret line marking the column of the fault.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	b.WriteByte('\n')
	b.WriteString(sourceLine(e.src, e.Pos))
	b.WriteByte('\n')
	col := int(e.Col)
	if col < 1 {
		col = 1
	}
	for i := 1; i < col; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

// sourceLine extracts the full line of src containing byte offset pos.
func sourceLine(src []byte, pos int32) string {
	if int(pos) > len(src) {
		pos = int32(len(src))
	}
	start := int(pos)
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := int(pos)
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return string(src[start:end])
}

// ParseOptions configures a parse.
type ParseOptions struct {
	// DisableStatementConstruction runs the grammar-validation path
	// without allocating AST nodes: useful for a caller that only wants
	// a syntax check and does not need the tree.
	DisableStatementConstruction bool
}

// ParseResult is the outcome of parsing one statement.
type ParseResult struct {
	Statement ast.Statement
	Code      ResultCode
	Errors    []*ParseError
}

// Parser drives a lexer token-by-token, constructing AST nodes and
// reporting the first syntax error with a caret-marked excerpt.
type Parser struct {
	lex     *lexer.Lexer
	tok     lexer.Token
	peek    lexer.Token
	hasPeek bool
	opts    ParseOptions
	arena   arena
	src     []byte

	err      *ParseError
	errIsLex bool
}

// New creates a Parser over src with the given options and primes the
// first token.
func New(src []byte, opts ParseOptions) *Parser {
	p := &Parser{lex: lexer.New(src), opts: opts, src: src}
	p.arena.init()
	p.advance()
	return p
}

// NewString creates a Parser over a byte copy of a string input.
func NewString(src string, opts ParseOptions) *Parser {
	return New([]byte(src), opts)
}

// Reset reuses the parser for a new input, releasing arena slabs beyond
// the first.
func (p *Parser) Reset(src []byte) {
	p.lex.Reset(src)
	p.src = src
	p.hasPeek = false
	p.err = nil
	p.errIsLex = false
	p.arena.reset()
	p.advance()
}

func (p *Parser) advance() {
	if p.hasPeek {
		p.tok = p.peek
		p.hasPeek = false
		return
	}
	p.tok = p.lex.Next()
	if lexErr := p.lex.Err(); lexErr != nil && p.err == nil {
		p.err = &ParseError{Msg: lexErr.Msg, Pos: lexErr.Pos, Line: lexErr.Line, Col: lexErr.Col, src: p.src}
		p.errIsLex = true
	}
}

// snapshot captures enough state to undo any number of advance() calls,
// used by backtrackable productions that try one alternative and fall
// back to another.
type snapshot struct {
	lex     lexer.Snapshot
	tok     lexer.Token
	peek    lexer.Token
	hasPeek bool
	errSet  bool
}

func (p *Parser) snapshot() snapshot {
	return snapshot{lex: p.lex.Snapshot(), tok: p.tok, peek: p.peek, hasPeek: p.hasPeek, errSet: p.err != nil}
}

func (p *Parser) restore(s snapshot) {
	p.lex.Restore(s.lex)
	p.tok = s.tok
	p.peek = s.peek
	p.hasPeek = s.hasPeek
	if !s.errSet {
		p.err = nil
		p.errIsLex = false
	}
}

func (p *Parser) is(kind lexer.TokenKind) bool { return p.tok.Kind == kind }

// eat consumes the current token if it matches kind; otherwise it commits
// a syntax error and returns false. Use when kind is grammatically
// mandatory at this point, with no alternative production left to try.
func (p *Parser) eat(kind lexer.TokenKind) bool {
	if p.tok.Kind != kind {
		return p.fail(kind)
	}
	p.advance()
	return true
}

// tryEat consumes the current token if it matches kind and reports
// whether it did, without ever committing an error. Used for optional
// clauses and backtrackable alternatives.
func (p *Parser) tryEat(kind lexer.TokenKind) bool {
	if p.tok.Kind != kind {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) fail(expected lexer.TokenKind) bool {
	p.errorf("expected %s but found %s %q", expected, p.tok.Kind, p.tok.Text())
	return false
}

func (p *Parser) errorf(format string, args ...any) {
	if p.err != nil {
		return // first error wins
	}
	p.err = &ParseError{
		Msg:  fmt.Sprintf(format, args...),
		Pos:  p.tok.Lex.Start(),
		Line: p.tok.Line,
		Col:  p.tok.Col,
		src:  p.src,
	}
}

// disabled reports whether node construction should be skipped. Every
// production still drives the lexer identically regardless of this
// value; only whether it allocates and populates an AST node differs,
// so validation-only parsing and full parsing share one code path.
func (p *Parser) disabled() bool { return p.opts.DisableStatementConstruction }

// parseIdent consumes an IDENTIFIER, or a keyword used as an identifier.
// SQL-92 permits many reserved words as unquoted names in specific
// grammar slots (column aliases, correlation names); rather than
// enumerate them this parser accepts any keyword token wherever its
// caller explicitly calls parseIdent instead of eat(IDENTIFIER).
func (p *Parser) parseIdent() (ast.Identifier, bool) {
	t := p.tok
	if t.Kind != lexer.IDENTIFIER && !t.IsKeyword() {
		p.errorf("expected identifier but found %s %q", t.Kind, t.Text())
		return ast.Identifier{}, false
	}
	p.advance()
	delimited := len(t.Lex.Raw) > 0 && (t.Lex.Raw[0] == '"' || t.Lex.Raw[0] == '`')
	return ast.Identifier{Lex: t.Lex, Delimited: delimited}, true
}

func (p *Parser) parseIdentList() ([]ast.Identifier, bool) {
	var out []ast.Identifier
	id, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	out = append(out, id)
	for p.tryEat(lexer.COMMA) {
		id, ok = p.parseIdent()
		if !ok {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// parseParenIdentList parses '(' ident [, ident]* ')'.
func (p *Parser) parseParenIdentList() ([]ast.Identifier, bool) {
	if !p.eat(lexer.LPAREN) {
		return nil, false
	}
	ids, ok := p.parseIdentList()
	if !ok {
		return nil, false
	}
	if !p.eat(lexer.RPAREN) {
		return nil, false
	}
	return ids, true
}

// ParseStatement parses a single statement out of src using default
// options.
func ParseStatement(src string) *ParseResult {
	return ParseStatementWithOptions(src, ParseOptions{})
}

// ParseStatementWithOptions is ParseStatement with explicit options.
func ParseStatementWithOptions(src string, opts ParseOptions) *ParseResult {
	p := NewString(src, opts)
	return p.ParseOne()
}

// ParseOne parses the next statement from the parser's current position.
// A statement may be terminated by ';' or end of input; anything else
// trailing a complete statement is a syntax error.
func (p *Parser) ParseOne() *ParseResult {
	if p.err != nil {
		return p.errorResult()
	}
	for p.tryEat(lexer.SEMICOLON) {
	}
	if p.is(lexer.EOS) {
		return &ParseResult{Code: CodeSuccess}
	}
	stmt, ok := p.parseStatement()
	if !ok {
		return p.errorResult()
	}
	if !p.tryEat(lexer.SEMICOLON) && !p.is(lexer.EOS) {
		p.errorf("unexpected %s %q after statement", p.tok.Kind, p.tok.Text())
		return p.errorResult()
	}
	return &ParseResult{Statement: stmt, Code: CodeSuccess}
}

// ParseAll parses every statement in the input, stopping at the first
// error and returning whatever statements preceded it.
func (p *Parser) ParseAll() ([]ast.Statement, *ParseResult) {
	var stmts []ast.Statement
	for {
		for p.tryEat(lexer.SEMICOLON) {
		}
		if p.is(lexer.EOS) {
			return stmts, &ParseResult{Code: CodeSuccess}
		}
		stmt, ok := p.parseStatement()
		if !ok {
			return stmts, p.errorResult()
		}
		stmts = append(stmts, stmt)
		if !p.tryEat(lexer.SEMICOLON) && !p.is(lexer.EOS) {
			p.errorf("unexpected %s %q after statement", p.tok.Kind, p.tok.Text())
			return stmts, p.errorResult()
		}
	}
}

func (p *Parser) errorResult() *ParseResult {
	code := CodeSyntaxError
	if p.errIsLex {
		code = CodeLexError
	}
	return &ParseResult{Code: code, Errors: []*ParseError{p.err}}
}

// parseStatement dispatches on the leading keyword to the appropriate
// statement production.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.tok.Kind {
	case lexer.CREATE:
		return p.parseCreate()
	case lexer.DROP:
		return p.parseDrop()
	case lexer.ALTER:
		return p.parseAlterTable()
	case lexer.SELECT:
		return p.parseSelectStatement()
	case lexer.INSERT:
		return p.parseInsert()
	case lexer.UPDATE:
		return p.parseUpdate()
	case lexer.DELETE:
		return p.parseDelete()
	case lexer.GRANT:
		return p.parseGrant()
	case lexer.COMMIT:
		p.advance()
		p.tryEat(lexer.WORK)
		if p.disabled() {
			return nil, true
		}
		return newNode[ast.CommitStatement](&p.arena), true
	case lexer.ROLLBACK:
		p.advance()
		p.tryEat(lexer.WORK)
		if p.disabled() {
			return nil, true
		}
		return newNode[ast.RollbackStatement](&p.arena), true
	default:
		p.errorf("expected a statement but found %s %q", p.tok.Kind, p.tok.Text())
		return nil, false
	}
}
