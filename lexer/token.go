// Package lexer turns SQL-92 source bytes into a stream of tokens.
package lexer

import "github.com/oarkflow/sqltoast/lexeme"

// TokenKind is the closed set of symbols the lexer can produce.
type TokenKind uint16

const (
	EOS TokenKind = iota

	structStart
	SEMICOLON
	LPAREN
	RPAREN
	COMMA
	PERIOD
	ASTERISK
	SOLIDUS
	PLUS
	MINUS
	COLON
	QUESTION_MARK
	EQUAL
	NOT_EQUAL
	LESS
	GREATER
	LESS_EQUAL
	GREATER_EQUAL
	CONCATENATION
	structEnd

	litStart
	LITERAL_UNSIGNED_INTEGER
	LITERAL_SIGNED_INTEGER
	LITERAL_UNSIGNED_DECIMAL
	LITERAL_SIGNED_DECIMAL
	LITERAL_APPROXIMATE_NUMBER
	LITERAL_CHARACTER_STRING
	LITERAL_NATIONAL_CHARACTER_STRING
	LITERAL_BIT_STRING
	LITERAL_HEX_STRING
	litEnd

	IDENTIFIER

	kwStart
	SELECT
	FROM
	WHERE
	GROUP
	BY
	HAVING
	CREATE
	TABLE
	SCHEMA
	VIEW
	DROP
	ALTER
	ADD
	COLUMN
	CONSTRAINT
	DEFAULT
	NULL
	NOT
	UNIQUE
	PRIMARY
	KEY
	FOREIGN
	REFERENCES
	CHECK
	CASCADE
	RESTRICT
	SET
	ON
	DELETE
	UPDATE
	INSERT
	VALUES
	INTO
	AS
	JOIN
	LEFT
	RIGHT
	INNER
	OUTER
	FULL
	CROSS
	NATURAL
	UNION
	INTERSECT
	EXCEPT
	DISTINCT
	ALL
	IN
	BETWEEN
	LIKE
	EXISTS
	IS
	AND
	OR
	CASE
	WHEN
	THEN
	ELSE
	END
	COALESCE
	NULLIF
	COUNT
	AVG
	MIN
	MAX
	SUM
	CAST
	SUBSTRING
	UPPER
	LOWER
	CONVERT
	TRANSLATE
	TRIM
	LEADING
	TRAILING
	BOTH
	FOR
	POSITION
	EXTRACT
	CHAR_LENGTH
	CHARACTER_LENGTH
	BIT_LENGTH
	OCTET_LENGTH
	YEAR
	MONTH
	DAY
	HOUR
	MINUTE
	SECOND
	DATE
	TIME
	TIMESTAMP
	INTERVAL
	CURRENT_DATE
	CURRENT_TIME
	CURRENT_TIMESTAMP
	USER
	CURRENT_USER
	SESSION_USER
	SYSTEM_USER
	VALUE
	GRANT
	PRIVILEGES
	PUBLIC
	WITH
	OPTION
	USAGE
	CASCADED
	LOCAL
	COLLATE
	CHAR
	CHARACTER
	VARYING
	NCHAR
	NATIONAL
	BIT
	VARBIT
	INT
	INTEGER
	SMALLINT
	NUMERIC
	DECIMAL
	DEC
	FLOAT
	REAL
	DOUBLE
	PRECISION
	ZONE
	AT
	TEMPORARY
	GLOBAL
	COMMIT
	ROLLBACK
	AUTHORIZATION
	DOMAIN
	COLLATION
	TRANSLATION
	ACTION
	MATCH
	PARTIAL
	SIMPLE
	WORK
	TO
	USING
	ESCAPE
	NO
	kwEnd
)

var tokenNames = map[TokenKind]string{
	EOS:                               "EOS",
	SEMICOLON:                         ";",
	LPAREN:                            "(",
	RPAREN:                            ")",
	COMMA:                             ",",
	PERIOD:                            ".",
	ASTERISK:                          "*",
	SOLIDUS:                           "/",
	PLUS:                              "+",
	MINUS:                             "-",
	COLON:                             ":",
	QUESTION_MARK:                     "?",
	EQUAL:                             "=",
	NOT_EQUAL:                         "<>",
	LESS:                              "<",
	GREATER:                           ">",
	LESS_EQUAL:                        "<=",
	GREATER_EQUAL:                     ">=",
	CONCATENATION:                     "||",
	LITERAL_UNSIGNED_INTEGER:          "LITERAL_UNSIGNED_INTEGER",
	LITERAL_SIGNED_INTEGER:            "LITERAL_SIGNED_INTEGER",
	LITERAL_UNSIGNED_DECIMAL:          "LITERAL_UNSIGNED_DECIMAL",
	LITERAL_SIGNED_DECIMAL:            "LITERAL_SIGNED_DECIMAL",
	LITERAL_APPROXIMATE_NUMBER:        "LITERAL_APPROXIMATE_NUMBER",
	LITERAL_CHARACTER_STRING:          "LITERAL_CHARACTER_STRING",
	LITERAL_NATIONAL_CHARACTER_STRING: "LITERAL_NATIONAL_CHARACTER_STRING",
	LITERAL_BIT_STRING:                "LITERAL_BIT_STRING",
	LITERAL_HEX_STRING:                "LITERAL_HEX_STRING",
	IDENTIFIER:                        "IDENTIFIER",
}

// String renders a human-readable token kind name, used in error messages.
func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	if k > kwStart && k < kwEnd {
		if w, ok := keywordText[k]; ok {
			return w
		}
	}
	return "UNKNOWN"
}

// Token is a lexeme tagged with a symbolic kind and its source position.
type Token struct {
	Kind TokenKind
	Lex  lexeme.Lexeme
	Line uint32
	Col  uint32
}

// IsLiteral reports whether the token is one of the nine literal kinds.
func (t Token) IsLiteral() bool { return t.Kind > litStart && t.Kind < litEnd }

// IsIdentifier reports whether the token is a plain or quoted identifier.
func (t Token) IsIdentifier() bool { return t.Kind == IDENTIFIER }

// IsKeyword reports whether the token is one of the reserved SQL-92 words.
func (t Token) IsKeyword() bool { return t.Kind > kwStart && t.Kind < kwEnd }

// IsPunctuator reports whether the token is a structural symbol.
func (t Token) IsPunctuator() bool { return t.Kind > structStart && t.Kind < structEnd }

// Text returns the token's source text.
func (t Token) Text() string { return t.Lex.String() }
