// Package lexeme defines the borrowed source-range type shared by the
// lexer's tokens and every AST node. A Lexeme never copies or owns the
// bytes it designates; it is only valid for as long as the input buffer
// that produced it is alive.
package lexeme

import "unsafe"

// Lexeme is a half-open range [Pos, Pos+len(Raw)) into an input buffer.
// The zero value is the empty (absent) lexeme.
type Lexeme struct {
	Raw []byte
	Pos int32
}

// Of builds a Lexeme from a sub-slice of an input buffer and its offset.
func Of(raw []byte, pos int32) Lexeme {
	return Lexeme{Raw: raw, Pos: pos}
}

// Empty reports whether the lexeme is absent (the zero value, or any
// lexeme with a nil Raw slice).
func (l Lexeme) Empty() bool {
	return l.Raw == nil
}

// Start returns the byte offset of the lexeme's first byte.
func (l Lexeme) Start() int32 {
	return l.Pos
}

// End returns the byte offset just past the lexeme's last byte.
func (l Lexeme) End() int32 {
	return l.Pos + int32(len(l.Raw))
}

// Len returns the number of bytes the lexeme spans.
func (l Lexeme) Len() int32 {
	return int32(len(l.Raw))
}

// String materializes the lexeme's text. The returned string aliases the
// lexeme's bytes; it must not outlive the input buffer's intended use.
func (l Lexeme) String() string {
	if len(l.Raw) == 0 {
		return ""
	}
	return unsafe.String(&l.Raw[0], len(l.Raw))
}
