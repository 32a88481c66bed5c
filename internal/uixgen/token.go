// Package uixgen compiles .uix markup files into Go source code that builds
// UI trees through chained builder calls.
package uixgen

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError
	TokenNewline

	// Keywords
	TokenPackage // package
	TokenImport  // import
	TokenView    // view

	// Literals
	TokenIdent     // identifier
	TokenInt       // integer literal: 123
	TokenFloat     // float literal: 1.23
	TokenString    // string literal: "..."
	TokenRawString // raw string literal: `...`
	TokenRune      // rune literal: 'x'

	// Punctuation
	TokenAt       // @
	TokenLParen   // (
	TokenRParen   // )
	TokenLBrace   // {
	TokenRBrace   // }
	TokenLBracket // [
	TokenRBracket // ]
	TokenComma    // ,
	TokenColon    // :
	TokenDot      // .
	TokenDotDot   // ..

	// TokenPunct covers every other symbol. The parser never interprets these;
	// they only flow through opaque expression regions handed to go/parser.
	TokenPunct
)

// tokenNames maps token types to their string names for error messages.
var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenNewline:   "Newline",
	TokenPackage:   "package",
	TokenImport:    "import",
	TokenView:      "view",
	TokenIdent:     "Ident",
	TokenInt:       "Int",
	TokenFloat:     "Float",
	TokenString:    "String",
	TokenRawString: "RawString",
	TokenRune:      "Rune",
	TokenAt:        "@",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenComma:     ",",
	TokenColon:     ":",
	TokenDot:       ".",
	TokenDotDot:    "..",
	TokenPunct:     "Punct",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its type, literal value, and source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Pos.Line, t.Pos.Column)
	}
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Pos.Line, t.Pos.Column)
}

// Position represents a source code location.
type Position struct {
	File   string
	Line   int // 1-based
	Column int // 1-based
	Offset int // byte offset in source
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open source range [Start, End) attached to every AST node.
// Spans feed diagnostics only; they never affect generation semantics.
type Span struct {
	Start Position
	End   Position
}

// String returns the span's start position, which is what diagnostics print.
func (s Span) String() string {
	return s.Start.String()
}

// spanBetween builds a Span from a start position to an end position.
func spanBetween(start, end Position) Span {
	return Span{Start: start, End: end}
}

// pointSpan builds a zero-width Span at a single position.
func pointSpan(pos Position) Span {
	return Span{Start: pos, End: pos}
}

// keywords maps keyword strings to their token types.
var keywords = map[string]TokenType{
	"package": TokenPackage,
	"import":  TokenImport,
	"view":    TokenView,
}

// LookupIdent returns the token type for an identifier,
// checking if it's a keyword first.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
