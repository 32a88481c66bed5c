package uixgen

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes .uix source files.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	// Start position of the current token
	tokenPos Position

	errors *ErrorList
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     1,
		column:   0,
		errors:   NewErrorList(),
	}
	l.readChar()
	return l
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
	} else {
		r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
		l.ch = r
		l.pos = l.readPos
		l.readPos += size
	}

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenPos = Position{
		File:   l.filename,
		Line:   l.line,
		Column: l.column,
		Offset: l.pos,
	}
}

// makeToken creates a token with the current start position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Pos: l.tokenPos}
}

// position returns the current Position for error reporting.
func (l *Lexer) position() Position {
	return Position{File: l.filename, Line: l.line, Column: l.column, Offset: l.pos}
}

// Snippet extracts a substring of the original source between byte offsets.
// The parser uses it to capture embedded Go expressions verbatim.
func (l *Lexer) Snippet(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(l.source) {
		end = len(l.source)
	}
	if start >= end {
		return ""
	}
	return l.source[start:end]
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	l.skipWhitespaceAndComments()

	l.startToken()

	switch l.ch {
	case 0:
		return l.makeToken(TokenEOF, "")

	case '\n':
		l.readChar()
		return l.makeToken(TokenNewline, "\n")

	case '@':
		l.readChar()
		return l.makeToken(TokenAt, "@")

	case '(':
		l.readChar()
		return l.makeToken(TokenLParen, "(")

	case ')':
		l.readChar()
		return l.makeToken(TokenRParen, ")")

	case '{':
		l.readChar()
		return l.makeToken(TokenLBrace, "{")

	case '}':
		l.readChar()
		return l.makeToken(TokenRBrace, "}")

	case '[':
		l.readChar()
		return l.makeToken(TokenLBracket, "[")

	case ']':
		l.readChar()
		return l.makeToken(TokenRBracket, "]")

	case ',':
		l.readChar()
		return l.makeToken(TokenComma, ",")

	case ':':
		l.readChar()
		return l.makeToken(TokenColon, ":")

	case '.':
		// Could be .. (spread), a float like .5, or a plain selector dot.
		if l.peekChar() == '.' {
			l.readChar()
			l.readChar()
			return l.makeToken(TokenDotDot, "..")
		}
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		return l.makeToken(TokenDot, ".")

	case '"':
		return l.readString()

	case '\'':
		return l.readRune()

	case '`':
		return l.readRawString()

	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}

		// Any other symbol flows through opaque expression regions untouched.
		ch := l.ch
		l.readChar()
		return l.makeToken(TokenPunct, string(ch))
	}
}

// skipWhitespaceAndComments skips spaces, tabs, and comments (but not newlines).
// Comments never produce nodes; they are discarded here.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				l.skipLineComment()
			} else if l.peekChar() == '*' {
				l.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

// skipLineComment discards a // comment up to (not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment discards a /* */ comment.
func (l *Lexer) skipBlockComment() {
	start := l.position()
	l.readChar() // skip /
	l.readChar() // skip *

	for {
		if l.ch == 0 {
			l.errors.AddError(pointSpan(start), "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // skip *
			l.readChar() // skip /
			return
		}
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := l.source[startPos:l.pos]
	return l.makeToken(LookupIdent(literal), literal)
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

// isHexish returns true for digits, hex letters, and the separators Go
// permits inside numeric literals.
func isHexish(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F') ||
		ch == '_' || ch == 'x' || ch == 'X' || ch == 'o' || ch == 'O' || ch == 'b' || ch == 'B'
}
