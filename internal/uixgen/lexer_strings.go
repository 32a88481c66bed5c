package uixgen

// readString reads a double-quoted string literal. The literal keeps its
// quotes and escapes verbatim: embedded expressions are re-emitted as raw
// source, so the lexer never needs the decoded value.
func (l *Lexer) readString() Token {
	startPos := l.pos
	l.readChar() // consume opening "

	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\n' {
			l.errors.AddError(pointSpan(l.tokenPos), "unterminated string literal")
			return l.makeToken(TokenError, l.source[startPos:l.pos])
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash; next char is part of the escape
		}
		l.readChar()
	}

	if l.ch == 0 {
		l.errors.AddError(pointSpan(l.tokenPos), "unterminated string literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	l.readChar() // consume closing "
	return l.makeToken(TokenString, l.source[startPos:l.pos])
}

// readRune reads a single-quoted rune literal, kept verbatim.
func (l *Lexer) readRune() Token {
	startPos := l.pos
	l.readChar() // consume opening '

	if l.ch == '\\' {
		l.readChar() // consume backslash
		l.readChar() // consume escaped char
	} else if l.ch == '\'' || l.ch == 0 {
		l.errors.AddError(pointSpan(l.tokenPos), "empty rune literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	} else {
		l.readChar()
	}

	// Hex/unicode escapes span several chars; scan to the closing quote.
	for l.ch != '\'' && l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}

	if l.ch != '\'' {
		l.errors.AddError(pointSpan(l.tokenPos), "unterminated rune literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	l.readChar() // consume closing '
	return l.makeToken(TokenRune, l.source[startPos:l.pos])
}

// readRawString reads a backtick-quoted raw string, kept verbatim.
func (l *Lexer) readRawString() Token {
	startPos := l.pos
	l.readChar() // consume opening `

	for l.ch != '`' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		l.errors.AddError(pointSpan(l.tokenPos), "unterminated raw string literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	l.readChar() // consume closing `
	return l.makeToken(TokenRawString, l.source[startPos:l.pos])
}

// readNumber reads an integer or float literal, including hex/octal/binary
// forms and digit separators. Classification between int and float only
// matters for token naming; captured expressions re-emit the raw source.
func (l *Lexer) readNumber() Token {
	startPos := l.pos
	isFloat := false

	if l.ch == '.' {
		isFloat = true
		l.readChar()
	}

	for isHexish(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && !isFloat && l.peekChar() != '.' {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.source[startPos:l.pos]
	if isFloat {
		return l.makeToken(TokenFloat, literal)
	}
	return l.makeToken(TokenInt, literal)
}
