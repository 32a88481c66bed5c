package uixgen

import (
	goparser "go/parser"
	"strings"
)

// deferredHead is the reserved head for deferred wrapping.
const deferredHead = "deferred"

// parseMarkup parses the single root of a markup block: an element, or a
// parenthesized Go expression that passes through unchanged. This is where
// "declare a tree node" and "evaluate a plain expression" are disambiguated.
func (p *Parser) parseMarkup() *Element {
	p.skipNewlines()
	start := p.current.Pos

	if p.current.Type == TokenRBrace || p.current.Type == TokenEOF {
		p.errors.AddErrorWithHint(pointSpan(start), "empty markup body",
			"markup must declare an element or a parenthesized expression")
		return nil
	}

	if p.current.Type == TokenLParen {
		return p.parseExprPassthrough()
	}

	head, span, ok := p.captureRaw(captureOpts{headMode: true})
	if !ok {
		return nil
	}

	if p.current.Type != TokenAt && p.current.Type != TokenLBrace {
		p.errors.AddErrorWithHint(span, "element body is required",
			"braces declare a markup element; wrap a plain expression in parentheses")
		return nil
	}

	return p.parseElementWithHead(head, start)
}

// parseExprPassthrough captures a fully parenthesized expression used
// verbatim as the root value.
func (p *Parser) parseExprPassthrough() *Element {
	start := p.current.Pos
	p.advance() // consume '('

	expr, span, ok := p.captureRaw(captureOpts{})
	if !ok {
		return nil
	}
	if p.current.Type != TokenRParen {
		p.errors.AddError(p.here(), "expected ')' to close expression")
		return nil
	}
	end := p.current.Pos
	p.advance()

	if expr == "" {
		p.errors.AddError(pointSpan(start), "empty parenthesized expression")
		return nil
	}
	if !p.checkExpr(expr, span) {
		return nil
	}

	return &Element{
		Head: Expression{Expr: expr},
		span: spanBetween(start, end),
	}
}

// parseElementWithHead parses attributes and body once the head text is
// captured. The current token is '@' or '{'.
func (p *Parser) parseElementWithHead(head string, start Position) *Element {
	if head == "" {
		p.errors.AddError(pointSpan(start), "element is missing a head")
		return nil
	}

	if head == deferredHead {
		return p.parseDeferred(start)
	}

	kind := Classify(head, p.tags)
	if expr, ok := kind.(Expression); ok {
		if !p.checkExpr(expr.Expr, pointSpan(start)) {
			return nil
		}
	}

	elem := &Element{Head: kind}

	if p.current.Type == TokenAt {
		attrs, ok := p.parseAttributes()
		if !ok {
			return nil
		}
		elem.Attrs = attrs
	}

	p.skipNewlines()
	if p.current.Type != TokenLBrace {
		p.errors.AddErrorWithHint(p.here(), "element body is required",
			"write {} for an element with no children")
		return nil
	}

	children, end, ok := p.parseBody()
	if !ok {
		return nil
	}
	elem.Children = children
	elem.span = spanBetween(start, end)
	return elem
}

// parseDeferred parses the reserved deferred form: no attributes, exactly
// one child (a nested element or an expression).
func (p *Parser) parseDeferred(start Position) *Element {
	if p.current.Type == TokenAt {
		p.errors.AddError(p.here(), "deferred takes no attributes")
		return nil
	}

	p.skipNewlines()
	if p.current.Type != TokenLBrace {
		p.errors.AddError(p.here(), "deferred requires a braced body")
		return nil
	}

	children, end, ok := p.parseBody()
	if !ok {
		return nil
	}
	if len(children) != 1 {
		p.errors.AddError(pointSpan(start),
			"deferred requires exactly one child element or expression")
		return nil
	}
	switch children[0].(type) {
	case Nested, Literal:
	default:
		p.errors.AddError(children[0].Span(),
			"deferred requires exactly one child element or expression")
		return nil
	}

	return &Element{
		Deferred: true,
		Children: children,
		span:     spanBetween(start, end),
	}
}

// parseAttributes parses `@[ item, item, ... ]`. The current token is '@'.
func (p *Parser) parseAttributes() ([]Attribute, bool) {
	p.advance() // consume '@'

	if p.current.Type != TokenLBracket {
		p.errors.AddErrorWithHint(p.here(), "attribute marker '@' must be followed by '['",
			"attributes are written @[name, key: value]")
		return nil, false
	}
	p.advanceSkipNewlines()

	var attrs []Attribute
	for p.current.Type != TokenRBracket {
		attr, ok := p.parseAttrItem()
		if !ok {
			return nil, false
		}
		attrs = append(attrs, attr)

		p.skipNewlines()
		switch p.current.Type {
		case TokenComma:
			p.advanceSkipNewlines()
		case TokenRBracket:
		default:
			p.errors.AddErrorf(p.here(), "expected ',' or ']' in attribute list, got %s", p.current.Type)
			return nil, false
		}
	}
	p.advance() // consume ']'
	p.skipNewlines()
	return attrs, true
}

// parseAttrItem parses one attribute: a bare flag, `name: expr`, or
// `name: (expr, expr)` where the tuple groups positional arguments.
func (p *Parser) parseAttrItem() (Attribute, bool) {
	if p.current.Type != TokenIdent {
		p.errors.AddErrorf(p.here(), "expected attribute name, got %s", p.current.Type)
		return nil, false
	}
	start := p.current.Pos
	name := p.current.Literal
	p.advance()

	if p.current.Type != TokenColon {
		return Flag{Name: name, span: pointSpan(start)}, true
	}
	p.advance() // consume ':'
	p.skipNewlines()

	value, span, ok := p.captureRaw(captureOpts{stopAtComma: true})
	if !ok {
		return nil, false
	}
	if value == "" {
		p.errors.AddErrorf(pointSpan(start), "attribute %q is missing a value", name)
		return nil, false
	}

	span = spanBetween(start, span.End)

	if args, isTuple := tupleArgs(value); isTuple {
		for _, arg := range args {
			if !p.checkExpr(arg, span) {
				return nil, false
			}
		}
		return KeyMultiValue{Name: name, Values: args, span: span}, true
	}

	if !p.checkExpr(value, span) {
		return nil, false
	}
	return KeyValue{Name: name, Value: value, span: span}, true
}

// parseBody parses a braced children block. The current token is '{'.
// Returns the children, the closing brace position, and success.
func (p *Parser) parseBody() ([]ChildItem, Position, bool) {
	p.advance() // consume '{'
	p.skipNewlines()

	var children []ChildItem
	for p.current.Type != TokenRBrace {
		if p.current.Type == TokenEOF {
			p.errors.AddError(p.here(), "unterminated element body")
			return nil, Position{}, false
		}

		child, ok := p.parseChildItem()
		if !ok {
			return nil, Position{}, false
		}
		children = append(children, child)

		p.skipNewlines()
		switch p.current.Type {
		case TokenComma:
			p.advanceSkipNewlines()
		case TokenRBrace:
		default:
			p.errors.AddErrorf(p.here(), "expected ',' or '}' between children, got %s", p.current.Type)
			return nil, Position{}, false
		}
	}
	end := p.current.Pos
	p.advance() // consume '}'
	return children, end, true
}

// parseChildItem parses one children-block item: a spread, a leading-dot
// method chain, a nested element, or a literal expression.
func (p *Parser) parseChildItem() (ChildItem, bool) {
	switch p.current.Type {
	case TokenDotDot:
		return p.parseSpread()
	case TokenDot:
		return p.parseMethodChain()
	}

	start := p.current.Pos
	text, span, ok := p.captureRaw(captureOpts{stopAtComma: true, headMode: true})
	if !ok {
		return nil, false
	}

	if p.current.Type == TokenAt || p.current.Type == TokenLBrace {
		elem := p.parseElementWithHead(text, start)
		if elem == nil {
			return nil, false
		}
		return Nested{Element: elem, span: elem.Span()}, true
	}

	if text == "" {
		p.errors.AddError(pointSpan(start), "expected child item")
		return nil, false
	}
	if !p.checkExpr(text, span) {
		return nil, false
	}
	return Literal{Expr: text, span: span}, true
}

// parseSpread parses `..expr`: the whole iterable attaches in one call.
func (p *Parser) parseSpread() (ChildItem, bool) {
	start := p.current.Pos
	p.advance() // consume '..'

	expr, span, ok := p.captureRaw(captureOpts{stopAtComma: true})
	if !ok {
		return nil, false
	}
	if expr == "" {
		p.errors.AddErrorWithHint(pointSpan(start), "malformed spread",
			"'..' must be followed by an iterable expression")
		return nil, false
	}
	span = spanBetween(start, span.End)
	if !p.checkExpr(expr, span) {
		return nil, false
	}
	return Spread{Expr: expr, span: span}, true
}

// parseMethodChain parses a leading-dot chain spliced onto the running
// expression. The chain is captured as one opaque region; validity is
// checked by the host grammar, never by a local call-syntax parser.
func (p *Parser) parseMethodChain() (ChildItem, bool) {
	start := p.current.Pos
	chain, span, ok := p.captureRawFrom(start, captureOpts{stopAtComma: true})
	if !ok {
		return nil, false
	}
	span = spanBetween(start, span.End)
	if chain == "." {
		p.errors.AddError(span, "malformed method chain")
		return nil, false
	}
	// Splicing onto a receiver must yield a valid expression.
	if _, err := goparser.ParseExpr("__uix" + chain); err != nil {
		p.errors.AddErrorf(span, "invalid method chain %q", chain)
		return nil, false
	}
	return MethodChain{Chain: chain, span: span}, true
}

// captureOpts controls where captureRaw stops at nesting depth zero.
type captureOpts struct {
	stopAtComma bool
	headMode    bool // stop at '@', and at '{' when the prefix reads as an element head
}

// captureRaw scans tokens without interpreting them, capturing the raw
// source of an embedded Go expression between byte offsets. Nested (), [],
// and {} groups are tracked so terminators only count at depth zero; the
// terminator is left as the current token. String, rune, and raw-string
// literals arrive as single tokens, so their contents never affect depth.
func (p *Parser) captureRaw(opts captureOpts) (string, Span, bool) {
	return p.captureRawFrom(p.current.Pos, opts)
}

// captureRawFrom is captureRaw with an explicit start position, used when
// the caller has already consumed leading tokens that belong to the region.
func (p *Parser) captureRawFrom(start Position, opts captureOpts) (string, Span, bool) {
	var openStack []Token

	terminate := func() (string, Span, bool) {
		end := p.current.Pos
		text := strings.TrimSpace(p.lexer.Snippet(start.Offset, end.Offset))
		return text, spanBetween(start, end), true
	}

	for {
		switch p.current.Type {
		case TokenEOF:
			if len(openStack) > 0 {
				open := openStack[len(openStack)-1]
				p.errors.AddErrorf(pointSpan(open.Pos), "unterminated %q group", open.Literal)
				return "", Span{}, false
			}
			return terminate()

		case TokenError:
			return "", Span{}, false

		case TokenLParen, TokenLBracket:
			openStack = append(openStack, p.current)

		case TokenLBrace:
			if len(openStack) == 0 && opts.headMode {
				prefix := strings.TrimSpace(p.lexer.Snippet(start.Offset, p.current.Pos.Offset))
				if prefixQualifies(prefix) {
					return terminate()
				}
			}
			openStack = append(openStack, p.current)

		case TokenRParen, TokenRBracket, TokenRBrace:
			if len(openStack) == 0 {
				return terminate()
			}
			open := openStack[len(openStack)-1]
			if !delimMatches(open.Type, p.current.Type) {
				p.errors.AddErrorf(pointSpan(open.Pos), "unterminated %q group", open.Literal)
				return "", Span{}, false
			}
			openStack = openStack[:len(openStack)-1]

		case TokenComma:
			if len(openStack) == 0 && opts.stopAtComma {
				return terminate()
			}

		case TokenAt:
			if len(openStack) == 0 && opts.headMode {
				return terminate()
			}
		}

		p.advance()
	}
}

// delimMatches pairs an opening delimiter with its closer.
func delimMatches(open, close TokenType) bool {
	switch open {
	case TokenLParen:
		return close == TokenRParen
	case TokenLBracket:
		return close == TokenRBracket
	case TokenLBrace:
		return close == TokenRBrace
	}
	return false
}

// prefixQualifies decides whether a '{' after the captured prefix opens an
// element body rather than continuing the expression. A bare selector path
// (div, widgets.Header) or a completed call chain (NewHeader().WithLabel("x"))
// reads as a head; func literals and composite literals of keyword or slice
// types keep their braces.
func prefixQualifies(prefix string) bool {
	if prefix == "" {
		return false
	}
	if prefix == "func" || strings.HasPrefix(prefix, "func ") || strings.HasPrefix(prefix, "func(") {
		return false
	}
	if isSelectorPath(prefix) {
		return true
	}
	return strings.HasSuffix(prefix, ")")
}

// checkExpr validates a captured region against the host expression grammar.
func (p *Parser) checkExpr(text string, span Span) bool {
	if _, err := goparser.ParseExpr(text); err != nil {
		p.errors.AddErrorf(span, "invalid Go expression %q", text)
		return false
	}
	return true
}

// tupleArgs reports whether value is a parenthesized group holding more
// than one depth-0 comma-separated expression, returning the expressions.
// A tuple like (a, b) is an argument list, not a value.
func tupleArgs(value string) ([]string, bool) {
	if !strings.HasPrefix(value, "(") || !balancedGroup(value) {
		return nil, false
	}
	parts := splitTopLevel(value[1 : len(value)-1])
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

// balancedGroup reports whether text is one parenthesized group, i.e. the
// opening paren's match is the final character.
func balancedGroup(text string) bool {
	if len(text) < 2 || text[0] != '(' {
		return false
	}
	depth := 0
	for i := 0; i < len(text); i++ {
		n := scanLiteral(text, i)
		if n > 0 {
			i += n - 1
			continue
		}
		switch text[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i == len(text)-1
			}
		}
	}
	return false
}

// splitTopLevel splits text on commas at nesting depth zero, skipping
// string, rune, and raw-string literals. A trailing empty part (from a
// trailing comma) is dropped.
func splitTopLevel(text string) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i < len(text); i++ {
		n := scanLiteral(text, i)
		if n > 0 {
			i += n - 1
			continue
		}
		switch text[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(text[start:]))

	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// scanLiteral returns the byte length of the string, rune, or raw-string
// literal starting at text[i], or 0 if none starts there.
func scanLiteral(text string, i int) int {
	switch text[i] {
	case '"', '\'':
		quote := text[i]
		j := i + 1
		for j < len(text) && text[j] != quote {
			if text[j] == '\\' {
				j++
			}
			j++
		}
		if j < len(text) {
			j++
		}
		return j - i
	case '`':
		j := i + 1
		for j < len(text) && text[j] != '`' {
			j++
		}
		if j < len(text) {
			j++
		}
		return j - i
	}
	return 0
}
