package uixgen

import "strconv"

// Parser parses .uix source files into an AST. Markup parsing is fail-fast:
// the first grammar violation inside a view body aborts that view with one
// diagnostic, and the parser synchronizes to the next view declaration.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
	errors  *ErrorList
	tags    map[string]bool // native-tag allow-list
}

// NewParser creates a Parser using the default toolkit conventions.
func NewParser(lexer *Lexer) *Parser {
	return NewParserWithConfig(lexer, nil)
}

// NewParserWithConfig creates a Parser whose head classification uses the
// given config's native-tag allow-list.
func NewParserWithConfig(lexer *Lexer, cfg *Config) *Parser {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Parser{
		lexer:  lexer,
		errors: NewErrorList(),
		tags:   cfg.NativeTagSet(),
	}
	// Read two tokens to initialize current and peek
	p.advance()
	p.advance()
	return p
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lexer.Next()
}

// advanceSkipNewlines advances while skipping newline tokens.
func (p *Parser) advanceSkipNewlines() {
	p.advance()
	p.skipNewlines()
}

// skipNewlines consumes any newline tokens.
func (p *Parser) skipNewlines() {
	for p.current.Type == TokenNewline {
		p.advance()
	}
}

// here returns a zero-width span at the current token.
func (p *Parser) here() Span {
	return pointSpan(p.current.Pos)
}

// expect checks if the current token matches the expected type and advances.
// Returns true if matched, false otherwise (and records an error).
func (p *Parser) expect(typ TokenType) bool {
	if p.current.Type == typ {
		p.advance()
		return true
	}
	p.errors.AddErrorf(p.here(), "expected %s, got %s", typ, p.current.Type)
	return false
}

// synchronize skips tokens until the next view declaration, allowing the
// parser to recover after a failed view and keep checking its siblings.
func (p *Parser) synchronize() {
	p.advance()
	for p.current.Type != TokenEOF && p.current.Type != TokenView {
		p.advance()
	}
}

// ParseFile parses a complete .uix file into a File AST node.
func (p *Parser) ParseFile() (*File, error) {
	p.skipNewlines()
	file := &File{span: p.here()}

	file.Package = p.parsePackage()
	if file.Package == "" {
		return nil, p.errors.Err()
	}

	p.skipNewlines()
	file.Imports = p.parseImports()
	p.skipNewlines()

	for p.current.Type != TokenEOF {
		p.skipNewlines()
		if p.current.Type == TokenEOF {
			break
		}

		if p.current.Type != TokenView {
			p.errors.AddErrorf(p.here(), "unexpected %s, expected view declaration", p.current.Type)
			p.synchronize()
			continue
		}

		view := p.parseView()
		if view == nil {
			p.synchronize()
			continue
		}
		file.Views = append(file.Views, view)
	}

	// Merge lexer errors
	for _, err := range p.lexer.Errors().Errors() {
		p.errors.Add(err)
	}

	return file, p.errors.Err()
}

// parsePackage parses "package <name>".
func (p *Parser) parsePackage() string {
	if p.current.Type != TokenPackage {
		p.errors.AddError(p.here(), "expected 'package' declaration")
		return ""
	}
	p.advance()

	if p.current.Type != TokenIdent {
		p.errors.AddError(p.here(), "expected package name")
		return ""
	}
	name := p.current.Literal
	p.advanceSkipNewlines()
	return name
}

// parseImports parses import statements.
// Supports:
//   - import "path"
//   - import alias "path"
//   - import ( "path1"; "path2" )
//   - import ( alias "path" )
func (p *Parser) parseImports() []Import {
	var imports []Import

	for p.current.Type == TokenImport {
		p.advance() // consume 'import'
		p.skipNewlines()

		if p.current.Type == TokenLParen {
			// Grouped imports
			p.advance()
			p.skipNewlines()

			for p.current.Type != TokenRParen && p.current.Type != TokenEOF {
				imp := p.parseSingleImport()
				if imp != nil {
					imports = append(imports, *imp)
				}
				p.skipNewlines()
			}
			p.expect(TokenRParen)
		} else {
			// Single import
			imp := p.parseSingleImport()
			if imp != nil {
				imports = append(imports, *imp)
			}
		}
		p.skipNewlines()
	}

	return imports
}

// parseSingleImport parses a single import: [alias] "path"
func (p *Parser) parseSingleImport() *Import {
	start := p.current.Pos
	var alias string

	if p.current.Type == TokenIdent || p.current.Type == TokenDot {
		alias = p.current.Literal
		p.advance()
	}

	if p.current.Type != TokenString {
		p.errors.AddError(p.here(), "expected import path string")
		p.advance()
		return nil
	}

	path, err := strconv.Unquote(p.current.Literal)
	if err != nil {
		p.errors.AddErrorf(p.here(), "invalid import path %s", p.current.Literal)
		p.advance()
		return nil
	}
	end := p.current.Pos
	p.advance()

	return &Import{
		Alias: alias,
		Path:  path,
		span:  spanBetween(start, end),
	}
}

// parseView parses `view Name(params) { markup }`. The markup block holds
// exactly one root element or parenthesized expression.
func (p *Parser) parseView() *View {
	start := p.current.Pos
	p.advance() // consume 'view'

	if p.current.Type != TokenIdent {
		p.errors.AddError(p.here(), "expected view name")
		return nil
	}
	name := p.current.Literal
	p.advance()

	if p.current.Type != TokenLParen {
		p.errors.AddError(p.here(), "expected '(' after view name")
		return nil
	}
	p.advance() // consume '('

	params, _, ok := p.captureRaw(captureOpts{})
	if !ok {
		return nil
	}
	if !p.expect(TokenRParen) {
		return nil
	}
	p.skipNewlines()

	if p.current.Type != TokenLBrace {
		p.errors.AddError(p.here(), "expected '{' to open view body")
		return nil
	}
	p.advance()

	root := p.parseMarkup()
	if root == nil {
		return nil
	}

	p.skipNewlines()
	if p.current.Type != TokenRBrace {
		p.errors.AddErrorWithHint(p.here(), "expected '}' to close view body",
			"a view holds exactly one root element")
		return nil
	}
	end := p.current.Pos
	p.advance()

	return &View{
		Name:   name,
		Params: params,
		Root:   root,
		span:   spanBetween(start, end),
	}
}
