package uixgen

import (
	"bytes"
	"fmt"
	"go/format"

	"golang.org/x/tools/imports"
)

// Generator transforms a parsed AST into Go source code. Generation is
// deterministic and total over well-formed trees; the parser has already
// rejected every ill-formed one.
type Generator struct {
	buf    bytes.Buffer
	indent int
	cfg    *Config

	sourceFile string // original .uix filename for header comment

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewGenerator creates a code generator for the given toolkit config.
// A nil config uses the defaults.
func NewGenerator(cfg *Config) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Generator{cfg: cfg}
}

// Generate produces Go source code from a parsed file.
// Returns the generated code as a byte slice, or an error if generation fails.
func (g *Generator) Generate(file *File, sourceFile string) ([]byte, error) {
	g.buf.Reset()
	g.indent = 0
	g.sourceFile = sourceFile

	g.generateHeader()
	g.generatePackage(file.Package)
	g.generateImports(file.Imports)

	for _, view := range file.Views {
		g.generateView(view)
	}

	// For tests: just format without import processing (much faster)
	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}

	// For production: format and fix imports with goimports
	return imports.Process(g.sourceFile, g.buf.Bytes(), nil)
}

// GenerateString is a convenience method that returns the generated code as a string.
func (g *Generator) GenerateString(file *File, sourceFile string) (string, error) {
	data, err := g.Generate(file, sourceFile)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// generateHeader writes the "DO NOT EDIT" comment.
func (g *Generator) generateHeader() {
	g.writeln("// Code generated by uix generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

// generatePackage writes the package declaration.
func (g *Generator) generatePackage(pkg string) {
	g.writef("package %s\n\n", pkg)
}

// generateImports writes the import block, adding the toolkit import when
// the file does not name it already.
func (g *Generator) generateImports(imps []Import) {
	hasToolkit := g.cfg.ToolkitImport == ""
	for _, imp := range imps {
		if imp.Path == g.cfg.ToolkitImport {
			hasToolkit = true
		}
	}

	if len(imps) == 0 && hasToolkit {
		return
	}

	g.writeln("import (")
	g.indent++

	for _, imp := range imps {
		if imp.Alias != "" {
			g.writef("%s %q\n", imp.Alias, imp.Path)
		} else {
			g.writef("%q\n", imp.Path)
		}
	}

	if !hasToolkit {
		if len(imps) > 0 {
			g.writeln("")
		}
		if g.cfg.ToolkitAlias != "" {
			g.writef("%s %q\n", g.cfg.ToolkitAlias, g.cfg.ToolkitImport)
		} else {
			g.writef("%q\n", g.cfg.ToolkitImport)
		}
	}

	g.indent--
	g.writeln(")")
	g.writeln("")
}

// generateView writes one view as a function returning its builder expression.
func (g *Generator) generateView(view *View) {
	g.writef("func %s(%s) %s {\n", view.Name, view.Params, g.cfg.NodeType)
	g.indent++
	g.writef("return %s\n", g.elementExpr(view.Root))
	g.indent--
	g.writeln("}")
	g.writeln("")
}

// writef writes a formatted string with indentation.
func (g *Generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

// writeln writes a line with indentation.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}

// ParseAndGenerate parses .uix source and generates Go code in one step.
// This is a convenience function for simple use cases.
func ParseAndGenerate(filename, source string, cfg *Config) ([]byte, error) {
	return parseAndGenerate(filename, source, cfg, false)
}

// parseAndGenerateSkipImports is like ParseAndGenerate but uses format.Source
// instead of imports.Process. This is much faster for tests.
func parseAndGenerateSkipImports(filename, source string, cfg *Config) ([]byte, error) {
	return parseAndGenerate(filename, source, cfg, true)
}

func parseAndGenerate(filename, source string, cfg *Config, skipImports bool) ([]byte, error) {
	lexer := NewLexer(filename, source)
	parser := NewParserWithConfig(lexer, cfg)

	file, err := parser.ParseFile()
	if err != nil {
		return nil, err
	}

	gen := NewGenerator(cfg)
	gen.SkipImports = skipImports
	return gen.Generate(file, filename)
}

// CompileExpr compiles a single markup block into its builder expression.
// It exists for callers that hold a fragment rather than a whole file.
func CompileExpr(source string, cfg *Config) (string, error) {
	lexer := NewLexer("markup.uix", source)
	parser := NewParserWithConfig(lexer, cfg)

	elem := parser.parseMarkup()
	if elem != nil {
		parser.skipNewlines()
		if parser.current.Type != TokenEOF {
			parser.errors.AddErrorf(parser.here(), "unexpected %s after markup", parser.current.Type)
		}
	}
	for _, err := range lexer.Errors().Errors() {
		parser.errors.Add(err)
	}
	if err := parser.errors.Err(); err != nil {
		return "", err
	}

	gen := NewGenerator(cfg)
	return gen.elementExpr(elem), nil
}
