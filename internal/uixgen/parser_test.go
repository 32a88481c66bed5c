package uixgen

import (
	"strings"
	"testing"
)

func TestParser_PackageAndImports(t *testing.T) {
	type tc struct {
		input       string
		wantPkg     string
		wantImports int
		wantError   bool
	}

	tests := map[string]tc{
		"simple package": {
			input:       "package myapp\n",
			wantPkg:     "myapp",
			wantImports: 0,
		},
		"package with single import": {
			input:       "package myapp\nimport \"fmt\"\n",
			wantPkg:     "myapp",
			wantImports: 1,
		},
		"package with grouped imports": {
			input: `package myapp
import (
	"fmt"
	"strings"
)
`,
			wantPkg:     "myapp",
			wantImports: 2,
		},
		"package with aliased import": {
			input:       "package myapp\nimport w \"example.com/widgets\"\n",
			wantPkg:     "myapp",
			wantImports: 1,
		},
		"missing package": {
			input:     "import \"fmt\"\n",
			wantError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.uix", tt.input)
			p := NewParser(l)
			file, err := p.ParseFile()

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if file.Package != tt.wantPkg {
				t.Errorf("Package = %q, want %q", file.Package, tt.wantPkg)
			}

			if len(file.Imports) != tt.wantImports {
				t.Errorf("len(Imports) = %d, want %d", len(file.Imports), tt.wantImports)
			}
		})
	}
}

func TestParser_ImportDetails(t *testing.T) {
	type tc struct {
		input     string
		wantAlias string
		wantPath  string
	}

	tests := map[string]tc{
		"simple import": {
			input:     "package x\nimport \"fmt\"\n",
			wantAlias: "",
			wantPath:  "fmt",
		},
		"aliased import": {
			input:     "package x\nimport f \"fmt\"\n",
			wantAlias: "f",
			wantPath:  "fmt",
		},
		"dot import": {
			input:     "package x\nimport . \"example.com/toolkit\"\n",
			wantAlias: ".",
			wantPath:  "example.com/toolkit",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.uix", tt.input)
			p := NewParser(l)
			file, err := p.ParseFile()

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(file.Imports) != 1 {
				t.Fatalf("expected 1 import, got %d", len(file.Imports))
			}

			imp := file.Imports[0]
			if imp.Alias != tt.wantAlias {
				t.Errorf("Alias = %q, want %q", imp.Alias, tt.wantAlias)
			}
			if imp.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", imp.Path, tt.wantPath)
			}
		})
	}
}

func TestParser_Views(t *testing.T) {
	input := `package ui

view Empty() {
	div {}
}

view Greeting(name string) {
	div {
		"Hello",
		name,
	}
}
`
	l := NewLexer("test.uix", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(file.Views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(file.Views))
	}

	if file.Views[0].Name != "Empty" || file.Views[0].Params != "" {
		t.Errorf("view 0 = %q(%q), want Empty()", file.Views[0].Name, file.Views[0].Params)
	}
	if file.Views[1].Name != "Greeting" || file.Views[1].Params != "name string" {
		t.Errorf("view 1 = %q(%q), want Greeting(name string)", file.Views[1].Name, file.Views[1].Params)
	}
	if len(file.Views[1].Root.Children) != 2 {
		t.Errorf("Greeting children = %d, want 2", len(file.Views[1].Root.Children))
	}
}

func TestParser_ViewErrors(t *testing.T) {
	type tc struct {
		input   string
		wantMsg string
	}

	tests := map[string]tc{
		"empty view body": {
			input:   "package x\nview V() {}\n",
			wantMsg: "empty markup body",
		},
		"bare expression at top level": {
			input:   "package x\nview V() { name }\n",
			wantMsg: "element body is required",
		},
		"two roots in one view": {
			input:   "package x\nview V() { div {} div {} }\n",
			wantMsg: "expected '}' to close view body",
		},
		"missing view name": {
			input:   "package x\nview () {}\n",
			wantMsg: "expected view name",
		},
		"missing params": {
			input:   "package x\nview V {}\n",
			wantMsg: "expected '(' after view name",
		},
		"stray top-level token": {
			input:   "package x\nfunc f() {}\n",
			wantMsg: "expected view declaration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.uix", tt.input)
			p := NewParser(l)
			_, err := p.ParseFile()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParser_RecoversToNextView(t *testing.T) {
	input := `package ui

view Broken() {
	div @flex {}
}

view Fine() {
	div {}
}
`
	l := NewLexer("test.uix", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err == nil {
		t.Fatal("expected error from broken view")
	}

	// The failed view records one diagnostic; its sibling still parses.
	if p.Errors().Len() != 1 {
		t.Errorf("errors = %d, want 1:\n%v", p.Errors().Len(), p.Errors())
	}
	if len(file.Views) != 1 || file.Views[0].Name != "Fine" {
		t.Fatalf("expected the sibling view Fine to survive, got %+v", file.Views)
	}
}

func TestParser_ParenthesizedRootPassesThrough(t *testing.T) {
	input := "package ui\nview V() { (renderRows(data)) }\n"
	l := NewLexer("test.uix", input)
	p := NewParser(l)
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := file.Views[0].Root
	head, ok := root.Head.(Expression)
	if !ok {
		t.Fatalf("head = %T, want Expression", root.Head)
	}
	if head.Expr != "renderRows(data)" {
		t.Errorf("expr = %q, want %q", head.Expr, "renderRows(data)")
	}
}
