package uixgen

import (
	"strings"
	"testing"
)

func TestCompileExpr(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"empty element": {
			input: "div {}",
			want:  "div()",
		},
		"flags only": {
			input: "div @[flex, flex_col] {}",
			want:  "div().flex().flex_col()",
		},
		"key value attributes": {
			input: "div @[w: px(200.0), h: px(100.0)] {}",
			want:  "div().w(px(200.0)).h(px(100.0))",
		},
		"multi value attribute": {
			input: "div @[border: (px(1), colorRed)] {}",
			want:  "div().border(px(1), colorRed)",
		},
		"duplicate attributes reapply": {
			input: "div @[flex, flex] {}",
			want:  "div().flex().flex()",
		},
		"sequential children": {
			input: `div { "First", "Second" }`,
			want:  `div().Child("First").Child("Second")`,
		},
		"spread child": {
			input: "div { ..items }",
			want:  "div().Children(items)",
		},
		"nested element": {
			input: `div { div { "x" } }`,
			want:  `div().Child(div().Child("x"))`,
		},
		"method chain interleaved": {
			input: `div { "a", .id("main"), "b" }`,
			want:  `div().Child("a").id("main").Child("b")`,
		},
		"attributes before children": {
			input: `div @[flex] { "x" }`,
			want:  `div().flex().Child("x")`,
		},
		"deferred element": {
			input: `deferred { div { "x" } }`,
			want:  `Deferred((div().Child("x")).IntoAnyElement())`,
		},
		"deferred expression": {
			input: "deferred { overlay }",
			want:  "Deferred((overlay).IntoAnyElement())",
		},
		"component head": {
			input: "Header {}",
			want:  "NewHeader()",
		},
		"qualified component head": {
			input: "widgets.Header {}",
			want:  "widgets.NewHeader()",
		},
		"expression head unchanged": {
			input: `NewHeader().WithLabel("x") {}`,
			want:  `NewHeader().WithLabel("x")`,
		},
		"expression head with children": {
			input: `NewHeader().WithLabel("x") { "body" }`,
			want:  `NewHeader().WithLabel("x").Child("body")`,
		},
		"parenthesized passthrough": {
			input: "(renderRows(data))",
			want:  "renderRows(data)",
		},
		"component with attributes": {
			input: `Header @[label: "hi"] { "body" }`,
			want:  `NewHeader().label("hi").Child("body")`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := CompileExpr(tt.input, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileExpr_Deterministic(t *testing.T) {
	input := `div @[flex, w: px(200.0)] { "a", ..items, span {}, .when(cond, f) }`

	first, err := CompileExpr(input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := CompileExpr(input, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("run %d = %q, want %q", i, got, first)
		}
	}
}

func TestCompileExpr_OrderPreservation(t *testing.T) {
	// Permuting attributes changes only chained-call order.
	ab, err := CompileExpr("div @[flex, w: px(1)] {}", nil)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := CompileExpr("div @[w: px(1), flex] {}", nil)
	if err != nil {
		t.Fatal(err)
	}
	if ab != "div().flex().w(px(1))" || ba != "div().w(px(1)).flex()" {
		t.Errorf("attribute order not preserved: %q, %q", ab, ba)
	}

	// Permuting children changes only attach order.
	xy, err := CompileExpr(`div { "x", "y" }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	yx, err := CompileExpr(`div { "y", "x" }`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if xy != `div().Child("x").Child("y")` || yx != `div().Child("y").Child("x")` {
		t.Errorf("child order not preserved: %q, %q", xy, yx)
	}
}

func TestCompileExpr_EmptyInputFails(t *testing.T) {
	for name, input := range map[string]string{
		"empty":      "",
		"whitespace": "  \n\t",
		"comment":    "// nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := CompileExpr(input, nil); err == nil {
				t.Error("expected error for empty markup, got nil")
			}
		})
	}
}

func TestCompileExpr_CustomConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NativeTags = []string{"stack"}
	cfg.ConstructorPrefix = "Make"
	cfg.ChildMethod = "Append"
	cfg.ChildrenMethod = "AppendAll"
	cfg.DeferredFunc = "Lazy"
	cfg.EraseMethod = "Erase"

	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"custom tag":      {input: `stack { "x" }`, want: `stack().Append("x")`},
		"custom spread":   {input: "stack { ..xs }", want: "stack().AppendAll(xs)"},
		"custom ctor":     {input: "Header {}", want: "MakeHeader()"},
		"custom deferred": {input: "deferred { x }", want: "Lazy((x).Erase())"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := CompileExpr(tt.input, cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_File(t *testing.T) {
	input := `package ui

import "example.com/app/model"

view Row(item model.Item) {
	div @[flex] {
		item.Name,
	}
}

view Page(items []model.Item) {
	div {
		..renderRows(items),
	}
}
`
	out, err := parseAndGenerateSkipImports("page.uix", input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"// Code generated by uix generate. DO NOT EDIT.",
		"// Source: page.uix",
		"package ui",
		`"example.com/app/model"`,
		`. "github.com/uixlang/toolkit"`,
		"func Row(item model.Item) Element {",
		"return div().flex().Child(item.Name)",
		"func Page(items []model.Item) Element {",
		"return div().Children(renderRows(items))",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_NoUserImports(t *testing.T) {
	input := "package ui\n\nview V() {\n\tdiv {}\n}\n"

	out, err := parseAndGenerateSkipImports("v.uix", input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `. "github.com/uixlang/toolkit"`) {
		t.Errorf("toolkit import missing:\n%s", out)
	}
}

func TestGenerate_FailedParseYieldsNoOutput(t *testing.T) {
	input := "package ui\n\nview V() {\n\tdiv @flex {}\n}\n"

	out, err := ParseAndGenerate("v.uix", input, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if out != nil {
		t.Errorf("expected no output on failure, got %d bytes", len(out))
	}
}
