package uixgen

import "testing"

func TestClassify(t *testing.T) {
	tags := DefaultConfig().NativeTagSet()

	type tc struct {
		head string
		want HeadKind
	}

	tests := map[string]tc{
		"native tag":             {head: "div", want: NativeTag{Name: "div"}},
		"native tag with spaces": {head: " svg ", want: NativeTag{Name: "svg"}},
		"component":              {head: "Header", want: Component{Path: "Header"}},
		"qualified component":    {head: "widgets.Header", want: Component{Path: "widgets.Header"}},
		"lowercase ident":        {head: "span", want: Expression{Expr: "span"}},
		"lowercase final segment": {
			head: "ctx.body",
			want: Expression{Expr: "ctx.body"},
		},
		"call on uppercase path": {
			head: `Header.WithLabel("x")`,
			want: Expression{Expr: `Header.WithLabel("x")`},
		},
		"constructor call": {
			head: "NewHeader()",
			want: Expression{Expr: "NewHeader()"},
		},
		"unicode uppercase": {head: "Überschrift", want: Component{Path: "Überschrift"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Classify(tt.head, tags); got != tt.want {
				t.Errorf("Classify(%q) = %#v, want %#v", tt.head, got, tt.want)
			}
		})
	}
}

func TestClassify_AllowListIsData(t *testing.T) {
	// A custom allow-list reroutes heads without touching the rules.
	tags := map[string]bool{"stack": true}

	if got := Classify("stack", tags); got != (NativeTag{Name: "stack"}) {
		t.Errorf("stack = %#v, want NativeTag", got)
	}
	if got := Classify("div", tags); got != (Expression{Expr: "div"}) {
		t.Errorf("div = %#v, want Expression when not allow-listed", got)
	}
}
