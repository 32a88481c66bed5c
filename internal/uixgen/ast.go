package uixgen

// The AST is built once per parse and consumed once by the generator.
// Nothing mutates a node after the parser returns it.

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
	Span() Span // source range of the node, for diagnostics only
}

// File represents a complete .uix source file.
type File struct {
	Package string
	Imports []Import
	Views   []*View
	span    Span
}

func (f *File) node()      {}
func (f *File) Span() Span { return f.span }

// Import represents a Go import statement passed through to generated code.
type Import struct {
	Alias string // optional alias (empty if none)
	Path  string // import path
	span  Span
}

func (i Import) node()      {}
func (i Import) Span() Span { return i.span }

// View represents a `view Name(params) { markup }` declaration. Each view
// compiles to one Go function returning the generated builder expression.
type View struct {
	Name   string
	Params string // raw parameter list, emitted verbatim
	Root   *Element
	span   Span
}

func (v *View) node()      {}
func (v *View) Span() Span { return v.span }

// HeadKind is the closed set of element head classifications.
type HeadKind interface {
	headKind()
}

// NativeTag is a head naming one of the toolkit's allow-listed constructors.
type NativeTag struct {
	Name string
}

func (NativeTag) headKind() {}

// Component is a bare selector path whose final segment is uppercase-initial
// and carries no call syntax. It maps to the implicit nullary constructor.
type Component struct {
	Path string
}

func (Component) headKind() {}

// Expression is any other head; it is used verbatim as the base value.
type Expression struct {
	Expr string
}

func (Expression) headKind() {}

// Element represents one markup node: head, attributes, children.
// Deferred elements have no Head and exactly one child.
type Element struct {
	Head     HeadKind // nil when Deferred is true
	Deferred bool
	Attrs    []Attribute
	Children []ChildItem
	span     Span
}

func (e *Element) node()      {}
func (e *Element) Span() Span { return e.span }

// Attribute is the closed set of attribute shapes, distinguished by call
// arity: Flag (0), KeyValue (1), KeyMultiValue (N). Duplicates are permitted;
// each occurrence re-applies its chained call.
type Attribute interface {
	attr()
	Span() Span
}

// Flag is a bare attribute name: a zero-argument chained call.
type Flag struct {
	Name string
	span Span
}

func (f Flag) attr()      {}
func (f Flag) Span() Span { return f.span }

// KeyValue is `name: expr`: a one-argument chained call.
type KeyValue struct {
	Name  string
	Value string // raw Go expression
	span  Span
}

func (k KeyValue) attr()      {}
func (k KeyValue) Span() Span { return k.span }

// KeyMultiValue is `name: (e1, e2, ...)`: the tuple is a grouping device for
// multiple positional arguments, not a value itself.
type KeyMultiValue struct {
	Name   string
	Values []string // raw Go expressions, one per positional argument
	span   Span
}

func (k KeyMultiValue) attr()      {}
func (k KeyMultiValue) Span() Span { return k.span }

// ChildItem is the closed set of children-block items.
type ChildItem interface {
	child()
	Span() Span
}

// Literal is an arbitrary Go expression attached as a single child.
type Literal struct {
	Expr string
	span Span
}

func (l Literal) child()     {}
func (l Literal) Span() Span { return l.span }

// Spread is `..expr`: the whole iterable attaches in one multi-child call.
type Spread struct {
	Expr string
	span Span
}

func (s Spread) child()     {}
func (s Spread) Span() Span { return s.span }

// Nested is a recursively parsed child element.
type Nested struct {
	Element *Element
	span    Span
}

func (n Nested) child()     {}
func (n Nested) Span() Span { return n.span }

// MethodChain is a leading-dot chain spliced directly onto the running
// expression instead of being attached as a child value. Chain includes the
// leading dot.
type MethodChain struct {
	Chain string
	span  Span
}

func (m MethodChain) child()     {}
func (m MethodChain) Span() Span { return m.span }
