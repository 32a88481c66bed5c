package uixgen

import (
	"fmt"
	"strings"
)

// elementExpr builds the chained call expression for one element, bottom-up.
// Order is fixed: base, then attributes in appearance order, then children
// and chain insertions in appearance order.
func (g *Generator) elementExpr(elem *Element) string {
	if elem.Deferred {
		return g.deferredExpr(elem)
	}

	var sb strings.Builder
	sb.WriteString(g.baseExpr(elem.Head))

	for _, attr := range elem.Attrs {
		g.writeAttr(&sb, attr)
	}

	for _, child := range elem.Children {
		g.writeChild(&sb, child)
	}

	return sb.String()
}

// baseExpr resolves the starting expression for a head.
func (g *Generator) baseExpr(head HeadKind) string {
	switch h := head.(type) {
	case NativeTag:
		return h.Name + "()"
	case Component:
		return componentConstructor(h.Path, g.cfg.ConstructorPrefix)
	case Expression:
		return h.Expr
	default:
		panic(fmt.Sprintf("unknown head kind %T", head))
	}
}

// componentConstructor maps a component path to its implicit nullary
// constructor: Header -> NewHeader(), widgets.Header -> widgets.NewHeader().
func componentConstructor(path, prefix string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i+1] + prefix + path[i+1:] + "()"
	}
	return prefix + path + "()"
}

// writeAttr appends one chained attribute call. Duplicates were preserved
// by the parser; each occurrence re-applies its call here.
func (g *Generator) writeAttr(sb *strings.Builder, attr Attribute) {
	switch a := attr.(type) {
	case Flag:
		fmt.Fprintf(sb, ".%s()", a.Name)
	case KeyValue:
		fmt.Fprintf(sb, ".%s(%s)", a.Name, a.Value)
	case KeyMultiValue:
		fmt.Fprintf(sb, ".%s(%s)", a.Name, strings.Join(a.Values, ", "))
	default:
		panic(fmt.Sprintf("unknown attribute kind %T", attr))
	}
}

// writeChild appends one child attachment or chain insertion, threading the
// running expression. Child order is load-bearing and preserved exactly.
func (g *Generator) writeChild(sb *strings.Builder, child ChildItem) {
	switch c := child.(type) {
	case Literal:
		fmt.Fprintf(sb, ".%s(%s)", g.cfg.ChildMethod, c.Expr)
	case Spread:
		fmt.Fprintf(sb, ".%s(%s)", g.cfg.ChildrenMethod, c.Expr)
	case Nested:
		fmt.Fprintf(sb, ".%s(%s)", g.cfg.ChildMethod, g.elementExpr(c.Element))
	case MethodChain:
		sb.WriteString(c.Chain)
	default:
		panic(fmt.Sprintf("unknown child kind %T", child))
	}
}

// deferredExpr wraps the single child's expression in the erasure call and
// then in the deferred call, bypassing the attribute/children fold.
func (g *Generator) deferredExpr(elem *Element) string {
	var inner string
	switch c := elem.Children[0].(type) {
	case Nested:
		inner = g.elementExpr(c.Element)
	case Literal:
		inner = c.Expr
	default:
		panic(fmt.Sprintf("deferred child kind %T", elem.Children[0]))
	}
	return fmt.Sprintf("%s((%s).%s())", g.cfg.DeferredFunc, inner, g.cfg.EraseMethod)
}
