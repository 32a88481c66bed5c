package uixgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classify maps an element head to its generation strategy. The decision is
// purely syntactic: membership in the native-tag allow-list, then the
// uppercase-initial bare selector path rule, then verbatim expression.
func Classify(head string, nativeTags map[string]bool) HeadKind {
	head = strings.TrimSpace(head)

	if nativeTags[head] {
		return NativeTag{Name: head}
	}

	if isSelectorPath(head) {
		segments := strings.Split(head, ".")
		last := segments[len(segments)-1]
		if startsUpper(last) {
			return Component{Path: head}
		}
	}

	return Expression{Expr: head}
}

// isSelectorPath reports whether s is identifiers joined by dots, with no
// call syntax: `div`, `Header`, `widgets.Header`.
func isSelectorPath(s string) bool {
	if s == "" {
		return false
	}
	for _, segment := range strings.Split(s, ".") {
		if !isIdentifier(segment) {
			return false
		}
	}
	return true
}

// isIdentifier reports whether s is a valid Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if isLetter(ch) {
			continue
		}
		if i > 0 && isDigit(ch) {
			continue
		}
		return false
	}
	return true
}

// startsUpper reports whether s begins with an uppercase letter.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
