package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uixlang/uix/internal/uixgen"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	posStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// renderError formats any error for the terminal, styling positioned
// compiler diagnostics and leaving everything else plain.
func renderError(err error) string {
	var list *uixgen.ErrorList
	if errors.As(err, &list) {
		var sb strings.Builder
		for i, e := range list.Errors() {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(renderDiagnostic(e))
		}
		return sb.String()
	}

	var diag *uixgen.Error
	if errors.As(err, &diag) {
		return renderDiagnostic(diag)
	}

	return errStyle.Render("error: ") + err.Error()
}

// renderDiagnostic formats one positioned diagnostic.
func renderDiagnostic(e *uixgen.Error) string {
	var sb strings.Builder
	sb.WriteString(posStyle.Render(e.Span.String() + ":"))
	sb.WriteString(" ")
	sb.WriteString(errStyle.Render("error:"))
	sb.WriteString(" ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("  hint: " + e.Hint))
	}
	return sb.String()
}

// renderFileError prefixes a plain error with its filename; positioned
// diagnostics already carry one.
func renderFileError(path string, err error) string {
	var list *uixgen.ErrorList
	var diag *uixgen.Error
	if errors.As(err, &list) || errors.As(err, &diag) {
		return renderError(err)
	}
	return errStyle.Render("error: ") + path + ": " + err.Error()
}

func renderOK(msg string) string {
	return okStyle.Render("ok: ") + msg
}
