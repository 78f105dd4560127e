// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gate

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func styleFor(sev Severity) lipgloss.Style {
	switch sev {
	case SeverityError:
		return errorStyle
	case SeverityWarning:
		return warnStyle
	default:
		return infoStyle
	}
}

// Render writes the report's diagnostics and a pass/fail summary to w.
func (r Report) Render(w io.Writer) {
	for _, d := range r.Diagnostics {
		tag := styleFor(d.Severity).Render(d.Severity.String())
		fmt.Fprintf(w, "%s %s: %s\n", tag, d.Source, d.Message)
	}
	if r.HasErrors() {
		fmt.Fprintln(w, errorStyle.Render("check failed"))
	} else {
		fmt.Fprintln(w, infoStyle.Render("check passed"))
	}
}
