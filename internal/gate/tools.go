// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gate

import (
	"fmt"
	"io"
	"strings"
)

// Tool is one style checker the gate runs before the line gates.
type Tool struct {
	Name string
	Args []string
}

// String renders the tool invocation for display.
func (t Tool) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	return t.Name + " " + strings.Join(t.Args, " ")
}

// DefaultTools returns the standard style stage: formatter, vet, and
// the staticcheck linter.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "gofmt", Args: []string{"-l", "."}},
		{Name: "go", Args: []string{"vet", "./..."}},
		{Name: "staticcheck", Args: []string{"./..."}},
	}
}

// runTools runs every configured tool, streaming output to w. A
// missing binary or a non-zero exit is recorded as a diagnostic and
// the stage continues.
func (g *Gate) runTools(w io.Writer, report *Report) {
	for _, tool := range g.opts.Tools {
		if _, err := g.exec.LookPath(tool.Name); err != nil {
			report.add(SeverityWarning, tool.Name, "not found on PATH, skipped")
			continue
		}

		fmt.Fprintf(w, "running %s\n", tool)
		if err := g.exec.RunStream(w, tool.Name, tool.Args...); err != nil {
			report.add(SeverityWarning, tool.Name, "exited non-zero: %v", err)
			continue
		}
		report.add(SeverityInfo, tool.Name, "passed")
	}
}
