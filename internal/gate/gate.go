// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gate implements the pre-commit quality gate: style tool
// invocation, a per-file line-count cap over tracked files, and an
// optional change-size cap against a baseline branch.
package gate

import (
	"fmt"
	"io"
)

// Severity indicates the importance of a diagnostic.
type Severity int

const (
	// SeverityError indicates a gate violation that fails the run.
	SeverityError Severity = iota
	// SeverityWarning indicates a tool finding that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is one gate finding.
type Diagnostic struct {
	Severity Severity
	Source   string
	Message  string
}

// Report collects the diagnostics of one gate run.
type Report struct {
	Diagnostics []Diagnostic
}

func (r *Report) add(sev Severity, source, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: sev,
		Source:   source,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any diagnostic is a gate violation.
func (r Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Options configures a gate run.
type Options struct {
	// Tools are the style tools to run before the gates. Their exit
	// status is reported but never fails the run.
	Tools []Tool

	// SkipTools disables the style stage.
	SkipTools bool

	// IgnoreFiles are tracked files exempt from the line-count cap.
	IgnoreFiles []string

	// MaxFileLines is the per-file line cap (default 500).
	MaxFileLines int

	// CheckChange enables the change-size gate.
	CheckChange bool

	// MaxChangeLines caps added+deleted lines against the baseline
	// (default 200).
	MaxChangeLines int

	// Baseline is the branch the change-size gate diffs against
	// (default "main").
	Baseline string
}

// DefaultOptions returns the standard gate configuration.
func DefaultOptions() Options {
	return Options{
		Tools:          DefaultTools(),
		IgnoreFiles:    []string{"config.yaml"},
		MaxFileLines:   500,
		MaxChangeLines: 200,
		Baseline:       "main",
	}
}

// Gate runs the pre-commit checks.
type Gate struct {
	exec executor
	opts Options
}

// New creates a Gate with the given options.
func New(opts Options) *Gate {
	return &Gate{exec: defaultExec, opts: opts}
}

// Run executes the style stage and the gates, streaming tool output to
// w. It returns the report and the first gate violation, if any. Tool
// failures never abort the run; gate violations fail fast.
func (g *Gate) Run(w io.Writer) (Report, error) {
	var report Report

	if !g.opts.SkipTools {
		g.runTools(w, &report)
	}

	if err := g.checkFileLengths(&report); err != nil {
		return report, err
	}

	if g.opts.CheckChange {
		if err := g.checkChangeSize(&report); err != nil {
			return report, err
		}
	}

	return report, nil
}
