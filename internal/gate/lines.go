// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gate

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// checkFileLengths walks every tracked file and fails fast at the
// first one whose line count exceeds the cap. Ignored files and
// tracked files missing from the working tree are skipped.
func (g *Gate) checkFileLengths(report *Report) error {
	out, err := g.exec.Output("git", "ls-files")
	if err != nil {
		return fmt.Errorf("listing tracked files: %w", err)
	}

	ignored := make(map[string]bool, len(g.opts.IgnoreFiles))
	for _, f := range g.opts.IgnoreFiles {
		ignored[f] = true
	}

	for _, path := range splitNonEmptyLines(out) {
		if ignored[path] {
			continue
		}

		count, err := countFileLines(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("counting lines in %s: %w", path, err)
		}

		if count > g.opts.MaxFileLines {
			report.add(SeverityError, "line-count",
				"%s has %d lines, over the %d-line limit", path, count, g.opts.MaxFileLines)
			return fmt.Errorf("%s has %d lines, over the %d-line limit", path, count, g.opts.MaxFileLines)
		}
	}

	report.add(SeverityInfo, "line-count", "all tracked files within the %d-line limit", g.opts.MaxFileLines)
	return nil
}

// countFileLines counts the lines in the file at path. A trailing
// fragment without a newline counts as a line.
func countFileLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n, nil
}

func splitNonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
