// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gate

import (
	"fmt"
	"strconv"
	"strings"
)

// checkChangeSize sums added and deleted lines in the working tree
// against the baseline branch and fails when the total exceeds the
// cap. Binary files (numstat reports "-") count as zero.
func (g *Gate) checkChangeSize(report *Report) error {
	out, err := g.exec.Output("git", "diff", "--numstat", g.opts.Baseline)
	if err != nil {
		return fmt.Errorf("diffing against %s: %w", g.opts.Baseline, err)
	}

	total, err := sumNumstat(out)
	if err != nil {
		return err
	}

	if total > g.opts.MaxChangeLines {
		report.add(SeverityError, "change-size",
			"%d changed lines against %s, over the %d-line limit", total, g.opts.Baseline, g.opts.MaxChangeLines)
		return fmt.Errorf("%d changed lines against %s, over the %d-line limit", total, g.opts.Baseline, g.opts.MaxChangeLines)
	}

	report.add(SeverityInfo, "change-size",
		"%d changed lines against %s, within the %d-line limit", total, g.opts.Baseline, g.opts.MaxChangeLines)
	return nil
}

// sumNumstat totals the added and deleted columns of git diff
// --numstat output.
func sumNumstat(out string) (int, error) {
	total := 0
	for _, line := range splitNonEmptyLines(out) {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, fmt.Errorf("malformed numstat line %q", line)
		}
		for _, col := range fields[:2] {
			if col == "-" {
				continue
			}
			n, err := strconv.Atoi(col)
			if err != nil {
				return 0, fmt.Errorf("malformed numstat count %q: %w", col, err)
			}
			total += n
		}
	}
	return total, nil
}
