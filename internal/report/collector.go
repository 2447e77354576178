// Package report collects engine violations and renders them as a
// "path:row:col: CODE text" report.
package report

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

// Collector is a lint.Reporter that defers all output until FileResults.
// A Collector serves one check; use a Factory to get a fresh one per check.
type Collector struct {
	filename   string
	lineOffset int
	violations []lint.Violation
}

var _ lint.Reporter = (*Collector)(nil)

// Factory creates the collector for a check.
type Factory func() *Collector

// NewCollector creates an empty collector. It is the default Factory.
func NewCollector() *Collector {
	return &Collector{}
}

// InitFile resets the collector for a new document. Only the base name of
// filename appears in the report.
func (c *Collector) InitFile(filename string, _ []string, lineOffset int) {
	c.filename = filepath.Base(filename)
	c.lineOffset = lineOffset
	c.violations = nil
}

// Error records a violation.
func (c *Collector) Error(v lint.Violation) {
	c.violations = append(c.violations, v)
}

// FileErrors returns the number of recorded violations.
func (c *Collector) FileErrors() int {
	return len(c.violations)
}

// Filename returns the name used in the report.
func (c *Collector) Filename() string {
	return c.filename
}

// LineOffset returns the offset added to every reported line number.
func (c *Collector) LineOffset() int {
	return c.lineOffset
}

// Violations returns the recorded violations in emission order.
func (c *Collector) Violations() []lint.Violation {
	return slices.Clone(c.violations)
}

// Sorted returns the violations ordered by line, then offset.
// Violations at the same position keep their emission order.
func (c *Collector) Sorted() []lint.Violation {
	sorted := slices.Clone(c.violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// FileResults renders the report, one newline-terminated line per violation.
// It returns "" when nothing was recorded and may be called repeatedly.
func (c *Collector) FileResults() string {
	var b strings.Builder
	for _, v := range c.Sorted() {
		fmt.Fprintf(&b, "%s:%d:%d: %s %s\n", c.filename, c.lineOffset+v.Line, v.Offset+1, v.Code, v.Text)
	}
	return b.String()
}
