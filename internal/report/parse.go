package report

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/core"
)

// LineRegex matches one report line. Hosts use it to read reports back.
var LineRegex = regexp.MustCompile(`^.+?:(?P<line>\d+):(?P<col>\d+): (?:(?P<error>E\d+)|(?P<warning>W\d+)) (?P<message>.+)`)

// Diagnostic is a report line read back into its fields.
// Column is 1-based.
type Diagnostic struct {
	Line     int           `json:"line"`
	Column   int           `json:"column"`
	Code     string        `json:"code"`
	Severity core.Severity `json:"severity"`
	Message  string        `json:"message"`
}

// Parse reads a report. Lines that do not match LineRegex are skipped.
func Parse(s string) []Diagnostic {
	var out []Diagnostic
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		if d, ok := ParseLine(scanner.Text()); ok {
			out = append(out, d)
		}
	}
	return out
}

// ParseLine reads a single report line.
func ParseLine(line string) (Diagnostic, bool) {
	m := LineRegex.FindStringSubmatch(line)
	if m == nil {
		return Diagnostic{}, false
	}
	group := func(name string) string {
		return m[LineRegex.SubexpIndex(name)]
	}

	d := Diagnostic{Message: group("message")}
	d.Line, _ = strconv.Atoi(group("line"))
	d.Column, _ = strconv.Atoi(group("col"))
	if code := group("error"); code != "" {
		d.Code, d.Severity = code, core.SeverityError
	} else {
		d.Code, d.Severity = group("warning"), core.SeverityWarning
	}
	return d, true
}
