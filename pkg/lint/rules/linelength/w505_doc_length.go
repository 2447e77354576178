package linelength

import (
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

func init() {
	lint.Register(DocLineTooLong)
}

// DocLineTooLong limits comment lines to max_doc_length characters.
// The rule is disabled unless max_doc_length is set.
var DocLineTooLong = lint.RuleDef{
	ID:          "W505",
	Name:        "line_length.doc",
	Group:       "line_length",
	Description: "doc line too long",
	Check:       checkDocLineTooLong,
	ConfigKeys:  []string{"max_doc_length"},

	Rationale: "Flowing text in comments reads best at a shorter width than code.",

	BadExample: "# This comment keeps going well past the configured documentation width limit",

	GoodExample: "# This comment wraps before the\n# configured documentation width.",
}

func checkDocLineTooLong(line lint.PhysicalLine, opts lint.Options) []lint.Finding {
	if !strings.HasPrefix(strings.TrimSpace(line.Text), "#") {
		return nil
	}
	return checkLength(line, opts.MaxDocLength, "doc line too long")
}
