package indentation

import (
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
	"github.com/leapstack-labs/pycodelint/pkg/lint/rules/internal/text"
)

func init() {
	lint.Register(TabIndentation)
}

// TabIndentation flags any tab in the indentation of a line.
var TabIndentation = lint.RuleDef{
	ID:          "W191",
	Name:        "indentation.tabs",
	Group:       "indentation",
	Description: "indentation contains tabs",
	Check:       checkTabIndentation,

	Rationale: "Spaces are the preferred indentation method.",

	BadExample: "if True:\n\treturn",

	GoodExample: "if True:\n    return",
}

func checkTabIndentation(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	indent := text.Indent(line.Text)
	if i := strings.IndexByte(indent, '\t'); i >= 0 {
		return []lint.Finding{{Offset: i, Message: "indentation contains tabs"}}
	}
	return nil
}
