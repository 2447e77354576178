package indentation

import (
	"github.com/leapstack-labs/pycodelint/pkg/lint"
	"github.com/leapstack-labs/pycodelint/pkg/lint/rules/internal/text"
)

func init() {
	lint.Register(MixedIndentation)
}

// MixedIndentation flags indentation that switches between spaces and tabs.
var MixedIndentation = lint.RuleDef{
	ID:          "E101",
	Name:        "indentation.mixed",
	Group:       "indentation",
	Description: "indentation contains mixed spaces and tabs",
	Check:       checkMixedIndentation,

	Rationale: `The first indented line of a file decides the indentation character.
Lines that use the other character render differently across editors.`,

	BadExample: "if True:\n\tif True:\n\t    pass",

	GoodExample: "if True:\n    if True:\n        pass",
}

func checkMixedIndentation(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	if line.IndentChar == 0 {
		return nil
	}
	for offset, ch := range []byte(text.Indent(line.Text)) {
		if ch != line.IndentChar {
			return []lint.Finding{{Offset: offset, Message: "indentation contains mixed spaces and tabs"}}
		}
	}
	return nil
}
