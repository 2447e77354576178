package whitespace

import (
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
	"github.com/leapstack-labs/pycodelint/pkg/lint/rules/internal/text"
)

func init() {
	lint.Register(TrailingWhitespace)
	lint.Register(BlankLineWhitespace)
}

// TrailingWhitespace flags spaces or tabs after the last visible character.
var TrailingWhitespace = lint.RuleDef{
	ID:          "W291",
	Name:        "whitespace.trailing",
	Group:       "whitespace",
	Description: "trailing whitespace",
	Check:       checkTrailingWhitespace,

	Rationale: "Trailing whitespace is invisible and produces noisy diffs.",

	BadExample: "spam(1) \n",

	GoodExample: "spam(1)\n",
}

// BlankLineWhitespace flags blank lines that contain only whitespace.
var BlankLineWhitespace = lint.RuleDef{
	ID:          "W293",
	Name:        "whitespace.blank_line",
	Group:       "whitespace",
	Description: "whitespace on blank line",
	Check:       checkBlankLineWhitespace,

	Rationale: "A blank line should be empty.",

	BadExample: "class Foo(object):\n    \n    bang = 12",

	GoodExample: "class Foo(object):\n\n    bang = 12",
}

// splitTrailing returns the line without its ending, and the same line
// with trailing spaces, tabs and vertical tabs removed.
func splitTrailing(line string) (physical, stripped string) {
	physical = text.TrimLineEnding(line)
	return physical, strings.TrimRight(physical, " \t\v")
}

func checkTrailingWhitespace(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	physical, stripped := splitTrailing(line.Text)
	if physical == stripped || stripped == "" {
		return nil
	}
	return []lint.Finding{{Offset: text.Len(stripped), Message: "trailing whitespace"}}
}

func checkBlankLineWhitespace(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	physical, stripped := splitTrailing(line.Text)
	if physical == stripped || stripped != "" {
		return nil
	}
	return []lint.Finding{{Offset: 0, Message: "whitespace on blank line"}}
}
