package blanklines

import (
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
	"github.com/leapstack-labs/pycodelint/pkg/lint/rules/internal/text"
)

func init() {
	lint.Register(TrailingBlankLines)
	lint.Register(MissingFinalNewline)
}

// TrailingBlankLines flags a file that ends with an empty line.
var TrailingBlankLines = lint.RuleDef{
	ID:          "W391",
	Name:        "blank_lines.trailing",
	Group:       "blank_lines",
	Description: "blank line at end of file",
	Check:       checkTrailingBlankLines,

	Rationale: "Trailing blank lines are superfluous.",

	BadExample: "spam(1)\n\n",

	GoodExample: "spam(1)\n",
}

// MissingFinalNewline flags a file whose last line has no line ending.
var MissingFinalNewline = lint.RuleDef{
	ID:          "W292",
	Name:        "blank_lines.final_newline",
	Group:       "blank_lines",
	Description: "no newline at end of file",
	Check:       checkMissingFinalNewline,

	Rationale: "POSIX tools expect every line, including the last, to be terminated.",

	BadExample: "spam(1)",

	GoodExample: "spam(1)\n",
}

func checkTrailingBlankLines(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	if !line.IsLast() || line.Text == "" {
		return nil
	}
	if strings.TrimRight(line.Text, "\r\n") == "" {
		return []lint.Finding{{Offset: 0, Message: "blank line at end of file"}}
	}
	return nil
}

func checkMissingFinalNewline(line lint.PhysicalLine, _ lint.Options) []lint.Finding {
	if !line.IsLast() || line.Text == "" {
		return nil
	}
	if strings.TrimRight(line.Text, "\r\n") == line.Text {
		return []lint.Finding{{Offset: text.Len(line.Text), Message: "no newline at end of file"}}
	}
	return nil
}
