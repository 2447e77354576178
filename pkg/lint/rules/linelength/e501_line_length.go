package linelength

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
	"github.com/leapstack-labs/pycodelint/pkg/lint/rules/internal/text"
)

func init() {
	lint.Register(LineTooLong)
}

// LineTooLong limits all lines to max_line_length characters.
var LineTooLong = lint.RuleDef{
	ID:          "E501",
	Name:        "line_length.maximum",
	Group:       "line_length",
	Description: "line too long",
	Check:       checkLineTooLong,
	ConfigKeys:  []string{"max_line_length"},

	Rationale: `Limiting the line length makes it possible to have several files open
side by side and works well with code review tools.`,

	BadExample: "result = some_function_name(argument_one, argument_two, argument_three, four)",

	GoodExample: "result = some_function_name(\n    argument_one, argument_two, argument_three, four)",
}

func checkLineTooLong(line lint.PhysicalLine, opts lint.Options) []lint.Finding {
	return checkLength(line, opts.MaxLineLength, "line too long")
}

// checkLength reports lines longer than limit. A comment made of a single
// long token is exempt as long as the text before the token fits.
func checkLength(line lint.PhysicalLine, limit int, label string) []lint.Finding {
	if limit <= 0 || line.Noqa {
		return nil
	}
	trimmed := text.TrimSpaceRight(line.Text)
	length := text.Len(trimmed)
	if length <= limit {
		return nil
	}

	chunks := strings.Fields(trimmed)
	if len(chunks) == 2 && chunks[0] == "#" && length-text.Len(chunks[1]) < limit-7 {
		return nil
	}

	return []lint.Finding{{
		Offset:  limit,
		Message: fmt.Sprintf("%s (%d > %d characters)", label, length, limit),
	}}
}
