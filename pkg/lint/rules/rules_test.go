package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pycodelint/pkg/core"
	"github.com/leapstack-labs/pycodelint/pkg/lint"
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules" // register rules
)

type sliceReporter struct {
	violations []lint.Violation
}

func (r *sliceReporter) InitFile(string, []string, int) { r.violations = nil }
func (r *sliceReporter) Error(v lint.Violation)         { r.violations = append(r.violations, v) }
func (r *sliceReporter) FileErrors() int                { return len(r.violations) }

func check(t *testing.T, src string, opts lint.Options) []lint.Violation {
	t.Helper()
	r := &sliceReporter{}
	_, err := lint.NewStyleGuide(opts).InputFile("test.py", lint.SplitLines(src), 0, r)
	require.NoError(t, err)
	return r.violations
}

func TestRegisteredRules(t *testing.T) {
	want := map[string]core.Severity{
		"E101": core.SeverityError,
		"E501": core.SeverityError,
		"W191": core.SeverityWarning,
		"W291": core.SeverityWarning,
		"W292": core.SeverityWarning,
		"W293": core.SeverityWarning,
		"W391": core.SeverityWarning,
		"W505": core.SeverityWarning,
	}

	for id, severity := range want {
		rule, ok := lint.GetByID(id)
		require.True(t, ok, "rule %s should be registered", id)
		assert.Equal(t, severity, rule.Severity, id)
		assert.NotEmpty(t, rule.Description, id)
		assert.NotNil(t, rule.Check, id)
	}
}

func TestBuiltinRules(t *testing.T) {
	long := "x = " + strings.Repeat("a", 76)

	tests := []struct {
		name string
		src  string
		opts lint.Options
		want []lint.Violation
	}{
		{
			name: "clean file",
			src:  "x = 1\n",
			want: nil,
		},
		{
			name: "trailing whitespace",
			src:  "x = 1  \n",
			want: []lint.Violation{{Line: 1, Offset: 5, Code: "W291", Text: "trailing whitespace"}},
		},
		{
			name: "whitespace on blank line",
			src:  "x = 1\n   \ny = 2\n",
			want: []lint.Violation{{Line: 2, Offset: 0, Code: "W293", Text: "whitespace on blank line"}},
		},
		{
			name: "blank line at end of file",
			src:  "x = 1\n\n",
			want: []lint.Violation{{Line: 2, Offset: 0, Code: "W391", Text: "blank line at end of file"}},
		},
		{
			name: "no newline at end of file",
			src:  "x = 1",
			want: []lint.Violation{{Line: 1, Offset: 5, Code: "W292", Text: "no newline at end of file"}},
		},
		{
			name: "tab indentation",
			src:  "if True:\n\tpass\n",
			want: []lint.Violation{{Line: 2, Offset: 0, Code: "W191", Text: "indentation contains tabs"}},
		},
		{
			name: "mixed indentation",
			src:  "if True:\n    if x:\n\t    pass\n",
			want: []lint.Violation{
				{Line: 3, Offset: 0, Code: "E101", Text: "indentation contains mixed spaces and tabs"},
				{Line: 3, Offset: 0, Code: "W191", Text: "indentation contains tabs"},
			},
		},
		{
			name: "line too long",
			src:  long + "\n",
			want: []lint.Violation{{Line: 1, Offset: 79, Code: "E501", Text: "line too long (80 > 79 characters)"}},
		},
		{
			name: "line length from options",
			src:  long + "\n",
			opts: lint.Options{MaxLineLength: 100},
			want: nil,
		},
		{
			name: "noqa silences line length",
			src:  long + "  # noqa\n",
			want: nil,
		},
		{
			name: "long url comment is exempt",
			src:  "# " + strings.Repeat("u", 100) + "\n",
			want: nil,
		},
		{
			name: "doc line too long",
			src:  "# aaaa bbbb cccc dddd eeee ffff\n",
			opts: lint.Options{MaxDocLength: 20},
			want: []lint.Violation{{Line: 1, Offset: 20, Code: "W505", Text: "doc line too long (31 > 20 characters)"}},
		},
		{
			name: "doc length ignores code lines",
			src:  "x = 'aaaa bbbb cccc dddd eeee ffff'\n",
			opts: lint.Options{MaxDocLength: 20},
			want: nil,
		},
		{
			name: "select narrows reported codes",
			src:  long + "  \n",
			opts: lint.Options{Select: []string{"W2"}},
			want: []lint.Violation{{Line: 1, Offset: 80, Code: "W291", Text: "trailing whitespace"}},
		},
		{
			name: "ignore drops codes",
			src:  "x = 1  \ny = 2  \n",
			opts: lint.Options{Ignore: []string{"W29"}},
			want: nil,
		},
		{
			name: "first reports one occurrence per code",
			src:  "x = 1  \ny = 2  \n",
			opts: lint.Options{First: true},
			want: []lint.Violation{{Line: 1, Offset: 5, Code: "W291", Text: "trailing whitespace"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(t, tt.src, tt.opts))
		})
	}
}
