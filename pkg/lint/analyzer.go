package lint

import (
	"fmt"
	"regexp"
)

// noqaRegex matches the inline marker that silences line-length checks.
var noqaRegex = regexp.MustCompile(`(?i)# no(?:qa|pep8)\b`)

// StyleGuide runs the registered rules against one document at a time.
type StyleGuide struct {
	options   Options
	selection *Selection
	rules     []RuleDef
}

// NewStyleGuide creates a StyleGuide using all registered rules.
func NewStyleGuide(opts Options) *StyleGuide {
	return NewStyleGuideWithRules(opts, GetAll())
}

// NewStyleGuideWithRules creates a StyleGuide that runs only the given rules.
func NewStyleGuideWithRules(opts Options, rules []RuleDef) *StyleGuide {
	return &StyleGuide{
		options:   opts.withDefaults(),
		selection: NewSelection(opts.Select, opts.Ignore),
		rules:     rules,
	}
}

// Options returns the options the guide runs with, defaults applied.
func (g *StyleGuide) Options() Options {
	return g.options
}

// Selection returns the effective select/ignore filter.
func (g *StyleGuide) Selection() *Selection {
	return g.selection
}

// InputFile analyzes the lines of one document and reports violations to r.
// Lines must keep their line endings. The return value is r.FileErrors().
// A rule that panics aborts the check with an error.
func (g *StyleGuide) InputFile(filename string, lines []string, lineOffset int, r Reporter) (count int, err error) {
	if r == nil {
		return 0, ErrNoReporter
	}
	r.InitFile(filename, lines, lineOffset)

	counters := make(map[string]int)
	var indentChar byte
	var current RuleDef

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rule %s failed on %s: %v", current.ID, filename, rec)
		}
	}()

	for i, text := range lines {
		if indentChar == 0 && len(text) > 0 && (text[0] == ' ' || text[0] == '\t') {
			indentChar = text[0]
		}
		line := PhysicalLine{
			Text:       text,
			Number:     i + 1,
			Total:      len(lines),
			Lines:      lines,
			IndentChar: indentChar,
			Noqa:       noqaRegex.MatchString(text),
		}

		for _, rule := range g.rules {
			current = rule
			for _, f := range rule.Check(line, g.options) {
				g.report(r, counters, Violation{
					Line:   line.Number,
					Offset: f.Offset,
					Code:   rule.ID,
					Text:   f.Message,
				})
			}
		}
	}

	return r.FileErrors(), nil
}

func (g *StyleGuide) report(r Reporter, counters map[string]int, v Violation) {
	if g.selection.IsIgnored(v.Code) {
		return
	}
	counters[v.Code]++
	if g.options.First && counters[v.Code] > 1 {
		return
	}
	r.Error(v)
}
