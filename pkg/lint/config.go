package lint

import "strings"

// Selection decides which rule codes are reported.
// It follows pycodestyle's select/ignore semantics: codes are matched by prefix,
// and an explicit select list switches the engine to "ignore everything else".
type Selection struct {
	selected []string
	ignored  []string
}

// NewSelection builds a Selection from raw select and ignore prefixes.
func NewSelection(selectCodes, ignoreCodes []string) *Selection {
	sel := cleanCodes(selectCodes)
	ign := cleanCodes(ignoreCodes)

	switch {
	case len(sel) == 0 && len(ign) == 0:
		ign = append([]string(nil), DefaultIgnore...)
	case len(sel) > 0:
		// An explicit selection ignores everything it does not name.
		ign = []string{""}
	}
	return &Selection{selected: sel, ignored: ign}
}

// IsIgnored returns true if the code should not be reported.
func (s *Selection) IsIgnored(code string) bool {
	if s == nil {
		return false
	}
	if len(code) < 4 {
		for _, sel := range s.selected {
			if strings.HasPrefix(sel, code) {
				return false
			}
		}
	}
	return hasAnyPrefix(code, s.ignored) && !hasAnyPrefix(code, s.selected)
}

// Selected returns the effective select prefixes.
func (s *Selection) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Ignored returns the effective ignore prefixes.
func (s *Selection) Ignored() []string {
	return append([]string(nil), s.ignored...)
}

func hasAnyPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

func cleanCodes(codes []string) []string {
	var out []string
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
