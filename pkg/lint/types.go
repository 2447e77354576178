package lint

import (
	"github.com/leapstack-labs/pycodelint/pkg/core"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Rule code, e.g., "E501"
	Name        string        // Human-readable name, e.g., "line_length.maximum"
	Group       string        // Category, e.g., "indentation", "whitespace"
	Description string        // Human-readable description
	Severity    core.Severity // Set from the code prefix by Register
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Engine options this rule reads

	// Documentation fields for richer rule documentation
	Rationale   string
	BadExample  string
	GoodExample string
}

// Info returns the documentation metadata of the rule.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		DocURL:          BuildDocURL(r.ID),
	}
}

// CheckFunc analyzes one physical line and returns findings.
type CheckFunc func(line PhysicalLine, opts Options) []Finding

// =============================================================================
// Check Inputs and Outputs
// =============================================================================

// PhysicalLine is one line of the document as seen by a rule.
type PhysicalLine struct {
	Text       string   // Line text including its line ending
	Number     int      // 1-based line number
	Total      int      // Number of lines in the document
	Lines      []string // All lines of the document
	IndentChar byte     // First indentation character seen so far (0 if none)
	Noqa       bool     // Line carries a "# noqa" marker
}

// IsLast reports whether this is the last line of the document.
func (p PhysicalLine) IsLast() bool {
	return p.Number == p.Total
}

// Finding is a rule result before the engine attaches the rule code.
type Finding struct {
	Offset  int
	Message string
}
