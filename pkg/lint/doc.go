// Package lint provides the style checker engine that pycodelint drives.
//
// # Architecture
//
// The lint package is the engine side of the adapter:
//
//  1. Root package (pkg/lint/): engine contracts (Violation, Reporter), the rule
//     registry, engine options, config-file discovery and the version contract
//  2. Rules subsystem (pkg/lint/rules/): physical-line rules registered via init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/pycodelint/pkg/lint/rules"
//
// # Rule Codes
//
// Codes follow the pycodestyle convention:
//   - E1 / W1: Indentation
//   - W2: Whitespace
//   - W3: Blank lines
//   - E5 / W5: Line length
//
// # Running the Engine
//
// Build a StyleGuide from decoded options and feed it the lines of one document:
//
//	opts, err := lint.OptionsFromConfig(effective)
//	guide := lint.NewStyleGuide(opts)
//	n, err := guide.InputFile("example.py", lint.SplitLines(src), 0, reporter)
//
// The Reporter receives every violation that survives select/ignore filtering,
// in the order the rules produce them.
package lint
