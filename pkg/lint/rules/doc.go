// Package rules provides the built-in physical-line rules of the engine.
//
// Rules are organized by category following pycodestyle's code families:
//   - indentation: Tabs and mixed indentation (E101, W191)
//   - whitespace: Trailing whitespace (W291, W293)
//   - blanklines: End-of-file hygiene (W391, W292)
//   - linelength: Code and comment line length (E501, W505)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/pycodelint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/pycodelint/pkg/lint/rules/linelength"
package rules
