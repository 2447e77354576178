package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules/blanklines"
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules/indentation"
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules/linelength"
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules/whitespace"
)
