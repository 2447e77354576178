// Package core defines the shared vocabulary of pycodelint.
//
// This package contains:
//   - Severity classification derived from rule codes
//   - RuleInfo, the metadata DTO used by tooling and the CLI
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
