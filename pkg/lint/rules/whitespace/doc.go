// Package whitespace provides rules about trailing whitespace.
//
// Rules in this package:
//   - W291: Trailing whitespace
//   - W293: Whitespace on a blank line
package whitespace
