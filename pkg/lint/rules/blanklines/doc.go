// Package blanklines provides rules about the end of the file.
//
// Rules in this package:
//   - W391: Blank line at end of file
//   - W292: No newline at end of file
package blanklines
