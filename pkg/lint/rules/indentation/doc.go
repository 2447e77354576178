// Package indentation provides rules about indentation characters.
//
// Rules in this package:
//   - E101: Indentation contains mixed spaces and tabs
//   - W191: Indentation contains tabs
package indentation
