// Package linelength provides rules about line length.
//
// Rules in this package:
//   - E501: Line too long (max_line_length)
//   - W505: Comment line too long (max_doc_length)
//
// Both rules skip lines marked "# noqa" and comment lines that consist of a
// single long token such as a URL.
package linelength
