// Package text holds small string helpers shared by rule packages.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Indent returns the leading run of spaces and tabs.
func Indent(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// Len returns the length of s in characters.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// TrimLineEnding removes trailing "\n", "\r" and form feeds, in that order.
func TrimLineEnding(line string) string {
	line = strings.TrimRight(line, "\n")
	line = strings.TrimRight(line, "\r")
	return strings.TrimRight(line, "\x0c")
}

// TrimSpaceRight removes all trailing whitespace.
func TrimSpaceRight(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
