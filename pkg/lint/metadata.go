package lint

import (
	"strings"
)

// DefaultDocsBaseURL is the engine's error code reference.
const DefaultDocsBaseURL = "https://pycodestyle.pycqa.org/en/latest/intro.html"

// DocsBaseURL can be overridden for a local or pinned documentation copy.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL returns the documentation URL for a rule code.
// All codes share one table; an empty code yields "".
func BuildDocURL(ruleID string) string {
	if ruleID == "" {
		return ""
	}
	return DocsBaseURL + "#error-codes"
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}
