package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDocURL(t *testing.T) {
	t.Cleanup(ResetDocsBaseURL)

	assert.Equal(t, DefaultDocsBaseURL+"#error-codes", BuildDocURL("E501"))
	assert.Empty(t, BuildDocURL(""))

	SetDocsBaseURL("file:///opt/docs/intro.html/")
	assert.Equal(t, "file:///opt/docs/intro.html#error-codes", BuildDocURL("W291"))

	ResetDocsBaseURL()
	assert.Equal(t, DefaultDocsBaseURL, DocsBaseURL)
}

func TestRuleDef_InfoDocURL(t *testing.T) {
	info := RuleDef{ID: "W291", Name: "trailing_whitespace"}.Info()
	assert.Equal(t, BuildDocURL("W291"), info.DocURL)
}
