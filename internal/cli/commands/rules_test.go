package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitest "github.com/leapstack-labs/pycodelint/internal/cli/testutil"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "verbose", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	out, err := runCommand(t, NewRulesCommand(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "Style Rules (8)")
	for _, id := range []string{"E101", "E501", "W191", "W291", "W292", "W293", "W391", "W505"} {
		assert.Contains(t, out, id)
	}
	assert.NotContains(t, out, "\x1b[", "piped output should not be styled")
}

func TestRulesCommand_Verbose(t *testing.T) {
	out, err := runCommand(t, NewRulesCommand(), "", "--verbose", "--group", "line_length")
	require.NoError(t, err)

	assert.Contains(t, out, "DESCRIPTION", "table headers render upper-cased")
	assert.Contains(t, out, "E501")
	assert.NotContains(t, out, "W291")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	out, err := runCommand(t, NewRulesCommand(), "", "--group", "whitespace")
	require.NoError(t, err)

	assert.Contains(t, out, "Style Rules (2)")
	assert.Contains(t, out, "W291")
	assert.Contains(t, out, "W293")
	assert.NotContains(t, out, "E501")
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	out, err := runCommand(t, NewRulesCommand(), "", "e501")
	require.NoError(t, err)

	assert.Contains(t, out, "E501 - ")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "max_line_length")
	assert.Contains(t, out, "pycodestyle.pycqa.org")
}

func TestRulesCommand_NotFound(t *testing.T) {
	_, err := runCommand(t, NewRulesCommand(), "", "X999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X999")
}

func TestRulesCommand_JSON(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		out, err := runCommand(t, NewRulesCommand(), "", "--format", "json")
		require.NoError(t, err)

		var got RulesJSONOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 8, got.Count.Total)
		assert.Equal(t, 2, got.Count.Errors)
		assert.Equal(t, 6, got.Count.Warnings)
		assert.Equal(t, "blank_lines", got.Rules[0].Group)
	})

	t.Run("empty group", func(t *testing.T) {
		out, err := runCommand(t, NewRulesCommand(), "", "--format", "json", "--group", "nope")
		require.NoError(t, err)
		assert.Contains(t, out, `"rules": []`)
	})

	t.Run("single rule", func(t *testing.T) {
		out, err := runCommand(t, NewRulesCommand(), "", "W291", "--format", "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "W291", got["id"])
		assert.Equal(t, "warning", got["default_severity"])
	})
}

func TestHelperFunctions(t *testing.T) {
	assert.Equal(t, "Whitespace", capitalizeFirst("whitespace"))
	assert.Empty(t, capitalizeFirst(""))
	assert.Equal(t, "a b", truncateOneLine("a\nb", 10))
	assert.Equal(t, "abcd...", truncateOneLine("abcdefghij", 7))
}

func TestListRulesTable(t *testing.T) {
	tr := clitest.NewTestRendererAuto()
	listRulesTable(tr.Renderer, ruleInfos(), true)

	out := tr.Output()
	clitest.AssertNoANSI(t, out)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "DESCRIPTION", "table headers render upper-cased")
	assert.Contains(t, out, "line_length")
}

func TestShowRuleText(t *testing.T) {
	tr := clitest.NewTestRendererPretty()
	rule := ruleInfos()[0]
	showRuleText(tr.Renderer, &rule)

	assert.Contains(t, tr.Output(), rule.ID)
	assert.Contains(t, tr.Output(), "Description")
	assert.Empty(t, tr.ErrorOutput())
}
