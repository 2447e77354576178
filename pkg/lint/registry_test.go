package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pycodelint/pkg/core"
)

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(RuleDef{ID: "W900", Group: "demo", Description: "second"})
	Register(RuleDef{ID: "E900", Group: "demo", Description: "first"})
	Register(RuleDef{ID: "E901", Group: "other"})

	assert.Equal(t, 3, Count())

	all := GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"E900", "E901", "W900"}, []string{all[0].ID, all[1].ID, all[2].ID})

	rule, ok := GetByID("W900")
	require.True(t, ok)
	assert.Equal(t, core.SeverityWarning, rule.Severity, "severity follows the code prefix")

	rule, ok = GetByID("E900")
	require.True(t, ok)
	assert.Equal(t, core.SeverityError, rule.Severity)

	_, ok = GetByID("X000")
	assert.False(t, ok)

	demo := GetByGroup("demo")
	require.Len(t, demo, 2)
	assert.Equal(t, "E900", demo[0].ID)

	infos := AllRules()
	require.Len(t, infos, 3)
	assert.Equal(t, "first", infos[0].Description)
}
