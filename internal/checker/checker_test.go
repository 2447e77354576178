package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/pycodelint/internal/config"
	"github.com/leapstack-labs/pycodelint/internal/report"
	"github.com/leapstack-labs/pycodelint/internal/testutil"
	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

func resolverFor(t *testing.T, path string) *config.Resolver {
	t.Helper()
	d := config.DiscovererFunc(func() (config.Discovery, error) {
		if path == "" {
			return config.Discovery{}, nil
		}
		return config.Discovery{Found: true, Path: path}, nil
	})
	return &config.Resolver{Discoverer: d, Logger: testutil.NewTestLogger(t)}
}

func TestCheck_Report(t *testing.T) {
	c := New(resolverFor(t, ""), WithLogger(testutil.NewTestLogger(t)))

	res, err := c.Check(Request{
		Filename: "/work/project/module.py",
		Source:   "x = 1  \nif x:\n\ty = 2\n\n",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"module.py:1:6: W291 trailing whitespace\n"+
			"module.py:3:1: W191 indentation contains tabs\n"+
			"module.py:4:1: W391 blank line at end of file\n",
		res.Report)
	assert.Len(t, res.Violations, 3)
	assert.Empty(t, res.ConfigFile)
	assert.Equal(t, []config.ConfigSource{config.SourceDefaults}, res.Sources)
}

func TestCheck_CleanDocument(t *testing.T) {
	res, err := New(resolverFor(t, "")).Check(Request{Filename: "a.py", Source: "x = 1\n"})
	require.NoError(t, err)
	assert.Equal(t, "", res.Report)
	assert.Empty(t, res.Violations)
}

func TestCheck_EmptyDocument(t *testing.T) {
	res, err := New(resolverFor(t, "")).Check(Request{Filename: "a.py"})
	require.NoError(t, err)
	assert.Equal(t, "", res.Report)
}

func TestCheck_LinesAndOffset(t *testing.T) {
	res, err := New(resolverFor(t, "")).Check(Request{
		Filename:   "a.py",
		Source:     "ignored when lines are set  \n",
		Lines:      []string{"x = 1", ""},
		LineOffset: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Report, "only the last line is checked for a final newline")

	res, err = New(resolverFor(t, "")).Check(Request{Filename: "a.py", Lines: []string{"x = 1"}, LineOffset: 20})
	require.NoError(t, err)
	assert.Equal(t, "a.py:21:6: W292 no newline at end of file\n", res.Report)
}

func TestCheck_HostAndFileOptions(t *testing.T) {
	long := "x = '" + strings.Repeat("a", 91) + "'\n"
	path := testutil.WriteFile(t, t.TempDir(), "setup.cfg", "[pycodestyle]\nmax-line-length = 120\nselect = W2\n")

	res, err := New(resolverFor(t, path)).Check(Request{
		Filename: "a.py",
		Source:   long + "y = 1 \n",
		Host:     config.HostOptions{"select": "E5", "max-line-length": 60},
	})
	require.NoError(t, err)

	assert.Equal(t, path, res.ConfigFile)
	assert.Equal(t, 120, res.Config.MaxLineLength())
	assert.Equal(t, []string{"E5", "W2"}, res.Config.Select())
	assert.Equal(t, "a.py:2:6: W291 trailing whitespace\n", res.Report)
}

func TestCheck_VersionGate(t *testing.T) {
	_, err := New(resolverFor(t, ""), WithEngineVersion("1.4.5")).Check(Request{Filename: "a.py"})
	assert.ErrorIs(t, err, lint.ErrVersionTooOld)

	_, err = New(resolverFor(t, ""), WithEngineVersion("pycodestyle dev")).Check(Request{Filename: "a.py"})
	assert.ErrorIs(t, err, lint.ErrInvalidVersion)

	_, err = New(resolverFor(t, ""), WithEngineVersion("1.4.6")).Check(Request{Filename: "a.py"})
	assert.NoError(t, err)
}

func TestCheck_InvalidHostOption(t *testing.T) {
	_, err := New(resolverFor(t, "")).Check(Request{
		Filename: "a.py",
		Host:     config.HostOptions{"first": "sometimes"},
	})
	assert.ErrorIs(t, err, config.ErrInvalidOption)
}

func TestCheck_CollectorFactory(t *testing.T) {
	var made []*report.Collector
	factory := func() *report.Collector {
		c := report.NewCollector()
		made = append(made, c)
		return c
	}
	c := New(resolverFor(t, ""), WithCollectorFactory(factory))

	first, err := c.Check(Request{Filename: "a.py", Source: "x = 1 \n"})
	require.NoError(t, err)
	second, err := c.Check(Request{Filename: "b.py", Source: "y = 2\n"})
	require.NoError(t, err)

	require.Len(t, made, 2)
	assert.NotSame(t, made[0], made[1])
	assert.Equal(t, "a.py:1:6: W291 trailing whitespace\n", first.Report)
	assert.Empty(t, second.Report, "a fresh collector holds no earlier results")
}

func TestCheck_NilCollector(t *testing.T) {
	c := New(resolverFor(t, ""), WithCollectorFactory(func() *report.Collector { return nil }))
	_, err := c.Check(Request{Filename: "a.py"})
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrNoReporter)
	assert.Contains(t, err.Error(), "engine failed")
}

func TestNew_DefaultResolver(t *testing.T) {
	c := New(nil)
	require.NotNil(t, c.resolver)
	assert.NotNil(t, c.resolver.Logger)
}

func TestRules(t *testing.T) {
	ids := make([]string, 0)
	for _, r := range Rules() {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "E501")
	assert.Contains(t, ids, "W291")
}
