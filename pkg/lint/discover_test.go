package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindConfig_ProjectFileUpward(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tox.ini"), "[pycodestyle]\nmax-line-length = 100\n")
	nested := filepath.Join(root, "pkg", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "tox.ini"), got)
}

func TestFindConfig_DeepTree(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "setup.cfg"), "[pycodestyle]\nignore = E501\n")

	parts := []string{root}
	for i := 0; i < 15; i++ {
		parts = append(parts, fmt.Sprintf("d%d", i))
	}
	deep := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got, err := FindConfig(deep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "setup.cfg"), got)
}

func TestFindConfig_SkipsFilesWithoutSection(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "setup.cfg"), "[metadata]\nname = demo\n")

	got, err := FindConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "pycodestyle"), got, "falls back to the user config path")
	assert.NoFileExists(t, got)
}

func TestFindConfig_LegacySection(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "setup.cfg"), "[pep8]\nignore = E226\n")

	got, err := FindConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "setup.cfg"), got)
}

func TestFindConfig_SetupCfgBeforeToxIni(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "setup.cfg"), "[pycodestyle]\n")
	writeFile(t, filepath.Join(root, "tox.ini"), "[pycodestyle]\n")

	got, err := FindConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "setup.cfg"), got)
}

func TestHasConfigSection(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		want    bool
	}{
		{name: "pyproject with tool section", file: "pyproject.toml", content: "[tool.pycodestyle]\nmax-line-length = 88\n", want: true},
		{name: "pyproject without tool section", file: "pyproject.toml", content: "[tool.black]\nline-length = 88\n", want: false},
		{name: "broken toml", file: "pyproject.toml", content: "[tool\n", want: false},
		{name: "ini section", file: ".pycodestyle", content: "[pycodestyle]\nignore = E1\n", want: true},
		{name: "ini other section", file: ".pycodestyle", content: "[flake8]\nignore = E1\n", want: false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i)), tt.file)
			writeFile(t, path, tt.content)
			assert.Equal(t, tt.want, HasConfigSection(path))
		})
	}

	assert.False(t, HasConfigSection(filepath.Join(dir, "missing.cfg")))
	assert.False(t, HasConfigSection(dir), "directories are not config files")
}

func TestUserConfigPath_XDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	got, err := UserConfigPath()
	require.NoError(t, err)
	if filepath.Base(got) == ".pycodestyle" {
		t.Skip("windows uses the home directory")
	}
	assert.Equal(t, filepath.Join(xdg, "pycodestyle"), got)
}
