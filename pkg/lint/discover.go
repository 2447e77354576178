package lint

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// ProjectConfigFiles are the per-project files searched in each directory, in order.
var ProjectConfigFiles = []string{"setup.cfg", "tox.ini", ".pycodestyle", "pyproject.toml"}

// ConfigSections are the INI sections that hold engine options, in precedence order.
// "pep8" is the legacy section name.
var ConfigSections = []string{"pycodestyle", "pep8"}

// INILoadOptions mirrors Python's configparser: indented continuation lines
// extend the previous value and "#" inside a value is not a comment.
var INILoadOptions = ini.LoadOptions{
	Insensitive:                true,
	AllowPythonMultilineValues: true,
	IgnoreInlineComment:        true,
}

// UserConfigPath returns the per-user configuration file location.
// The file is not required to exist.
func UserConfigPath() (string, error) {
	if runtime.GOOS == "windows" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return "", ErrNoConfig
		}
		return filepath.Join(home, ".pycodestyle"), nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pycodestyle"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoConfig
	}
	return filepath.Join(home, ".config", "pycodestyle"), nil
}

// FindConfig locates the configuration file the engine would use for startDir.
//
// It searches upward from startDir for a project file that carries an engine
// section. When none is found it falls back to the user configuration path,
// which may not exist: callers must check existence themselves.
// ErrNoConfig is returned when not even the user location can be determined.
func FindConfig(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	if dir, err := filepath.Abs(startDir); err == nil {
		if found := findProjectConfigUpward(dir); found != "" {
			return found, nil
		}
	}
	return UserConfigPath()
}

func findProjectConfigUpward(startDir string) string {
	dir := startDir
	for {
		for _, name := range ProjectConfigFiles {
			candidate := filepath.Join(dir, name)
			if HasConfigSection(candidate) {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

// HasConfigSection reports whether path is a readable config file with an engine section.
func HasConfigSection(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	if filepath.Base(path) == "pyproject.toml" {
		var doc struct {
			Tool map[string]toml.Primitive `toml:"tool"`
		}
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return false
		}
		_, ok := doc.Tool["pycodestyle"]
		return ok
	}

	f, err := ini.LoadSources(INILoadOptions, path)
	if err != nil {
		return false
	}
	for _, name := range ConfigSections {
		if _, err := f.GetSection(name); err == nil {
			return true
		}
	}
	return false
}
