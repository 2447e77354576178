package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

// pyprojectSection is the koanf path of the engine table in pyproject.toml.
const pyprojectSection = "tool.pycodestyle"

// LoadFile reads the engine section of a config file.
// pyproject.toml is read from [tool.pycodestyle]; INI files from the first
// of lint.ConfigSections present. A file without an engine section yields
// an empty map. Keys are returned as written in the file.
func LoadFile(path string) (map[string]any, error) {
	k := koanf.New(".")

	var sections []string
	var parser koanf.Parser
	if filepath.Base(path) == "pyproject.toml" {
		parser = TOMLParser()
		sections = []string{pyprojectSection}
	} else {
		parser = INIParser()
		sections = lint.ConfigSections
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	for _, section := range sections {
		if k.Exists(section) {
			return k.Cut(section).Raw(), nil
		}
	}
	return map[string]any{}, nil
}

// loadHost flattens host options through koanf so they are read the same way
// as every other layer. Keys are normalized.
func loadHost(host HostOptions) (map[string]any, error) {
	normalized := make(map[string]interface{}, len(host))
	for key, value := range host {
		normalized[Normalize(key)] = value
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(normalized, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load host options: %w", err)
	}
	return k.Raw(), nil
}

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
