package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

// INI is a koanf.Parser for setup.cfg, tox.ini and .pycodestyle files.
// Each section becomes a top-level map of string values.
type INI struct{}

// INIParser returns an INI parser using the engine's INI dialect.
func INIParser() *INI {
	return &INI{}
}

// Unmarshal parses INI bytes into a section-keyed map.
func (p *INI) Unmarshal(b []byte) (map[string]interface{}, error) {
	f, err := ini.LoadSources(lint.INILoadOptions, b)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for _, section := range f.Sections() {
		keys := section.Keys()
		if strings.EqualFold(section.Name(), ini.DefaultSection) && len(keys) == 0 {
			continue
		}
		values := make(map[string]interface{}, len(keys))
		for _, key := range keys {
			values[key.Name()] = key.Value()
		}
		out[section.Name()] = values
	}
	return out, nil
}

// Marshal renders a section-keyed map as INI.
func (p *INI) Marshal(o map[string]interface{}) ([]byte, error) {
	f := ini.Empty(lint.INILoadOptions)

	for _, name := range sortedKeys(o) {
		values, ok := o[name].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("ini: section %q is %T, want a map", name, o[name])
		}
		section, err := f.NewSection(name)
		if err != nil {
			return nil, err
		}
		for _, key := range sortedKeys(values) {
			if _, err := section.NewKey(key, fmt.Sprint(values[key])); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TOML is a koanf.Parser for pyproject.toml.
type TOML struct{}

// TOMLParser returns a TOML parser.
func TOMLParser() *TOML {
	return &TOML{}
}

// Unmarshal parses TOML bytes into a nested map.
func (p *TOML) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a nested map as TOML.
func (p *TOML) Marshal(o map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
