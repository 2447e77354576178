// Package config resolves the effective engine options for one check.
//
// Options come from three layers, lowest precedence first: built-in defaults,
// host settings, and the configuration file the engine itself would discover.
// How each option merges is decided by its kind in the policy table, see Policy.
package config

import (
	"errors"
	"maps"
	"slices"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

var (
	// ErrConfigRead is returned in strict mode when the discovered config file
	// cannot be read or parsed.
	ErrConfigRead = errors.New("failed to read config file")

	// ErrInvalidOption is returned when a host value cannot be coerced to its option kind.
	ErrInvalidOption = errors.New("invalid option value")
)

// ConfigSource names a layer that contributed to an EffectiveConfig.
type ConfigSource string

// Config sources in increasing precedence.
const (
	SourceDefaults ConfigSource = "defaults"
	SourceHost     ConfigSource = "host"
	SourceFile     ConfigSource = "file"
)

// HostOptions are the option values supplied by the host (editor settings,
// CLI flags, environment). Keys may use dashes or underscores.
type HostOptions map[string]any

// EffectiveConfig is the merged option set handed to the engine.
// Keys are normalized option names. Every policy option is present.
type EffectiveConfig map[string]any

// Clone returns a copy that shares no list storage with c.
func (c EffectiveConfig) Clone() EffectiveConfig {
	out := make(EffectiveConfig, len(c))
	for k, v := range c {
		if list, ok := v.([]string); ok {
			v = slices.Clone(list)
		}
		out[k] = v
	}
	return out
}

// Keys returns the option names in sorted order.
func (c EffectiveConfig) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// Select returns the select prefixes.
func (c EffectiveConfig) Select() []string {
	return lint.GetStringSliceOption(c, "select", nil)
}

// Ignore returns the ignore prefixes.
func (c EffectiveConfig) Ignore() []string {
	return lint.GetStringSliceOption(c, "ignore", nil)
}

// MaxLineLength returns max_line_length, 0 when unset.
func (c EffectiveConfig) MaxLineLength() int {
	return lint.GetIntOption(c, "max_line_length", 0)
}

// MaxDocLength returns max_doc_length, 0 when disabled.
func (c EffectiveConfig) MaxDocLength() int {
	return lint.GetIntOption(c, "max_doc_length", 0)
}

// First reports whether only the first occurrence of each code is reported.
func (c EffectiveConfig) First() bool {
	return lint.GetOption(c, "first", false)
}

// EngineOptions decodes the config into engine options.
func (c EffectiveConfig) EngineOptions() (lint.Options, error) {
	return lint.OptionsFromConfig(c)
}

// Resolution is an EffectiveConfig together with where its values came from.
type Resolution struct {
	Config     EffectiveConfig
	Sources    []ConfigSource          // layers applied, in order
	Origins    map[string]ConfigSource // last layer that set each option
	ConfigFile string                  // merged config file, empty if none
}
