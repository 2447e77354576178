// Package config loads host settings for the pycodelint CLI.
//
// Host options are layered with koanf, in increasing precedence: an optional
// YAML settings file, PYCODELINT_* environment variables, then explicitly set
// command-line flags.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "github.com/leapstack-labs/pycodelint/internal/config"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// EnvPrefix is the prefix of environment variables read as host options.
const EnvPrefix = "PYCODELINT_"

// SettingsSection is the settings file path holding engine options.
// Files without it are read from the top level.
const SettingsSection = "linters.pycodestyle"

// LoadHostOptions collects host options from the settings file, environment and flags.
// Only option names known to the resolver are returned. Keys are normalized.
func LoadHostOptions(settingsFile string, flags *pflag.FlagSet) (intconfig.HostOptions, error) {
	k := koanf.New(".")

	// 1. Settings file
	if settingsFile != "" {
		sk := koanf.New(".")
		if err := sk.Load(file.Provider(settingsFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", settingsFile, err)
		}
		if sk.Exists(SettingsSection) {
			sk = sk.Cut(SettingsSection)
		}
		if err := mergeNormalized(k, sk.Raw()); err != nil {
			return nil, err
		}
	}

	// 2. Environment variables
	// Transform: PYCODELINT_MAX_LINE_LENGTH -> max_line_length
	ek := koanf.New(".")
	if err := ek.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	if err := mergeNormalized(k, ek.Raw()); err != nil {
		return nil, err
	}

	// 3. Flags, only those explicitly set
	if flags != nil {
		fk := koanf.New(".")
		if err := fk.Load(posflag.ProviderWithFlag(flags, ".", fk, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := intconfig.Normalize(f.Name)
			if _, ok := intconfig.Lookup(key); !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
		if err := mergeNormalized(k, fk.Raw()); err != nil {
			return nil, err
		}
	}

	host := make(intconfig.HostOptions)
	for key, value := range k.Raw() {
		if _, ok := intconfig.Lookup(key); ok {
			host[key] = value
		}
	}
	return host, nil
}

// mergeNormalized loads values into k after normalizing their keys,
// so "max-line-length" in one layer overrides "max_line_length" in another.
func mergeNormalized(k *koanf.Koanf, values map[string]interface{}) error {
	normalized := make(map[string]interface{}, len(values))
	for key, value := range values {
		normalized[intconfig.Normalize(key)] = value
	}
	if err := k.Load(confmap.Provider(normalized, "."), nil); err != nil {
		return fmt.Errorf("failed to merge host options: %w", err)
	}
	return nil
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
