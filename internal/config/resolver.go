package config

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Resolver builds the EffectiveConfig for a check.
type Resolver struct {
	// StartDir is where config discovery begins. Empty means the working directory.
	StartDir string

	// Discoverer overrides the engine's config discovery.
	Discoverer Discoverer

	// Logger receives debug and warning output. Nil discards it.
	Logger *slog.Logger

	// Strict makes an unreadable config file an error instead of a warning.
	Strict bool
}

// NewResolver creates a Resolver that discovers config files from startDir.
func NewResolver(startDir string, logger *slog.Logger) *Resolver {
	return &Resolver{StartDir: startDir, Logger: logger}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (r *Resolver) discoverer() Discoverer {
	if r.Discoverer != nil {
		return r.Discoverer
	}
	return EngineDiscoverer{StartDir: r.StartDir}
}

// Resolve merges defaults, host options and the discovered config file.
func (r *Resolver) Resolve(host HostOptions) (EffectiveConfig, error) {
	res, err := r.Explain(host)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// Explain resolves like Resolve and also reports where each value came from.
func (r *Resolver) Explain(host HostOptions) (*Resolution, error) {
	log := r.logger()

	res := &Resolution{
		Config:  Defaults(),
		Sources: []ConfigSource{SourceDefaults},
		Origins: make(map[string]ConfigSource, len(Policy)),
	}
	for _, opt := range Policy {
		res.Origins[opt.Name] = SourceDefaults
	}

	if err := r.applyHost(res, host); err != nil {
		return nil, err
	}
	log.Debug("host options", "options", map[string]any(res.Config))

	final, err := r.applyFile(res)
	if err != nil {
		return nil, err
	}
	log.Debug("options", "config_file", final.ConfigFile, "options", map[string]any(final.Config))
	return final, nil
}

// applyFile merges the discovered config file into res. It returns res
// unchanged when there is no usable file, or when reading it fails outside
// strict mode.
func (r *Resolver) applyFile(res *Resolution) (*Resolution, error) {
	log := r.logger()

	disc, err := r.discoverer().Discover()
	if err != nil {
		if r.Strict {
			return nil, fmt.Errorf("%w: discovery: %w", ErrConfigRead, err)
		}
		log.Warn("config discovery failed", "error", err)
		return res, nil
	}
	if !disc.Found {
		log.Debug("no config file location")
		return res, nil
	}
	if !isRegularFile(disc.Path) {
		log.Debug("config file does not exist", "path", disc.Path)
		return res, nil
	}

	merged, err := r.mergeFile(res, disc.Path)
	if err != nil {
		if r.Strict {
			return nil, err
		}
		log.Warn("ignoring config file", "path", disc.Path, "error", err)
		return res, nil
	}
	return merged, nil
}

// applyHost overlays host values that differ from their defaults.
func (r *Resolver) applyHost(res *Resolution, host HostOptions) error {
	if len(host) == 0 {
		return nil
	}
	values, err := loadHost(host)
	if err != nil {
		return err
	}

	applied := false
	for _, name := range sortedKeys(values) {
		opt, ok := Lookup(name)
		if !ok {
			r.logger().Debug("ignoring unknown host option", "option", name)
			continue
		}
		v, err := opt.Coerce(values[name])
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidOption, name, err)
		}
		if opt.IsDefault(v) {
			continue
		}
		res.Config[name] = v
		res.Origins[name] = SourceHost
		applied = true
	}
	if applied {
		res.Sources = append(res.Sources, SourceHost)
	}
	return nil
}

// mergeFile returns a copy of res with the file at path merged on top.
// Lists accumulate after the existing values; scalars overwrite them.
func (r *Resolver) mergeFile(res *Resolution, path string) (*Resolution, error) {
	values, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	out := &Resolution{
		Config:     res.Config.Clone(),
		Sources:    append(slices.Clone(res.Sources), SourceFile),
		Origins:    make(map[string]ConfigSource, len(res.Origins)),
		ConfigFile: path,
	}
	for k, v := range res.Origins {
		out.Origins[k] = v
	}

	for _, key := range sortedKeys(values) {
		name := Normalize(key)
		opt, ok := Lookup(name)
		if !ok {
			r.logger().Debug("ignoring unknown config file option", "option", key, "path", path)
			continue
		}
		v, err := opt.Coerce(values[key])
		if err != nil {
			return nil, fmt.Errorf("%w %s: %s: %w", ErrConfigRead, path, key, err)
		}
		if opt.Kind == KindList {
			current, _ := out.Config[name].([]string)
			v = append(slices.Clone(current), v.([]string)...)
		}
		out.Config[name] = v
		out.Origins[name] = SourceFile
	}
	return out, nil
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

