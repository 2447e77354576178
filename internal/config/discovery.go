package config

import (
	"errors"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

// Discovery is the outcome of looking for a config file.
// Path is only meaningful when Found is true, and may still name a file
// that does not exist.
type Discovery struct {
	Found bool
	Path  string
}

// Discoverer locates the configuration file for a check.
type Discoverer interface {
	Discover() (Discovery, error)
}

// DiscovererFunc adapts a function to the Discoverer interface.
type DiscovererFunc func() (Discovery, error)

// Discover calls f.
func (f DiscovererFunc) Discover() (Discovery, error) {
	return f()
}

// EngineDiscoverer finds config files the way the engine does, starting at StartDir.
type EngineDiscoverer struct {
	StartDir string
}

// Discover implements Discoverer. An undeterminable user config location
// is reported as not found.
func (d EngineDiscoverer) Discover() (Discovery, error) {
	path, err := lint.FindConfig(d.StartDir)
	if errors.Is(err, lint.ErrNoConfig) {
		return Discovery{}, nil
	}
	if err != nil {
		return Discovery{}, err
	}
	return Discovery{Found: true, Path: path}, nil
}
