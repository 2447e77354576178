// Package checker runs one style check over an in-memory document.
//
// A check gates on the engine version, resolves the effective options,
// runs the engine with a fresh report collector and returns the report.
package checker

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/pycodelint/internal/config"
	"github.com/leapstack-labs/pycodelint/internal/report"
	"github.com/leapstack-labs/pycodelint/pkg/lint"
	_ "github.com/leapstack-labs/pycodelint/pkg/lint/rules" // register built-in rules
)

// Request describes one document to check.
type Request struct {
	// Filename is the document path. Only its base name is reported.
	Filename string

	// Source is the document text. Ignored when Lines is set.
	Source string

	// Lines are the document lines with their line endings kept.
	Lines []string

	// Host carries option values from the host.
	Host config.HostOptions

	// LineOffset is added to every reported line number.
	LineOffset int
}

func (r Request) lines() []string {
	if r.Lines != nil {
		return r.Lines
	}
	return lint.SplitLines(r.Source)
}

// Result is the outcome of a check.
type Result struct {
	Report     string                 // rendered "path:row:col: CODE text" lines
	Violations []lint.Violation       // in emission order
	Config     config.EffectiveConfig // options the engine ran with
	ConfigFile string                 // merged config file, empty if none
	Sources    []config.ConfigSource  // option layers applied
}

// Checker runs checks. The zero value is not usable; use New.
type Checker struct {
	resolver      *config.Resolver
	factory       report.Factory
	engineVersion string
	logger        *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithCollectorFactory sets the factory used to create a collector per check.
func WithCollectorFactory(f report.Factory) Option {
	return func(c *Checker) {
		c.factory = f
	}
}

// WithEngineVersion overrides the engine version checked by the version gate.
func WithEngineVersion(v string) Option {
	return func(c *Checker) {
		c.engineVersion = v
	}
}

// WithLogger sets the logger for the checker and its resolver.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = l
	}
}

// New creates a Checker that resolves options with resolver.
// A nil resolver discovers config files from the working directory.
func New(resolver *config.Resolver, opts ...Option) *Checker {
	c := &Checker{
		resolver:      resolver,
		factory:       report.NewCollector,
		engineVersion: lint.Version,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = config.NewResolver("", c.logger)
	}
	if c.resolver.Logger == nil {
		c.resolver.Logger = c.logger
	}
	return c
}

// Check runs the engine over one document.
func (c *Checker) Check(req Request) (*Result, error) {
	if err := lint.CheckVersion(c.engineVersion); err != nil {
		return nil, err
	}

	res, err := c.resolver.Explain(req.Host)
	if err != nil {
		return nil, err
	}

	opts, err := res.Config.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidOption, err)
	}

	guide := lint.NewStyleGuide(opts)
	collector := c.factory()
	if collector == nil {
		return nil, fmt.Errorf("engine failed: %w", lint.ErrNoReporter)
	}

	lines := req.lines()
	if _, err := guide.InputFile(req.Filename, lines, req.LineOffset, collector); err != nil {
		return nil, fmt.Errorf("engine failed: %w", err)
	}

	c.logger.Debug("check complete",
		"file", req.Filename,
		"lines", len(lines),
		"violations", collector.FileErrors(),
		"config_file", res.ConfigFile,
	)

	return &Result{
		Report:     collector.FileResults(),
		Violations: collector.Violations(),
		Config:     res.Config,
		ConfigFile: res.ConfigFile,
		Sources:    res.Sources,
	}, nil
}

// Rules returns the rules the engine runs.
func Rules() []lint.RuleDef {
	return lint.GetAll()
}
