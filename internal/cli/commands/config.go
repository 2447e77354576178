package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/pycodelint/internal/cli/config"
	"github.com/leapstack-labs/pycodelint/internal/cli/output"
	intconfig "github.com/leapstack-labs/pycodelint/internal/config"
)

// ConfigOptions holds options for the config command.
type ConfigOptions struct {
	Format       string
	StrictConfig bool
}

// ConfigOutput is the merged option set and where each value came from.
type ConfigOutput struct {
	ConfigFile string            `yaml:"config_file,omitempty" json:"config_file,omitempty"`
	Sources    []string          `yaml:"sources" json:"sources"`
	Options    map[string]any    `yaml:"options" json:"options"`
	Origins    map[string]string `yaml:"origins" json:"origins"`
}

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	opts := &ConfigOptions{}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective engine options",
		Long: `Resolve engine options the way the check command does and print the result.

Each option is listed with the layer that set it: defaults, host
(--settings file, environment, flags) or file (the discovered project
configuration file).`,
		Example: `  # Show the options used in the current directory
  pycodelint config

  # See how a flag interacts with setup.cfg
  pycodelint config --max-line-length 100

  # Output as JSON
  pycodelint config --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, opts)
		},
	}

	AddOptionFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, json, pretty")
	cmd.Flags().BoolVar(&opts.StrictConfig, "strict-config", false, "Fail when the project configuration file cannot be read")

	return cmd
}

func runConfig(cmd *cobra.Command, opts *ConfigOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}

	host, err := config.LoadHostOptions(cmdCtx.Settings, cmd.Flags())
	if err != nil {
		return err
	}

	resolver := intconfig.NewResolver("", cmdCtx.Logger)
	resolver.Strict = opts.StrictConfig
	res, err := resolver.Explain(host)
	if err != nil {
		return err
	}

	out := newConfigOutput(res)
	if cmdCtx.Renderer.EffectiveMode() == output.ModeJSON {
		return cmdCtx.Renderer.JSON(out)
	}

	b, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	_, err = cmdCtx.Renderer.Writer().Write(b)
	return err
}

func newConfigOutput(res *intconfig.Resolution) ConfigOutput {
	out := ConfigOutput{
		ConfigFile: res.ConfigFile,
		Sources:    make([]string, 0, len(res.Sources)),
		Options:    map[string]any(res.Config.Clone()),
		Origins:    make(map[string]string, len(res.Config)),
	}
	for _, s := range res.Sources {
		out.Sources = append(out.Sources, string(s))
	}
	for _, key := range res.Config.Keys() {
		origin, ok := res.Origins[key]
		if !ok {
			origin = intconfig.SourceDefaults
		}
		out.Origins[key] = string(origin)
	}
	return out
}
