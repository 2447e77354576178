package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pycodelint/internal/cli/config"
	"github.com/leapstack-labs/pycodelint/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Logger   *slog.Logger
	Renderer *output.Renderer
	Settings string // --settings file, empty if none
}

// NewCommandContext builds the CommandContext for cmd.
// A non-empty format overrides the persistent --output mode.
func NewCommandContext(cmd *cobra.Command, format string) (*CommandContext, error) {
	if format == "" {
		format = flagString(cmd, "output")
	}
	mode, err := output.ParseMode(format)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
		Settings: flagString(cmd, "settings"),
	}, nil
}

// flagString returns the value of a string flag, or "" when cmd does not have it.
// Persistent flags are only visible once the command runs under the root.
func flagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return v
}
