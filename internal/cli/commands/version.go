package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/pycodelint/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display pycodelint version and the bundled pycodestyle engine version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "pycodelint v%s\n", version)

			status := "ok"
			err := lint.CheckVersion(lint.Version)
			if err != nil {
				status = err.Error()
			}
			_, _ = fmt.Fprintf(out, "pycodestyle %s (minimum %s, %s)\n", lint.Version, lint.MinimumVersion, status)
			return err
		},
	}
}
