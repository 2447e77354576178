package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/pycodelint/internal/checker"
	"github.com/leapstack-labs/pycodelint/internal/cli/config"
	"github.com/leapstack-labs/pycodelint/internal/cli/output"
	intconfig "github.com/leapstack-labs/pycodelint/internal/config"
)

// ErrLintIssues is returned when a check reports at least one violation.
var ErrLintIssues = errors.New("lint issues found")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path             string // File to check, "-" or empty for stdin
	StdinDisplayName string // Name reported for stdin input
	LineOffset       int    // Added to every reported line number
	Format           string // Output format override
	StrictConfig     bool   // Fail on an unreadable config file
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Check a Python source file",
		Long: `Check one Python source file against the style rules.

Options are merged from built-in defaults, host settings (--settings file,
PYCODELINT_* environment variables and flags) and the project configuration
file pycodestyle itself would use (setup.cfg, tox.ini, .pycodestyle or
pyproject.toml). Values in the project configuration file take precedence.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: "path:row:col: CODE message" lines
  - JSON: Machine-readable format

Exits with status 1 when any violation is reported.`,
		Example: `  # Check a file
  pycodelint check app.py

  # Check text from an editor buffer
  cat app.py | pycodelint check - --stdin-display-name app.py

  # Only report line length and whitespace issues
  pycodelint check app.py --select E501,W2

  # Output as JSON
  pycodelint check app.py --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	AddOptionFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.StdinDisplayName, "stdin-display-name", "stdin", "Name used in the report when reading stdin")
	cmd.Flags().IntVar(&opts.LineOffset, "line-offset", 0, "Number added to every reported line number")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, json, pretty")
	cmd.Flags().BoolVar(&opts.StrictConfig, "strict-config", false, "Fail when the project configuration file cannot be read")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// AddOptionFlags registers one flag per engine option.
func AddOptionFlags(fs *pflag.FlagSet) {
	fs.StringSlice("select", nil, "Select errors and warnings (e.g. E,W6)")
	fs.StringSlice("ignore", nil, "Skip errors and warnings (e.g. E4,W)")
	fs.Int("max-line-length", 0, "Maximum allowed line length (engine default 79)")
	fs.Int("max-doc-length", 0, "Maximum allowed comment line length (disabled by default)")
	fs.Int("max-complexity", 0, "Maximum allowed complexity (passed through to the engine)")
	fs.Int("indent-size", 0, "Number of spaces per indentation level (engine default 4)")
	fs.Bool("hang-closing", false, "Hang closing bracket instead of matching indentation")
	fs.Bool("first", false, "Show only the first occurrence of each error")
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx, err := NewCommandContext(cmd, opts.Format)
	if err != nil {
		return err
	}

	source, filename, err := readSource(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("stdin-display-name") && opts.Path != "" && opts.Path != "-" {
		cmdCtx.Renderer.Warning("--stdin-display-name is ignored when checking a file")
	}

	host, err := config.LoadHostOptions(cmdCtx.Settings, cmd.Flags())
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("host options", "options", map[string]any(host))

	resolver := intconfig.NewResolver("", cmdCtx.Logger)
	resolver.Strict = opts.StrictConfig

	res, err := checker.New(resolver, checker.WithLogger(cmdCtx.Logger)).Check(checker.Request{
		Filename:   filename,
		Source:     source,
		Host:       host,
		LineOffset: opts.LineOffset,
	})
	if err != nil {
		return err
	}

	if err := cmdCtx.Renderer.Report(output.FileReport{
		File:       filepath.Base(filename),
		ConfigFile: res.ConfigFile,
		Report:     res.Report,
	}); err != nil {
		return err
	}

	if len(res.Violations) > 0 {
		return ErrLintIssues
	}
	return nil
}

func readSource(stdin io.Reader, opts *CheckOptions) (source, filename string, err error) {
	if opts.Path == "" || opts.Path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), opts.StdinDisplayName, nil
	}

	b, err := os.ReadFile(opts.Path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", opts.Path, err)
	}
	return string(b), opts.Path, nil
}
