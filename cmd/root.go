package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mordilloSan/go_logger/logger"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/fsearch/internal/version"
	"github.com/mordilloSan/fsearch/report"
	"github.com/mordilloSan/fsearch/search"
)

// NewRootCommand builds the fsearch command. Every invocation gets its own
// flag set, so commands can be executed side by side in tests.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fsearch [pattern] [path]",
		Short: "Search a directory tree for names matching a regular expression",
		Long: `fsearch walks a directory tree depth-first and prints every entry whose
base name matches the pattern (an unanchored regular expression).

With one argument, fsearch treats it as the search root when that path exists
and as the pattern otherwise. Use --path to disable the guess.

Flags can also be set through FSEARCH_* environment variables (for example
FSEARCH_HIDDEN=true) or a YAML config file.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ConfigError{Err: err}
	})

	flags := root.Flags()
	flags.BoolP("detail", "d", false, "Show type, size and timestamps for each match")
	flags.BoolP("json", "j", false, "Print matches as a single JSON array")
	flags.BoolP("yaml", "y", false, "Print matches as a single YAML sequence")
	flags.Bool("hidden", false, "Include hidden files and directories")
	flags.BoolP("ignore-case", "i", false, "Match the pattern case-insensitively")
	flags.StringP("path", "p", "", "Directory to search (disables the single-argument guess)")
	flags.StringSliceP("exclude", "e", nil, "Glob matched against base names; matching entries are not descended into (repeatable)")
	flags.Int("max-depth", 0, "Maximum depth below the root to descend (0 = unlimited)")
	flags.Bool("skip-system", false, "Skip pseudo filesystems and network mounts")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/fsearch/config.yaml)")

	return root
}

func runSearch(c *cobra.Command, args []string) error {
	v, err := loadSettings(c)
	if err != nil {
		return err
	}

	// Debug output only with --verbose
	logger.Init("development", v.GetBool("verbose"))

	cfg, opts, err := buildConfig(v, args, c.OutOrStdout())
	if err != nil {
		return err
	}

	reporter := report.New(c.OutOrStdout(), opts)
	stats, err := search.New(cfg).Run(c.Context(), reporter)
	if err != nil {
		return err
	}
	if err := reporter.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if stats.Errors > 0 && !cfg.Structured {
		logger.Debugf("%d entries could not be read under %s", stats.Errors, cfg.Root)
	}
	return nil
}

// Execute runs the command line and reports any failure on stderr.
func Execute(ctx context.Context) error {
	return execute(ctx, NewRootCommand())
}

func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	stderr := root.ErrOrStderr()
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
	}
	return err
}
