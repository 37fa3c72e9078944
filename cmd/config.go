package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mordilloSan/fsearch/report"
	"github.com/mordilloSan/fsearch/search"
	"github.com/mordilloSan/fsearch/search/iteminfo"
)

const envPrefix = "FSEARCH"

var (
	// ErrPathNotFound is returned when the search root does not exist.
	ErrPathNotFound = errors.New("invalid directory path")
)

// ConfigError marks invalid user input detected before any traversal.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// loadSettings merges flags, FSEARCH_* environment variables and the optional
// config file. Explicit flags win over the environment, which wins over the file.
func loadSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	explicit := v.GetString("config")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fsearch"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, configErrorf("read config: %w", err)
		}
	}
	return v, nil
}

// buildConfig turns merged settings and positional arguments into the
// immutable search configuration and the matching report options.
func buildConfig(v *viper.Viper, args []string, out io.Writer) (search.Config, report.Options, error) {
	pattern, root, err := resolveArgs(args, v.GetString("path"))
	if err != nil {
		return search.Config{}, report.Options{}, err
	}

	compiled, err := search.CompilePattern(pattern, v.GetBool("ignore-case"))
	if err != nil {
		return search.Config{}, report.Options{}, &ConfigError{Err: err}
	}

	excludes, err := compileExcludes(v.GetStringSlice("exclude"))
	if err != nil {
		return search.Config{}, report.Options{}, err
	}

	maxDepth := v.GetInt("max-depth")
	if maxDepth < 0 {
		return search.Config{}, report.Options{}, configErrorf("invalid --max-depth %d: must be zero or positive", maxDepth)
	}

	asJSON, asYAML := v.GetBool("json"), v.GetBool("yaml")
	if asJSON && asYAML {
		return search.Config{}, report.Options{}, configErrorf("--json and --yaml cannot be used together")
	}

	resolvedRoot, err := resolveRoot(root)
	if err != nil {
		return search.Config{}, report.Options{}, err
	}

	cfg := search.Config{
		Root:          resolvedRoot,
		Pattern:       compiled,
		Detail:        v.GetBool("detail"),
		Structured:    asJSON || asYAML,
		IncludeHidden: v.GetBool("hidden"),
		Exclude:       excludes,
		MaxDepth:      maxDepth,
		SkipSystem:    v.GetBool("skip-system"),
	}

	opts := report.Options{
		Detail:     cfg.Detail,
		Structured: cfg.Structured,
		Format:     report.JSON,
		Color:      colorEnabled(out, v.GetBool("no-color")),
	}
	if asYAML {
		opts.Format = report.YAML
	}
	return cfg, opts, nil
}

// resolveArgs splits the positional arguments into pattern and root. With
// --path the positionals can only be a pattern. Otherwise a lone argument is
// taken as the root when it exists on disk, and as the pattern when it does not.
func resolveArgs(args []string, pathOpt string) (pattern, root string, err error) {
	if pathOpt != "" {
		if len(args) > 1 {
			return "", "", configErrorf("unexpected argument %q: the search root is already set by --path", args[1])
		}
		if len(args) == 1 {
			pattern = args[0]
		}
		return pattern, pathOpt, nil
	}

	switch len(args) {
	case 0:
		return "", "", nil
	case 1:
		if _, statErr := os.Stat(args[0]); statErr == nil {
			return "", args[0], nil
		}
		return args[0], "", nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", configErrorf("expected at most 2 arguments (pattern and path), got %d", len(args))
	}
}

// resolveRoot returns the absolute search root, defaulting to the working directory.
func resolveRoot(root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", configErrorf("%w: %s", ErrPathNotFound, root)
	}

	resolved, _, err := iteminfo.ResolveSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", configErrorf("%w: %s", ErrPathNotFound, root)
		}
		return "", &ConfigError{Err: err}
	}
	return filepath.Clean(resolved), nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	var out []glob.Glob
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, configErrorf("invalid exclude glob %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// colorEnabled reports whether text output should be colored: only for a
// terminal, and never when --no-color or NO_COLOR is set.
func colorEnabled(out io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
