// Package config turns command-line flags, FWDGEN_* environment variables
// and an optional config file into one immutable Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bethropolis/fwdgen/internal/aggregate"
	"github.com/bethropolis/fwdgen/internal/forward"
	"github.com/bethropolis/fwdgen/internal/solink"
)

// EnvPrefix prefixes environment overrides, e.g. FWDGEN_OUTPUT_DIR.
const EnvPrefix = "FWDGEN"

// Config holds all application configuration settings
type Config struct {
	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Scan settings
	WorkingDir      string
	InputDirs       []string
	IgnorePaths     []string
	IgnorePatterns  []string
	IncludePatterns []string
	Gitignore       bool

	// Forwarder output
	OutputPrefix string
	OutputDir    string
	Jobs         int

	// Aggregator output
	OutputFile string

	// Library links
	LibVersion string

	// ConfigFileUsed is the config file that was read, if any.
	ConfigFileUsed string
}

// BindCommon defines the flags shared by every command.
func BindCommon(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Switches on verbosity output")
	fs.Bool("quiet", false, "Only show warnings and errors")
	fs.String("log-level", "", "Set the logging level (debug, info, warn, error, none); overrides --verbose and --quiet")
	fs.Bool("no-color", false, "Disable color output")
	fs.String("config", "", "Config file (default .fwdgen.{yaml,toml,json} in the working directory)")
	fs.String("working-dir", ".", "The directory to run in. All other relative paths are relative to it")
}

// BindTraversal defines the flags that select headers.
func BindTraversal(fs *pflag.FlagSet) {
	fs.String("input-dirs", ".", "Comma-separated directories to scan (relative or absolute)")
	fs.String("ignore-path", "", "Comma-separated, case-insensitive substrings; directories whose name contains one are skipped")
	fs.String("ignore-patterns", "", "Comma-separated wildcard file name patterns to ignore")
	fs.String("infile-pattern", "*.h", "Comma-separated wildcard patterns of files to include")
	fs.Bool("gitignore", false, "Also skip paths matched by .gitignore files")
	fs.Bool("show-skipped", false, "List skipped directories and files at the end")
}

// BindForward defines the forwarder output flags.
func BindForward(fs *pflag.FlagSet) {
	fs.String("output-prefix", "", "A prefix for the generated header names (ex. prefix_header.h)")
	fs.String("output-dir", "include", "The directory into which to place the generated headers")
	fs.Int("jobs", 1, "Number of headers written concurrently")
}

// BindAggregate defines the aggregator output flags.
func BindAggregate(fs *pflag.FlagSet) {
	fs.String("output-file", "headers.h", "The combined header to generate")
}

// BindSolink defines the library link flags.
func BindSolink(fs *pflag.FlagSet) {
	fs.String("lib-version", "", "Library version to link (libfoo.so.<version>); any numeric version when empty")
}

// Load reads configuration from fs, the environment and the config file.
// Flags win over environment variables, which win over the config file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	} else {
		v.SetConfigName(".fwdgen")
		v.AddConfigPath(v.GetString("working-dir"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	c := &Config{
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
		LogLevel:    v.GetString("log-level"),
		NoColor:     v.GetBool("no-color"),
		ShowSkipped: v.GetBool("show-skipped"),

		WorkingDir:      v.GetString("working-dir"),
		InputDirs:       List(v, "input-dirs"),
		IgnorePaths:     List(v, "ignore-path"),
		IgnorePatterns:  List(v, "ignore-patterns"),
		IncludePatterns: List(v, "infile-pattern"),
		Gitignore:       v.GetBool("gitignore"),

		OutputPrefix: v.GetString("output-prefix"),
		OutputDir:    v.GetString("output-dir"),
		Jobs:         v.GetInt("jobs"),

		OutputFile: v.GetString("output-file"),
		LibVersion: v.GetString("lib-version"),

		ConfigFileUsed: v.ConfigFileUsed(),
	}
	if c.WorkingDir == "" {
		c.WorkingDir = "."
	}
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	return c, nil
}

// List returns the comma-separated list stored under key. Values may be a
// single string or, from a config file, a list of strings.
func List(v *viper.Viper, key string) []string {
	switch val := v.Get(key).(type) {
	case string:
		return SplitList(val)
	case []string:
		return SplitList(strings.Join(val, ","))
	case []any:
		var out []string
		for _, item := range val {
			out = append(out, SplitList(fmt.Sprint(item))...)
		}
		return out
	}
	return nil
}

// SplitList splits s on commas, trims whitespace and drops empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AbsWorkingDir returns the absolute working directory.
func (c *Config) AbsWorkingDir() (string, error) {
	return filepath.Abs(c.WorkingDir)
}

// ForwardRequest builds the forwarder request.
func (c *Config) ForwardRequest() forward.Request {
	return forward.Request{
		Roots:     c.InputDirs,
		Include:   c.IncludePatterns,
		Exclude:   c.IgnorePatterns,
		Ignore:    c.IgnorePaths,
		OutputDir: c.OutputDir,
		Prefix:    c.OutputPrefix,
		BaseDir:   c.WorkingDir,
		Gitignore: c.Gitignore,
	}
}

// AggregateRequest builds the aggregator request.
func (c *Config) AggregateRequest() aggregate.Request {
	return aggregate.Request{
		Roots:      c.InputDirs,
		Include:    c.IncludePatterns,
		Exclude:    c.IgnorePatterns,
		Ignore:     c.IgnorePaths,
		OutputFile: c.OutputFile,
		BaseDir:    c.WorkingDir,
		Gitignore:  c.Gitignore,
	}
}

// SolinkRequest builds the library link request.
func (c *Config) SolinkRequest() solink.Request {
	return solink.Request{
		Dir:     c.WorkingDir,
		Version: c.LibVersion,
	}
}
