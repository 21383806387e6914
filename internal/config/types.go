package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
)

var _ Provider = (*DefaultLoader)(nil)

const (
	DefaultTool        = "git"
	DefaultHelpFlag    = "-h"
	DefaultHelpAllFlag = "--help-all"
	DefaultSpecFile    = "command-specs.txt"
)

type Loader interface {
	Load(path string) (*Config, error)
}

type Initializer interface {
	Init(path string) error
}

type Provider interface {
	Initializer
	Loader
}

// DefaultLoader reads and writes config files on Fs, or on the OS filesystem when Fs is nil.
type DefaultLoader struct {
	Fs afero.Fs
}

// Config represents the .helpspec.toml file structure.
type Config struct {
	// Tool is the executable whose commands are extracted, e.g. 'git'.
	Tool string `json:"tool" toml:"tool" yaml:"tool"`

	// HelpFlag requests a command's ordinary help.
	HelpFlag string `json:"helpFlag" toml:"help_flag" yaml:"help_flag"`

	// HelpAllFlag requests a command's help including hidden options.
	HelpAllFlag string `json:"helpAllFlag" toml:"help_all_flag" yaml:"help_all_flag"`

	// Commands lists display names in extraction order, e.g. 'commit-graph read'.
	Commands []string `json:"commands" toml:"commands" yaml:"commands"`

	// NoHelpAll lists commands that do not understand HelpAllFlag.
	NoHelpAll []string `json:"noHelpAll,omitempty" toml:"no_help_all,omitempty" yaml:"no_help_all,omitempty"`

	// Skip lists names that are not real commands of the tool.
	Skip []string `json:"skip,omitempty" toml:"skip,omitempty" yaml:"skip,omitempty"`

	// Adhoc lists commands whose help is captured but does not follow the usual layout, so it is not parsed.
	Adhoc []string `json:"adhoc,omitempty" toml:"adhoc,omitempty" yaml:"adhoc,omitempty"`

	// Timeout limits each invocation of the tool, e.g. '30s'. Empty keeps the capture default.
	Timeout string `json:"timeout,omitempty" toml:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Env holds KEY=VALUE pairs added to the environment of each invocation.
	Env []string `json:"env,omitempty" toml:"env,omitempty" yaml:"env,omitempty"`

	// StrictAlignment fails a command whose visible help is not a subsequence of its complete help.
	StrictAlignment bool `json:"strictAlignment,omitempty" toml:"strict_alignment,omitempty" yaml:"strict_alignment,omitempty"`

	Artifacts ArtifactsConfig `json:"artifacts" toml:"artifacts" yaml:"artifacts"`

	configFilePath string `toml:"-"`
}

// ArtifactsConfig controls where extraction output goes and which debugging logs are written.
type ArtifactsConfig struct {
	// Dir is the directory artifacts are written to, relative to the working directory.
	Dir string `json:"dir,omitempty" toml:"dir,omitempty" yaml:"dir,omitempty"`

	// SpecFile is the name of the spec file inside Dir.
	SpecFile string `json:"specFile" toml:"spec_file" yaml:"spec_file"`

	Specs bool `json:"specs" toml:"specs" yaml:"specs"`
	Raw   bool `json:"raw,omitempty" toml:"raw,omitempty" yaml:"raw,omitempty"`
	Parse bool `json:"parse,omitempty" toml:"parse,omitempty" yaml:"parse,omitempty"`
	Test  bool `json:"test,omitempty" toml:"test,omitempty" yaml:"test,omitempty"`
	Debug bool `json:"debug,omitempty" toml:"debug,omitempty" yaml:"debug,omitempty"`

	// Markdown and HTML write readable renditions of the specs next to the spec file.
	Markdown bool `json:"markdown,omitempty" toml:"markdown,omitempty" yaml:"markdown,omitempty"`
	HTML     bool `json:"html,omitempty" toml:"html,omitempty" yaml:"html,omitempty"`
}

// Default returns a config for the default tool with no commands.
func Default() *Config {
	return &Config{
		Tool:        DefaultTool,
		HelpFlag:    DefaultHelpFlag,
		HelpAllFlag: DefaultHelpAllFlag,
		Artifacts: ArtifactsConfig{
			SpecFile: DefaultSpecFile,
			Specs:    true,
		},
	}
}

// Path returns the file this config was loaded from.
func (c *Config) Path() string {
	return c.configFilePath
}

// IsSkipped reports whether command is not a real command and should be ignored.
func (c *Config) IsSkipped(command string) bool {
	return slices.Contains(c.Skip, command)
}

// IsAdhoc reports whether command's help is captured but not parsed.
func (c *Config) IsAdhoc(command string) bool {
	return slices.Contains(c.Adhoc, command)
}

// HasHelpAll reports whether command understands HelpAllFlag.
func (c *Config) HasHelpAll(command string) bool {
	return !slices.Contains(c.NoHelpAll, command)
}

// Extractable returns the configured commands that are not skipped, in order.
func (c *Config) Extractable() []string {
	out := make([]string, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		if !c.IsSkipped(cmd) {
			out = append(out, cmd)
		}
	}

	return out
}

// InvocationTimeout returns the parsed Timeout, or zero when none is set.
func (c *Config) InvocationTimeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.Timeout)
	if raw == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout '%s': %w", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, NewErrInvalidValue("timeout", c.Timeout)
	}

	return d, nil
}
