package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/mozilla-ai/helpspec/internal/perms"
)

// Init creates a configuration file seeded with the git command set.
func (d *DefaultLoader) Init(path string) error {
	fs := d.fs()

	if _, err := fs.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(DefaultGit()); err != nil {
		return fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), perms.RegularFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads and validates the config file at path. Values missing from the file take their defaults.
func (d *DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	fs := d.fs()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: config file cannot be found, run: 'helpspec init'", ErrConfigLoadFailed)
		}
		return nil, fmt.Errorf("%w: failed to read config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", ErrConfigLoadFailed, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key '%s' in config file (%s)", ErrConfigLoadFailed, undecoded[0], path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: failed to validate config (%s): %w", ErrConfigLoadFailed, path, err)
	}

	cfg.configFilePath = path

	return cfg, nil
}

func (d *DefaultLoader) fs() afero.Fs {
	if d.Fs == nil {
		return afero.NewOsFs()
	}

	return d.Fs
}

// Validate checks the configuration for values extraction cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return NewErrInvalidValue("tool", c.Tool)
	}
	if strings.TrimSpace(c.HelpFlag) == "" {
		return NewErrInvalidValue("help_flag", c.HelpFlag)
	}
	if strings.TrimSpace(c.HelpAllFlag) == "" {
		return NewErrInvalidValue("help_all_flag", c.HelpAllFlag)
	}
	if strings.TrimSpace(c.Artifacts.SpecFile) == "" {
		return NewErrInvalidValue("artifacts.spec_file", c.Artifacts.SpecFile)
	}

	if _, err := c.InvocationTimeout(); err != nil {
		return err
	}
	for _, kv := range c.Env {
		if key, _, ok := strings.Cut(kv, "="); !ok || strings.TrimSpace(key) == "" {
			return NewErrInvalidValue("env", kv)
		}
	}

	if err := c.validateCommands(); err != nil {
		return err
	}

	if err := c.validateReferences("no_help_all", c.NoHelpAll); err != nil {
		return err
	}
	if err := c.validateReferences("skip", c.Skip); err != nil {
		return err
	}
	if err := c.validateReferences("adhoc", c.Adhoc); err != nil {
		return err
	}

	return nil
}

// validateCommands ensures command names are present, trimmed and distinct.
func (c *Config) validateCommands() error {
	seen := make(map[string]struct{}, len(c.Commands))
	for _, cmd := range c.Commands {
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("%w: command name cannot be empty", ErrInvalidValue)
		}
		if strings.TrimSpace(cmd) != cmd {
			return NewErrInvalidValue("commands", cmd)
		}
		if _, ok := seen[cmd]; ok {
			return fmt.Errorf("%w: duplicate command '%s'", ErrInvalidValue, cmd)
		}
		seen[cmd] = struct{}{}
	}

	return nil
}

// validateReferences ensures every entry of a per-command list names a configured command.
func (c *Config) validateReferences(key string, names []string) error {
	known := make(map[string]struct{}, len(c.Commands))
	for _, cmd := range c.Commands {
		known[cmd] = struct{}{}
	}

	for _, name := range names {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: '%s' lists '%s', which is not a configured command", ErrInvalidValue, key, name)
		}
	}

	return nil
}
