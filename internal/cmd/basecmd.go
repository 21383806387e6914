package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/mozilla-ai/helpspec/internal/flags"
	"github.com/mozilla-ai/helpspec/internal/perms"
)

type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the current logger for the command
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	// Get log level from flags first, then environment, then default
	logLevel := flags.LogLevel
	if logLevel == "" {
		logLevel = strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
		if logLevel == "" {
			logLevel = flags.DefaultLogLevel
		}
	}

	// Get log path from flags first, then environment
	logPath := flags.LogPath
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	var output io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perms.RegularFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file (%s): %v, using stderr\n", logPath, err)
		} else {
			output = f
		}
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "helpspec",
		Level:  hclog.LevelFromString(logLevel),
		Output: output,
	})

	return c.logger
}

// ColorEnabled reports whether w is a terminal that should receive colored output.
func (c *BaseCmd) ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
