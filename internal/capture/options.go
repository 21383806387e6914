package capture

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	DefaultHelpFlag    = "-h"
	DefaultHelpAllFlag = "--help-all"
	DefaultTimeout     = 10 * time.Second
)

// Option defines a functional option for configuring an ExecSource.
type Option func(*Options) error

// Options contains optional configuration for an ExecSource.
type Options struct {
	// helpFlag requests the ordinary help.
	helpFlag string

	// helpAllFlag requests the help including hidden options.
	helpAllFlag string

	// noHelpAll lists commands that do not understand helpAllFlag.
	noHelpAll map[string]struct{}

	// timeout bounds each invocation of the tool.
	timeout time.Duration

	// env is appended to the environment of each invocation.
	env []string

	logger hclog.Logger
	runner Runner
}

// NewOptions returns options with defaults applied, followed by opts in order.
func NewOptions(opts ...Option) (Options, error) {
	o := Options{
		helpFlag:    DefaultHelpFlag,
		helpAllFlag: DefaultHelpAllFlag,
		noHelpAll:   map[string]struct{}{},
		timeout:     DefaultTimeout,
		logger:      hclog.NewNullLogger(),
		runner:      ExecRunner,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return Options{}, err
		}
	}

	return o, nil
}

// WithHelpFlags sets the flags used to request the visible and complete help.
func WithHelpFlags(help string, helpAll string) Option {
	return func(o *Options) error {
		help = strings.TrimSpace(help)
		helpAll = strings.TrimSpace(helpAll)
		if help == "" || helpAll == "" {
			return fmt.Errorf("help flags cannot be empty")
		}
		o.helpFlag = help
		o.helpAllFlag = helpAll
		return nil
	}
}

// WithNoHelpAll names commands for which only the visible help is requested.
func WithNoHelpAll(commands ...string) Option {
	return func(o *Options) error {
		for _, c := range commands {
			o.noHelpAll[strings.TrimSpace(c)] = struct{}{}
		}
		return nil
	}
}

// WithTimeout sets the time limit for each invocation.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", timeout)
		}
		o.timeout = timeout
		return nil
	}
}

// WithEnv adds KEY=VALUE pairs to the environment of each invocation.
func WithEnv(env ...string) Option {
	return func(o *Options) error {
		for _, kv := range env {
			if !strings.Contains(kv, "=") {
				return fmt.Errorf("environment entry must be KEY=VALUE, got '%s'", kv)
			}
		}
		o.env = append(o.env, env...)
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithRunner replaces the function that runs the tool.
func WithRunner(runner Runner) Option {
	return func(o *Options) error {
		if runner == nil {
			return fmt.Errorf("runner cannot be nil")
		}
		o.runner = runner
		return nil
	}
}
