package extract

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mozilla-ai/helpspec/internal/artifacts"
)

// Option defines a functional option for configuring an Extractor.
type Option func(*Options) error

// Options contains optional configuration for an Extractor.
type Options struct {
	// skip holds commands that are ignored entirely.
	skip map[string]struct{}

	// adhoc holds commands that are captured but not parsed.
	adhoc map[string]struct{}

	// strictAlignment turns an ambiguous alignment into a failure instead of a warning.
	strictAlignment bool

	// parallel is the number of commands processed at once.
	parallel int

	// keepGoing attempts every command instead of stopping at the first failure.
	keepGoing bool

	// writer receives artifacts, when set.
	writer *artifacts.Writer

	logger hclog.Logger
}

// NewOptions returns options with defaults applied, followed by opts in order.
func NewOptions(opts ...Option) (Options, error) {
	o := Options{
		skip:     map[string]struct{}{},
		adhoc:    map[string]struct{}{},
		parallel: 1,
		logger:   hclog.NewNullLogger(),
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

// WithSkip names commands to ignore.
func WithSkip(commands ...string) Option {
	return func(o *Options) error {
		for _, c := range commands {
			o.skip[strings.TrimSpace(c)] = struct{}{}
		}
		return nil
	}
}

// WithAdhoc names commands whose help is captured but not parsed.
func WithAdhoc(commands ...string) Option {
	return func(o *Options) error {
		for _, c := range commands {
			o.adhoc[strings.TrimSpace(c)] = struct{}{}
		}
		return nil
	}
}

// WithStrictAlignment configures whether an ambiguous alignment fails the command.
func WithStrictAlignment(strict bool) Option {
	return func(o *Options) error {
		o.strictAlignment = strict
		return nil
	}
}

// WithParallel sets how many commands are processed at once.
func WithParallel(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			return fmt.Errorf("parallel must be at least 1, got %d", n)
		}
		o.parallel = n
		return nil
	}
}

// WithKeepGoing configures whether a failing command stops the run.
func WithKeepGoing(keepGoing bool) Option {
	return func(o *Options) error {
		o.keepGoing = keepGoing
		return nil
	}
}

// WithArtifacts sets the writer that receives the spec file and debugging artifacts.
func WithArtifacts(w *artifacts.Writer) Option {
	return func(o *Options) error {
		o.writer = w
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
