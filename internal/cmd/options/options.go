package options

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/config"
)

type CmdOption func(*CmdOptions) error

// SourceFactory builds the capture source for a run.
// An empty captureDir means the tool is executed.
type SourceFactory func(cfg *config.Config, captureDir string, logger hclog.Logger) (capture.Source, error)

type CmdOptions struct {
	ConfigLoader      config.Loader
	ConfigInitializer config.Initializer
	Fs                afero.Fs
	SourceFactory     SourceFactory
}

func defaultOptions() CmdOptions {
	fs := afero.NewOsFs()
	configLoader := &config.DefaultLoader{Fs: fs}

	return CmdOptions{
		ConfigLoader:      configLoader,
		ConfigInitializer: configLoader,
		Fs:                fs,
		SourceFactory:     DefaultSourceFactory(fs),
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

// DefaultSourceFactory reads captures from a directory on fs when one is given,
// and otherwise runs the configured tool.
func DefaultSourceFactory(fs afero.Fs) SourceFactory {
	return func(cfg *config.Config, captureDir string, logger hclog.Logger) (capture.Source, error) {
		if dir := strings.TrimSpace(captureDir); dir != "" {
			return capture.NewDirSource(fs, dir)
		}

		opts := []capture.Option{
			capture.WithHelpFlags(cfg.HelpFlag, cfg.HelpAllFlag),
			capture.WithNoHelpAll(cfg.NoHelpAll...),
			capture.WithEnv(cfg.Env...),
			capture.WithLogger(logger),
		}

		timeout, err := cfg.InvocationTimeout()
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			opts = append(opts, capture.WithTimeout(timeout))
		}

		return capture.NewExecSource(cfg.Tool, opts...)
	}
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		if l == nil {
			return fmt.Errorf("config loader cannot be nil")
		}
		o.ConfigLoader = l
		return nil
	}
}

func WithConfigInitializer(i config.Initializer) CmdOption {
	return func(o *CmdOptions) error {
		if i == nil {
			return fmt.Errorf("config initializer cannot be nil")
		}
		o.ConfigInitializer = i
		return nil
	}
}

// WithFs sets the filesystem used for artifacts and spec files.
func WithFs(fs afero.Fs) CmdOption {
	return func(o *CmdOptions) error {
		if fs == nil {
			return fmt.Errorf("filesystem cannot be nil")
		}
		o.Fs = fs
		return nil
	}
}

func WithSourceFactory(f SourceFactory) CmdOption {
	return func(o *CmdOptions) error {
		if f == nil {
			return fmt.Errorf("source factory cannot be nil")
		}
		o.SourceFactory = f
		return nil
	}
}
