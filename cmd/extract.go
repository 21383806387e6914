package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/artifacts"
	"github.com/mozilla-ai/helpspec/internal/cache"
	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/config"
	"github.com/mozilla-ai/helpspec/internal/extract"
	"github.com/mozilla-ai/helpspec/internal/flags"
	"github.com/mozilla-ai/helpspec/internal/printer"
)

type ExtractCmd struct {
	*cmd.BaseCmd
	cfgLoader     config.Loader
	fs            afero.Fs
	sourceFactory cmdopts.SourceFactory

	Format     cmd.OutputFormat
	CaptureDir string
	OutputDir  string
	KeepGoing  bool
	Parallel   int

	Cache        bool
	CacheDir     string
	CacheTTL     time.Duration
	RefreshCache bool
}

func NewExtractCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ExtractCmd{
		BaseCmd:       baseCmd,
		cfgLoader:     config.NewValidatingLoader(opts.ConfigLoader, config.RequireCommands),
		fs:            opts.Fs,
		sourceFactory: opts.SourceFactory,
		Format:        cmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "extract [command...]",
		Short: "Extracts and verifies option specs for the configured commands",
		Long:  c.longDescription(),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.CaptureDir,
		"capture-dir",
		"",
		"Optional, read captured help from this directory instead of running the tool",
	)

	cobraCommand.Flags().StringVar(
		&c.OutputDir,
		"output",
		"",
		"Optional, directory for the spec file and artifacts (overrides the config file)",
	)

	cobraCommand.Flags().BoolVar(
		&c.KeepGoing,
		"keep-going",
		false,
		"Attempt every command and report all failures instead of stopping at the first",
	)

	cobraCommand.Flags().IntVar(
		&c.Parallel,
		"parallel",
		1,
		"Number of commands to process at once",
	)

	cobraCommand.Flags().BoolVar(
		&c.Cache,
		"cache",
		false,
		"Reuse help captured by earlier runs while it is fresh",
	)

	cobraCommand.Flags().StringVar(
		&c.CacheDir,
		"cache-dir",
		"",
		"Optional, directory for cached help (defaults to the user cache directory)",
	)

	cobraCommand.Flags().DurationVar(
		&c.CacheTTL,
		"cache-ttl",
		cache.DefaultTTL,
		"How long cached help stays fresh",
	)

	cobraCommand.Flags().BoolVar(
		&c.RefreshCache,
		"refresh-cache",
		false,
		"Capture every command again and update the cache",
	)

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCommand, nil
}

func (c *ExtractCmd) longDescription() string {
	return `Captures the help of each command, reconstructs its options, regenerates the help text
from the result and compares it with the capture. Commands are taken from the arguments,
or from the config file when none are given.

The spec file is written only when every command verifies, unless --keep-going is set,
in which case it holds the commands that did.`
}

func (c *ExtractCmd) run(cobraCmd *cobra.Command, args []string) error {
	logger := c.Logger()

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	commands, err := c.commands(cfg, args)
	if err != nil {
		return err
	}

	src, err := c.source(cfg, logger)
	if err != nil {
		return err
	}

	dir := cfg.Artifacts.Dir
	if out := strings.TrimSpace(c.OutputDir); out != "" {
		dir = out
	}

	writer, err := artifacts.NewWriter(
		c.fs,
		dir,
		cfg.Artifacts.SpecFile,
		artifacts.Toggles{
			Specs:    cfg.Artifacts.Specs,
			Raw:      cfg.Artifacts.Raw,
			Parse:    cfg.Artifacts.Parse,
			Test:     cfg.Artifacts.Test,
			Debug:    cfg.Artifacts.Debug,
			Markdown: cfg.Artifacts.Markdown,
			HTML:     cfg.Artifacts.HTML,
		},
		logger,
	)
	if err != nil {
		return err
	}

	extractor, err := extract.NewExtractor(
		src,
		extract.WithSkip(cfg.Skip...),
		extract.WithAdhoc(cfg.Adhoc...),
		extract.WithStrictAlignment(cfg.StrictAlignment),
		extract.WithParallel(c.Parallel),
		extract.WithKeepGoing(c.KeepGoing),
		extract.WithArtifacts(writer),
		extract.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	summaryPrinter := printer.NewSummaryPrinter(c.ColorEnabled(cobraCmd.OutOrStdout()))
	handler, err := cmd.FormatHandler[extract.Summary](cobraCmd.OutOrStdout(), c.Format, summaryPrinter)
	if err != nil {
		return err
	}

	report, runErr := extractor.Run(cobraCmd.Context(), commands)

	wroteSpecs := cfg.Artifacts.Specs && (runErr == nil || c.KeepGoing) && len(report.Specs()) > 0
	summaryPrinter.SetFooter(func(w io.Writer, count int) {
		_, _ = fmt.Fprintf(
			w,
			"\n%d ok, %d failed, %d skipped, %d captured only\n",
			report.Count(extract.StatusOK),
			report.Count(extract.StatusFailed),
			report.Count(extract.StatusSkipped),
			report.Count(extract.StatusAdhoc),
		)
		if wroteSpecs {
			_, _ = fmt.Fprintf(w, "Spec file: %s\n", writer.SpecPath())
		}
	})

	if err := handler.HandleResults(report.Summaries()...); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("extraction failed: %w", runErr)
	}

	return nil
}

// source returns the capture source for the run, behind the cache when caching is requested.
// Help read from a capture directory is never cached.
func (c *ExtractCmd) source(cfg *config.Config, logger hclog.Logger) (capture.Source, error) {
	src, err := c.sourceFactory(cfg, c.CaptureDir, logger)
	if err != nil {
		return nil, err
	}
	if !c.Cache || strings.TrimSpace(c.CaptureDir) != "" {
		return src, nil
	}

	opts := []cache.Option{
		cache.WithTTL(c.CacheTTL),
		cache.WithRefreshCache(c.RefreshCache),
	}
	if dir := strings.TrimSpace(c.CacheDir); dir != "" {
		opts = append(opts, cache.WithDirectory(dir))
	}

	return cache.NewCache(c.fs, src, logger, opts...)
}

// commands returns the commands named in args, or the configured ones when there are none.
// Skipped commands are kept so the extractor reports them.
func (c *ExtractCmd) commands(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return slices.Clone(cfg.Commands), nil
	}

	out := make([]string, 0, len(args))
	for _, a := range args {
		name := strings.TrimSpace(a)
		if name == "" {
			return nil, fmt.Errorf("command name cannot be empty")
		}
		out = append(out, name)
	}

	return out, nil
}
