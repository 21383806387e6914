package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/capture"
	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/extract"
	"github.com/mozilla-ai/helpspec/internal/helptext"
	"github.com/mozilla-ai/helpspec/internal/printer"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

type ParseCmd struct {
	*cmd.BaseCmd
	fs afero.Fs

	Name   string
	Format cmd.OutputFormat
	Strict bool
}

func NewParseCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ParseCmd{
		BaseCmd: baseCmd,
		fs:      opts.Fs,
		Format:  cmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "parse <visible-file> [complete-file]",
		Short: "Reconstructs the option spec of one command from captured help files",
		Long:  c.longDescription(),
		Args:  cobra.RangeArgs(1, 2),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.Name,
		"name",
		"",
		"Display name of the command, e.g. 'commit-graph read'",
	)
	_ = cobraCommand.MarkFlagRequired("name")

	cobraCommand.Flags().BoolVar(
		&c.Strict,
		"strict-alignment",
		false,
		"Fail when the visible help is not a subsequence of the complete help",
	)

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)

	return cobraCommand, nil
}

func (c *ParseCmd) longDescription() string {
	return `Reconstructs the option spec of a single command from a file holding its visible help
and, optionally, a file holding its complete help including hidden options.

The spec is verified by regenerating both help texts before it is printed. On a mismatch
a unified diff is written to stderr.`
}

func (c *ParseCmd) run(cobraCmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	var complete string
	if len(args) > 1 {
		complete = args[1]
	}

	src, err := capture.NewFileSource(c.fs, args[0], complete)
	if err != nil {
		return err
	}

	extractor, err := extract.NewExtractor(
		src,
		extract.WithStrictAlignment(c.Strict),
		extract.WithLogger(c.Logger()),
	)
	if err != nil {
		return err
	}

	handler, err := cmd.FormatHandler[*spec.CommandSpec](cobraCmd.OutOrStdout(), c.Format, &printer.SpecPrinter{})
	if err != nil {
		return err
	}

	res, err := extractor.Extract(cobraCmd.Context(), name)
	if err != nil {
		var mismatch *helptext.MismatchError
		if errors.As(err, &mismatch) {
			_, _ = fmt.Fprint(cobraCmd.ErrOrStderr(), mismatch.Diff())
		}
		return err
	}

	return handler.HandleResult(res.Spec())
}
