package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/perms"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

type FmtCmd struct {
	*cmd.BaseCmd
	fs afero.Fs

	Check bool
}

func NewFmtCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &FmtCmd{
		BaseCmd: baseCmd,
		fs:      opts.Fs,
	}

	cobraCommand := &cobra.Command{
		Use:   "fmt <spec-file>",
		Short: "Rewrites a spec file in canonical form",
		Long:  "Decodes a spec file and writes it back in canonical form. With --check the file is left untouched and the command fails if it is not already canonical.",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().BoolVar(
		&c.Check,
		"check",
		false,
		"Only report whether the file is canonical",
	)

	return cobraCommand, nil
}

func (c *FmtCmd) run(cobraCmd *cobra.Command, args []string) error {
	path := args[0]
	logger := c.Logger().Named("fmt")

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("reading spec file: %w", err)
	}

	specs, err := spec.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := spec.Encode(&buf, specs...); err != nil {
		return err
	}

	if bytes.Equal(data, buf.Bytes()) {
		logger.Debug("Spec file already canonical", "path", path, "commands", len(specs))
		return nil
	}

	if c.Check {
		return fmt.Errorf("%s is not in canonical form", path)
	}

	if err := afero.WriteFile(c.fs, path, buf.Bytes(), perms.RegularFile); err != nil {
		return fmt.Errorf("writing spec file: %w", err)
	}

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(), "✓ Formatted %s (%d commands)\n", path, len(specs))

	return nil
}
