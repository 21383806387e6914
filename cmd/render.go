package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/helptext"
	"github.com/mozilla-ai/helpspec/internal/spec"
)

type RenderCmd struct {
	*cmd.BaseCmd
	fs afero.Fs

	Command  string
	Complete bool
}

func NewRenderCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &RenderCmd{
		BaseCmd: baseCmd,
		fs:      opts.Fs,
	}

	cobraCommand := &cobra.Command{
		Use:   "render <spec-file>",
		Short: "Regenerates the help text of one command from a spec file",
		Long:  c.longDescription(),
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.Command,
		"command",
		"",
		"Display name or identifier of the command to render",
	)
	_ = cobraCommand.MarkFlagRequired("command")

	cobraCommand.Flags().BoolVar(
		&c.Complete,
		"complete",
		false,
		"Include hidden options",
	)

	return cobraCommand, nil
}

func (c *RenderCmd) longDescription() string {
	return `Regenerates the help text of one command from a spec file, laid out the way the tool
lays out its own help. Hidden options are left out unless --complete is given.

Spec files do not record blank lines at the end of a usage block; one is assumed between
the usage and the options.`
}

func (c *RenderCmd) run(cobraCmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(c.Command)
	if name == "" {
		return fmt.Errorf("command cannot be empty")
	}

	data, err := afero.ReadFile(c.fs, args[0])
	if err != nil {
		return fmt.Errorf("reading spec file: %w", err)
	}

	specs, err := spec.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	s := findSpec(specs, name)
	if s == nil {
		return fmt.Errorf("command '%s' not found in %s", name, args[0])
	}

	rendered := helptext.Render(withUsageSeparator(s))
	lines := rendered.Visible
	if c.Complete {
		lines = rendered.Complete
	}

	out := cobraCmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

func findSpec(specs []*spec.CommandSpec, name string) *spec.CommandSpec {
	for _, s := range specs {
		if s.DisplayName == name || s.ID == name {
			return s
		}
	}

	return nil
}

// withUsageSeparator returns s with a blank line after its usage when options follow.
func withUsageSeparator(s *spec.CommandSpec) *spec.CommandSpec {
	if len(s.Entries) == 0 || len(s.Usage) == 0 || s.Usage[len(s.Usage)-1] == "" {
		return s
	}

	out := *s
	out.Usage = append(append([]string{}, s.Usage...), "")

	return &out
}
