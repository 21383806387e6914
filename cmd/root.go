package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/flags"
)

var version = "dev" // Set at build time using -ldflags

type RootCmd struct {
	*cmd.BaseCmd
}

func Execute() error {
	rootCmd, err := NewRootCmd(&RootCmd{BaseCmd: &cmd.BaseCmd{}})
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

// NewRootCmd builds the command tree. Options are passed on to every sub-command.
func NewRootCmd(c *RootCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           "helpspec <command> [args]",
		Short:         "Reconstructs command-line option specs from help output and verifies them by round trip.",
		Long:          c.longDescription(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	fns := []func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error){
		NewInitCmd,
		NewExtractCmd,
		NewParseCmd,
		NewFmtCmd,
		NewRenderCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(c.BaseCmd, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `The 'helpspec' CLI captures the help output of a tool's commands, reconstructs the
options each command accepts, and checks the result by regenerating the help text and
comparing it with what was captured.`
}
