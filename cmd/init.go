package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mozilla-ai/helpspec/internal/cmd"
	cmdopts "github.com/mozilla-ai/helpspec/internal/cmd/options"
	"github.com/mozilla-ai/helpspec/internal/config"
	"github.com/mozilla-ai/helpspec/internal/flags"
)

type InitCmd struct {
	*cmd.BaseCmd
	cfgInitializer config.Initializer
}

func NewInitCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InitCmd{
		BaseCmd:        baseCmd,
		cfgInitializer: opts.ConfigInitializer,
	}

	cobraCommand := &cobra.Command{
		Use:   "init",
		Short: "Creates a helpspec config file seeded with the git command list",
		Long:  c.longDescription(),
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	return cobraCommand, nil
}

func (c *InitCmd) longDescription() string {
	return fmt.Sprintf(
		"Creates a %s configuration file listing the git commands to extract.\n\n"+
			"Edit the file to point helpspec at another tool or to change which artifacts are written.\n\n"+
			"The configuration file path can be overridden using the `--%s` flag or the `%s` environment variable",
		flags.DefaultConfigFile,
		flags.FlagNameConfigFile,
		flags.EnvVarConfigFile,
	)
}

func (c *InitCmd) run(cmd *cobra.Command, _ []string) error {
	logger := c.Logger()

	var initFilePath string

	// If the config file flag just has the default value, we're expecting to create it in the current working directory.
	if flags.ConfigFile == flags.DefaultConfigFile {
		cwd, err := os.Getwd()
		if err != nil {
			logger.Error("Failed to get working directory", "error", err)
			return fmt.Errorf("error getting current directory: %w", err)
		}
		initFilePath = filepath.Join(cwd, flags.DefaultConfigFile)
	} else {
		initFilePath = flags.ConfigFile
	}

	if err := c.cfgInitializer.Init(initFilePath); err != nil {
		logger.Error("Config initialization failed", "error", err)
		return fmt.Errorf("error initializing helpspec config: %w", err)
	}
	if _, err := fmt.Fprintf(
		cmd.OutOrStdout(),
		"✓ Config file created: %s\n", initFilePath,
	); err != nil {
		return err
	}

	return nil
}
