package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	processdomain "github.com/confixhq/confix/internal/core/domain/process"
	configinfra "github.com/confixhq/confix/internal/infrastructure/config"
	"github.com/confixhq/confix/internal/infrastructure/logging"
	processinfra "github.com/confixhq/confix/internal/infrastructure/process"
)

// newRunCommand creates the run subcommand
func newRunCommand() *cobra.Command {
	var configPaths []string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run [flags] -- COMMAND [ARGS...]",
		Short: "Load config files and run a command with them in its environment",
		Long: `Run loads each --config file in order, merges the results with later
files overriding earlier ones, and executes COMMAND with the merged keys
layered on top of the inherited environment.

The command's standard streams are passed straight through, and its exit
code becomes confix's own exit code.`,
		Example: `  confix run -c .env -- ./server
  confix run -c base.json -c production.toml -- npm start
  confix run -- env`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, configPaths, args, verbose)
		},
	}

	cmd.Flags().StringArrayVarP(&configPaths, "config", "c", nil,
		"configuration file to load; may repeat, later files override earlier ones")
	cmd.Flags().BoolVar(&verbose, "verbose", false,
		"log load and merge diagnostics to stderr")

	return cmd
}

func runRun(cmd *cobra.Command, configPaths, argv []string, verbose bool) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	merged, err := configinfra.NewMerger(logger).Merge(configPaths)
	if err != nil {
		return err
	}

	command, err := processdomain.NewCommand(argv, merged)
	if err != nil {
		return err
	}

	code, err := processinfra.NewExecutor(logger).Run(cmd.Context(), command)
	if err != nil {
		return err
	}
	if code != 0 {
		return &processdomain.ExitCodeError{Code: code}
	}
	return nil
}
