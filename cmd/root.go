package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confix",
		Short: "Confix - run commands with file-based configuration injected",
		Long: `Confix loads configuration from .env, .json, and .toml files, merges them
into a single key/value set, and runs a command with that set injected into
its environment.

Values from later files override earlier ones, so a shared base config can
be layered under per-environment overrides without writing loading code
per project.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand())

	return rootCmd
}
