package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/confixhq/confix/cmd"
	processdomain "github.com/confixhq/confix/internal/core/domain/process"
)

var (
	// Overridden by ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// A nonzero child exit code is not a tool failure: forward it.
		var exitErr *processdomain.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
