package main

import (
	"fmt"
	"os"

	"pullsafe.dev/pullsafe/internal/cli"
	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/tui"
)

// Build info set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	tui.SetupColorProfile()

	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(pullsafeerrors.ExitCode(err))
	}
}
