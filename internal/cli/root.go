// Package cli wires the pullsafe commands into a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pullsafe <command>",
		Short: "Pullsafe answers one question: is it safe to pull teammate changes right now?",
		Long: `Pullsafe answers one question: is it safe to pull teammate changes right now?

pre-pull checks the repository and prints a decision. safe-save commits
local changes to a timestamped checkpoint branch before you do anything
risky, then returns to the branch you were on.`,
		Version:       buildVersion(version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown tokens fall through to RunE instead of cobra's default
		// unknown-command error, so usage is printed and the process exits
		// with status 2.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			if len(args) > 0 {
				return pullsafeerrors.NewExitError(2, fmt.Errorf("unknown command %q", args[0]))
			}
			return pullsafeerrors.NewExitError(2, nil)
		},
	}

	rootCmd.AddCommand(newPrePullCmd())
	rootCmd.AddCommand(newSafeSaveCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// buildVersion returns the full version string including commit and date
func buildVersion(version, commit, date string) string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}
