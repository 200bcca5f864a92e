package cli

import (
	"github.com/spf13/cobra"

	"pullsafe.dev/pullsafe/internal/actions"
	"pullsafe.dev/pullsafe/internal/runtime"
)

// newSafeSaveCmd creates the safe-save command
func newSafeSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "safe-save",
		Short: "Commit local changes to a timestamped checkpoint branch",
		Long: `Commit local changes to a timestamped checkpoint branch.

Creates safety/YYYYMMDD-HHMMSS, commits everything in the working tree to
it, and switches back to the original branch. A clean working tree is a
no-op and exits 0.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return actions.SafeSaveAction(runtime.NewContext())
		},
	}
}
