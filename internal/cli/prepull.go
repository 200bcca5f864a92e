package cli

import (
	"github.com/spf13/cobra"

	"pullsafe.dev/pullsafe/internal/actions"
	"pullsafe.dev/pullsafe/internal/runtime"
)

// newPrePullCmd creates the pre-pull command
func newPrePullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-pull",
		Short: "Check whether it is safe to pull teammate changes right now",
		Long: `Check whether it is safe to pull teammate changes right now.

Verifies that the working directory is a git repository and that the
working tree is clean, then reports whether the upstream branch has new
commits. Exits 0 when pulling is safe, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := runtime.NewContext()
			_, err := actions.PrePullAction(ctx)
			return err
		},
	}
}
