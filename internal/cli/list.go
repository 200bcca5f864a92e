package cli

import (
	"github.com/spf13/cobra"

	"pullsafe.dev/pullsafe/internal/actions"
	"pullsafe.dev/pullsafe/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List existing safety checkpoints, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return actions.ListAction(runtime.NewContext())
		},
	}
}
