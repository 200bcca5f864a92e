package git

import (
	"context"
	"fmt"
)

// Commit creates a commit of the staged changes with the given message.
// Always non-interactive; the message is supplied by the caller.
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
