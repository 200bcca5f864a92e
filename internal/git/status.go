package git

import (
	"context"
	"strings"
)

// HasUncommittedChanges checks whether the working tree has any change that
// is not yet committed. Staged, unstaged and untracked entries all count.
func HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}
