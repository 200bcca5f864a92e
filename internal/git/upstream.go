package git

import (
	"context"
	"fmt"
	"strconv"
)

// HasUpstream reports whether the current branch has a remote tracking
// branch configured. Absence of one is not an error condition.
func HasUpstream(ctx context.Context) bool {
	_, err := RunGitCommandWithContext(ctx, "rev-parse", "--abbrev-ref", "@{upstream}")
	return err == nil
}

// Fetch updates remote-tracking refs from the default remote
func Fetch(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "fetch")
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}
	return nil
}

// CommitsBehind counts commits reachable from the upstream branch but not
// from HEAD.
func CommitsBehind(ctx context.Context) (int, error) {
	output, err := RunGitCommandWithContext(ctx, "rev-list", "--count", "HEAD..@{upstream}")
	if err != nil {
		return 0, fmt.Errorf("failed to count commits behind upstream: %w", err)
	}

	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return count, nil
}
