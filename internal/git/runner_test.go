package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("returns trimmed output", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := git.RunGitCommand("rev-parse", "--abbrev-ref", "HEAD")
		require.NoError(t, err)
		require.Equal(t, "main", output)
	})

	t.Run("runs in a specific directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := git.RunGitCommandInDir(scene.Dir, "rev-parse", "--abbrev-ref", "HEAD")
		require.NoError(t, err)
		require.Equal(t, "main", output)
	})

	t.Run("wraps failures in GitCommandError", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := git.RunGitCommandWithContext(context.Background(), "rev-parse", "--verify", "no-such-ref")
		require.Error(t, err)

		var gitErr *pullsafeerrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.Equal(t, "git", gitErr.Command)
		require.Equal(t, []string{"rev-parse", "--verify", "no-such-ref"}, gitErr.Args)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := git.RunGitCommandWithContext(ctx, "status", "--porcelain")
		require.Error(t, err)
	})
}
