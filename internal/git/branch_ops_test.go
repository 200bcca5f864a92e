package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/testhelpers"
)

func TestCreateAndCheckoutBranch(t *testing.T) {
	t.Run("creates and switches to the branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.CreateAndCheckoutBranch(context.Background(), "safety/20260825-153012")
		require.NoError(t, err)

		current, err := scene.Repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "safety/20260825-153012", current)
	})

	t.Run("fails when the branch already exists", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.NoError(t, scene.Repo.RunGitCommand("branch", "existing"))

		err := git.CreateAndCheckoutBranch(context.Background(), "existing")
		require.Error(t, err)

		var gitErr *pullsafeerrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
	})
}

func TestCheckoutBranch(t *testing.T) {
	t.Run("switches back to an existing branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.NoError(t, git.CreateAndCheckoutBranch(context.Background(), "other"))
		require.NoError(t, git.CheckoutBranch(context.Background(), "main"))

		current, err := scene.Repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "main", current)
	})

	t.Run("fails for a missing branch", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.CheckoutBranch(context.Background(), "no-such-branch")
		require.Error(t, err)
	})
}

func TestStageAllAndCommit(t *testing.T) {
	t.Run("stages and commits everything in one go", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.NoError(t, scene.Repo.CreateChange("modified", "1", true))
		require.NoError(t, scene.Repo.CreateChange("brand new", "extra", true))

		require.NoError(t, git.StageAll(context.Background()))
		require.NoError(t, git.Commit(context.Background(), "Safety checkpoint"))

		clean, err := scene.Repo.WorkingTreeClean()
		require.NoError(t, err)
		require.True(t, clean)

		message, err := scene.Repo.CommitMessage("HEAD")
		require.NoError(t, err)
		require.Equal(t, "Safety checkpoint", message)
	})

	t.Run("commit fails with nothing staged", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		err := git.Commit(context.Background(), "Safety checkpoint")
		require.Error(t, err)
	})
}
