package git_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/testhelpers"
)

func TestHasUpstream(t *testing.T) {
	t.Run("false without a tracking branch", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.False(t, git.HasUpstream(context.Background()))
	})

	t.Run("true after pushing with upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		err = scene.Repo.PushBranchWithUpstream("origin", "main")
		require.NoError(t, err)

		require.True(t, git.HasUpstream(context.Background()))
	})
}

func TestFetch(t *testing.T) {
	t.Run("succeeds against a local remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		err = scene.Repo.PushBranchWithUpstream("origin", "main")
		require.NoError(t, err)

		require.NoError(t, git.Fetch(context.Background()))
	})

	t.Run("fails without a remote", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		require.Error(t, git.Fetch(context.Background()))
	})
}

func TestCommitsBehind(t *testing.T) {
	t.Run("zero when up to date", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		err = scene.Repo.PushBranchWithUpstream("origin", "main")
		require.NoError(t, err)

		behind, err := git.CommitsBehind(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, behind)
	})

	t.Run("counts commits published by someone else", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		barePath, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		err = scene.Repo.PushBranchWithUpstream("origin", "main")
		require.NoError(t, err)

		// A teammate clones the remote and publishes two commits
		teammateDir, err := os.MkdirTemp("", "pullsafe-teammate-*")
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(teammateDir) })

		teammate, err := testhelpers.CloneTo(barePath, teammateDir)
		require.NoError(t, err)
		require.NoError(t, teammate.CreateChangeAndCommit("teammate change 1", "tm1"))
		require.NoError(t, teammate.CreateChangeAndCommit("teammate change 2", "tm2"))
		require.NoError(t, teammate.RunGitCommand("push", "origin", "main"))

		// The local repo only sees them after fetching
		require.NoError(t, git.Fetch(context.Background()))

		behind, err := git.CommitsBehind(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, behind)
	})

	t.Run("fails without an upstream", func(t *testing.T) {
		_ = testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := git.CommitsBehind(context.Background())
		require.Error(t, err)
	})
}
