package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pullsafe.dev/pullsafe/internal/config"
	"pullsafe.dev/pullsafe/testhelpers"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		cfg, err := config.LoadConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, config.DefaultCheckpointPrefix, cfg.GetCheckpointPrefix())
		require.Equal(t, config.DefaultFallbackBranch, cfg.GetFallbackBranch())
		require.Equal(t, config.DefaultCommitMessage, cfg.GetCommitMessage())
		require.True(t, cfg.GetFetchBeforeCheck())
	})

	t.Run("reads configured values", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		configPath := filepath.Join(scene.Dir, ".git", ".pullsafe_config")
		content := `{
  "checkpointPrefix": "wip",
  "fallbackBranch": "trunk",
  "commitMessage": "WIP checkpoint",
  "fetchBeforeCheck": false
}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		cfg, err := config.LoadConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "wip", cfg.GetCheckpointPrefix())
		require.Equal(t, "trunk", cfg.GetFallbackBranch())
		require.Equal(t, "WIP checkpoint", cfg.GetCommitMessage())
		require.False(t, cfg.GetFetchBeforeCheck())
	})

	t.Run("rejects malformed config", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		configPath := filepath.Join(scene.Dir, ".git", ".pullsafe_config")
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

		_, err := config.LoadConfig(scene.Dir)
		require.Error(t, err)
	})

	t.Run("empty strings fall back to defaults", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		configPath := filepath.Join(scene.Dir, ".git", ".pullsafe_config")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"checkpointPrefix": ""}`), 0600))

		cfg, err := config.LoadConfig(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, config.DefaultCheckpointPrefix, cfg.GetCheckpointPrefix())
	})
}

func TestSave(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	cfg, err := config.LoadConfig(scene.Dir)
	require.NoError(t, err)

	prefix := "wip"
	cfg.CheckpointPrefix = &prefix
	require.NoError(t, cfg.Save())

	reloaded, err := config.LoadConfig(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, "wip", reloaded.GetCheckpointPrefix())
	// Unset keys stay at their defaults after a round trip
	require.Equal(t, config.DefaultCommitMessage, reloaded.GetCommitMessage())
}
