// Package config provides repository configuration management,
// including reading and writing the pullsafe configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".pullsafe_config"

// Defaults used when the config file is absent or a key is unset.
const (
	DefaultCheckpointPrefix = "safety"
	DefaultFallbackBranch   = "main"
	DefaultCommitMessage    = "Safety checkpoint"
)

// RepoConfig represents the repository configuration stored under .git.
// Pointer fields distinguish "unset" from an explicit zero value.
type RepoConfig struct {
	CheckpointPrefix *string `json:"checkpointPrefix,omitempty"`
	FallbackBranch   *string `json:"fallbackBranch,omitempty"`
	CommitMessage    *string `json:"commitMessage,omitempty"`
	FetchBeforeCheck *bool   `json:"fetchBeforeCheck,omitempty"`

	repoRoot string
}

// LoadConfig reads the repository configuration. A missing file is not an
// error; it yields a config where every accessor returns its default.
func LoadConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	config := &RepoConfig{repoRoot: repoRoot}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, nil
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	config.repoRoot = repoRoot

	return config, nil
}

// Save writes the configuration back to .git
func (c *RepoConfig) Save() error {
	configPath := filepath.Join(c.repoRoot, ".git", configFileName)

	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, configJSON, 0600)
}

// GetCheckpointPrefix returns the branch-name prefix for checkpoints
func (c *RepoConfig) GetCheckpointPrefix() string {
	if c.CheckpointPrefix != nil && *c.CheckpointPrefix != "" {
		return *c.CheckpointPrefix
	}
	return DefaultCheckpointPrefix
}

// GetFallbackBranch returns the branch name assumed when the current branch
// cannot be read.
func (c *RepoConfig) GetFallbackBranch() string {
	if c.FallbackBranch != nil && *c.FallbackBranch != "" {
		return *c.FallbackBranch
	}
	return DefaultFallbackBranch
}

// GetCommitMessage returns the message used for checkpoint commits
func (c *RepoConfig) GetCommitMessage() string {
	if c.CommitMessage != nil && *c.CommitMessage != "" {
		return *c.CommitMessage
	}
	return DefaultCommitMessage
}

// GetFetchBeforeCheck returns whether pre-pull fetches before counting
// commits behind upstream.
func (c *RepoConfig) GetFetchBeforeCheck() bool {
	if c.FetchBeforeCheck != nil {
		return *c.FetchBeforeCheck
	}
	return true
}
