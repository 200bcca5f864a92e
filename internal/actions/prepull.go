package actions

import (
	"context"

	"pullsafe.dev/pullsafe/internal/config"
	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/internal/runtime"
	"pullsafe.dev/pullsafe/internal/tui"
)

// PrePullAction runs the pre-pull safety check and prints its verdict.
// It returns the decision together with an ExitCodeError when the verdict
// requires a non-zero exit status.
func PrePullAction(ctx *runtime.Context) (Decision, error) {
	splog := ctx.Splog
	bg := context.Background()

	// Repository check. Fails closed: if git cannot confirm a repository
	// (including git missing from PATH), do not report one.
	if !git.IsRepository(bg) {
		splog.Info("Not a git repo")
		splog.Info(tui.ColorRed("Decision: Do NOT get updates yet"))
		return DecisionNotARepo, pullsafeerrors.NewExitError(1, nil)
	}

	// Dirty-work check. Fails open: once the repository is confirmed, an
	// unreadable status means unsaved work must be assumed.
	dirty, err := git.HasUncommittedChanges(bg)
	if err != nil {
		splog.Debug("status check failed, assuming unsaved work: %v", err)
		dirty = true
	}
	if dirty {
		splog.Warn(tui.ColorYellow("Warning: You have unsaved work. Getting teammate updates right now could be risky."))
		splog.Info(tui.ColorRed("Decision: Do NOT get updates yet"))
		return DecisionUnsafe, pullsafeerrors.NewExitError(1, nil)
	}
	splog.Info("Safe to get teammate updates")

	checkTeammateUpdates(bg, ctx)

	// The verdict no longer depends on the upstream stage: the working tree
	// is clean, so pulling cannot lose anything.
	splog.Info(tui.ColorGreen("Decision: Safe to get updates"))
	return DecisionSafe, nil
}

// checkTeammateUpdates reports whether commits are waiting on the upstream
// branch. Purely informational; every failure path degrades to a printed
// status rather than an error.
func checkTeammateUpdates(bg context.Context, ctx *runtime.Context) {
	splog := ctx.Splog

	if !git.HasUpstream(bg) {
		splog.Info("No remote tracking branch set")
		return
	}

	cfg := loadConfigOrDefaults()
	if cfg.GetFetchBeforeCheck() {
		// Best effort; continuing with stale tracking data is acceptable
		if err := git.Fetch(bg); err != nil {
			splog.Debug("fetch failed, using stale remote info: %v", err)
		}
	}

	behind, err := git.CommitsBehind(bg)
	if err != nil {
		splog.Debug("behind count failed, assuming none: %v", err)
		behind = 0
	}

	if behind > 0 {
		splog.Info("Teammate updates available: yes")
	} else {
		splog.Info("Teammate updates available: no")
	}
}

// loadConfigOrDefaults reads the repo config, falling back to a config where
// every accessor returns its default.
func loadConfigOrDefaults() *config.RepoConfig {
	root, err := git.GetRepoRoot()
	if err != nil {
		return &config.RepoConfig{}
	}
	cfg, err := config.LoadConfig(root)
	if err != nil {
		return &config.RepoConfig{}
	}
	return cfg
}
