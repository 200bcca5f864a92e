package actions

import (
	"context"
	"time"

	"pullsafe.dev/pullsafe/internal/branchutil"
	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/internal/runtime"
	"pullsafe.dev/pullsafe/internal/tui"
)

// SafeSaveAction commits all local changes to a timestamped checkpoint
// branch and returns to the original branch. A clean working tree is a
// success, not an error.
func SafeSaveAction(ctx *runtime.Context) error {
	splog := ctx.Splog
	bg := context.Background()

	if !git.IsRepository(bg) {
		splog.Info("Not a git repo")
		return pullsafeerrors.NewExitError(1, nil)
	}

	dirty, err := git.HasUncommittedChanges(bg)
	if err != nil {
		// Same fail-open rule as the pre-pull check: unknown state is
		// treated as unsaved work, so the checkpoint is attempted.
		splog.Debug("status check failed, assuming unsaved work: %v", err)
		dirty = true
	}
	if !dirty {
		splog.Info("No changes to save")
		return nil
	}

	cfg := loadConfigOrDefaults()

	// Read the current branch; fall back to a default name rather than
	// aborting so the flow can still switch back after the commit.
	originalBranch := cfg.GetFallbackBranch()
	if repo, err := git.OpenCurrent(); err == nil {
		if name, err := repo.CurrentBranch(); err == nil {
			originalBranch = name
		} else {
			splog.Debug("could not read current branch, falling back to %s: %v", originalBranch, err)
		}
	}

	safetyBranch := branchutil.CheckpointName(cfg.GetCheckpointPrefix(), time.Now())

	// Nothing has changed yet, so a failure here needs no rollback
	if err := git.CreateAndCheckoutBranch(bg, safetyBranch); err != nil {
		splog.Debug("%v", err)
		splog.Error("Error: Could not create safety branch")
		return pullsafeerrors.NewExitError(1, nil)
	}

	if err := stageAndCommit(bg, cfg.GetCommitMessage()); err != nil {
		// Best-effort switch back; the safety branch is left behind and the
		// working tree may be mid-checkpoint.
		_ = git.CheckoutBranch(bg, originalBranch)
		splog.Debug("%v", err)
		splog.Error("Error: Could not save changes")
		return pullsafeerrors.NewExitError(1, nil)
	}

	if err := git.CheckoutBranch(bg, originalBranch); err != nil {
		// The checkpoint commit exists; only the active branch is wrong
		splog.Debug("%v", err)
		splog.Error("Error: Could not switch back to original branch")
		return pullsafeerrors.NewExitError(1, nil)
	}

	splog.Info("Safety checkpoint created: %s", tui.ColorCyan(safetyBranch))
	return nil
}

func stageAndCommit(ctx context.Context, message string) error {
	if err := git.StageAll(ctx); err != nil {
		return err
	}
	return git.Commit(ctx, message)
}
