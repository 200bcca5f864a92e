package actions

import (
	"context"
	"sort"
	"time"

	"pullsafe.dev/pullsafe/internal/branchutil"
	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
	"pullsafe.dev/pullsafe/internal/git"
	"pullsafe.dev/pullsafe/internal/runtime"
	"pullsafe.dev/pullsafe/internal/tui"
)

// checkpointInfo pairs a checkpoint branch with the time encoded in its name
type checkpointInfo struct {
	name    string
	created time.Time
}

// ListAction prints existing checkpoint branches, newest first
func ListAction(ctx *runtime.Context) error {
	splog := ctx.Splog
	bg := context.Background()

	if !git.IsRepository(bg) {
		splog.Info("Not a git repo")
		return pullsafeerrors.NewExitError(1, nil)
	}

	repo, err := git.OpenCurrent()
	if err != nil {
		return err
	}

	names, err := repo.BranchNames()
	if err != nil {
		return err
	}

	prefix := loadConfigOrDefaults().GetCheckpointPrefix()

	var checkpoints []checkpointInfo
	for _, name := range names {
		if created, ok := branchutil.ParseCheckpointTime(prefix, name); ok {
			checkpoints = append(checkpoints, checkpointInfo{name: name, created: created})
		}
	}

	if len(checkpoints) == 0 {
		splog.Info("No checkpoints found")
		return nil
	}

	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].created.After(checkpoints[j].created)
	})

	for _, cp := range checkpoints {
		splog.Info("%s  %s", tui.ColorCyan(cp.name), cp.created.Format("2006-01-02 15:04:05"))
	}
	return nil
}
