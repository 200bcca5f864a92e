package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	pullsafeerrors "pullsafe.dev/pullsafe/internal/errors"
)

// Repository wraps a go-git repository for read-side access. Mutations go
// through the command runner so they behave exactly like user-issued git.
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       path,
	}, nil
}

// OpenCurrent opens the repository containing the runner's working directory.
// Repositories are opened fresh rather than cached so that branch switches
// made through the runner are always visible.
func OpenCurrent() (*Repository, error) {
	root, err := GetRepoRoot()
	if err != nil {
		return nil, err
	}
	return OpenRepository(root)
}

// CurrentBranch returns the short name of the branch HEAD is on
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", pullsafeerrors.ErrNotOnBranch
	}

	return head.Name().Short(), nil
}

// BranchNames returns all local branch names
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// BranchCommitDate returns the committer date of the commit a branch points at
func (r *Repository) BranchCommitDate(branchName string) (time.Time, error) {
	ref, err := r.Reference(plumbing.NewBranchReferenceName(branchName), true)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve branch %s: %w", branchName, err)
	}

	commit, err := r.CommitObject(ref.Hash())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read commit for %s: %w", branchName, err)
	}

	return commit.Committer.When, nil
}
