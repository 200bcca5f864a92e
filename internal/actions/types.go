// Package actions implements the pre-pull check, the safe-save checkpoint
// flow and checkpoint listing.
package actions

// Decision is the outcome of the pre-pull safety check
type Decision int

const (
	// DecisionSafe means it is safe to pull teammate changes now
	DecisionSafe Decision = iota

	// DecisionUnsafe means pulling now could clobber unsaved work
	DecisionUnsafe

	// DecisionNotARepo means the working directory is not inside a git repository
	DecisionNotARepo
)

func (d Decision) String() string {
	switch d {
	case DecisionSafe:
		return "safe"
	case DecisionUnsafe:
		return "unsafe"
	case DecisionNotARepo:
		return "not a repository"
	default:
		return "unknown"
	}
}
