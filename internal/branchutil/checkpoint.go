// Package branchutil generates and parses checkpoint branch names.
package branchutil

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of the timestamp segment of a checkpoint
// branch name, e.g. safety/20260825-153012.
const TimestampLayout = "20060102-150405"

// CheckpointName builds a checkpoint branch name from a prefix and a time.
// Names are unique per distinct second of invocation time.
func CheckpointName(prefix string, t time.Time) string {
	return prefix + "/" + t.Format(TimestampLayout)
}

// IsCheckpoint reports whether branchName is a checkpoint branch under prefix
func IsCheckpoint(prefix, branchName string) bool {
	_, ok := ParseCheckpointTime(prefix, branchName)
	return ok
}

// ParseCheckpointTime extracts the creation time encoded in a checkpoint
// branch name. Returns false for names that are not checkpoints under prefix.
func ParseCheckpointTime(prefix, branchName string) (time.Time, bool) {
	rest, found := strings.CutPrefix(branchName, prefix+"/")
	if !found {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(TimestampLayout, rest, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
