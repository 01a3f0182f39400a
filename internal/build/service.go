package build

import (
	"time"

	"git.home.luguber.info/inful/syclconfigure/internal/configure"
)

// CacheMarker is the file cmake leaves in the build directory. Its presence
// after a failed run usually means stale cached state.
const CacheMarker = "CMakeCache.txt"

// Request contains all inputs required to execute a configure run.
type Request struct {
	// Options are the validated-or-not build options; Run validates them.
	Options configure.Options

	// Binary is the configure tool; defaults to runner.DefaultBinary.
	Binary string

	// DryRun prints the command without executing it.
	DryRun bool
}

// Result is the outcome of a configure run.
type Result struct {
	// Status indicates overall outcome.
	Status Status

	// RunID identifies this run in logs and metrics.
	RunID string

	// Command is the binary followed by its arguments; empty when options were invalid.
	Command []string

	// BuildDir is the working directory cmake ran in.
	BuildDir string

	// StaleCache is the path of a cache marker found after a failure, if any.
	StaleCache string

	// Duration is the total execution time.
	Duration time.Duration

	// StartTime is when Run was entered.
	StartTime time.Time

	// EndTime is when Run returned.
	EndTime time.Time
}

// Status represents the outcome of a configure run.
type Status string

const (
	// StatusSuccess indicates cmake exited with status 0.
	StatusSuccess Status = "success"

	// StatusFailed indicates cmake could not be run or exited non-zero.
	StatusFailed Status = "failed"

	// StatusInvalid indicates the options were rejected before any invocation.
	StatusInvalid Status = "invalid"

	// StatusDryRun indicates the command was printed but not executed.
	StatusDryRun Status = "dry_run"
)

// IsSuccess returns true if the run should be reported as successful.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess || s == StatusDryRun
}
