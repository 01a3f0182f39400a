package runner

// Sentinel errors for the external configure step. Callers wrap them with
// the failing command's context.

import (
	"errors"
	"os/exec"
)

var (
	// ErrBinaryNotFound indicates the cmake executable was not found on PATH.
	ErrBinaryNotFound = errors.New("cmake binary not found")
	// ErrExecutionFailed indicates the command returned a non-zero exit status.
	ErrExecutionFailed = errors.New("cmake execution failed")
)

// ExitCode extracts the process exit status from an Execute error.
// It returns -1 when err carries no exit status.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
