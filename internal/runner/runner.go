// Package runner executes the external configure command. The Runner
// interface keeps process spawning out of flag derivation so the latter
// can be tested without cmake installed.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"git.home.luguber.info/inful/syclconfigure/internal/logfields"
)

// DefaultBinary is the configure tool looked up on PATH.
const DefaultBinary = "cmake"

// Runner runs binary with args in dir and blocks until it exits.
//
// Contract:
//
//	Execute returns nil on exit status 0, an error wrapping ErrBinaryNotFound
//	when the binary cannot be resolved, and an error wrapping
//	ErrExecutionFailed for any other failure.
type Runner interface {
	Execute(ctx context.Context, binary string, args []string, dir string) error
}

// BinaryRunner invokes a binary present on PATH, streaming its output.
type BinaryRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewBinaryRunner returns a BinaryRunner attached to the process stdout/stderr.
func NewBinaryRunner() *BinaryRunner {
	return &BinaryRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (b *BinaryRunner) Execute(ctx context.Context, binary string, args []string, dir string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBinaryNotFound, err)
	}

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // arguments are derived from validated options
	cmd.Dir = dir
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	slog.Debug("BinaryRunner invoking configure", logfields.Binary(path), logfields.BuildDir(dir), slog.Int("args", len(args)))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutionFailed, err)
	}
	return nil
}

// NoopRunner performs no execution; useful for dry runs and tests.
type NoopRunner struct{}

func (NoopRunner) Execute(_ context.Context, binary string, _ []string, dir string) error {
	slog.Debug("NoopRunner skipping configure", logfields.Binary(binary), logfields.BuildDir(dir))
	return nil
}

// Call is one recorded Execute invocation.
type Call struct {
	Binary string
	Args   []string
	Dir    string
}

// RecordingRunner records every call and returns Err from each of them.
type RecordingRunner struct {
	Err error

	mu    sync.Mutex
	calls []Call
}

func (r *RecordingRunner) Execute(_ context.Context, binary string, args []string, dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Binary: binary, Args: append([]string(nil), args...), Dir: dir})
	return r.Err
}

// Calls returns the recorded invocations.
func (r *RecordingRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
