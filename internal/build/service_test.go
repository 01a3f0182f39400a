package build

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/syclconfigure/internal/configure"
	cerrors "git.home.luguber.info/inful/syclconfigure/internal/errors"
	"git.home.luguber.info/inful/syclconfigure/internal/metrics"
	"git.home.luguber.info/inful/syclconfigure/internal/runner"
)

type fakeRecorder struct {
	outcomes   []metrics.OutcomeLabel
	stages     map[string]metrics.ResultLabel
	staleCache bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{stages: map[string]metrics.ResultLabel{}}
}

func (f *fakeRecorder) ObserveStageDuration(string, time.Duration) {}
func (f *fakeRecorder) IncStageResult(stage string, r metrics.ResultLabel) {
	f.stages[stage] = r
}
func (f *fakeRecorder) ObserveConfigureDuration(time.Duration) {}
func (f *fakeRecorder) IncConfigureOutcome(o metrics.OutcomeLabel) {
	f.outcomes = append(f.outcomes, o)
}
func (f *fakeRecorder) SetStaleCache(present bool) { f.staleCache = present }

func newTestService(r runner.Runner) (*Service, *bytes.Buffer, *fakeRecorder) {
	var out bytes.Buffer
	rec := newFakeRecorder()
	svc := NewService(r).
		WithOutput(&out).
		WithRecorder(rec).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithRunIDFunc(func() string { return "run-1" })
	return svc, &out, rec
}

func TestStatus_IsSuccess(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusSuccess, true},
		{StatusDryRun, true},
		{StatusFailed, false},
		{StatusInvalid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			require.Equal(t, tt.expected, tt.status.IsSuccess())
		})
	}
}

func TestService_Run_Success(t *testing.T) {
	buildDir := t.TempDir()
	rr := &runner.RecordingRunner{}
	svc, out, rec := newTestService(rr)

	opts := configure.NewOptions("/src", buildDir)
	opts.ARM, opts.CUDA = true, true

	result, err := svc.Run(context.Background(), Request{Options: opts})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, "run-1", result.RunID)
	require.Empty(t, result.StaleCache)

	calls := rr.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, runner.DefaultBinary, calls[0].Binary)
	require.Equal(t, buildDir, calls[0].Dir)
	require.Equal(t, "/src/llvm", calls[0].Args[len(calls[0].Args)-1])
	require.Contains(t, calls[0].Args, "-DLLVM_TARGETS_TO_BUILD=ARM;AArch64;NVPTX")
	require.Contains(t, calls[0].Args, "-DLIBCLC_TARGETS_TO_BUILD=nvptx64--;nvptx64--nvidiacl")
	require.Contains(t, calls[0].Args, "-DSYCL_BUILD_PI_CUDA=ON")

	require.Equal(t, append([]string{"cmake"}, calls[0].Args...), result.Command)
	require.Contains(t, out.String(), "[Cmake Command]: cmake -G Ninja ")
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeSuccess}, rec.outcomes)
	require.Equal(t, metrics.ResultSuccess, rec.stages[StageConfigure])
}

func TestService_Run_CustomBinary(t *testing.T) {
	rr := &runner.RecordingRunner{}
	svc, _, _ := newTestService(rr)

	_, err := svc.Run(context.Background(), Request{
		Options: configure.NewOptions("/src", t.TempDir()),
		Binary:  "/opt/cmake/bin/cmake",
	})
	require.NoError(t, err)
	require.Equal(t, "/opt/cmake/bin/cmake", rr.Calls()[0].Binary)
}

func TestService_Run_ValidationSkipsRunner(t *testing.T) {
	rr := &runner.RecordingRunner{}
	svc, out, rec := newTestService(rr)

	opts := configure.NewOptions("/src", t.TempDir())
	opts.L0Headers = "/l0/include"

	result, err := svc.Run(context.Background(), Request{Options: opts})
	require.Error(t, err)
	require.ErrorIs(t, err, configure.ErrIncompleteHardwareAbstractionPair)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryValidation))
	require.Equal(t, StatusInvalid, result.Status)
	require.Empty(t, result.Command)
	require.Empty(t, rr.Calls())
	require.Empty(t, out.String())
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeInvalid}, rec.outcomes)
}

func TestService_Run_FailureWithStaleCache(t *testing.T) {
	buildDir := t.TempDir()
	marker := filepath.Join(buildDir, CacheMarker)
	require.NoError(t, os.WriteFile(marker, []byte("# cache\n"), 0o600))

	rr := &runner.RecordingRunner{Err: runner.ErrExecutionFailed}
	svc, out, rec := newTestService(rr)

	result, err := svc.Run(context.Background(), Request{Options: configure.NewOptions("/src", buildDir)})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigure)
	require.ErrorIs(t, err, runner.ErrExecutionFailed)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryInvocation))

	require.Equal(t, StatusFailed, result.Status)
	require.Equal(t, marker, result.StaleCache)
	require.Contains(t, out.String(), "There is CMakeCache.txt at "+marker+" ... you can try to remove it and rerun.\n")
	require.Contains(t, out.String(), "Configure failed!\n")
	require.True(t, rec.staleCache)
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeFailed}, rec.outcomes)

	// the marker is advisory only
	_, statErr := os.Stat(marker)
	require.NoError(t, statErr)
}

func TestService_Run_FailureWithoutStaleCache(t *testing.T) {
	buildDir := t.TempDir()
	rr := &runner.RecordingRunner{Err: errors.New("exit status 1")}
	svc, out, rec := newTestService(rr)

	result, err := svc.Run(context.Background(), Request{Options: configure.NewOptions("/src", buildDir)})
	require.Error(t, err)
	require.Equal(t, StatusFailed, result.Status)
	require.Empty(t, result.StaleCache)
	require.NotContains(t, out.String(), "CMakeCache.txt at")
	require.False(t, rec.staleCache)
}

func TestService_Run_CacheMarkerDirectoryIgnored(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(buildDir, CacheMarker), 0o750))

	svc, _, _ := newTestService(&runner.RecordingRunner{Err: errors.New("exit status 1")})
	result, err := svc.Run(context.Background(), Request{Options: configure.NewOptions("/src", buildDir)})
	require.Error(t, err)
	require.Empty(t, result.StaleCache)
}

func TestService_Run_DryRun(t *testing.T) {
	rr := &runner.RecordingRunner{}
	svc, out, rec := newTestService(rr)

	result, err := svc.Run(context.Background(), Request{
		Options: configure.NewOptions("/src", t.TempDir()),
		DryRun:  true,
	})
	require.NoError(t, err)
	require.Equal(t, StatusDryRun, result.Status)
	require.NotEmpty(t, result.Command)
	require.Empty(t, rr.Calls())
	require.Contains(t, out.String(), "[Cmake Command]: ")
	require.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeDryRun}, rec.outcomes)
}

func TestService_Run_WithPrometheusRecorder(t *testing.T) {
	pr := metrics.NewPrometheusRecorder(nil)
	svc := NewService(runner.NoopRunner{}).
		WithOutput(io.Discard).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithRecorder(pr)

	_, err := svc.Run(context.Background(), Request{Options: configure.NewOptions("/src", t.TempDir())})
	require.NoError(t, err)

	mfs, err := pr.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
