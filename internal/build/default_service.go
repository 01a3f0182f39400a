package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/syclconfigure/internal/configure"
	cerrors "git.home.luguber.info/inful/syclconfigure/internal/errors"
	"git.home.luguber.info/inful/syclconfigure/internal/logfields"
	"git.home.luguber.info/inful/syclconfigure/internal/metrics"
	"git.home.luguber.info/inful/syclconfigure/internal/runner"
)

// Stage names used for logging and metrics.
const (
	StageTranslate = "translate"
	StageConfigure = "configure"
)

// Service orchestrates a single configure run.
type Service struct {
	runner   runner.Runner
	recorder metrics.Recorder
	out      io.Writer
	logger   *slog.Logger
	newRunID func() string
}

// NewService creates a Service that executes through r.
func NewService(r runner.Runner) *Service {
	if r == nil {
		r = runner.NewBinaryRunner()
	}
	return &Service{
		runner:   r,
		recorder: metrics.NoopRecorder{},
		out:      os.Stdout,
		logger:   slog.Default(),
		newRunID: uuid.NewString,
	}
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithOutput sets where user-facing messages are printed (stdout by default).
func (s *Service) WithOutput(w io.Writer) *Service {
	if w != nil {
		s.out = w
	}
	return s
}

// WithLogger sets the structured logger.
func (s *Service) WithLogger(l *slog.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithRunIDFunc overrides run ID generation (for testing).
func (s *Service) WithRunIDFunc(f func() string) *Service {
	if f != nil {
		s.newRunID = f
	}
	return s
}

// Run validates and translates req.Options, then runs cmake in the build
// directory. Validation failures return before the runner is touched.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:     s.newRunID(),
		BuildDir:  req.Options.BuildDir,
		StartTime: start,
	}
	log := s.logger.With(logfields.RunID(result.RunID))
	finish := func(status Status, outcome metrics.OutcomeLabel) {
		result.Status = status
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(start)
		s.recorder.IncConfigureOutcome(outcome)
		s.recorder.ObserveConfigureDuration(result.Duration)
	}

	stageStart := time.Now()
	flags, err := configure.Translate(req.Options)
	s.recorder.ObserveStageDuration(StageTranslate, time.Since(stageStart))
	if err != nil {
		s.recorder.IncStageResult(StageTranslate, metrics.ResultFatal)
		finish(StatusInvalid, metrics.OutcomeInvalid)
		log.Debug("Options rejected", logfields.Stage(StageTranslate), logfields.Error(err))
		return result, cerrors.InvalidOptions(err)
	}
	s.recorder.IncStageResult(StageTranslate, metrics.ResultSuccess)

	binary := req.Binary
	if binary == "" {
		binary = runner.DefaultBinary
	}
	args := flags.Args()
	result.Command = append([]string{binary}, args...)

	_, _ = fmt.Fprintf(s.out, "[Cmake Command]: %s\n", strings.Join(result.Command, " "))
	log.Info("Configuring",
		logfields.Binary(binary),
		logfields.Generator(flags.Generator()),
		logfields.BuildType(req.Options.BuildType),
		logfields.SourceDir(req.Options.SourceDir),
		logfields.BuildDir(req.Options.BuildDir),
		slog.Bool("dry_run", req.DryRun))

	if req.DryRun {
		finish(StatusDryRun, metrics.OutcomeDryRun)
		return result, nil
	}

	stageStart = time.Now()
	err = s.runner.Execute(ctx, binary, args, req.Options.BuildDir)
	s.recorder.ObserveStageDuration(StageConfigure, time.Since(stageStart))
	if err != nil {
		s.recorder.IncStageResult(StageConfigure, metrics.ResultFatal)
		result.StaleCache = s.diagnoseStaleCache(req.Options.BuildDir)
		s.recorder.SetStaleCache(result.StaleCache != "")
		finish(StatusFailed, metrics.OutcomeFailed)
		log.Error("Configure failed",
			logfields.Stage(StageConfigure),
			logfields.ExitCode(runner.ExitCode(err)),
			logfields.DurationMS(float64(result.Duration.Milliseconds())),
			logfields.Error(err))
		return result, cerrors.ConfigureFailed(req.Options.BuildDir, fmt.Errorf("%w: %w", ErrConfigure, err))
	}

	s.recorder.IncStageResult(StageConfigure, metrics.ResultSuccess)
	s.recorder.SetStaleCache(false)
	finish(StatusSuccess, metrics.OutcomeSuccess)
	log.Info("Configure completed", logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

// diagnoseStaleCache prints a removal hint when buildDir holds a cache
// marker and returns its path. It never modifies the directory.
func (s *Service) diagnoseStaleCache(buildDir string) string {
	marker := filepath.Join(buildDir, CacheMarker)
	info, err := os.Stat(marker)
	if err != nil || info.IsDir() {
		return ""
	}
	_, _ = fmt.Fprintf(s.out, "There is %s at %s ... you can try to remove it and rerun.\n", CacheMarker, marker)
	_, _ = fmt.Fprintln(s.out, "Configure failed!")
	return marker
}
