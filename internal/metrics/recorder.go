package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFatal   ResultLabel = "fatal"
)

// OutcomeLabel is the final status of a configure run.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
	OutcomeInvalid OutcomeLabel = "invalid"
	OutcomeDryRun  OutcomeLabel = "dry_run"
)

// Recorder defines observability hooks for configure runs.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveConfigureDuration(d time.Duration)
	IncConfigureOutcome(outcome OutcomeLabel)
	SetStaleCache(present bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveConfigureDuration(time.Duration)     {}
func (NoopRecorder) IncConfigureOutcome(OutcomeLabel)           {}
func (NoopRecorder) SetStaleCache(bool)                         {}
