package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once              sync.Once
	reg               *prom.Registry
	stageDuration     *prom.HistogramVec
	stageResults      *prom.CounterVec
	configureDuration prom.Histogram
	configureOutcome  *prom.CounterVec
	staleCache        prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "syclconfigure",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual configure stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "syclconfigure",
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.configureDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "syclconfigure",
			Name:      "configure_duration_seconds",
			Help:      "Total configure duration including the cmake run",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		})
		pr.configureOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "syclconfigure",
			Name:      "configure_outcomes_total",
			Help:      "Configure outcomes by final status",
		}, []string{"outcome"})
		pr.staleCache = prom.NewGauge(prom.GaugeOpts{
			Namespace: "syclconfigure",
			Name:      "stale_cache_present",
			Help:      "1 when a failed run found a CMakeCache.txt in the build directory",
		})
		reg.MustRegister(pr.stageDuration, pr.stageResults, pr.configureDuration, pr.configureOutcome, pr.staleCache)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveConfigureDuration(d time.Duration) {
	if p == nil || p.configureDuration == nil {
		return
	}
	p.configureDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncConfigureOutcome(outcome OutcomeLabel) {
	if p == nil || p.configureOutcome == nil {
		return
	}
	p.configureOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetStaleCache(present bool) {
	if p == nil || p.staleCache == nil {
		return
	}
	if present {
		p.staleCache.Set(1)
		return
	}
	p.staleCache.Set(0)
}

// Registry returns the registry the metrics were registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format. The file is written atomically via a temporary sibling.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
