// Package metrics records configure run metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	svc := build.NewService(r).WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// A configure run is a short-lived process, so there is nothing to scrape.
// PrometheusRecorder.WriteTextfile writes the registry in the text exposition
// format for the node_exporter textfile collector instead.
package metrics
