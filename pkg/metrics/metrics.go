// Package metrics declares the Prometheus collectors shared across the
// application. Collectors register themselves on the default registry, which
// the HTTP server exposes on the metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ScansStarted counts scans started, partitioned by scan type.
	ScansStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "avconsole_scans_started_total",
		Help: "Number of scans started.",
	}, []string{"type"})

	// ScansCompleted counts scans completed, partitioned by scan type and by
	// how the completion happened (worker job or lazy read).
	ScansCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "avconsole_scans_completed_total",
		Help: "Number of scans completed.",
	}, []string{"type", "trigger"})

	// ScanDurationSeconds observes wall-clock scan durations by type.
	ScanDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "avconsole_scan_duration_seconds",
		Help:    "Time from scan start to completion.",
		Buckets: []float64{1, 3, 5, 8, 10, 15, 30, 60, 120},
	}, []string{"type"})

	// ThreatsDetected counts synthetic threats attached to completed scans,
	// partitioned by severity.
	ThreatsDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "avconsole_threats_detected_total",
		Help: "Number of threats attached to completed scans.",
	}, []string{"severity"})

	// ThreatsCleaned counts threats marked cleaned.
	ThreatsCleaned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "avconsole_threats_cleaned_total",
		Help: "Number of threats marked cleaned.",
	})
)
