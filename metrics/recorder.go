// Package metrics records run statistics in a Prometheus registry and
// writes them out in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/s0up4200/golfboard/golfgenius"
	"github.com/s0up4200/golfboard/season"
)

const namespace = "golfboard"

// Recorder owns a private registry with every golfboard metric
type Recorder struct {
	registry *prometheus.Registry

	apiRequests       *prometheus.CounterVec
	apiRequestLatency *prometheus.HistogramVec
	skippedUnits      *prometheus.CounterVec
	rejectedRecords   prometheus.Counter
	resultsAccepted   prometheus.Counter
	playersSeen       prometheus.Gauge
	playersQualified  prometheus.Gauge
	runDuration       prometheus.Gauge
	lastSuccess       prometheus.Gauge
}

var _ golfgenius.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder backed by a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Recorder{
		registry: reg,
		apiRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "GolfGenius API requests by route and HTTP status",
		}, []string{"route", "status"}),
		apiRequestLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "GolfGenius API request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		skippedUnits: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_units_total",
			Help:      "Events, rounds and tournaments skipped after a fetch failure",
		}, []string{"level"}),
		rejectedRecords: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_results_total",
			Help:      "Result records rejected for a missing name or score",
		}),
		resultsAccepted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Result records added to the leaderboard",
		}),
		playersSeen: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players",
			Help:      "Distinct players with at least one score",
		}),
		playersQualified: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players_qualified",
			Help:      "Players with enough rounds to be ranked",
		}),
		runDuration: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of the last run",
		}),
		lastSuccess: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
	}
}

// ObserveRequest implements golfgenius.Observer
func (r *Recorder) ObserveRequest(route string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	r.apiRequests.WithLabelValues(route, code).Inc()
	r.apiRequestLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordWalk records the skips and record counts of a season walk
func (r *Recorder) RecordWalk(summary *season.Summary) {
	if summary == nil {
		return
	}
	for _, skip := range summary.Skipped {
		r.skippedUnits.WithLabelValues(string(skip.Level)).Inc()
	}
	r.rejectedRecords.Add(float64(summary.Rejected))
	r.resultsAccepted.Add(float64(summary.Results))
}

// RecordLeaderboard records player counts
func (r *Recorder) RecordLeaderboard(players, qualified int) {
	r.playersSeen.Set(float64(players))
	r.playersQualified.Set(float64(qualified))
}

// RecordRun records the run duration, and the completion time on success
func (r *Recorder) RecordRun(duration time.Duration, success bool) {
	r.runDuration.Set(duration.Seconds())
	if success {
		r.lastSuccess.SetToCurrentTime()
	}
}

// WriteTextfile atomically writes every metric to path
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
