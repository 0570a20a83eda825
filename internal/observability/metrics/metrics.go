package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "fleetops_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	seriesQueryTotal   *prometheus.CounterVec
	seriesQueryLatency *prometheus.HistogramVec

	seriesExportTotal   *prometheus.CounterVec
	seriesExportLatency *prometheus.HistogramVec

	recordsSkipped *prometheus.CounterVec

	refreshEvaluations *prometheus.CounterVec
)

// Init registers observability metrics.
func Init() {
	registerOnce.Do(func() {
		seriesQueryTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "series_query_total",
				Help: "Total series queries by result",
			},
			[]string{"result"},
		)
		seriesQueryLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "series_query_latency_seconds",
				Help:    "Series query latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		seriesExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "series_export_total",
				Help: "Total series export operations by format and result",
			},
			[]string{"format", "result"},
		)
		seriesExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "series_export_latency_seconds",
				Help:    "Series export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		recordsSkipped = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "records_skipped_total",
				Help: "Total feed rows skipped for malformed dates, by kind",
			},
			[]string{"kind"},
		)

		refreshEvaluations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "refresh_evaluations_total",
				Help: "Total live-track schedule evaluations by state",
			},
			[]string{"state"},
		)

		prometheus.MustRegister(
			seriesQueryTotal,
			seriesQueryLatency,
			seriesExportTotal,
			seriesExportLatency,
			recordsSkipped,
			refreshEvaluations,
		)
	})
}

// ObserveSeriesQuery records series query latency and result.
func ObserveSeriesQuery(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if seriesQueryTotal != nil {
		seriesQueryTotal.WithLabelValues(result).Inc()
	}
	if seriesQueryLatency != nil {
		seriesQueryLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveSeriesExport records export latency and result.
func ObserveSeriesExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if seriesExportTotal != nil {
		seriesExportTotal.WithLabelValues(format, result).Inc()
	}
	if seriesExportLatency != nil {
		seriesExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// IncRecordSkipped counts a feed row dropped for a malformed date.
func IncRecordSkipped(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	if recordsSkipped != nil {
		recordsSkipped.WithLabelValues(kind).Inc()
	}
}

// IncRefreshEvaluation counts one scheduler evaluation by state.
func IncRefreshEvaluation(withinWindow bool) {
	state := "dormant"
	if withinWindow {
		state = "active"
	}
	if refreshEvaluations != nil {
		refreshEvaluations.WithLabelValues(state).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
