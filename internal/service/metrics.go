package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultNoop     = "noop"
	resultRejected = "rejected"
	resultFailed   = "persist_failed"
)

var (
	// mutationsTotal counts store mutations by operation and outcome
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nagarik_report_mutations_total",
		Help: "Report store mutations by operation and result",
	}, []string{"operation", "result"})

	// persistDuration tracks how long a whole-list save takes
	persistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nagarik_report_persist_duration_seconds",
		Help:    "Duration of report list saves in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
	}, []string{"operation"})

	reportsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nagarik_reports",
		Help: "Reports in the last committed list",
	})
)
