package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse pipeline metrics. Counters accumulate across reloads, so the
// rate of ParseWarnings is the useful signal, not the absolute value.
var (
	RowsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpulse_scorecard_rows_scanned_total",
		Help: "Raw spreadsheet rows inspected by the parser.",
	})
	RecordsParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpulse_scorecard_records_total",
		Help: "Score records accepted by the parser.",
	})
	ParseWarnings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpulse_scorecard_parse_warnings_total",
		Help: "Score-card files skipped with a warning.",
	})
	TableReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkpulse_table_reloads_total",
		Help: "Times the in-memory record table was rebuilt.",
	})
)

// HTTP metrics, recorded by the middleware chain.
var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parkpulse_http_requests_total",
		Help: "HTTP requests by method, route pattern and status class.",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parkpulse_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)
