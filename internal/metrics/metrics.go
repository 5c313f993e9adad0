package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics
var (
	EmailsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reuse_emails_ingested_total",
			Help: "Total number of ingested emails by outcome",
		},
		[]string{"outcome", "reason"},
	)

	IngestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reuse_ingest_failures_total",
			Help: "Total number of ingestions that failed with an error",
		},
	)

	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reuse_ingest_duration_seconds",
			Help:    "Duration of email ingestion in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
		[]string{"outcome"},
	)

	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reuse_notification_failures_total",
			Help: "Total number of subscriber notifications that could not be published",
		},
	)
)

// Geocoder metrics
var (
	GeocoderLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reuse_geocoder_lookups_total",
			Help: "Total number of geocoder lookups by source and result",
		},
		[]string{"source", "result"},
	)

	GeocoderCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reuse_geocoder_circuit_state",
			Help: "Geocoder circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// Queue metrics
var (
	InboundMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reuse_inbound_messages_total",
			Help: "Total number of inbound queue messages by result",
		},
		[]string{"result"},
	)
)
