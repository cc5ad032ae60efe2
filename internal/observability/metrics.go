// Package observability holds the prometheus collectors of the marketplace.
// They register with the default registry, which /metrics serves.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freight"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "outbox_events_published_total", Help: "Domain events relayed to the broker"},
		[]string{"event"},
	)
	OutboxRelayFailures = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "outbox_relay_failures_total", Help: "Relay runs that published nothing because of an error"},
	)

	LoadsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: namespace, Name: "loads", Help: "Loads per lifecycle status"},
		[]string{"status"},
	)
)
