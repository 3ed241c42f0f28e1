// Package metrics exposes Prometheus collectors for the progression pipeline,
// the recognizer and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wildlog"

// SightingsLogged counts sightings by source (manual, photo) and whether the
// species was new to the collector.
var SightingsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "sightings_logged_total",
	Help:      "Total sightings run through the progression pipeline.",
}, []string{"source", "result"})

var XPAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "xp_awarded_total",
	Help:      "Total XP handed out, species and badge rewards combined.",
})

var BadgesAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "badges_awarded_total",
	Help:      "Total badges awarded by badge id.",
}, []string{"scope", "badge"})

// SaveConflicts counts optimistic-lock retries on profile and swarm saves.
var SaveConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "save_conflicts_total",
	Help:      "Stale version conflicts hit while saving progress.",
}, []string{"entity"})

var IdentificationsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "identifications_in_flight",
	Help:      "Photos currently waiting on the recognition service.",
})

var IdentificationsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "identifications_finished_total",
	Help:      "Finished identifications by status.",
}, []string{"status"})

var RecognizerLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "recognizer_latency_seconds",
	Help:      "Round trip time of recognition requests.",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration by route and status code.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "code"})
