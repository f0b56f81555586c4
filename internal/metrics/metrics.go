// Package metrics holds the Prometheus collectors for report queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// queryTotal counts query executions by query name.
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxipark_query_total",
		Help: "Total report queries computed, by query",
	}, []string{"query"})

	// queryDuration records how long computing a query took.
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taxipark_query_duration_seconds",
		Help:    "Report query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"query"})

	reportCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxipark_report_cache_total",
		Help: "Report cache lookups by result",
	}, []string{"result"})

	snapshotReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taxipark_snapshot_reloads_total",
		Help: "Snapshot reloads by result",
	}, []string{"result"})

	snapshotTrips = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "taxipark_snapshot_trips",
		Help: "Number of trips in the current snapshot",
	})
)

// ObserveQuery records one computed query.
func ObserveQuery(query string, elapsed time.Duration) {
	queryTotal.WithLabelValues(query).Inc()
	queryDuration.WithLabelValues(query).Observe(elapsed.Seconds())
}

// ObserveCache records a report cache lookup result.
func ObserveCache(result string) {
	reportCache.WithLabelValues(result).Inc()
}

// ObserveReload records a snapshot reload. trips is ignored when err is not nil.
func ObserveReload(trips int, err error) {
	if err != nil {
		snapshotReloads.WithLabelValues("error").Inc()
		return
	}
	snapshotReloads.WithLabelValues("ok").Inc()
	snapshotTrips.Set(float64(trips))
}
