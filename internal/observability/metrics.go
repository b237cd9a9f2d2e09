// Package observability provides metrics and tracing for the application.
package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GitHubRequests counts GitHub API calls by endpoint and outcome.
	GitHubRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octoview_github_requests_total",
		Help: "Total number of GitHub API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	// SyncResults counts profile syncs by result path.
	// "fresh" means the persisted copy was served with no external calls,
	// "refreshed" means a successful fetch-and-reconcile,
	// "error" means the sync failed.
	SyncResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octoview_sync_results_total",
		Help: "Total number of profile syncs by result (fresh, refreshed, error)",
	}, []string{"result"})

	// SyncDuration records end-to-end sync latency by result path.
	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "octoview_sync_duration_seconds",
		Help:    "Profile sync latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	// EventsPersisted counts activity events newly written during reconciliation.
	EventsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "octoview_events_persisted_total",
		Help: "Total number of activity events inserted by reconciliation",
	})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "octoview_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// InitMetrics creates the fiberprometheus middleware for HTTP-level metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
