// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationDuration times whole-collection loads and saves.
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collection_store_operation_duration_seconds",
			Help:    "Duration of collection store loads and saves in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	// StoreOperationErrors counts failed loads and saves.
	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collection_store_errors_total",
			Help: "Total number of failed collection store operations",
		},
		[]string{"operation", "collection"},
	)

	// StoreRecords reports the record count of each collection after its last load or save.
	StoreRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "collection_store_records",
			Help: "Number of records in a collection as of the last load or save",
		},
		[]string{"collection"},
	)

	// APIRequestsTotal counts HTTP requests by route pattern and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// APIRequestDuration times HTTP requests by route pattern.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordStoreOperation observes one store operation. count is ignored when err is non-nil.
func RecordStoreOperation(operation, collection string, count int, d time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, collection).Observe(d.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, collection).Inc()
		return
	}
	StoreRecords.WithLabelValues(collection).Set(float64(count))
}

// RecordAPIRequest observes one HTTP request.
func RecordAPIRequest(method, route string, status int, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
