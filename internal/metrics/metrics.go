// Package metrics provides Prometheus metrics for the syndication gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRequestsTotal counts feed requests by feed name and outcome.
	FeedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "syndication",
			Name:      "feed_requests_total",
			Help:      "Total number of feed requests",
		},
		[]string{"feed", "status"},
	)

	// UpstreamRequestsTotal counts content API calls by resource and status.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "syndication",
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream content API requests",
		},
		[]string{"resource", "status"},
	)

	// RenderDuration measures template rendering duration.
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "syndication",
			Name:      "render_duration_seconds",
			Help:      "Duration of feed template rendering in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"template"},
	)
)

// RecordFeedRequest records the outcome of one feed request.
func RecordFeedRequest(feed, status string) {
	FeedRequestsTotal.WithLabelValues(feed, status).Inc()
}

// RecordUpstreamRequest records the outcome of one content API call.
func RecordUpstreamRequest(resource, status string) {
	UpstreamRequestsTotal.WithLabelValues(resource, status).Inc()
}

// ObserveRender records how long rendering one template took.
func ObserveRender(template string, seconds float64) {
	RenderDuration.WithLabelValues(template).Observe(seconds)
}
