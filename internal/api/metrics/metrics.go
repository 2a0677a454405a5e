// Package metrics defines and registers all custom Prometheus metrics for the
// feed service. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feed"

// PostsCreatedTotal counts posts accepted and durably written.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts successfully created.",
	},
)

// PostsRejectedTotal counts write attempts rejected before persistence.
// Label:
//   - reason: "empty", "too_long", "not_emoji", or "rate_limited"
var PostsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_rejected_total",
		Help:      "Total number of post submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// FeedRequestsTotal counts feed reads.
// Label:
//   - enrichment: "full" when every author resolved, "degraded" otherwise
var FeedRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_requests_total",
		Help:      "Total number of feed reads, labelled by enrichment outcome.",
	},
	[]string{"enrichment"},
)

// IdentityResolutionDuration measures one batch lookup against the identity
// provider, from request to decoded response.
var IdentityResolutionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "identity_resolution_duration_seconds",
		Help:      "Duration of batch profile lookups against the identity provider.",
		Buckets:   prometheus.DefBuckets,
	},
)

// IdentityResolutionFailuresTotal counts batch lookups that failed entirely.
// These degrade the feed to anonymous authorship rather than failing it.
var IdentityResolutionFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolution_failures_total",
		Help:      "Total number of identity provider lookups that failed.",
	},
)
