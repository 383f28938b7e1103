package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteRequests counts obligation quote computations by kind and outcome.
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_requests_total",
			Help: "Payment obligation quote computations",
		},
		[]string{"kind", "status"},
	)

	// QuoteCacheHits counts quote responses served from the redis cache.
	QuoteCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_cache_hits_total",
			Help: "Quote responses replayed from cache",
		},
	)
)
