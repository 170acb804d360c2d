package foodhabits

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodhabits_client",
			Name:      "sync_enqueued_total",
			Help:      "Sync jobs accepted into the shard executor.",
		},
		[]string{"stream", "shard"},
	)

	syncFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "foodhabits_client",
			Name:      "sync_failures_total",
			Help:      "Sync jobs the executor gave up on.",
		},
	)
)
