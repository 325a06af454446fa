package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the core's instrumentation. A single instance is created
// at startup and injected into the services that record to it.
type Metrics struct {
	LedgerOps       *prometheus.CounterVec
	ReputationDecay prometheus.Counter
	MatchRequests   prometheus.Counter
	MatchExcluded   prometheus.Counter
	MatchDuration   prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LedgerOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "creditcore",
			Name:      "ledger_operations_total",
			Help:      "Ledger mutations by kind and outcome.",
		}, []string{"kind", "status"}),
		ReputationDecay: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditcore",
			Name:      "reputation_decay_applied_total",
			Help:      "Number of decay events written.",
		}),
		MatchRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditcore",
			Name:      "match_requests_total",
			Help:      "Reviewer ranking requests served.",
		}),
		MatchExcluded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "creditcore",
			Name:      "match_candidates_excluded_total",
			Help:      "Candidates dropped from ranking due to attribute fetch failures.",
		}),
		MatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "creditcore",
			Name:      "match_duration_seconds",
			Help:      "Latency of reviewer ranking calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
