package ring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/c360studio/algebra/category"
)

// Prometheus counters for structure construction and cache behavior.
// Registered against the default registry at package load; exposed by
// whatever /metrics endpoint the embedding process runs.
var (
	structuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algebra",
			Subsystem: "ring",
			Name:      "structures_total",
			Help:      "Structures constructed, by declared category tag.",
		},
		[]string{"category"},
	)

	cachePopulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algebra",
			Subsystem: "ring",
			Name:      "cache_populations_total",
			Help:      "Lazy slots populated for the first time, by slot.",
		},
		[]string{"slot"},
	)

	fieldResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algebra",
			Subsystem: "ring",
			Name:      "field_resolutions_total",
			Help:      "IsField boundary decisions, by resolving tier and verdict.",
		},
		[]string{"tier", "verdict"},
	)

	domainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "algebra",
			Subsystem: "ring",
			Name:      "domain_errors_total",
			Help:      "Recoverable domain errors returned to callers, by operation.",
		},
		[]string{"op"},
	)
)

func recordConstruction(tag category.Category) {
	structuresTotal.WithLabelValues(tag.String()).Inc()
}

func recordSlotPopulated(slot string) {
	cachePopulationsTotal.WithLabelValues(slot).Inc()
}

func recordFieldResolution(tier string, v Verdict) {
	fieldResolutionsTotal.WithLabelValues(tier, v.String()).Inc()
}

func recordDomainError(op string) {
	domainErrorsTotal.WithLabelValues(op).Inc()
}
