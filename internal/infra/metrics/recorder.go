// Package metrics exports engine measurements to Prometheus.
package metrics

import (
	"time"

	"geofence/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geofence"

type recorder struct {
	locationUpdates      prometheus.Counter
	regionMatches        prometheus.Counter
	checksWithMatches    prometheus.Counter
	cooldownSuppressions prometheus.Counter
	deliveries           *prometheus.CounterVec
	dispatchDuration     prometheus.Histogram
}

// NewRecorder registers the engine collectors on reg
func NewRecorder(reg prometheus.Registerer) service.MetricsRecorder {
	factory := promauto.With(reg)

	return &recorder{
		locationUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "location_updates_total",
			Help:      "Accepted location reports.",
		}),
		regionMatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_matches_total",
			Help:      "Regions containing a user position, summed over proximity checks.",
		}),
		checksWithMatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proximity_checks_matched_total",
			Help:      "Proximity checks that matched at least one region.",
		}),
		cooldownSuppressions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cooldown_suppressions_total",
			Help:      "Matches skipped because the pair was notified within the cooldown window.",
		}),
		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_deliveries_total",
			Help:      "Push deliveries by outcome.",
		}, []string{"outcome"}),
		dispatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time to settle every delivery of one notification.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (r *recorder) LocationUpdated() {
	r.locationUpdates.Inc()
}

func (r *recorder) RegionsMatched(count int) {
	if count <= 0 {
		return
	}
	r.checksWithMatches.Inc()
	r.regionMatches.Add(float64(count))
}

func (r *recorder) CooldownSuppressed() {
	r.cooldownSuppressions.Inc()
}

func (r *recorder) DeliveryObserved(outcome string) {
	r.deliveries.WithLabelValues(outcome).Inc()
}

func (r *recorder) DispatchObserved(elapsed time.Duration) {
	r.dispatchDuration.Observe(elapsed.Seconds())
}
