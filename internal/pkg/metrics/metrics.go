package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects BFF metrics. A nil Recorder is valid and records nothing.
type Recorder struct {
	upstreamDuration *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	cartMutations    *prometheus.CounterVec
}

// NewRecorder registers the metrics on the provided registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of calls to the hotel API in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	upstreamTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Calls to the hotel API by outcome.",
	}, []string{"operation", "outcome"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by cart and operation.",
	}, []string{"cart", "operation"})
	reg.MustRegister(upstreamDuration, upstreamTotal, cartMutations)
	return &Recorder{
		upstreamDuration: upstreamDuration,
		upstreamTotal:    upstreamTotal,
		cartMutations:    cartMutations,
	}
}

// ObserveUpstream records one upstream call.
func (r *Recorder) ObserveUpstream(operation, outcome string, duration time.Duration) {
	if r == nil || r.upstreamDuration == nil {
		return
	}
	op := normalizeLabel(operation)
	r.upstreamDuration.WithLabelValues(op).Observe(duration.Seconds())
	r.upstreamTotal.WithLabelValues(op, normalizeLabel(outcome)).Inc()
}

// IncCartMutation counts one cart mutation.
func (r *Recorder) IncCartMutation(cart, operation string) {
	if r == nil || r.cartMutations == nil {
		return
	}
	r.cartMutations.WithLabelValues(normalizeLabel(cart), normalizeLabel(operation)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
