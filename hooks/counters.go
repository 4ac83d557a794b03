package hooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lukasgeis/negative-edge-weights/weight"
)

// Counters is an Observer backed by Prometheus metrics (spec §4.7,
// ambient observability): a verdict counter split by accept/reject, and a
// histogram of Round.ReachedCount, the number of nodes whose potential each
// round repaired (rejected rounds are observed as 0).
type Counters[T weight.Real] struct {
	verdicts *prometheus.CounterVec
	reached  prometheus.Histogram
}

// NewCounters registers its metrics against reg and returns a ready
// Observer. Passing prometheus.NewRegistry() per run keeps independent
// runs from colliding on global metric names.
func NewCounters[T weight.Real](reg prometheus.Registerer) *Counters[T] {
	c := &Counters[T]{
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "negcycle",
			Name:      "proposals_total",
			Help:      "MCMC proposals by verdict.",
		}, []string{"decision"}),
		reached: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "negcycle",
			Name:      "oracle_reached_nodes",
			Help:      "Nodes whose potential was repaired per round (0 on reject).",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
	reg.MustRegister(c.verdicts, c.reached)
	return c
}

func (c *Counters[T]) OnProposal(r Round[T]) {
	label := "reject"
	if r.Decision == Accept {
		label = "accept"
	}
	c.verdicts.WithLabelValues(label).Inc()
	c.reached.Observe(float64(r.ReachedCount))
}
