package montecarlo

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of knotwalk_walks_total.
const (
	OutcomeKnotted   = "knotted"
	OutcomeUnknotted = "unknotted"
	OutcomeFailed    = "failed"
)

// Metrics holds the Prometheus collectors updated by a Runner.
type Metrics struct {
	Walks     *prometheus.CounterVec
	Crossings prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg (nil skips
// registration). Collectors already registered under the same names are
// reused, so several runners can share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Walks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "knotwalk",
			Name:      "walks_total",
			Help:      "Closed walks processed, by outcome.",
		}, []string{"outcome"}),
		Crossings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "knotwalk",
			Name:      "crossings",
			Help:      "Diagram crossings per successfully processed walk.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
	if reg == nil {
		return m, nil
	}

	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(m.Walks); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.Walks = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.Crossings); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		m.Crossings = are.ExistingCollector.(prometheus.Histogram)
	}

	return m, nil
}

func (m *Metrics) observe(o Sample) {
	if m == nil {
		return
	}
	switch {
	case o.Err != nil:
		m.Walks.WithLabelValues(OutcomeFailed).Inc()
		return
	case o.Knotted:
		m.Walks.WithLabelValues(OutcomeKnotted).Inc()
	default:
		m.Walks.WithLabelValues(OutcomeUnknotted).Inc()
	}
	m.Crossings.Observe(float64(o.Crossings))
}
