// Package metrics records deque operations as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/randomizedcoder/bounded-deque/internal/deque"
)

const (
	namespace = "bounded_deque"

	resultOK = "ok"
)

// Metrics holds the collectors shared by every observed deque.
type Metrics struct {
	operations *prometheus.CounterVec
	length     *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total deque operations by operation and result",
			},
			[]string{"deque", "op", "result"},
		),
		length: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "length",
				Help:      "Number of elements left by the last observed operation",
			},
			[]string{"deque"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.length} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observer returns a deque.Observer that records under the given deque name.
func (m *Metrics) Observer(name string) deque.Observer {
	return &observer{
		operations: m.operations.MustCurryWith(prometheus.Labels{"deque": name}),
		length:     m.length.WithLabelValues(name),
	}
}

type observer struct {
	operations *prometheus.CounterVec
	length     prometheus.Gauge
}

func (o *observer) Observe(op deque.Op, n int, err error) {
	o.operations.WithLabelValues(op.String(), Result(err)).Inc()
	if err == nil || op == deque.OpInit {
		o.length.Set(float64(n))
	}
}

// Result maps an operation error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, deque.ErrFull):
		return "full"
	case errors.Is(err, deque.ErrEmpty):
		return "empty"
	case errors.Is(err, deque.ErrIndexOutOfRange):
		return "out_of_range"
	case errors.Is(err, deque.ErrNotInitialized):
		return "not_initialized"
	case errors.Is(err, deque.ErrAlreadyInitialized):
		return "already_initialized"
	case errors.Is(err, deque.ErrInvalidCapacity):
		return "invalid_capacity"
	case errors.Is(err, deque.ErrAllocation):
		return "allocation_failed"
	case errors.Is(err, deque.ErrClosed):
		return "closed"
	default:
		return "error"
	}
}
