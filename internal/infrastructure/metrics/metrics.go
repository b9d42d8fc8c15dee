// Package metrics exposes Prometheus counters for UI interaction and
// application state transitions.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wfy"

// Metrics holds the client's collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	frames      prometheus.Counter
	clicks      prometheus.Counter
	rejected    prometheus.Counter
	transitions *prometheus.CounterVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		frames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total number of frames updated",
		}),
		clicks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "button_clicks_total",
			Help:      "Total number of button clicks",
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_rejected_total",
			Help:      "Total number of transition requests rejected because one was already pending",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Total number of applied state transitions by from_state and to_state",
		}, []string{"from_state", "to_state"}),
	}
}

// ObserveFrame counts one updated frame
func (m *Metrics) ObserveFrame() {
	if m == nil {
		return
	}
	m.frames.Inc()
}

// ObserveClick counts one button click
func (m *Metrics) ObserveClick() {
	if m == nil {
		return
	}
	m.clicks.Inc()
}

// ObserveRejected counts one rejected transition request
func (m *Metrics) ObserveRejected() {
	if m == nil {
		return
	}
	m.rejected.Inc()
}

// ObserveTransition counts an applied transition
func (m *Metrics) ObserveTransition(from, to fmt.Stringer) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}
