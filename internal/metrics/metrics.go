// Package metrics exposes Prometheus counters for the SSH server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	roundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Name:      "rounds_total",
			Help:      "Play sessions started.",
		},
	)
	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Name:      "events_total",
			Help:      "Game events emitted by rounds.",
		},
		[]string{"event"},
	)
	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Name:      "sessions_active",
			Help:      "Connected SSH sessions.",
		},
	)
)

func init() {
	prometheus.MustRegister(roundsTotal, eventsTotal, sessionsActive)
}

// Observer feeds round activity into the counters. The zero value is ready
// to use.
type Observer struct{}

// RoundStarted counts a new play session.
func (Observer) RoundStarted() {
	roundsTotal.Inc()
}

// ObserveEvents counts the events of one tick.
func (Observer) ObserveEvents(events []core.Event) {
	for _, e := range events {
		eventsTotal.WithLabelValues(e.String()).Inc()
	}
}

// SessionOpened marks an SSH session as active. The returned func marks it
// closed.
func SessionOpened() func() {
	sessionsActive.Inc()
	return sessionsActive.Dec
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
