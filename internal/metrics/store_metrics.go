package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s storage.RoundStore) storage.RoundStore { return &instrumented{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the round store.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(storeCalls)
}

type instrumented struct{ s storage.RoundStore }

func (m *instrumented) SaveRound(ctx context.Context, r storage.RoundRecord) (int64, error) {
	defer instrument("SaveRound")()
	return m.s.SaveRound(ctx, r)
}

func (m *instrumented) Round(ctx context.Context, id int64) (storage.RoundRecord, error) {
	defer instrument("Round")()
	return m.s.Round(ctx, id)
}

func (m *instrumented) RecentRounds(ctx context.Context, limit int) ([]storage.RoundRecord, error) {
	defer instrument("RecentRounds")()
	return m.s.RecentRounds(ctx, limit)
}
