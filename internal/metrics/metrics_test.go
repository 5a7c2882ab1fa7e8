package metrics

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestObserver(t *testing.T) {
	var o Observer
	rounds := testutil.ToFloat64(roundsTotal)
	food := testutil.ToFloat64(eventsTotal.WithLabelValues("food_eaten"))
	over := testutil.ToFloat64(eventsTotal.WithLabelValues("game_over"))

	o.RoundStarted()
	o.ObserveEvents([]core.Event{core.EventFoodEaten, core.EventFoodEaten, core.EventGameOver})
	o.ObserveEvents(nil)

	require.Equal(t, rounds+1, testutil.ToFloat64(roundsTotal))
	require.Equal(t, food+2, testutil.ToFloat64(eventsTotal.WithLabelValues("food_eaten")))
	require.Equal(t, over+1, testutil.ToFloat64(eventsTotal.WithLabelValues("game_over")))
}

func TestSessionOpened(t *testing.T) {
	before := testutil.ToFloat64(sessionsActive)

	closeA := SessionOpened()
	closeB := SessionOpened()
	require.Equal(t, before+2, testutil.ToFloat64(sessionsActive))

	closeA()
	closeB()
	require.Equal(t, before, testutil.ToFloat64(sessionsActive))
}

func TestInstrumentStore(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	defer db.Close()

	s := InstrumentStore(db)
	id, err := s.SaveRound(ctx, storage.RoundRecord{Seed: 1, Speed: 5, BoardW: 490, BoardH: 420, Ticks: 10})
	require.NoError(t, err)
	_, err = s.Round(ctx, id)
	require.NoError(t, err)
	_, err = s.RecentRounds(ctx, 5)
	require.NoError(t, err)

	_, err = s.Round(ctx, id+100)
	require.ErrorIs(t, err, storage.ErrNotFound, "errors pass through unchanged")

	require.Equal(t, 3, testutil.CollectAndCount(storeCalls), "one series per method")
}

func TestHandler(t *testing.T) {
	Observer{}.RoundStarted()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, "snake_rounds_total"), "rounds counter missing")
	require.True(t, strings.Contains(body, "snake_sessions_active"), "sessions gauge missing")
}
