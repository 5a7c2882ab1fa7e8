package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	store := &fakeStore{}
	for _, rec := range []storage.RoundRecord{
		{Player: "ada", Seed: 1, Speed: 5, BoardW: 490, BoardH: 420, Ticks: 40, CreatedAt: time.Now()},
		{Player: "", Seed: 2, Speed: 3, BoardW: 490, BoardH: 420, Ticks: 12, Journal: "4:D", CreatedAt: time.Now()},
	} {
		_, err := store.SaveRound(context.Background(), rec)
		require.NoError(t, err)
	}
	return store
}

func TestReplayRecord(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	rec := storage.RoundRecord{ID: 1, Seed: 9, Speed: 5, BoardW: 490, BoardH: 420, Ticks: 10, Journal: "2:U"}

	snap, err := ReplayRecord(cfg, rec)
	require.NoError(t, err)
	require.Equal(t, uint64(10), snap.Tick)
	require.Equal(t, snake.DirUp, snap.Dir)

	rec.Journal = "2:Q"
	_, err = ReplayRecord(cfg, rec)
	require.Error(t, err)
}

func TestReplayRecordUsesRecordedBoard(t *testing.T) {
	rec := storage.RoundRecord{Seed: 3, Speed: 1, BoardW: 300, BoardH: 200, Ticks: 1}

	snap, err := ReplayRecord(config.DefaultSnakeConfig(), rec)
	require.NoError(t, err)
	require.Equal(t, 300, snap.BoardW)
	require.Equal(t, 200, snap.BoardH)
}

func TestRecordedConfig(t *testing.T) {
	stored := config.DefaultSnakeConfig()
	stored.Board.Width = 300
	stored.Food.Reward = 3
	text, err := stored.Encode()
	require.NoError(t, err)

	rec := storage.RoundRecord{ID: 4, BoardW: 300, BoardH: 420, Config: text}
	got, err := RecordedConfig(config.DefaultSnakeConfig(), rec)
	require.NoError(t, err)
	require.Equal(t, stored, got)

	rec.Config = "food: ["
	_, err = RecordedConfig(config.DefaultSnakeConfig(), rec)
	require.Error(t, err)

	_, err = ReplayRecord(config.DefaultSnakeConfig(), rec)
	require.Error(t, err)
}

func TestBrowserListsRounds(t *testing.T) {
	m, err := NewBrowserModel(context.Background(), seededStore(t), config.DefaultSnakeConfig(), 80, 24)
	require.NoError(t, err)

	rows := m.table.Rows()
	require.Len(t, rows, 2)

	// Newest first.
	require.Equal(t, "2", rows[0][0])
	require.Equal(t, "-", rows[0][1])
	require.Equal(t, "3", rows[0][2])
	require.Equal(t, "12", rows[0][4])
	require.Equal(t, "ada", rows[1][1])
	require.NotEqual(t, "?", rows[1][3], "score comes from a replay")

	require.Contains(t, m.View(), "RECORDED ROUNDS")
}

func TestBrowserSelect(t *testing.T) {
	m, err := NewBrowserModel(context.Background(), seededStore(t), config.DefaultSnakeConfig(), 80, 24)
	require.NoError(t, err)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(BrowserModel)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowserModel)
	require.Equal(t, int64(1), m.Selected())
	require.True(t, isQuit(cmd))
	require.Empty(t, m.View())
}

func TestBrowserQuitAndEmpty(t *testing.T) {
	m, err := NewBrowserModel(context.Background(), &fakeStore{}, config.DefaultSnakeConfig(), 80, 24)
	require.NoError(t, err)
	require.Contains(t, m.View(), "No rounds recorded yet.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(BrowserModel)
	require.Zero(t, m.Selected())
	require.Nil(t, cmd)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(BrowserModel)
	require.True(t, isQuit(cmd))
	require.Zero(t, m.Selected())
}

func TestBrowserResize(t *testing.T) {
	m, err := NewBrowserModel(context.Background(), seededStore(t), config.DefaultSnakeConfig(), 80, 24)
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(BrowserModel)
	require.Equal(t, 120, m.width)
	require.Len(t, m.table.Rows(), 2)
}
