package main

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestLoadConfigFPSOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig, flagFPS = "", 25
	t.Cleanup(func() { flagFPS = 0 })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Timing.TickRate != 25 {
		t.Errorf("TickRate = %d, want 25", cfg.Timing.TickRate)
	}
	if got := cfg.Params().GameOverTicks; got != 75 {
		t.Errorf("GameOverTicks = %d, want 75", got)
	}
}

func TestLoadConfigRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  width: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	if _, err := loadConfig(); err == nil {
		t.Error("expected an error for a degenerate board")
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")
	flagLogLevel, flagLogFile = "debug", path
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, _, err := newLogger(false); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestOutcome(t *testing.T) {
	if got := outcome(snake.Snapshot{State: snake.StateGameOver}); got != "game over" {
		t.Errorf("outcome(game over) = %q", got)
	}
	if got := outcome(snake.Snapshot{State: snake.StatePlaying}); got != "quit" {
		t.Errorf("outcome(playing) = %q", got)
	}
}

func TestRunReplayReturnsErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flagConfig, flagFPS, flagWatch = "", 0, false
	flagDBPath = filepath.Join(t.TempDir(), "snake.db")
	t.Cleanup(func() { flagDBPath = "~/.snake/snake.db" })

	if err := runReplay(nil, []string{"abc"}); err == nil {
		t.Error("expected an error for a non-numeric id")
	}
	err := runReplay(nil, []string{"7"})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("runReplay(7) error = %v, want not found", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	text, err := config.DefaultSnakeConfig().Encode()
	if err != nil {
		t.Fatal(err)
	}
	id, err := store.SaveRound(context.Background(), storage.RoundRecord{
		Seed: 3, Speed: 5, BoardW: 490, BoardH: 420, Ticks: 10, Journal: "2:U", Config: text,
	})
	store.Close()
	if err != nil {
		t.Fatal(err)
	}

	if err := runReplay(nil, []string{strconv.FormatInt(id, 10)}); err != nil {
		t.Errorf("runReplay(%d) error = %v", id, err)
	}
}
