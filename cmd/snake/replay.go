package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded round",
	Long: `Re-run a recorded round from its seed and input journal.

Without --watch the round is replayed headless and the outcome printed.
With --watch it plays back in the terminal at its original pace.

Examples:
  snake replay 12
  snake replay 12 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the round back in the terminal")
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return fmt.Errorf("invalid round id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	rec, err := store.Round(context.Background(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("round %d not found; run 'snake replays' to list rounds", id)
	}
	if err != nil {
		return err
	}

	if flagWatch {
		return watch(cfg, rec, 0, 0)
	}

	snap, err := tui.ReplayRecord(cfg, rec)
	if err != nil {
		return err
	}

	fmt.Printf("Round %d (%s, speed %d, seed %d)\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), rec.Speed, rec.Seed)
	fmt.Println()
	fmt.Printf("  Outcome: %s\n", outcome(snap))
	fmt.Printf("  Score:   %d\n", snap.Score)
	fmt.Printf("  Length:  %d\n", snap.TargetLength)
	fmt.Printf("  Ticks:   %d\n", snap.Tick)
	return nil
}

func outcome(s snake.Snapshot) string {
	if s.State == snake.StateGameOver {
		return "game over"
	}
	return "quit"
}

// watch plays rec back in the terminal under the configuration it was
// recorded with. Zero dimensions are detected.
func watch(cfg config.SnakeConfig, rec storage.RoundRecord, width, height int) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	recorded, err := tui.RecordedConfig(cfg, rec)
	if err != nil {
		return err
	}
	j, err := snake.DecodeJournal(rec.Journal)
	if err != nil {
		return fmt.Errorf("round %d: %w", rec.ID, err)
	}
	if width == 0 || height == 0 {
		width, height = terminalSize()
	}

	opts := tui.Options{
		Config: recorded,
		Width:  width,
		Height: height,
		Logger: logger.WithPrefix("replay"),
		Replay: &tui.ReplaySpec{
			Seed:    rec.Seed,
			Speed:   rec.Speed,
			Journal: j,
			EndTick: rec.Ticks,
		},
	}
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running replay: %w", err)
	}
	return nil
}
