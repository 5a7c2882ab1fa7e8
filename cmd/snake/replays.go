package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit  int
	flagPrune  time.Duration
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded rounds",
	Long: `Display the most recently recorded rounds. Scores are recomputed by
replaying each round.

Examples:
  snake replays
  snake replays --limit 5
  snake replays --browse       # Pick a round and watch it
  snake replays --prune 720h   # Delete rounds older than 30 days`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to list")
	replaysCmd.Flags().DurationVar(&flagPrune, "prune", 0, "Delete rounds older than this age")
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
}

func runReplays(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	if flagPrune > 0 {
		n, pruneErr := store.DeleteRounds(ctx, time.Now().Add(-flagPrune))
		if pruneErr != nil {
			return fmt.Errorf("pruning rounds: %w", pruneErr)
		}
		fmt.Printf("Deleted %d round(s) older than %s.\n", n, flagPrune)
		return nil
	}

	if flagBrowse {
		return browse(ctx, cfg, store)
	}

	rounds, err := store.RecentRounds(ctx, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Println("Recorded Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-6s  %-12s  %-5s  %-5s  %-7s  %s\n", "ID", "Player", "Speed", "Score", "Ticks", "Date")
	fmt.Printf("  %-6s  %-12s  %-5s  %-5s  %-7s  %s\n", "--", "------", "-----", "-----", "-----", "----")

	for _, r := range rounds {
		score := "?"
		if snap, replayErr := tui.ReplayRecord(cfg, r); replayErr == nil {
			score = fmt.Sprint(snap.Score)
		}
		fmt.Printf("  %-6d  %-12s  %-5d  %-5s  %-7d  %s\n",
			r.ID, r.Player, r.Speed, score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'snake replay <id> --watch' to watch a round.")
	return nil
}

func browse(ctx context.Context, cfg config.SnakeConfig, store *storage.Store) error {
	width, height := terminalSize()
	id, err := tui.RunBrowser(ctx, store, cfg, width, height)
	if err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	if id == 0 {
		return nil
	}

	rec, err := store.Round(ctx, id)
	if err != nil {
		return err
	}
	return watch(cfg, rec, width, height)
}
