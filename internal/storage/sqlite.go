// Package storage provides SQLite-based persistence for round replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a round does not exist.
var ErrNotFound = errors.New("storage: round not found")

// RoundStore is the persistence surface the game and CLI depend on.
type RoundStore interface {
	SaveRound(ctx context.Context, r RoundRecord) (int64, error)
	Round(ctx context.Context, id int64) (RoundRecord, error)
	RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error)
}

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

var _ RoundStore = (*Store)(nil)

// RoundRecord is everything needed to replay one session: the spawn seed,
// the speed, the game configuration it ran under and the encoded direction
// journal.
type RoundRecord struct {
	ID        int64
	Player    string
	Seed      int64
	Speed     int
	BoardW    int
	BoardH    int
	Ticks     uint64 // PLAYING ticks until the session ended
	Journal   string
	Config    string // YAML game config; empty for rounds saved before it was kept
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			board_w INTEGER NOT NULL,
			board_h INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			journal TEXT NOT NULL DEFAULT '',
			config TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Databases created before the config column existed
	has, err := s.hasColumn("rounds", "config")
	if err != nil || has {
		return err
	}
	_, err = s.db.Exec(`ALTER TABLE rounds ADD COLUMN config TEXT NOT NULL DEFAULT ''`)
	return err
}

func (s *Store) hasColumn(table, column string) (bool, error) {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(ctx context.Context, r RoundRecord) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (player, seed, speed, board_w, board_h, ticks, journal, config)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Seed, r.Speed, r.BoardW, r.BoardH, int64(r.Ticks), r.Journal, r.Config,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Round retrieves a round by ID. Returns ErrNotFound if it does not exist.
func (s *Store) Round(ctx context.Context, id int64) (RoundRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, player, seed, speed, board_w, board_h, ticks, journal, config, created_at
		 FROM rounds
		 WHERE id = ?`,
		id,
	)

	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RoundRecord{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return RoundRecord{}, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, seed, speed, board_w, board_h, ticks, journal, config, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// DeleteRounds removes every round older than the cutoff and returns how
// many were deleted.
func (s *Store) DeleteRounds(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM rounds WHERE created_at < ?",
		before.UTC().Format(sqliteTime),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot delete rounds: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRound(sc scanner) (RoundRecord, error) {
	var (
		r         RoundRecord
		ticks     int64
		createdAt any
	)
	if err := sc.Scan(&r.ID, &r.Player, &r.Seed, &r.Speed, &r.BoardW, &r.BoardH, &ticks, &r.Journal, &r.Config, &createdAt); err != nil {
		return RoundRecord{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

const sqliteTime = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
