package snake

import (
	"fmt"
	"strconv"
	"strings"
)

// JournalEntry is one accepted direction change.
type JournalEntry struct {
	Tick      uint64
	Direction Direction
}

// Journal records the direction changes of a round so it can be replayed.
// It also acts as an InputSource that plays the entries back.
type Journal struct {
	entries []JournalEntry
	cursor  int
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends a direction change. A second record for the same tick
// replaces the first.
func (j *Journal) Record(tick uint64, d Direction) {
	if n := len(j.entries); n > 0 && j.entries[n-1].Tick == tick {
		j.entries[n-1].Direction = d
		return
	}
	j.entries = append(j.entries, JournalEntry{Tick: tick, Direction: d})
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []JournalEntry {
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Rewind restarts playback from the first entry.
func (j *Journal) Rewind() {
	j.cursor = 0
}

// Next implements InputSource. Entries for ticks already passed are skipped.
func (j *Journal) Next(tick uint64) Input {
	for j.cursor < len(j.entries) && j.entries[j.cursor].Tick < tick {
		j.cursor++
	}
	if j.cursor < len(j.entries) && j.entries[j.cursor].Tick == tick {
		e := j.entries[j.cursor]
		j.cursor++
		return Input{Direction: e.Direction, HasDirection: true}
	}
	return Input{}
}

// Encode serializes the journal as comma-separated "tick:D" pairs,
// e.g. "12:D,40:L".
func (j *Journal) Encode() string {
	var b strings.Builder
	for i, e := range j.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(e.Tick, 10))
		b.WriteByte(':')
		b.WriteByte(e.Direction.code())
	}
	return b.String()
}

// DecodeJournal parses the output of Encode.
func DecodeJournal(s string) (*Journal, error) {
	j := NewJournal()
	if s == "" {
		return j, nil
	}

	var last uint64
	for i, part := range strings.Split(s, ",") {
		tickStr, code, ok := strings.Cut(part, ":")
		if !ok || len(code) != 1 {
			return nil, fmt.Errorf("snake: malformed journal entry %d %q", i, part)
		}
		tick, err := strconv.ParseUint(tickStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("snake: malformed journal tick %q: %w", tickStr, err)
		}
		if tick <= last && i > 0 {
			return nil, fmt.Errorf("snake: journal ticks not increasing at entry %d", i)
		}
		d, err := directionFromCode(code[0])
		if err != nil {
			return nil, err
		}
		j.entries = append(j.entries, JournalEntry{Tick: tick, Direction: d})
		last = tick
	}
	return j, nil
}
