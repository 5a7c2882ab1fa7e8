package snake

import "testing"

func TestJournalRecordOverwritesSameTick(t *testing.T) {
	j := NewJournal()
	j.Record(4, DirDown)
	j.Record(4, DirUp)
	j.Record(9, DirLeft)

	entries := j.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0] != (JournalEntry{Tick: 4, Direction: DirUp}) {
		t.Errorf("entries[0] = %+v, want last write for tick 4", entries[0])
	}
}

func TestJournalEncodeDecode(t *testing.T) {
	j := NewJournal()
	j.Record(12, DirDown)
	j.Record(40, DirLeft)
	j.Record(41, DirUp)
	j.Record(90, DirRight)

	enc := j.Encode()
	if enc != "12:D,40:L,41:U,90:R" {
		t.Fatalf("Encode() = %q", enc)
	}

	got, err := DecodeJournal(enc)
	if err != nil {
		t.Fatalf("DecodeJournal() error = %v", err)
	}
	if got.Encode() != enc {
		t.Errorf("decoded journal encodes as %q", got.Encode())
	}

	empty, err := DecodeJournal("")
	if err != nil || empty.Len() != 0 {
		t.Errorf("DecodeJournal(\"\") = %v, %v", empty, err)
	}
}

func TestDecodeJournalErrors(t *testing.T) {
	bad := []string{
		"12",
		"x:D",
		"12:Q",
		"12:DD",
		"12:D,12:L",
		"20:D,10:L",
		"12:D,",
	}
	for _, s := range bad {
		if _, err := DecodeJournal(s); err == nil {
			t.Errorf("DecodeJournal(%q) should fail", s)
		}
	}
}

func TestJournalPlayback(t *testing.T) {
	j := NewJournal()
	j.Record(2, DirDown)
	j.Record(5, DirLeft)

	if in := j.Next(1); in.HasDirection {
		t.Errorf("Next(1) = %+v, want no direction", in)
	}
	if in := j.Next(2); !in.HasDirection || in.Direction != DirDown {
		t.Errorf("Next(2) = %+v, want down", in)
	}
	// Skipping past an entry drops it.
	if in := j.Next(6); in.HasDirection {
		t.Errorf("Next(6) = %+v, want no direction", in)
	}

	j.Rewind()
	if in := j.Next(2); in.Direction != DirDown {
		t.Error("Rewind should restart playback")
	}
}
