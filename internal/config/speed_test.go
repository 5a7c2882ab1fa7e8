package config

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"5", 5, false},
		{"1", 1, false},
		{"10", 10, false},
		{"11", 10, false},
		{"99", 10, false},
		{" 7 ", 7, false},
		{"07", 7, false},
		{"0", 0, true},
		{"00", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"-3", 0, true},
		{"4x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSpeed(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpeed(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, snake.ErrInvalidSpeed) {
					t.Errorf("error %v should wrap ErrInvalidSpeed", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSpeed(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct{ in, want int }{
		{-4, 1}, {0, 1}, {1, 1}, {6, 6}, {10, 10}, {42, 10},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input   string
		want    SpeedPreset
		wantErr bool
	}{
		{"slow", SpeedSlow, false},
		{"NORMAL", SpeedNormal, false},
		{" fast ", SpeedFast, false},
		{"", SpeedNormal, false},
		{"ludicrous", SpeedNormal, true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPresetSpeedsInRange(t *testing.T) {
	prev := 0
	for _, p := range AllPresets() {
		s := p.Speed()
		if s < MinSpeed || s > MaxSpeed {
			t.Errorf("%s speed %d out of range", p, s)
		}
		if s <= prev {
			t.Errorf("%s speed %d should exceed the previous preset", p, s)
		}
		prev = s
	}
}
