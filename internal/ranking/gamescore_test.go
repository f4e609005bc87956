package ranking

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGameScore(t *testing.T) {
	tests := []struct {
		name                          string
		runs, hits, walks, strikeouts int
		want                          float64
	}{
		{"typical game", 5, 8, 3, 7, 9.35},
		{"shutout with strikeouts", 0, 2, 0, 15, -2.75},
		{"all zeros", 0, 0, 0, 0, 0},
		{"walks only", 0, 0, 10, 0, 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GameScore(tt.runs, tt.hits, tt.walks, tt.strikeouts)
			if !almostEqual(got, tt.want) {
				t.Errorf("GameScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInnings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"whole with zero fraction", "6.0", 6.0},
		{"one third", "6.1", 6.0 + 1.0/3.0},
		{"two thirds", "6.2", 6.0 + 2.0/3.0},
		{"no fraction", "6", 6.0},
		{"season total", "145.1", 145.0 + 1.0/3.0},
		{"garbage", "abc", 0},
		{"empty", "", 0},
		{"trailing dot", "6.", 0},
		{"garbage fraction", "6.x", 0},
		// Digits outside 0..2 are taken at face value over three. The
		// boxscore feed never emits them, and the parser has never
		// rejected them either.
		{"out of range fraction", "6.4", 6.0 + 4.0/3.0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInnings(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseInnings(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
