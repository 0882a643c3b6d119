package models

import "testing"

func TestMatchesSolution(t *testing.T) {
	teaser := &Teaser{Solution: "seven"}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"seven", true},
		{"Seven", true},
		{"SEVEN", true},
		{"  seven  ", true},
		{"\tSeven\n", true},
		{"Seven.", false}, // punctuation is not stripped
		{"sevenn", false},
		{"six", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := teaser.MatchesSolution(tt.submitted); got != tt.want {
			t.Errorf("MatchesSolution(%q) = %v, want %v", tt.submitted, got, tt.want)
		}
	}
}

func TestMatchesSolutionTrimsStoredSide(t *testing.T) {
	teaser := &Teaser{Solution: " Seven "}
	if !teaser.MatchesSolution("seven") {
		t.Error("stored solution whitespace should be trimmed too")
	}
}

func TestIsValidDifficulty(t *testing.T) {
	for _, d := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert} {
		if !IsValidDifficulty(d) {
			t.Errorf("%q rejected", d)
		}
	}
	for _, d := range []string{"", "easy", "BEGINNER", "impossible"} {
		if IsValidDifficulty(d) {
			t.Errorf("%q accepted", d)
		}
	}
}
