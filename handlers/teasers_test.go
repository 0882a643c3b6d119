package handlers

import (
	"testing"

	"enigmaquest/models"
)

func TestEvaluateSubmission(t *testing.T) {
	teaser := &models.Teaser{Solution: "seven"}

	tests := []struct {
		name          string
		submitted     string
		alreadySolved bool
		want          submissionVerdict
	}{
		{"correct first solve", "seven", false, verdictCorrect},
		{"normalized match", "  SEVEN ", false, verdictCorrect},
		{"wrong answer", "eight", false, verdictIncorrect},
		{"repeat correct answer rejected", "seven", true, verdictAlreadySolved},
		{"repeat wrong answer still rejected", "eight", true, verdictAlreadySolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluateSubmission(teaser, tt.submitted, tt.alreadySolved); got != tt.want {
				t.Errorf("evaluateSubmission(%q, solved=%v) = %v, want %v",
					tt.submitted, tt.alreadySolved, got, tt.want)
			}
		})
	}
}

// A winner resubmitting the correct answer must be turned away before any
// award path runs, so points cannot accrue twice for one teaser.
func TestEvaluateSubmissionWinnerTakesPrecedence(t *testing.T) {
	teaser := &models.Teaser{Solution: "echo"}

	if v := evaluateSubmission(teaser, "echo", false); v != verdictCorrect {
		t.Fatalf("first correct submission = %v, want %v", v, verdictCorrect)
	}
	if v := evaluateSubmission(teaser, "echo", true); v != verdictAlreadySolved {
		t.Errorf("second correct submission = %v, want %v", v, verdictAlreadySolved)
	}
}
