// models/teaser.go
package models

import (
	"strings"
	"time"
)

// Difficulty tiers, ordered easiest to hardest.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

// DifficultyDescriptions maps each tier to its player-facing blurb.
var DifficultyDescriptions = map[string]string{
	DifficultyBeginner:     "Challenging logic puzzles that require careful analysis",
	DifficultyIntermediate: "Complex problems that test multiple skills",
	DifficultyAdvanced:     "Intricate puzzles that require creative thinking",
	DifficultyExpert:       "Master-level challenges that push your limits",
}

// IsValidDifficulty reports whether d is one of the four known tiers.
func IsValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

type Teaser struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `json:"image_url,omitempty"`

	// Never serialized; exposed only through MatchesSolution.
	Solution string `gorm:"not null" json:"-"`

	Difficulty  string    `gorm:"default:'beginner';index" json:"difficulty"`
	PublishDate time.Time `gorm:"not null;index" json:"publish_date"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`

	// Users who solved this teaser
	Winners []User `gorm:"many2many:teaser_winners" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchesSolution compares a submitted answer against the stored solution.
// Leading/trailing whitespace is trimmed on both sides and the comparison is
// case-insensitive. No other normalization: "Seven." does not match "seven".
func (t *Teaser) MatchesSolution(submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(t.Solution))
}
