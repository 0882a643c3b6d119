// models/game_state.go - World progress record and progression rules
package models

import (
	"time"
)

// GameState is the world-progress record. The global record has no UserID;
// per-user records (UserID set) carry that user's streak history. Level only
// increases, the peace flag only flips false->true, and the attack interval
// never grows as points accumulate.
type GameState struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `gorm:"index" json:"user_id,omitempty"`

	TotalPoints  int `gorm:"default:0" json:"total_points"`
	CurrentLevel int `gorm:"default:1" json:"current_level"`

	LastCreatureAttack     time.Time `json:"last_creature_attack"`
	CreatureAttackInterval int       `gorm:"default:60" json:"creature_attack_interval"` // minutes
	IsEnigmaticPeace       bool      `gorm:"default:false" json:"is_enigmatic_peace"`

	CurrentStreak  int        `gorm:"default:0" json:"current_streak"`
	LongestStreak  int        `gorm:"default:0" json:"longest_streak"`
	LastSolvedDate *time.Time `json:"last_solved_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameState returns a fresh world-progress record with the attack clock
// started at now.
func NewGameState(now time.Time) *GameState {
	return &GameState{
		CurrentLevel:           1,
		LastCreatureAttack:     now,
		CreatureAttackInterval: 60,
	}
}

// UpdateCreatureAttackInterval shrinks the attack interval as points grow,
// never below 5 minutes.
func (gs *GameState) UpdateCreatureAttackInterval() {
	interval := 60 - gs.TotalPoints/100
	if interval < 5 {
		interval = 5
	}
	gs.CreatureAttackInterval = interval
}

// ShouldCreaturesAttack reports whether the interval has elapsed since the
// last attack.
func (gs *GameState) ShouldCreaturesAttack(now time.Time) bool {
	minutes := now.Sub(gs.LastCreatureAttack).Minutes()
	return minutes >= float64(gs.CreatureAttackInterval)
}

// HandleCreatureAttack deducts 10% of total points (floored, never below
// zero) and resets the attack clock.
func (gs *GameState) HandleCreatureAttack(now time.Time) int {
	deducted := gs.TotalPoints / 10
	gs.TotalPoints -= deducted
	if gs.TotalPoints < 0 {
		gs.TotalPoints = 0
	}
	gs.LastCreatureAttack = now
	return deducted
}

// CheckLevelUp grants at most one level per call, when total points reach
// currentLevel * 1000. Callers that want cascading level-ups must re-invoke.
func (gs *GameState) CheckLevelUp() bool {
	if gs.TotalPoints >= gs.CurrentLevel*1000 {
		gs.CurrentLevel++
		return true
	}
	return false
}

// CheckEnigmaticPeace sets the peace flag once level 10 is reached. The flag
// is one-way; later calls are no-ops.
func (gs *GameState) CheckEnigmaticPeace() bool {
	if gs.CurrentLevel >= 10 && !gs.IsEnigmaticPeace {
		gs.IsEnigmaticPeace = true
		return true
	}
	return false
}

// UpdateStreak advances the solve streak for a correct solve at now.
// Consecutive-day solves extend the streak, a gap of more than one whole day
// resets it, and repeat solves on the same day leave it unchanged.
func (gs *GameState) UpdateStreak(now time.Time) {
	if gs.LastSolvedDate == nil {
		gs.CurrentStreak = 1
	} else {
		days := int(now.Sub(*gs.LastSolvedDate).Hours() / 24)
		if days == 1 {
			gs.CurrentStreak++
		} else if days > 1 {
			gs.CurrentStreak = 1
		}
	}

	if gs.CurrentStreak > gs.LongestStreak {
		gs.LongestStreak = gs.CurrentStreak
	}

	solved := now
	gs.LastSolvedDate = &solved
}
