package models

import (
	"testing"
	"time"
)

func TestUpdateCreatureAttackInterval(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 60},
		{99, 60},
		{100, 59},
		{250, 57},
		{1000, 50},
		{5400, 6},
		{5500, 5},
		{100000, 5}, // floor clamp
	}

	for _, tt := range tests {
		gs := &GameState{TotalPoints: tt.points}
		gs.UpdateCreatureAttackInterval()
		if gs.CreatureAttackInterval != tt.want {
			t.Errorf("points=%d: interval = %d, want %d", tt.points, gs.CreatureAttackInterval, tt.want)
		}
	}
}

func TestShouldCreaturesAttack(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gs := &GameState{
		LastCreatureAttack:     now.Add(-30 * time.Minute),
		CreatureAttackInterval: 60,
	}

	if gs.ShouldCreaturesAttack(now) {
		t.Error("attack due after 30 of 60 minutes")
	}

	gs.LastCreatureAttack = now.Add(-60 * time.Minute)
	if !gs.ShouldCreaturesAttack(now) {
		t.Error("attack not due exactly at the interval boundary")
	}

	gs.LastCreatureAttack = now.Add(-90 * time.Minute)
	if !gs.ShouldCreaturesAttack(now) {
		t.Error("attack not due well past the interval")
	}
}

func TestHandleCreatureAttack(t *testing.T) {
	now := time.Now()

	gs := &GameState{TotalPoints: 1000}
	lost := gs.HandleCreatureAttack(now)
	if lost != 100 || gs.TotalPoints != 900 {
		t.Errorf("lost %d, remaining %d; want 100 lost, 900 remaining", lost, gs.TotalPoints)
	}
	if !gs.LastCreatureAttack.Equal(now) {
		t.Error("attack clock not reset")
	}

	// 10% of 3 floors to 0; points untouched
	gs = &GameState{TotalPoints: 3}
	lost = gs.HandleCreatureAttack(now)
	if lost != 0 || gs.TotalPoints != 3 {
		t.Errorf("lost %d, remaining %d; want 0 lost, 3 remaining", lost, gs.TotalPoints)
	}

	gs = &GameState{TotalPoints: 0}
	gs.HandleCreatureAttack(now)
	if gs.TotalPoints != 0 {
		t.Errorf("points went negative: %d", gs.TotalPoints)
	}
}

func TestCheckLevelUp(t *testing.T) {
	gs := &GameState{TotalPoints: 999, CurrentLevel: 1}
	if gs.CheckLevelUp() {
		t.Error("leveled up below the threshold")
	}

	gs.TotalPoints = 1000
	if !gs.CheckLevelUp() || gs.CurrentLevel != 2 {
		t.Errorf("level = %d, want 2", gs.CurrentLevel)
	}

	// Only one level per call even when points jump past several thresholds.
	gs = &GameState{TotalPoints: 10000, CurrentLevel: 1}
	if !gs.CheckLevelUp() {
		t.Fatal("expected level up")
	}
	if gs.CurrentLevel != 2 {
		t.Errorf("level = %d after one call, want 2", gs.CurrentLevel)
	}
	// A second call cascades one more.
	gs.CheckLevelUp()
	if gs.CurrentLevel != 3 {
		t.Errorf("level = %d after two calls, want 3", gs.CurrentLevel)
	}
}

func TestCheckEnigmaticPeace(t *testing.T) {
	gs := &GameState{CurrentLevel: 9}
	if gs.CheckEnigmaticPeace() {
		t.Error("peace entered below level 10")
	}

	gs.CurrentLevel = 10
	if !gs.CheckEnigmaticPeace() {
		t.Error("peace not entered at level 10")
	}
	if !gs.IsEnigmaticPeace {
		t.Error("peace flag not set")
	}

	// Idempotent at higher levels.
	gs.CurrentLevel = 15
	if gs.CheckEnigmaticPeace() {
		t.Error("peace reported a second time")
	}
	if !gs.IsEnigmaticPeace {
		t.Error("peace flag unset")
	}
}

func TestUpdateStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 9, 0, 0, 0, time.UTC)
	}

	gs := &GameState{}

	// First solve ever.
	gs.UpdateStreak(day(1))
	if gs.CurrentStreak != 1 || gs.LongestStreak != 1 {
		t.Fatalf("first solve: current=%d longest=%d", gs.CurrentStreak, gs.LongestStreak)
	}

	// Next day extends.
	gs.UpdateStreak(day(2))
	if gs.CurrentStreak != 2 {
		t.Errorf("next-day solve: current=%d, want 2", gs.CurrentStreak)
	}

	// Same day is a no-op on the streak.
	gs.UpdateStreak(day(2).Add(4 * time.Hour))
	if gs.CurrentStreak != 2 {
		t.Errorf("same-day solve: current=%d, want 2", gs.CurrentStreak)
	}

	// Two-day gap resets.
	gs.UpdateStreak(day(5))
	if gs.CurrentStreak != 1 {
		t.Errorf("gap solve: current=%d, want 1", gs.CurrentStreak)
	}
	if gs.LongestStreak != 2 {
		t.Errorf("longest=%d, want 2", gs.LongestStreak)
	}

	// Longest streak never decreases.
	gs.UpdateStreak(day(6))
	gs.UpdateStreak(day(7))
	gs.UpdateStreak(day(8))
	if gs.LongestStreak != 4 {
		t.Errorf("longest=%d, want 4", gs.LongestStreak)
	}
}
