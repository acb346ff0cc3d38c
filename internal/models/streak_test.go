package models

import "testing"

func TestCycleReward(t *testing.T) {
	tests := []struct {
		name       string
		streak     int
		vip        bool
		wantTokens int
		wantXP     int
	}{
		{name: "day 1", streak: 1, wantTokens: 5, wantXP: 10},
		{name: "day 7 weekly bonus", streak: 7, wantTokens: 50, wantXP: 75},
		{name: "day 8 wraps to day 1", streak: 8, wantTokens: 5, wantXP: 10},
		{name: "day 14 wraps to day 7", streak: 14, wantTokens: 50, wantXP: 75},
		{name: "day 365 wraps to day 1", streak: 365, wantTokens: 5, wantXP: 10},
		{name: "vip flat tokens double xp", streak: 1, vip: true, wantTokens: 20, wantXP: 20},
		{name: "vip on day 7", streak: 7, vip: true, wantTokens: 20, wantXP: 150},
		{name: "zero clamps to day 1", streak: 0, wantTokens: 5, wantXP: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CycleReward(tt.streak, tt.vip)
			if got.Tokens != tt.wantTokens || got.XP != tt.wantXP {
				t.Errorf("CycleReward(%d, %v) = %+v, want tokens=%d xp=%d", tt.streak, tt.vip, got, tt.wantTokens, tt.wantXP)
			}
		})
	}
}

func TestCycleDay(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{1, 1},
		{7, 7},
		{8, 1},
		{15, 1},
		{21, 7},
		{0, 1},
	}

	for _, tt := range tests {
		if got := CycleDay(tt.streak); got != tt.want {
			t.Errorf("CycleDay(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestMilestoneAt(t *testing.T) {
	for _, length := range []int{7, 14, 30, 60, 100, 365} {
		m, ok := MilestoneAt(length)
		if !ok {
			t.Errorf("expected a milestone at %d", length)
			continue
		}
		if m.BonusTokens <= 0 || m.BadgeTitle == "" {
			t.Errorf("milestone at %d is incomplete: %+v", length, m)
		}
	}

	for _, length := range []int{1, 6, 8, 15, 99, 101, 364} {
		if _, ok := MilestoneAt(length); ok {
			t.Errorf("unexpected milestone at %d", length)
		}
	}
}

func TestHasEarnedMilestone(t *testing.T) {
	r := &StreakRecord{MilestonesEarned: []int{7, 14}}
	if !r.HasEarnedMilestone(7) {
		t.Error("expected 7 to be earned")
	}
	if r.HasEarnedMilestone(30) {
		t.Error("expected 30 to be unearned")
	}

	empty := &StreakRecord{}
	if empty.HasEarnedMilestone(7) {
		t.Error("expected nothing earned on an empty record")
	}
}
