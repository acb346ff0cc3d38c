package models

import "testing"

func TestChallengeByID(t *testing.T) {
	for _, c := range WeeklyChallenges {
		got, ok := ChallengeByID(c.ID)
		if !ok {
			t.Errorf("expected to find %q", c.ID)
			continue
		}
		if got.Target < 1 || got.RewardTokens < 1 {
			t.Errorf("challenge %q has a degenerate definition: %+v", c.ID, got)
		}
	}

	if _, ok := ChallengeByID("nope"); ok {
		t.Error("expected unknown id to miss")
	}
}

func TestWeeklyChallengeIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range WeeklyChallenges {
		if seen[c.ID] {
			t.Errorf("duplicate challenge id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		progress, target, want int
	}{
		{0, 5, 0},
		{3, 5, 3},
		{5, 5, 5},
		{9, 5, 5},
		{-1, 5, 0},
	}

	for _, tt := range tests {
		if got := ClampProgress(tt.progress, tt.target); got != tt.want {
			t.Errorf("ClampProgress(%d, %d) = %d, want %d", tt.progress, tt.target, got, tt.want)
		}
	}
}
