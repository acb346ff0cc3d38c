package models

import "testing"

func TestCompositeScore(t *testing.T) {
	tests := []struct {
		name                                string
		training, achievements, petXP, refs int
		want                                int
	}{
		{name: "all zero", want: 0},
		{name: "training only", training: 3, want: 30},
		{name: "achievements only", achievements: 2, want: 10},
		{name: "pet xp weight is one", petXP: 42, want: 42},
		{name: "referrals only", refs: 2, want: 30},
		{name: "combined", training: 1, achievements: 1, petXP: 5, refs: 1, want: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompositeScore(tt.training, tt.achievements, tt.petXP, tt.refs)
			if got != tt.want {
				t.Errorf("CompositeScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidScoringMode(t *testing.T) {
	for _, mode := range []ScoringMode{ScoringTraining, ScoringAchievements, ScoringPet, ScoringOverall} {
		if !ValidScoringMode(mode) {
			t.Errorf("expected %q to be valid", mode)
		}
	}

	for _, mode := range []ScoringMode{"", "tokens", "OVERALL"} {
		if ValidScoringMode(mode) {
			t.Errorf("expected %q to be invalid", mode)
		}
	}
}
