package models

import (
	"testing"
	"time"
)

func TestTournamentsPartitionTheYear(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		matches := 0
		for _, tournament := range Tournaments {
			if tournament.InMonth(month) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("month %v is covered by %d tournaments, want exactly 1", month, matches)
		}
	}
}

func TestTournamentPrizeTiers(t *testing.T) {
	for _, tournament := range Tournaments {
		for _, tier := range []string{PrizeFirst, PrizeSecond, PrizeThird, PrizeTop10} {
			if tournament.Prizes[tier] <= 0 {
				t.Errorf("tournament %q is missing prize tier %q", tournament.ID, tier)
			}
		}
		if !ValidScoringMode(tournament.Scoring) {
			t.Errorf("tournament %q has invalid scoring mode %q", tournament.ID, tournament.Scoring)
		}
	}
}
