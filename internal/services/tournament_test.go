package services

import (
	"testing"
	"time"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func TestCurrentTournament(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "winter_cup"},
		{time.February, "winter_cup"},
		{time.March, "spring_sprint"},
		{time.May, "spring_sprint"},
		{time.June, "summer_showdown"},
		{time.August, "summer_showdown"},
		{time.September, "autumn_run"},
		{time.November, "autumn_run"},
		{time.December, "winter_cup"},
	}

	for _, tt := range tests {
		tournament, ok := CurrentTournament(tt.month)
		if !ok {
			t.Errorf("no tournament for %v", tt.month)
			continue
		}
		if tournament.ID != tt.want {
			t.Errorf("tournament for %v = %q, want %q", tt.month, tournament.ID, tt.want)
		}
	}
}

func TestPrizeForRank(t *testing.T) {
	tournament := models.Tournaments[0]

	tests := []struct {
		rank int
		want int
	}{
		{1, tournament.Prizes[models.PrizeFirst]},
		{2, tournament.Prizes[models.PrizeSecond]},
		{3, tournament.Prizes[models.PrizeThird]},
		{4, tournament.Prizes[models.PrizeTop10]},
		{10, tournament.Prizes[models.PrizeTop10]},
		{11, 0},
		{100, 0},
	}

	for _, tt := range tests {
		if got := prizeForRank(tournament, tt.rank); got != tt.want {
			t.Errorf("prizeForRank(%d) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}
