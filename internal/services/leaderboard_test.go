package services

import (
	"testing"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func items(scores ...int) []*models.LeaderboardItem {
	out := make([]*models.LeaderboardItem, len(scores))
	for i, s := range scores {
		out[i] = &models.LeaderboardItem{UserID: string(rune('a' + i)), Score: s}
	}
	return out
}

func TestRankScoresOrdering(t *testing.T) {
	ranked := RankScores(items(10, 30, 20), models.ScoringOverall)

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	for i, wantScore := range []int{30, 20, 10} {
		if ranked[i].Score != wantScore {
			t.Errorf("position %d score = %d, want %d", i, ranked[i].Score, wantScore)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d rank = %d, want %d", i, ranked[i].Rank, i+1)
		}
	}
}

func TestRankScoresTiesKeepScanOrder(t *testing.T) {
	in := items(20, 20, 10)
	ranked := RankScores(in, models.ScoringOverall)

	if ranked[0].UserID != "a" || ranked[1].UserID != "b" {
		t.Errorf("tied scores reordered: %q then %q", ranked[0].UserID, ranked[1].UserID)
	}
}

func TestRankScoresZeroExclusion(t *testing.T) {
	ranked := RankScores(items(0, 5, 0), models.ScoringTraining)
	if len(ranked) != 1 || ranked[0].Score != 5 {
		t.Errorf("category board should drop zero scores, got %d entries", len(ranked))
	}

	overall := RankScores(items(0, 5, 0), models.ScoringOverall)
	if len(overall) != 3 {
		t.Errorf("overall board should keep zero scores, got %d entries", len(overall))
	}
}

func TestTopOfBoardTruncation(t *testing.T) {
	ranked := RankScores(items(50, 40, 30, 20, 10), models.ScoringOverall)

	board, me := TopOfBoard(ranked, "e", 3)
	if len(board) != 3 {
		t.Fatalf("board len = %d, want 3", len(board))
	}
	if me == nil || me.UserID != "e" || me.Rank != 5 {
		t.Errorf("caller below cutoff should be returned separately, got %+v", me)
	}
}

func TestTopOfBoardCallerWithinCutoff(t *testing.T) {
	ranked := RankScores(items(50, 40, 30), models.ScoringOverall)

	board, me := TopOfBoard(ranked, "a", 3)
	if me != nil {
		t.Errorf("caller inside the cutoff should not be duplicated, got %+v", me)
	}
	if len(board) != 3 {
		t.Errorf("board len = %d, want 3", len(board))
	}
}

func TestTopOfBoardLimitBeyondSize(t *testing.T) {
	ranked := RankScores(items(50, 40), models.ScoringOverall)

	board, me := TopOfBoard(ranked, "z", 20)
	if len(board) != 2 {
		t.Errorf("board len = %d, want 2", len(board))
	}
	if me != nil {
		t.Errorf("unknown caller should yield nil me, got %+v", me)
	}
}

func TestRankOf(t *testing.T) {
	scores := []int{50, 30, 30, 10, 0}

	tests := []struct {
		score int
		want  int
	}{
		{50, 1},
		{30, 2},
		{10, 4},
		{0, 5},
	}

	for _, tt := range tests {
		if got := RankOf(tt.score, scores); got != tt.want {
			t.Errorf("RankOf(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
