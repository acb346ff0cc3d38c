package models

type ScoringMode string

const (
	ScoringTraining     ScoringMode = "training"
	ScoringAchievements ScoringMode = "achievements"
	ScoringPet          ScoringMode = "pet"
	ScoringOverall      ScoringMode = "overall"
)

// Composite weights for the "overall" score.
const (
	WeightTraining     = 10
	WeightAchievements = 5
	WeightPetXP        = 1
	WeightReferrals    = 15
)

// CompositeScore is the weighted overall metric used by the default
// leaderboard and the winter tournament.
func CompositeScore(training, achievements, petXP, referrals int) int {
	return training*WeightTraining +
		achievements*WeightAchievements +
		petXP*WeightPetXP +
		referrals*WeightReferrals
}

func ValidScoringMode(mode ScoringMode) bool {
	switch mode {
	case ScoringTraining, ScoringAchievements, ScoringPet, ScoringOverall:
		return true
	}
	return false
}

type LeaderboardItem struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

type LeaderboardResponse struct {
	Mode        ScoringMode        `json:"mode"`
	Leaderboard []*LeaderboardItem `json:"leaderboard"`
	Me          *LeaderboardItem   `json:"me,omitempty"`
}

type MyRankResponse struct {
	Mode  ScoringMode `json:"mode"`
	Rank  int         `json:"rank"`
	Score int         `json:"score"`
}
