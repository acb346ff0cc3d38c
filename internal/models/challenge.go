package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ChallengeType string

const (
	ChallengeTraining ChallengeType = "training"
	ChallengeTasks    ChallengeType = "tasks"
	ChallengeHealth   ChallengeType = "health"
	ChallengePet      ChallengeType = "pet"
	ChallengeSocial   ChallengeType = "social"
	ChallengeK9       ChallengeType = "k9"
)

// Challenge definitions are a closed set edited by deploys, never stored.
type Challenge struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Type         ChallengeType `json:"type"`
	Target       int           `json:"target"`
	RewardTokens int           `json:"reward_tokens"`
}

var WeeklyChallenges = []Challenge{
	{
		ID:           "training_master",
		Title:        "Training Master",
		Description:  "Complete 3 training lessons with your dog",
		Type:         ChallengeTraining,
		Target:       3,
		RewardTokens: 50,
	},
	{
		ID:           "task_keeper",
		Title:        "Task Keeper",
		Description:  "Finish your daily tasks on 5 different days",
		Type:         ChallengeTasks,
		Target:       5,
		RewardTokens: 40,
	},
	{
		ID:           "health_guardian",
		Title:        "Health Guardian",
		Description:  "Log 2 health records",
		Type:         ChallengeHealth,
		Target:       2,
		RewardTokens: 30,
	},
	{
		ID:           "pet_pal",
		Title:        "Pet Pal",
		Description:  "Play 10 rounds with your virtual pet",
		Type:         ChallengePet,
		Target:       10,
		RewardTokens: 45,
	},
	{
		ID:           "social_butterfly",
		Title:        "Social Butterfly",
		Description:  "Share an achievement with your friends",
		Type:         ChallengeSocial,
		Target:       1,
		RewardTokens: 25,
	},
	{
		ID:           "k9_cadet",
		Title:        "K9 Cadet",
		Description:  "Complete a K9 handler course module",
		Type:         ChallengeK9,
		Target:       1,
		RewardTokens: 60,
	},
}

// ChallengeByID scans the static definitions.
func ChallengeByID(id string) (Challenge, bool) {
	for _, c := range WeeklyChallenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// ClampProgress caps a raw counter at the challenge target for display.
func ClampProgress(progress, target int) int {
	if progress > target {
		return target
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// ChallengeClaim is the idempotency record: at most one row per
// (user_id, challenge_id, week_start), enforced by a unique index.
type ChallengeClaim struct {
	bun.BaseModel `bun:"table:challenge_claim"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID        string    `bun:"user_id" json:"user_id"`
	ChallengeID   string    `bun:"challenge_id" json:"challenge_id"`
	WeekStart     time.Time `bun:"week_start" json:"week_start"`
	TokensAwarded int       `bun:"tokens_awarded" json:"tokens_awarded"`
	ClaimedAt     time.Time `bun:"claimed_at,default:current_timestamp" json:"claimed_at"`
}

type ChallengeView struct {
	Challenge
	Progress    int  `json:"progress"`
	IsCompleted bool `json:"is_completed"`
	IsClaimed   bool `json:"is_claimed"`
	CanClaim    bool `json:"can_claim"`
}

type ChallengeClaimResult struct {
	ChallengeID   string `json:"challenge_id"`
	TokensAwarded int    `json:"tokens_awarded"`
	TokenBalance  int    `json:"token_balance"`
	FirstClaim    bool   `json:"first_claim"`
}
