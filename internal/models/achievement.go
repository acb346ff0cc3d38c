package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BadgeBronze = "bronze"
	BadgeSilver = "silver"
	BadgeGold   = "gold"
)

const (
	AchievementCategoryStreak    = "streak"
	AchievementCategoryChallenge = "challenge"
	AchievementCategorySocial    = "social"
	AchievementCategoryTraining  = "training"
)

// Achievement rows are append-only. A title is granted at most once per
// user, enforced by a unique index on (user_id, title).
type Achievement struct {
	bun.BaseModel `bun:"table:achievement"`
	ID            string    `bun:"id,pk" json:"id"`
	UserID        string    `bun:"user_id" json:"user_id"`
	Title         string    `bun:"title" json:"title"`
	Description   string    `bun:"description" json:"description"`
	BadgeType     string    `bun:"badge_type" json:"badge_type"`
	Category      string    `bun:"category" json:"category"`
	Shared        bool      `bun:"shared" json:"shared"`
	EarnedAt      time.Time `bun:"earned_at,default:current_timestamp" json:"earned_at"`
}
