package models

import (
	"time"

	"github.com/uptrace/bun"
)

type StreakRecord struct {
	bun.BaseModel    `bun:"table:user_streak"`
	UserID           string     `bun:"user_id,pk" json:"user_id"`
	CurrentStreak    int        `bun:"current_streak" json:"current_streak"`
	LongestStreak    int        `bun:"longest_streak" json:"longest_streak"`
	TotalLogins      int        `bun:"total_logins" json:"total_logins"`
	LastClaimDate    *time.Time `bun:"last_claim_date" json:"last_claim_date"`
	MilestonesEarned []int      `bun:"milestones_earned,array" json:"milestones_earned"`
	CreatedAt        time.Time  `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at" json:"updated_at"`
}

type DailyReward struct {
	Tokens int `json:"tokens"`
	XP     int `json:"xp"`
}

// dailyRewardTable is the 7-day reward cycle for non-VIP users, day 7 is
// the weekly bonus. Longer streaks wrap around.
var dailyRewardTable = [7]DailyReward{
	{Tokens: 5, XP: 10},
	{Tokens: 10, XP: 15},
	{Tokens: 15, XP: 20},
	{Tokens: 20, XP: 25},
	{Tokens: 25, XP: 30},
	{Tokens: 30, XP: 40},
	{Tokens: 50, XP: 75},
}

const VIPDailyTokens = 20

// CycleReward returns the reward for the given streak length. VIP users get
// a flat token amount and double the table xp; VIP status never changes the
// streak logic itself.
func CycleReward(streak int, vip bool) DailyReward {
	if streak < 1 {
		streak = 1
	}
	reward := dailyRewardTable[(streak-1)%7]
	if vip {
		return DailyReward{Tokens: VIPDailyTokens, XP: reward.XP * 2}
	}
	return reward
}

// CycleDay maps a streak length onto its 1-7 position in the reward cycle.
func CycleDay(streak int) int {
	if streak < 1 {
		streak = 1
	}
	return (streak-1)%7 + 1
}

type StreakMilestone struct {
	BonusTokens int
	BadgeTitle  string
	BadgeType   string
}

var streakMilestones = map[int]StreakMilestone{
	7:   {BonusTokens: 70, BadgeTitle: "Week Warrior", BadgeType: BadgeBronze},
	14:  {BonusTokens: 150, BadgeTitle: "Fortnight Faithful", BadgeType: BadgeBronze},
	30:  {BonusTokens: 350, BadgeTitle: "Monthly Master", BadgeType: BadgeSilver},
	60:  {BonusTokens: 750, BadgeTitle: "Dedicated Devotee", BadgeType: BadgeSilver},
	100: {BonusTokens: 1300, BadgeTitle: "Century Champion", BadgeType: BadgeGold},
	365: {BonusTokens: 5000, BadgeTitle: "Year-long Companion", BadgeType: BadgeGold},
}

// MilestoneAt returns the milestone for a streak length, if one exists.
func MilestoneAt(streak int) (StreakMilestone, bool) {
	m, ok := streakMilestones[streak]
	return m, ok
}

// HasEarnedMilestone reports whether a milestone length was already paid out.
func (r *StreakRecord) HasEarnedMilestone(length int) bool {
	for _, earned := range r.MilestonesEarned {
		if earned == length {
			return true
		}
	}
	return false
}

type DailyClaimResult struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	TokensEarned   int    `json:"tokens_earned"`
	XPEarned       int    `json:"xp_earned"`
	TokenBalance   int    `json:"token_balance"`
	MilestoneBadge string `json:"milestone_badge,omitempty"`
}

type DailyRewardStatus struct {
	CurrentStreak int         `json:"current_streak"`
	LongestStreak int         `json:"longest_streak"`
	TotalLogins   int         `json:"total_logins"`
	ClaimedToday  bool        `json:"claimed_today"`
	NextReward    DailyReward `json:"next_reward"`
	NextRewardDay int         `json:"next_reward_day"`
}
