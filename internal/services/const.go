package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrAlreadyClaimed = errors.New("already claimed")
var ErrInsufficientFunds = errors.New("insufficient token balance")
var ErrChallengeNotFound = errors.New("challenge not found")
var ErrNotYetEligible = errors.New("challenge target not reached")
var ErrNoActiveTournament = errors.New("no active tournament")
var ErrClaimLock = errors.New("claim already in progress")
var ErrUnknownScoringMode = errors.New("unknown scoring mode")

const (
	CONFIG_SERVER_MODE           = "SERVER_MODE"
	CONFIG_LEADERBOARD_LIMIT     = "LEADERBOARD_LIMIT"
	CONFIG_CLAIM_RATE_PER_MINUTE = "CLAIM_RATE_PER_MINUTE"
	CONFIG_VIP_DAILY_TOKENS      = "VIP_DAILY_TOKENS"
	CONFIG_PET_XP_PER_PLAY       = "PET_XP_PER_PLAY"

	SERVER_MODE_DEVELOPMENT = "development"
	SERVER_MODE_PRODUCTION  = "production"

	LEADERBOARD_DEFAULT_LIMIT = 20
	CLAIM_RATE_PER_MINUTE     = 10
	PET_XP_PER_PLAY           = 10

	CACHE_TTL_1_MIN  = 1 * time.Minute
	CACHE_TTL_5_MINS = 5 * time.Minute
	CACHE_TTL_1_HOUR = 1 * time.Hour

	BADGE_TITLE_CHALLENGE_ACCEPTED = "Challenge Accepted"
	BADGE_TITLE_SOCIAL_BUTTERFLY   = "Social Butterfly"
)

// locks
func LockKeyDailyClaim(userID string) string {
	return fmt.Sprintf("lock:daily-claim:%s", userID)
}

func LockKeyChallengeClaim(userID string, challengeID string) string {
	return fmt.Sprintf("lock:challenge-claim:%s:%s", userID, challengeID)
}

// cache
func DBKeyConfig(key string) string {
	return fmt.Sprintf("config:%s", strings.ToLower(key))
}

// rate limits
func LimitKeyClaim(userID string) string {
	return fmt.Sprintf("limit:claim:%s", userID)
}
