package redis_store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

// Claim markers are a fast user-facing pre-filter only. The Postgres
// unique constraints remain the correctness mechanism; a marker that is
// missing (expired, flushed) just means one extra round trip to Postgres.

func dbKeyDailyClaim(userID string, day time.Time) string {
	return fmt.Sprintf("claim:daily:%s:%s", userID, day.Format("2006-01-02"))
}

func dbKeyChallengeClaim(userID string, challengeID string, weekStart time.Time) string {
	return fmt.Sprintf("claim:challenge:%s:%s:%s", userID, challengeID, weekStart.Format("2006-01-02"))
}

func dbKeyUser(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func SetDailyClaimMarker(ctx context.Context, cmd redis.Cmdable, userID string, day time.Time, ttl time.Duration) error {
	return cmd.SetNX(ctx, dbKeyDailyClaim(userID, day), 1, ttl).Err()
}

func HasDailyClaimMarker(ctx context.Context, cmd redis.Cmdable, userID string, day time.Time) (bool, error) {
	n, err := cmd.Exists(ctx, dbKeyDailyClaim(userID, day)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func SetChallengeClaimMarker(ctx context.Context, cmd redis.Cmdable, userID string, challengeID string, weekStart time.Time, ttl time.Duration) error {
	return cmd.SetNX(ctx, dbKeyChallengeClaim(userID, challengeID, weekStart), 1, ttl).Err()
}

func HasChallengeClaimMarker(ctx context.Context, cmd redis.Cmdable, userID string, challengeID string, weekStart time.Time) (bool, error) {
	n, err := cmd.Exists(ctx, dbKeyChallengeClaim(userID, challengeID, weekStart)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func GetUser(ctx context.Context, cmd redis.Cmdable, userID string) (*models.UserAccount, error) {
	b, err := cmd.Get(ctx, dbKeyUser(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var user models.UserAccount
	err = msgpack.Unmarshal(b, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func SetUser(ctx context.Context, cmd redis.Cmdable, user *models.UserAccount, ttl time.Duration) error {
	b, err := msgpack.Marshal(user)
	if err != nil {
		return err
	}

	return cmd.Set(ctx, dbKeyUser(user.ID), b, ttl).Err()
}

func DeleteUser(ctx context.Context, cmd redis.Cmdable, userID string) error {
	return cmd.Del(ctx, dbKeyUser(userID)).Err()
}
