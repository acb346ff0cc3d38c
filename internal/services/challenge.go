package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/datastore/redis_store"
	"github.com/jfk9unit/caninecompanionapp/internal/interfaces"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
	"github.com/jfk9unit/caninecompanionapp/internal/pkg"
	"github.com/jfk9unit/caninecompanionapp/internal/pkg/limiter"
)

type ServiceChallenge struct {
	container  *do.Injector
	redisDB    redis.UniversalClient
	postgresDB *bun.DB
	rs         *redsync.Redsync
	limiter    interfaces.Limiter

	serviceLedger      *ServiceLedger
	serviceStats       *ServiceStats
	serviceAchievement *ServiceAchievement
	serviceConfig      *ServiceConfig
}

func NewServiceChallenge(container *do.Injector) (*ServiceChallenge, error) {
	redisDB, err := do.InvokeNamed[redis.UniversalClient](container, "redis-cache")
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

	rateLimiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	serviceLedger, err := do.Invoke[*ServiceLedger](container)
	if err != nil {
		return nil, err
	}

	serviceStats, err := do.Invoke[*ServiceStats](container)
	if err != nil {
		return nil, err
	}

	serviceAchievement, err := do.Invoke[*ServiceAchievement](container)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceChallenge{container, redisDB, postgresDB, rs, rateLimiter, serviceLedger, serviceStats, serviceAchievement, serviceConfig}, nil
}

// challengeProgress maps a challenge type onto the live counter that
// drives it. Counters are lifetime totals owned by the companion tables;
// the weekly reset applies to claims, not to progress.
func (service *ServiceChallenge) challengeProgress(ctx context.Context, userID string, typ models.ChallengeType) (int, error) {
	switch typ {
	case models.ChallengeTraining:
		return service.serviceStats.CompletedLessonCount(ctx, userID)
	case models.ChallengeTasks:
		dates, err := service.serviceStats.CompletedTaskDates(ctx, userID)
		if err != nil {
			return 0, err
		}
		return len(dates), nil
	case models.ChallengeHealth:
		return service.serviceStats.HealthRecordCount(ctx, userID)
	case models.ChallengePet:
		xp, err := service.serviceStats.VirtualPetXP(ctx, userID)
		if err != nil {
			return 0, err
		}
		perPlay, err := service.serviceConfig.GetIntConfig(ctx, CONFIG_PET_XP_PER_PLAY, PET_XP_PER_PLAY)
		if err != nil || perPlay < 1 {
			perPlay = PET_XP_PER_PLAY
		}
		return xp / perPlay, nil
	case models.ChallengeSocial:
		return service.serviceStats.SharedAchievementCount(ctx, userID)
	case models.ChallengeK9:
		return service.serviceStats.CompletedK9Count(ctx, userID)
	default:
		return 0, nil
	}
}

// GetWeeklyProgress builds the view for every active challenge: live
// progress clamped to the target, merged with this week's claims.
func (service *ServiceChallenge) GetWeeklyProgress(ctx context.Context, userID string) ([]models.ChallengeView, error) {
	weekStart := pkg.WeekStart(time.Now())

	claims, err := datastore.ListChallengeClaimsForWeek(ctx, service.postgresDB, userID, weekStart)
	if err != nil {
		return nil, err
	}
	claimed := make(map[string]bool, len(claims))
	for _, claim := range claims {
		claimed[claim.ChallengeID] = true
	}

	views := make([]models.ChallengeView, 0, len(models.WeeklyChallenges))
	for _, challenge := range models.WeeklyChallenges {
		progress, err := service.challengeProgress(ctx, userID, challenge.Type)
		if err != nil {
			return nil, err
		}

		completed := progress >= challenge.Target
		views = append(views, models.ChallengeView{
			Challenge:   challenge,
			Progress:    models.ClampProgress(progress, challenge.Target),
			IsCompleted: completed,
			IsClaimed:   claimed[challenge.ID],
			CanClaim:    completed && !claimed[challenge.ID],
		})
	}

	return views, nil
}

// Claim pays out one challenge for the current week. The claim row is
// inserted before the credit; the unique index makes retries and races
// settle on a single payout.
func (service *ServiceChallenge) Claim(ctx context.Context, user *models.UserAccount, challengeID string) (*models.ChallengeClaimResult, error) {
	challenge, ok := models.ChallengeByID(challengeID)
	if !ok {
		return nil, errorx.Wrap(ErrChallengeNotFound, errorx.NotExist)
	}

	rate, err := service.serviceConfig.GetIntConfig(ctx, CONFIG_CLAIM_RATE_PER_MINUTE, CLAIM_RATE_PER_MINUTE)
	if err != nil || rate < 1 {
		rate = CLAIM_RATE_PER_MINUTE
	}
	err = service.limiter.Allow(ctx, LimitKeyClaim(user.ID), redis_rate.PerMinute(rate))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, errorx.Wrap(err, errorx.RateLimiting)
		}
		return nil, err
	}

	mutex := service.rs.NewMutex(LockKeyChallengeClaim(user.ID, challengeID))
	if err := mutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrClaimLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer mutex.Unlock()

	now := time.Now()
	weekStart := pkg.WeekStart(now)

	marked, err := redis_store.HasChallengeClaimMarker(ctx, service.redisDB, user.ID, challengeID, weekStart)
	if err != nil {
		log.Println(err)
	}
	if marked {
		return nil, errorx.Wrap(ErrAlreadyClaimed, errorx.Invalid)
	}

	progress, err := service.challengeProgress(ctx, user.ID, challenge.Type)
	if err != nil {
		return nil, err
	}
	if progress < challenge.Target {
		return nil, errorx.Wrap(ErrNotYetEligible, errorx.Invalid)
	}

	inserted, err := datastore.InsertChallengeClaim(ctx, service.postgresDB, &models.ChallengeClaim{
		UserID:        user.ID,
		ChallengeID:   challengeID,
		WeekStart:     weekStart,
		TokensAwarded: challenge.RewardTokens,
	})
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, errorx.Wrap(ErrAlreadyClaimed, errorx.Invalid)
	}

	balance, err := service.serviceLedger.Credit(ctx, user.ID, challenge.RewardTokens, fmt.Sprintf("challenge:%s:%s", challengeID, weekStart.Format("2006-01-02")))
	if err != nil {
		return nil, err
	}

	total, err := datastore.CountChallengeClaims(ctx, service.postgresDB, user.ID)
	if err != nil {
		log.Println(err)
	}
	firstClaim := total == 1
	if firstClaim {
		_, err = service.serviceAchievement.Grant(ctx, user.ID, BADGE_TITLE_CHALLENGE_ACCEPTED,
			"Claimed a weekly challenge reward for the first time",
			models.BadgeBronze, models.AchievementCategoryChallenge)
		if err != nil {
			log.Println(err)
		}
	}

	if err := redis_store.SetChallengeClaimMarker(ctx, service.redisDB, user.ID, challengeID, weekStart, pkg.UntilEndOfWeek(now)); err != nil {
		log.Println(err)
	}

	return &models.ChallengeClaimResult{
		ChallengeID:   challengeID,
		TokensAwarded: challenge.RewardTokens,
		TokenBalance:  balance,
		FirstClaim:    firstClaim,
	}, nil
}
