package services

import (
	"context"
	"database/sql"
	"errors"
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

type ServiceStreak struct {
	container  *do.Injector
	redisDB    redis.UniversalClient
	postgresDB *bun.DB
	rs         *redsync.Redsync
	limiter    interfaces.Limiter

	serviceLedger      *ServiceLedger
	serviceAchievement *ServiceAchievement
	serviceConfig      *ServiceConfig
}

func NewServiceStreak(container *do.Injector) (*ServiceStreak, error) {
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

	serviceAchievement, err := do.Invoke[*ServiceAchievement](container)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceStreak{container, redisDB, postgresDB, rs, rateLimiter, serviceLedger, serviceAchievement, serviceConfig}, nil
}

// AdvanceStreak applies the daily state machine to a record (nil means the
// user has never claimed) and returns the post-claim record. It never
// mutates its input and returns ErrAlreadyClaimed on a same-day repeat.
func AdvanceStreak(record *models.StreakRecord, userID string, today time.Time) (*models.StreakRecord, error) {
	today = pkg.UTCDate(today)

	if record == nil {
		return &models.StreakRecord{
			UserID:        userID,
			CurrentStreak: 1,
			LongestStreak: 1,
			TotalLogins:   1,
			LastClaimDate: &today,
		}, nil
	}

	next := *record
	next.LastClaimDate = &today

	switch {
	case record.LastClaimDate != nil && pkg.SameDay(*record.LastClaimDate, today):
		return nil, ErrAlreadyClaimed
	case record.LastClaimDate != nil && pkg.DaysBetween(*record.LastClaimDate, today) == 1:
		next.CurrentStreak = record.CurrentStreak + 1
	default:
		// gap of two or more days, or a stale record without a date
		next.CurrentStreak = 1
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.TotalLogins = record.TotalLogins + 1

	return &next, nil
}

// ComputeClaimReward prices a freshly advanced record: the cycle reward for
// the new streak length, with vipTokens replacing the table payout for VIP
// users, plus the milestone bonus when the streak hits a milestone the
// record has not earned before. The milestone is only meaningful when pay
// is true.
func ComputeClaimReward(record *models.StreakRecord, vip bool, vipTokens int) (reward models.DailyReward, milestone models.StreakMilestone, pay bool) {
	reward = models.CycleReward(record.CurrentStreak, vip)
	if vip && vipTokens > 0 {
		reward.Tokens = vipTokens
	}

	milestone, hit := models.MilestoneAt(record.CurrentStreak)
	pay = hit && !record.HasEarnedMilestone(record.CurrentStreak)
	if pay {
		reward.Tokens += milestone.BonusTokens
	}

	return reward, milestone, pay
}

// ClaimDailyReward runs the full claim: state transition, reward lookup,
// milestone bonus, one ledger credit. The claim record lands before the
// credit so a crash in between can never double-pay.
func (service *ServiceStreak) ClaimDailyReward(ctx context.Context, user *models.UserAccount) (*models.DailyClaimResult, error) {
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

	mutex := service.rs.NewMutex(LockKeyDailyClaim(user.ID))
	if err := mutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrClaimLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer mutex.Unlock()

	now := time.Now()
	today := pkg.UTCDate(now)

	claimed, err := redis_store.HasDailyClaimMarker(ctx, service.redisDB, user.ID, today)
	if err != nil {
		log.Println(err)
	}
	if claimed {
		return nil, errorx.Wrap(ErrAlreadyClaimed, errorx.Invalid)
	}

	record, err := datastore.GetStreakRecord(ctx, service.postgresDB, user.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	next, err := AdvanceStreak(record, user.ID, today)
	if errors.Is(err, ErrAlreadyClaimed) {
		return nil, errorx.Wrap(ErrAlreadyClaimed, errorx.Invalid)
	}
	if err != nil {
		return nil, err
	}

	vipTokens := models.VIPDailyTokens
	if user.IsVIP {
		if configured, err := service.serviceConfig.GetIntConfig(ctx, CONFIG_VIP_DAILY_TOKENS, models.VIPDailyTokens); err == nil && configured > 0 {
			vipTokens = configured
		}
	}

	reward, milestone, payMilestone := ComputeClaimReward(next, user.IsVIP, vipTokens)
	tokens := reward.Tokens

	var milestoneBadge string
	if payMilestone {
		milestoneBadge = milestone.BadgeTitle
		next.MilestonesEarned = append(next.MilestonesEarned, next.CurrentStreak)
	}

	// persist the claim before any token moves
	var ok bool
	if record == nil {
		ok, err = datastore.InsertStreakRecord(ctx, service.postgresDB, next)
	} else {
		ok, err = datastore.AdvanceStreakRecord(ctx, service.postgresDB, next, today)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		// a concurrent claim won the storage-level guard
		return nil, errorx.Wrap(ErrAlreadyClaimed, errorx.Invalid)
	}

	balance, err := service.serviceLedger.Credit(ctx, user.ID, tokens, fmt.Sprintf("daily:%s", today.Format("2006-01-02")))
	if err != nil {
		return nil, err
	}

	if payMilestone {
		_, err = service.serviceAchievement.Grant(ctx, user.ID, milestone.BadgeTitle,
			fmt.Sprintf("Claimed the daily reward %d days in a row", next.CurrentStreak),
			milestone.BadgeType, models.AchievementCategoryStreak)
		if err != nil {
			log.Println(err)
		}
	}

	if err := redis_store.SetDailyClaimMarker(ctx, service.redisDB, user.ID, today, pkg.UntilEndOfDay(now)); err != nil {
		log.Println(err)
	}

	return &models.DailyClaimResult{
		CurrentStreak:  next.CurrentStreak,
		LongestStreak:  next.LongestStreak,
		TokensEarned:   tokens,
		XPEarned:       reward.XP,
		TokenBalance:   balance,
		MilestoneBadge: milestoneBadge,
	}, nil
}

func (service *ServiceStreak) GetDailyRewardStatus(ctx context.Context, user *models.UserAccount) (*models.DailyRewardStatus, error) {
	record, err := datastore.GetStreakRecord(ctx, service.postgresDB, user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.DailyRewardStatus{
			NextReward:    models.CycleReward(1, user.IsVIP),
			NextRewardDay: 1,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	today := pkg.UTCDate(time.Now())
	claimedToday := record.LastClaimDate != nil && pkg.SameDay(*record.LastClaimDate, today)

	nextStreak := 1
	switch {
	case claimedToday:
		nextStreak = record.CurrentStreak + 1
	case record.LastClaimDate != nil && pkg.DaysBetween(*record.LastClaimDate, today) == 1:
		nextStreak = record.CurrentStreak + 1
	}

	return &models.DailyRewardStatus{
		CurrentStreak: record.CurrentStreak,
		LongestStreak: record.LongestStreak,
		TotalLogins:   record.TotalLogins,
		ClaimedToday:  claimedToday,
		NextReward:    models.CycleReward(nextStreak, user.IsVIP),
		NextRewardDay: models.CycleDay(nextStreak),
	}, nil
}
