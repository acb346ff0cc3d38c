package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

// ServiceAchievement grants one-time badges. No tokens move here.
type ServiceAchievement struct {
	container  *do.Injector
	postgresDB *bun.DB
}

func NewServiceAchievement(container *do.Injector) (*ServiceAchievement, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceAchievement{container, postgresDB}, nil
}

// Grant inserts a badge and reports whether it was newly created. The
// unique index on (user_id, title) makes repeated grants a no-op.
func (service *ServiceAchievement) Grant(ctx context.Context, userID string, title string, description string, badgeType string, category string) (bool, error) {
	achievement := &models.Achievement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		BadgeType:   badgeType,
		Category:    category,
		EarnedAt:    time.Now(),
	}

	granted, err := datastore.InsertAchievement(ctx, service.postgresDB, achievement)
	if err != nil {
		return false, err
	}

	if granted {
		log.Println("badge granted:", userID, title)
	}

	return granted, nil
}

func (service *ServiceAchievement) List(ctx context.Context, userID string) ([]models.Achievement, error) {
	achievements, err := datastore.ListAchievements(ctx, service.postgresDB, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return achievements, nil
}

// MarkShared flips the shared flag on a badge the first time the user
// shares it, and grants the one-time social badge for a first share ever.
func (service *ServiceAchievement) MarkShared(ctx context.Context, userID string, achievementID string) (*models.Achievement, error) {
	flipped, err := datastore.MarkAchievementShared(ctx, service.postgresDB, userID, achievementID)
	if err != nil {
		return nil, err
	}

	achievement, err := datastore.GetAchievementByID(ctx, service.postgresDB, userID, achievementID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errorx.Wrap(errors.New("achievement not found"), errorx.NotExist)
	}
	if err != nil {
		return nil, err
	}

	if flipped {
		_, err = service.Grant(ctx, userID, BADGE_TITLE_SOCIAL_BUTTERFLY, "Shared an achievement for the first time", models.BadgeBronze, models.AchievementCategorySocial)
		if err != nil {
			log.Println(err)
		}
	}

	return achievement, nil
}
