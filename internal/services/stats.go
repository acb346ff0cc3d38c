package services

import (
	"context"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

// ServiceStats exposes the read-only counters owned by the companion CRUD
// layer. Every counter is read fresh per call; the gamification engine
// keeps no derived copy of them.
type ServiceStats struct {
	container  *do.Injector
	postgresDB *bun.DB
}

func NewServiceStats(container *do.Injector) (*ServiceStats, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceStats{container, postgresDB}, nil
}

func (service *ServiceStats) CompletedLessonCount(ctx context.Context, userID string) (int, error) {
	return datastore.CountCompletedEnrollments(ctx, service.postgresDB, userID, models.TrackStandard)
}

func (service *ServiceStats) CompletedK9Count(ctx context.Context, userID string) (int, error) {
	return datastore.CountCompletedEnrollments(ctx, service.postgresDB, userID, models.TrackK9)
}

func (service *ServiceStats) AchievementCount(ctx context.Context, userID string) (int, error) {
	return datastore.CountAchievements(ctx, service.postgresDB, userID)
}

func (service *ServiceStats) SharedAchievementCount(ctx context.Context, userID string) (int, error) {
	return datastore.CountSharedAchievements(ctx, service.postgresDB, userID)
}

func (service *ServiceStats) VirtualPetXP(ctx context.Context, userID string) (int, error) {
	return datastore.GetVirtualPetXP(ctx, service.postgresDB, userID)
}

func (service *ServiceStats) CompletedTaskDates(ctx context.Context, userID string) ([]string, error) {
	return datastore.CompletedTaskDates(ctx, service.postgresDB, userID)
}

func (service *ServiceStats) HealthRecordCount(ctx context.Context, userID string) (int, error) {
	return datastore.CountHealthRecords(ctx, service.postgresDB, userID)
}
