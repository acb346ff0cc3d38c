package datastore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

// Read-only counter queries over the CRUD layer's tables.

func CreateCollaboratorTables(ctx context.Context, db *bun.DB) error {
	for _, model := range []interface{}{
		(*models.TrainingEnrollment)(nil),
		(*models.DailyTask)(nil),
		(*models.HealthRecord)(nil),
		(*models.PetState)(nil),
	} {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

func CountCompletedEnrollments(ctx context.Context, db *bun.DB, userID string, track string) (int, error) {
	count, err := db.NewSelect().Model((*models.TrainingEnrollment)(nil)).
		Where("user_id = ?", userID).
		Where("track = ?", track).
		Where("status = ?", models.EnrollmentCompleted).
		Count(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CompletedTaskDates returns the distinct calendar dates on which the user
// completed at least one task.
func CompletedTaskDates(ctx context.Context, db *bun.DB, userID string) ([]string, error) {
	var dates []string
	err := db.NewSelect().
		ColumnExpr("DISTINCT date").
		TableExpr("daily_task").
		Where("user_id = ?", userID).
		Where("is_completed = ?", true).
		Scan(ctx, &dates)
	if err != nil {
		return nil, err
	}

	return dates, nil
}

func CountHealthRecords(ctx context.Context, db *bun.DB, userID string) (int, error) {
	count, err := db.NewSelect().Model((*models.HealthRecord)(nil)).Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func GetVirtualPetXP(ctx context.Context, db *bun.DB, userID string) (int, error) {
	var state models.PetState
	err := db.NewSelect().Model(&state).Where("user_id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return state.XP, nil
}
