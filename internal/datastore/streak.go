package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func CreateTableStreak(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.StreakRecord)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.StreakRecord)(nil)).Index("index_user_streak_last_claim_date").IfNotExists().Column("last_claim_date").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func GetStreakRecord(ctx context.Context, db *bun.DB, userID string) (*models.StreakRecord, error) {
	var record models.StreakRecord
	err := db.NewSelect().Model(&record).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// InsertStreakRecord creates the record for a user's very first claim.
// The primary key absorbs a racing first claim; the caller must treat
// inserted == false as an already-claimed conflict.
func InsertStreakRecord(ctx context.Context, db *bun.DB, record *models.StreakRecord) (bool, error) {
	res, err := db.NewInsert().Model(record).On("CONFLICT (user_id) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// AdvanceStreakRecord persists a claim transition. The WHERE clause on
// last_claim_date is the storage-level once-per-day guard: a concurrent
// claim that already moved the date leaves zero rows to update.
func AdvanceStreakRecord(ctx context.Context, db *bun.DB, record *models.StreakRecord, today time.Time) (bool, error) {
	res, err := db.NewUpdate().Model(record).
		Set("current_streak = ?", record.CurrentStreak).
		Set("longest_streak = ?", record.LongestStreak).
		Set("total_logins = ?", record.TotalLogins).
		Set("last_claim_date = ?", record.LastClaimDate).
		Set("milestones_earned = ?", pgdialect.Array(record.MilestonesEarned)).
		Set("updated_at = current_timestamp").
		Where("user_id = ?", record.UserID).
		Where("last_claim_date IS NULL OR last_claim_date < ?", today).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
