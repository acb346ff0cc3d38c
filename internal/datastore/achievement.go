package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func CreateTableAchievement(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Achievement)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Achievement)(nil)).Index("index_achievement_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}

	// a milestone title is granted at most once per user
	_, err = db.NewCreateIndex().Model((*models.Achievement)(nil)).Index("index_achievement_user_id_title").IfNotExists().Unique().Column("user_id", "title").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// InsertAchievement grants a badge. Duplicate titles collapse on the unique
// index; inserted == false means the badge already existed.
func InsertAchievement(ctx context.Context, db *bun.DB, achievement *models.Achievement) (bool, error) {
	res, err := db.NewInsert().Model(achievement).On("CONFLICT (user_id, title) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func GetAchievementByID(ctx context.Context, db *bun.DB, userID string, achievementID string) (*models.Achievement, error) {
	var achievement models.Achievement
	err := db.NewSelect().Model(&achievement).
		Where("id = ?", achievementID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &achievement, nil
}

func ListAchievements(ctx context.Context, db *bun.DB, userID string) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := db.NewSelect().Model(&achievements).
		Where("user_id = ?", userID).
		OrderExpr("earned_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return achievements, nil
}

// MarkAchievementShared flips the shared flag once. Zero rows affected
// means the badge is unknown or was already shared.
func MarkAchievementShared(ctx context.Context, db *bun.DB, userID string, achievementID string) (bool, error) {
	res, err := db.NewUpdate().Model((*models.Achievement)(nil)).
		Set("shared = ?", true).
		Where("id = ? AND user_id = ? AND shared = ?", achievementID, userID, false).
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

func CountAchievements(ctx context.Context, db *bun.DB, userID string) (int, error) {
	count, err := db.NewSelect().Model((*models.Achievement)(nil)).Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func CountSharedAchievements(ctx context.Context, db *bun.DB, userID string) (int, error) {
	count, err := db.NewSelect().Model((*models.Achievement)(nil)).
		Where("user_id = ?", userID).
		Where("shared = ?", true).
		Count(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}
