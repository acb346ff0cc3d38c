package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func CreateTableUserAccount(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.UserAccount)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.UserAccount)(nil)).Index("index_user_account_tokens").IfNotExists().Column("tokens").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func FindUserAccountByID(ctx context.Context, db *bun.DB, userID string) (*models.UserAccount, error) {
	var user models.UserAccount
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func CreateUserAccount(ctx context.Context, db *bun.DB, user *models.UserAccount) (*models.UserAccount, error) {
	_, err := db.NewInsert().Model(user).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	if err != nil {
		return nil, err
	}

	return FindUserAccountByID(ctx, db, user.ID)
}

func UpdateUserDisplayName(ctx context.Context, db *bun.DB, user *models.UserAccount) error {
	_, err := db.NewUpdate().Model(user).
		Set("display_name = ?", user.DisplayName).
		Set("updated_at = current_timestamp").
		WherePK().Exec(ctx)
	return err
}

// CreditTokens applies a single atomic increment and returns the new
// balance. Never read-modify-write.
func CreditTokens(ctx context.Context, db *bun.DB, userID string, amount int) (int, error) {
	var tokens int
	err := db.NewUpdate().Model((*models.UserAccount)(nil)).
		Set("tokens = tokens + ?", amount).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID).
		Returning("tokens").
		Scan(ctx, &tokens)
	if err != nil {
		return 0, err
	}

	return tokens, nil
}

// DebitTokens is a single conditional decrement: no row qualifies when the
// balance is short, so the tokens >= 0 invariant holds under concurrency.
// Returns sql.ErrNoRows on insufficient funds.
func DebitTokens(ctx context.Context, db *bun.DB, userID string, amount int) (int, error) {
	var tokens int
	err := db.NewUpdate().Model((*models.UserAccount)(nil)).
		Set("tokens = tokens - ?", amount).
		Set("updated_at = current_timestamp").
		Where("id = ? AND tokens >= ?", userID, amount).
		Returning("tokens").
		Scan(ctx, &tokens)
	if err != nil {
		return 0, err
	}

	return tokens, nil
}

// ListUserAccounts returns every account in stable id order, for the
// one-pass leaderboard scan.
func ListUserAccounts(ctx context.Context, db *bun.DB) ([]models.UserAccount, error) {
	var users []models.UserAccount
	err := db.NewSelect().Model(&users).OrderExpr("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}
