package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

func CreateTableChallengeClaim(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.ChallengeClaim)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.ChallengeClaim)(nil)).Index("index_challenge_claim_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}

	// the idempotency authority: one claim per (user, challenge, week)
	_, err = db.NewCreateIndex().Model((*models.ChallengeClaim)(nil)).Index("index_challenge_claim_natural_key").IfNotExists().Unique().Column("user_id", "challenge_id", "week_start").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

// InsertChallengeClaim records a claim. A conflicting concurrent claim is
// absorbed by the unique index; inserted == false means someone else won.
func InsertChallengeClaim(ctx context.Context, db *bun.DB, claim *models.ChallengeClaim) (bool, error) {
	res, err := db.NewInsert().Model(claim).On("CONFLICT (user_id, challenge_id, week_start) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// ListChallengeClaimsForWeek fetches all of a user's claims for one week in
// a single query, for merging into the challenge views.
func ListChallengeClaimsForWeek(ctx context.Context, db *bun.DB, userID string, weekStart time.Time) ([]models.ChallengeClaim, error) {
	var claims []models.ChallengeClaim
	err := db.NewSelect().Model(&claims).
		Where("user_id = ?", userID).
		Where("week_start = ?", weekStart).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// CountChallengeClaims counts a user's weekly challenge claims. Tournament
// payouts share the table under a "tournament:" prefix and are excluded.
func CountChallengeClaims(ctx context.Context, db *bun.DB, userID string) (int, error) {
	count, err := db.NewSelect().Model((*models.ChallengeClaim)(nil)).
		Where("user_id = ?", userID).
		Where("challenge_id NOT LIKE ?", "tournament:%").
		Count(ctx)
	if err != nil {
		return 0, err
	}

	return count, nil
}
