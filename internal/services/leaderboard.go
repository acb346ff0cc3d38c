package services

import (
	"context"
	"sort"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

// ServiceLeaderboard ranks users by recomputing every score from the
// source counters on each call. Boards are never persisted or cached, so
// a read always reflects the claims that landed before it.
type ServiceLeaderboard struct {
	container     *do.Injector
	postgresDB    *bun.DB
	serviceStats  *ServiceStats
	serviceConfig *ServiceConfig
}

func NewServiceLeaderboard(container *do.Injector) (*ServiceLeaderboard, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	serviceStats, err := do.Invoke[*ServiceStats](container)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceLeaderboard{container, postgresDB, serviceStats, serviceConfig}, nil
}

func (service *ServiceLeaderboard) scoreFor(ctx context.Context, userID string, referrals int, mode models.ScoringMode) (int, error) {
	switch mode {
	case models.ScoringTraining:
		return service.serviceStats.CompletedLessonCount(ctx, userID)
	case models.ScoringAchievements:
		return service.serviceStats.AchievementCount(ctx, userID)
	case models.ScoringPet:
		return service.serviceStats.VirtualPetXP(ctx, userID)
	case models.ScoringOverall:
		training, err := service.serviceStats.CompletedLessonCount(ctx, userID)
		if err != nil {
			return 0, err
		}
		achievements, err := service.serviceStats.AchievementCount(ctx, userID)
		if err != nil {
			return 0, err
		}
		petXP, err := service.serviceStats.VirtualPetXP(ctx, userID)
		if err != nil {
			return 0, err
		}
		return models.CompositeScore(training, achievements, petXP, referrals), nil
	default:
		return 0, errorx.Wrap(ErrUnknownScoringMode, errorx.Invalid)
	}
}

// RankScores orders items by score descending and assigns dense positions
// starting at 1. The sort is stable, so equal scores keep the id order the
// scan produced. Category boards drop zero scores; the overall board keeps
// every account.
func RankScores(items []*models.LeaderboardItem, mode models.ScoringMode) []*models.LeaderboardItem {
	ranked := make([]*models.LeaderboardItem, 0, len(items))
	for _, item := range items {
		if mode != models.ScoringOverall && item.Score == 0 {
			continue
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i, item := range ranked {
		item.Rank = i + 1
	}

	return ranked
}

// RankOf is the strictly-greater rule: rank = 1 + the number of scores
// above yours, so ties share a position.
func RankOf(score int, scores []int) int {
	rank := 1
	for _, s := range scores {
		if s > score {
			rank++
		}
	}
	return rank
}

func (service *ServiceLeaderboard) computeBoard(ctx context.Context, mode models.ScoringMode) ([]*models.LeaderboardItem, error) {
	if !models.ValidScoringMode(mode) {
		return nil, errorx.Wrap(ErrUnknownScoringMode, errorx.Invalid)
	}

	users, err := datastore.ListUserAccounts(ctx, service.postgresDB)
	if err != nil {
		return nil, err
	}

	items := make([]*models.LeaderboardItem, 0, len(users))
	for i := range users {
		user := &users[i]
		score, err := service.scoreFor(ctx, user.ID, user.TotalReferrals, mode)
		if err != nil {
			return nil, err
		}
		items = append(items, &models.LeaderboardItem{
			UserID:      user.ID,
			DisplayName: user.DisplayName,
			Score:       score,
		})
	}

	return RankScores(items, mode), nil
}

// TopOfBoard cuts a ranked board at limit and returns the caller's own
// entry separately when they rank below the cutoff.
func TopOfBoard(ranked []*models.LeaderboardItem, userID string, limit int) ([]*models.LeaderboardItem, *models.LeaderboardItem) {
	var me *models.LeaderboardItem
	for _, item := range ranked {
		if item.UserID == userID {
			me = item
			break
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if me != nil && me.Rank <= limit {
		me = nil
	}

	return ranked, me
}

// GetLeaderboard returns the top slice of the board plus the caller's own
// entry when they rank below the cutoff. A limit below 1 falls back to the
// configured board size.
func (service *ServiceLeaderboard) GetLeaderboard(ctx context.Context, mode models.ScoringMode, userID string, limit int) (*models.LeaderboardResponse, error) {
	ranked, err := service.computeBoard(ctx, mode)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		configured, err := service.serviceConfig.GetIntConfig(ctx, CONFIG_LEADERBOARD_LIMIT, LEADERBOARD_DEFAULT_LIMIT)
		if err != nil || configured < 1 {
			configured = LEADERBOARD_DEFAULT_LIMIT
		}
		limit = configured
	}

	board, me := TopOfBoard(ranked, userID, limit)

	return &models.LeaderboardResponse{
		Mode:        mode,
		Leaderboard: board,
		Me:          me,
	}, nil
}

// MyRank scores only the caller against the full field, without building
// a board.
func (service *ServiceLeaderboard) MyRank(ctx context.Context, user *models.UserAccount, mode models.ScoringMode) (*models.MyRankResponse, error) {
	if !models.ValidScoringMode(mode) {
		return nil, errorx.Wrap(ErrUnknownScoringMode, errorx.Invalid)
	}

	users, err := datastore.ListUserAccounts(ctx, service.postgresDB)
	if err != nil {
		return nil, err
	}

	var myScore int
	scores := make([]int, 0, len(users))
	for i := range users {
		u := &users[i]
		score, err := service.scoreFor(ctx, u.ID, u.TotalReferrals, mode)
		if err != nil {
			return nil, err
		}
		if u.ID == user.ID {
			myScore = score
		}
		scores = append(scores, score)
	}

	return &models.MyRankResponse{
		Mode:  mode,
		Rank:  RankOf(myScore, scores),
		Score: myScore,
	}, nil
}
