package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

type ServiceTournament struct {
	container          *do.Injector
	postgresDB         *bun.DB
	serviceLedger      *ServiceLedger
	serviceLeaderboard *ServiceLeaderboard
}

func NewServiceTournament(container *do.Injector) (*ServiceTournament, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	serviceLedger, err := do.Invoke[*ServiceLedger](container)
	if err != nil {
		return nil, err
	}

	serviceLeaderboard, err := do.Invoke[*ServiceLeaderboard](container)
	if err != nil {
		return nil, err
	}

	return &ServiceTournament{container, postgresDB, serviceLedger, serviceLeaderboard}, nil
}

// CurrentTournament selects the season covering a month. The four windows
// partition the calendar, so exactly one matches.
func CurrentTournament(month time.Month) (models.Tournament, bool) {
	for _, t := range models.Tournaments {
		if t.InMonth(month) {
			return t, true
		}
	}
	return models.Tournament{}, false
}

// GetCurrent returns the active season with live standings scored by the
// season's own mode.
func (service *ServiceTournament) GetCurrent(ctx context.Context, userID string) (*models.TournamentView, error) {
	tournament, ok := CurrentTournament(time.Now().UTC().Month())
	if !ok {
		return &models.TournamentView{Active: false}, nil
	}

	board, err := service.serviceLeaderboard.GetLeaderboard(ctx, tournament.Scoring, userID, 0)
	if err != nil {
		return nil, err
	}

	return &models.TournamentView{
		Active:    true,
		ID:        tournament.ID,
		Title:     tournament.Title,
		Scoring:   tournament.Scoring,
		Months:    tournament.Months,
		Prizes:    tournament.Prizes,
		Standings: board.Leaderboard,
	}, nil
}

// prizeForRank picks the payout tier for a final standing position.
func prizeForRank(t models.Tournament, rank int) int {
	switch {
	case rank == 1:
		return t.Prizes[models.PrizeFirst]
	case rank == 2:
		return t.Prizes[models.PrizeSecond]
	case rank == 3:
		return t.Prizes[models.PrizeThird]
	case rank <= 10:
		return t.Prizes[models.PrizeTop10]
	}
	return 0
}

// PayoutSeason credits prizes for a finished season. The operator runs it
// once per season from the CLI; each payout is recorded as a claim row
// keyed on the tournament and year, so a re-run credits nobody twice.
func (service *ServiceTournament) PayoutSeason(ctx context.Context, tournamentID string, year int) (int, error) {
	var tournament models.Tournament
	found := false
	for _, t := range models.Tournaments {
		if t.ID == tournamentID {
			tournament = t
			found = true
			break
		}
	}
	if !found {
		return 0, errorx.Wrap(ErrNoActiveTournament, errorx.NotExist)
	}

	ranked, err := service.serviceLeaderboard.computeBoard(ctx, tournament.Scoring)
	if err != nil {
		return 0, err
	}

	seasonKey := fmt.Sprintf("tournament:%s:%d", tournamentID, year)
	seasonStart := time.Date(year, tournament.Months[0], 1, 0, 0, 0, 0, time.UTC)

	paid := 0
	for _, item := range ranked {
		prize := prizeForRank(tournament, item.Rank)
		if prize == 0 {
			break
		}

		inserted, err := datastore.InsertChallengeClaim(ctx, service.postgresDB, &models.ChallengeClaim{
			UserID:        item.UserID,
			ChallengeID:   seasonKey,
			WeekStart:     seasonStart,
			TokensAwarded: prize,
		})
		if err != nil {
			return paid, err
		}
		if !inserted {
			log.Println("payout already recorded:", seasonKey, item.UserID)
			continue
		}

		if _, err := service.serviceLedger.Credit(ctx, item.UserID, prize, seasonKey); err != nil {
			return paid, err
		}
		paid++
	}

	return paid, nil
}
