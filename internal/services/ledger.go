package services

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
)

// ServiceLedger owns the token balance. Both operations are single atomic
// SQL statements; concurrent credits and debits never lose a delta.
type ServiceLedger struct {
	container   *do.Injector
	postgresDB  *bun.DB
	serviceUser *ServiceUser
}

func NewServiceLedger(container *do.Injector) (*ServiceLedger, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	serviceUser, err := do.Invoke[*ServiceUser](container)
	if err != nil {
		return nil, err
	}

	return &ServiceLedger{container, postgresDB, serviceUser}, nil
}

func (service *ServiceLedger) Credit(ctx context.Context, userID string, amount int, reason string) (int, error) {
	if amount <= 0 {
		return 0, errorx.Wrap(errors.New("credit amount must be positive"), errorx.Invalid)
	}

	balance, err := datastore.CreditTokens(ctx, service.postgresDB, userID, amount)
	if err != nil {
		return 0, err
	}

	log.Println("credit:", userID, amount, reason, "balance:", balance)
	service.serviceUser.ClearUserCache(ctx, userID)
	return balance, nil
}

// Debit fails with ErrInsufficientFunds and performs no mutation when the
// balance is short. The decrement is conditional in SQL, so two racing
// debits cannot take the balance below zero.
func (service *ServiceLedger) Debit(ctx context.Context, userID string, amount int, reason string) (int, error) {
	if amount <= 0 {
		return 0, errorx.Wrap(errors.New("debit amount must be positive"), errorx.Invalid)
	}

	balance, err := datastore.DebitTokens(ctx, service.postgresDB, userID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errorx.Wrap(ErrInsufficientFunds, errorx.Invalid)
	}
	if err != nil {
		return 0, err
	}

	log.Println("debit:", userID, amount, reason, "balance:", balance)
	service.serviceUser.ClearUserCache(ctx, userID)
	return balance, nil
}
