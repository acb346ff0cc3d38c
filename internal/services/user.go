package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/datastore/redis_store"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
)

type ServiceUser struct {
	container    *do.Injector
	redisDBCache redis.UniversalClient
	postgresDB   *bun.DB
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
	dbRedisCache, err := do.InvokeNamed[redis.UniversalClient](container, "redis-cache")
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{container, dbRedisCache, postgresDB}, nil
}

// FindOrCreateUser resolves the authenticated identity to a balance row,
// creating it with a zero balance on first contact.
func (service *ServiceUser) FindOrCreateUser(ctx context.Context, userAuth *models.UserFromAuth) (*models.UserAccount, error) {
	if userAuth == nil {
		return nil, errors.New("userAuth is nil")
	}

	user, _ := service.FindUserByID(ctx, userAuth.ID)
	if user != nil {
		if userAuth.DisplayName != "" && user.DisplayName != userAuth.DisplayName {
			user.DisplayName = userAuth.DisplayName
			if err := datastore.UpdateUserDisplayName(ctx, service.postgresDB, user); err != nil {
				log.Println(err)
			}
			service.ClearUserCache(ctx, user.ID)
		}
		return user, nil
	}

	now := time.Now()
	newUser := &models.UserAccount{
		ID:          userAuth.ID,
		DisplayName: userAuth.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	log.Println("create user account:", newUser.ID)
	return datastore.CreateUserAccount(ctx, service.postgresDB, newUser)
}

func (service *ServiceUser) FindUserByID(ctx context.Context, userID string) (*models.UserAccount, error) {
	user, err := redis_store.GetUser(ctx, service.redisDBCache, userID)
	if err == nil {
		return user, nil
	}
	if err != redis.Nil {
		log.Println(err)
	}

	user, err = datastore.FindUserAccountByID(ctx, service.postgresDB, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// fire and forget
	//nolint:errcheck
	redis_store.SetUser(ctx, service.redisDBCache, user, CACHE_TTL_1_MIN)
	return user, nil
}

func (service *ServiceUser) ClearUserCache(ctx context.Context, userID string) {
	if err := redis_store.DeleteUser(ctx, service.redisDBCache, userID); err != nil {
		log.Println(err)
	}
}
