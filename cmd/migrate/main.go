package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"

	"github.com/jfk9unit/caninecompanionapp/internal/datastore"
	"github.com/jfk9unit/caninecompanionapp/internal/models"
	"github.com/jfk9unit/caninecompanionapp/internal/services"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandConfigMigration(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableUserAccount(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableStreak(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableChallengeClaim(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableAchievement(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateTableConfig(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			err = datastore.CreateCollaboratorTables(ctx, db)
			if err != nil {
				log.Fatal(err)
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

// insert default configs to db
func commandConfigMigration() *cli.Command {
	return &cli.Command{
		Name:        "migrate-config",
		Description: "Insert default configs to db",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			configs := []models.Config{
				{Key: services.CONFIG_SERVER_MODE, Value: "production"},
				{Key: services.CONFIG_LEADERBOARD_LIMIT, Value: strconv.Itoa(services.LEADERBOARD_DEFAULT_LIMIT)},
				{Key: services.CONFIG_CLAIM_RATE_PER_MINUTE, Value: strconv.Itoa(services.CLAIM_RATE_PER_MINUTE)},
				{Key: services.CONFIG_VIP_DAILY_TOKENS, Value: strconv.Itoa(models.VIPDailyTokens)},
				{Key: services.CONFIG_PET_XP_PER_PLAY, Value: strconv.Itoa(services.PET_XP_PER_PLAY)},
			}

			for _, config := range configs {
				if err := datastore.InsertConfig(ctx, db, config); err != nil {
					log.Println(err)
				}
			}

			fmt.Println("Migration success")

			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	db := bun.NewDB(sqldb, pgdialect.New())
	return db, nil
}
