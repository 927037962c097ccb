package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"catalog-api/internal/data/repository"
	"catalog-api/internal/seed"
	"catalog-api/migrations"
	"catalog-api/pkg/database"
	"catalog-api/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	migrationDB, err := sql.Open("pgx", database.ConnString(config.Database))
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := migrations.Migrate(migrationDB); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrationDB.Close()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := repository.NewRepository(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed.Run(ctx, repos, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Seeding complete")
}
