package main

import (
	"database/sql"
	"log"

	"catalog-api/cmd"
	"catalog-api/internal/data/repository"
	"catalog-api/internal/imagestore"
	"catalog-api/internal/wire"
	"catalog-api/migrations"
	"catalog-api/pkg/database"
	"catalog-api/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Run migrations over database/sql; the pool below uses pgx directly
	migrationDB, err := sql.Open("pgx", database.ConnString(config.Database))
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := migrations.Migrate(migrationDB); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	migrationDB.Close()

	logger.Info("Migrations applied")

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories and the image store client
	repos := repository.NewRepository(db, logger)
	images := imagestore.NewClient(config.ImageStore, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, images, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
