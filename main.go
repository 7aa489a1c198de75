// main.go
package main

import (
	"log"
	"time"

	"filmestop/cmd"
	"filmestop/internal/data/repository"
	"filmestop/internal/wire"
	"filmestop/pkg/cache"
	"filmestop/pkg/database"
	"filmestop/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Cache store: Redis when configured, in-process fallback otherwise
	ttl := time.Duration(config.Cache.TTLSeconds) * time.Second
	var store cache.Cache
	if config.Cache.RedisURL != "" {
		redisStore, err := cache.NewRedisCache(config.Cache.RedisURL, ttl)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
			store = cache.NewMemoryCache(ttl)
		} else {
			defer redisStore.Close()
			store = redisStore
			logger.Info("Redis cache connected")
		}
	} else {
		store = cache.NewMemoryCache(ttl)
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, store, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
