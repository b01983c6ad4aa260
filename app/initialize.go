// app/initialize.go
package app

import (
	"context"
	"suasor/client"
	"suasor/handlers"
	"suasor/services"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Initialize creates and initializes all application dependencies
// This is a cleaner, more modular approach compared to InitializeDependencies
func Initialize(ctx context.Context, db *gorm.DB, configService services.ConfigService) *AppDependencies {
	log.Info().Msg("Initializing application dependencies")
	
	// Create empty dependencies structure
	deps := &AppDependencies{
		db: db,
	}
	
	// Get the client factory service
	clientFactory := client.GetClientFactoryService()
	deps.ClientFactoryService = clientFactory
	
	// Create the service registrar
	registrar := NewServiceRegistrar(db, clientFactory, deps)
	
	// Register all services
	registrar.RegisterAllServices(configService)
	
	// Initialize job service related components
	initializeJobServices(ctx, deps)

	// Initialize the recommendation core (C1-C15) and its job layer
	initializeRecommend(ctx, deps, configService)

	log.Info().Msg("Application dependencies initialized successfully")
	return deps
}

// initializeRecommend wires recommend.Core and its background job
// layer from the configured redis connection, then starts the asynq
// worker and scheduler. A wiring failure is logged, not fatal: every
// other feature in the app still works without the recommendation core.
func initializeRecommend(ctx context.Context, deps *AppDependencies, configService services.ConfigService) {
	cfg := configService.GetConfig().Recommend

	redisHost := cfg.RedisHost
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := cfg.RedisPort
	if redisPort == "" {
		redisPort = "6379"
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "./data/recommend"
	}

	recommendDeps, err := InitializeRecommend(ctx, deps.db, redisHost+":"+redisPort, cfg.RedisPassword, cfg.RedisDB, dataDir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize recommendation core, recommend routes will be unavailable")
		return
	}
	if err := recommendDeps.StartWorker(); err != nil {
		log.Error().Err(err).Msg("Failed to start recommendation background workers")
	}

	deps.recommend = recommendDeps
	deps.recommendHandler = handlers.NewRecommendHandler(recommendDeps.Core)
}

// initializeJobServices initializes and registers all job services
func initializeJobServices(ctx context.Context, deps *AppDependencies) {
	// Initialize job services
	jobService := deps.JobServices.JobService()
	
	// Register jobs with the job service if available
	if jobService != nil {
		// Register recommendation job if available
		if recommendationJob := deps.JobServices.RecommendationJob(); recommendationJob != nil {
			jobService.RegisterJob(recommendationJob)
		}
		
		// Register media sync job if available
		if mediaSyncJob := deps.JobServices.MediaSyncJob(); mediaSyncJob != nil {
			jobService.RegisterJob(mediaSyncJob)
		}
		
		// Register watch history sync job if available
		if watchHistorySyncJob := deps.JobServices.WatchHistorySyncJob(); watchHistorySyncJob != nil {
			jobService.RegisterJob(watchHistorySyncJob)
		}
		
		// Register favorites sync job if available
		if favoritesSyncJob := deps.JobServices.FavoritesSyncJob(); favoritesSyncJob != nil {
			jobService.RegisterJob(favoritesSyncJob)
		}
	}
}