// app/dependencies.go
package app

import (
	"gorm.io/gorm"
	"suasor/client"
	"suasor/handlers"
)

type AppDependencies struct {
	// Database
	db *gorm.DB

	// Repositories
	SystemRepositories
	UserRepositories
	MediaItemRepositories
	ClientRepositories
	JobRepositories

	// Collections
	RepositoryCollections

	// Services
	UserServices
	SystemServices
	ClientServices
	ClientMediaServices
	MediaItemServices
	MediaServices
	JobServices

	// Factories
	ClientFactoryService *client.ClientFactoryService

	// Handlers
	ClientHandlers
	ClientMediaHandlers
	MediaItemHandlers
	AIHandlers
	UserHandlers
	SystemHandlers
	JobHandlers
	searchHandler *handlers.SearchHandler

	// Recommendation core (C1-C15) and its background job layer
	recommend        *RecommendDependencies
	recommendHandler *handlers.RecommendHandler
}

// GetDB returns the database connection
func (a *AppDependencies) GetDB() *gorm.DB {
	return a.db
}

// SearchHandler returns the search handler
func (a *AppDependencies) SearchHandler() *handlers.SearchHandler {
	return a.searchHandler
}

// RecommendHandler returns the recommendation core's HTTP handler.
func (a *AppDependencies) RecommendHandler() *handlers.RecommendHandler {
	return a.recommendHandler
}

// RecommendDeps returns the recommendation core's wiring, used by main
// to start its background worker and release its connections on shutdown.
func (a *AppDependencies) RecommendDeps() *RecommendDependencies {
	return a.recommend
}
