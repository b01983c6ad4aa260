package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"suasor/clients"
	mediatypes "suasor/clients/media/types"
	clienttypes "suasor/clients/types"
	"suasor/di/container"
	"suasor/handlers"
	"suasor/services"
)

func main() {
	ctx := context.Background()
	
	// Create a simple container
	c := container.NewContainer()
	
	// Register the required services and handlers
	err := registerTestComponents(c)
	if err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}
	
	// Try to get the handler
	handler, err := container.GetTyped[handlers.ClientListHandler[*clienttypes.EmbyConfig, *mediatypes.Playlist]](c)
	if err != nil {
		log.Fatalf("Failed to get handler: %v", err)
	}
	
	fmt.Println("Successfully retrieved handler:", handler != nil)
}

func registerTestComponents(c *container.Container) error {
	// Register mock services
	container.RegisterFactory[services.ClientListService[*clienttypes.EmbyConfig, *mediatypes.Playlist]](c, 
		func(c *container.Container) services.ClientListService[*clienttypes.EmbyConfig, *mediatypes.Playlist] {
			return &mockClientListService{}
		})
	
	container.RegisterFactory[handlers.CoreListHandler[*mediatypes.Playlist]](c, 
		func(c *container.Container) handlers.CoreListHandler[*mediatypes.Playlist] {
			return &mockCoreListHandler{}
		})
	
	// Register the handler
	container.RegisterFactory[handlers.ClientListHandler[*clienttypes.EmbyConfig, *mediatypes.Playlist]](c, 
		func(c *container.Container) handlers.ClientListHandler[*clienttypes.EmbyConfig, *mediatypes.Playlist] {
			coreHandler := container.MustGet[handlers.CoreListHandler[*mediatypes.Playlist]](c)
			clientService := container.MustGet[services.ClientListService[*clienttypes.EmbyConfig, *mediatypes.Playlist]](c)
			return handlers.NewClientListHandler[*clienttypes.EmbyConfig, *mediatypes.Playlist](coreHandler, clientService)
		})
	
	return nil
}

// Mock implementations
type mockClientListService struct{}

func (m *mockClientListService) GetClientList(ctx context.Context, userID uint64, listID string) (*mediatypes.MediaItem[*mediatypes.Playlist], error) {
	return nil, nil
}

func (m *mockClientListService) GetClientLists(ctx context.Context, userID uint64, limit int) ([]*mediatypes.MediaItem[*mediatypes.Playlist], error) {
	return nil, nil
}

func (m *mockClientListService) CreateClientList(ctx context.Context, clientID uint64, name string, description string) (*mediatypes.MediaItem[*mediatypes.Playlist], error) {
	return nil, nil
}

func (m *mockClientListService) UpdateClientList(ctx context.Context, clientID uint64, listID string, name string, description string, items []string) (*mediatypes.MediaItem[*mediatypes.Playlist], error) {
	return nil, nil
}

func (m *mockClientListService) DeleteClientList(ctx context.Context, clientID uint64, listID string) error {
	return nil
}

func (m *mockClientListService) AddClientItem(ctx context.Context, clientID uint64, listID string, itemID string) error {
	return nil
}

func (m *mockClientListService) RemoveClientItem(ctx context.Context, clientID uint64, listID string, itemID string) error {
	return nil
}

func (m *mockClientListService) SearchClientLists(ctx context.Context, clientID uint64, options mediatypes.QueryOptions) ([]*mediatypes.MediaItem[*mediatypes.Playlist], error) {
	return nil, nil
}

type mockCoreListHandler struct{}

func (m *mockCoreListHandler) GetAll(ctx interface{}) {}
func (m *mockCoreListHandler) GetByID(ctx interface{}) {}
func (m *mockCoreListHandler) GetByGenre(ctx interface{}) {}
func (m *mockCoreListHandler) GetByYear(ctx interface{}) {}
func (m *mockCoreListHandler) GetByActor(ctx interface{}) {}
func (m *mockCoreListHandler) GetByRating(ctx interface{}) {}
func (m *mockCoreListHandler) GetLatestListsByAdded(ctx interface{}) {}
func (m *mockCoreListHandler) GetPopularLists(ctx interface{}) {}
func (m *mockCoreListHandler) GetTopRatedLists(ctx interface{}) {}
func (m *mockCoreListHandler) GetByCreator(ctx interface{}) {}
func (m *mockCoreListHandler) GetItemsByListID(ctx interface{}) {}