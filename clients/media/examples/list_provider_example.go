// list_provider_example.go
package examples

import (
	"context"
	
	"suasor/clients/media/providers"
	mediatypes "suasor/clients/media/types"
)

// This file demonstrates how a media client can implement the ListProvider interface
// using the adapters we've created

// Example client that implements both PlaylistProvider and CollectionProvider
type ExampleMediaClient struct {
	clientID uint64
	
	// ... other fields
	
	// Composition with the adapters for ListProvider interfaces
	playlistListProvider   providers.ListProvider[*mediatypes.Playlist]
	collectionListProvider providers.ListProvider[*mediatypes.Collection]
}

// NewExampleMediaClient creates a new client
func NewExampleMediaClient(clientID uint64) *ExampleMediaClient {
	client := &ExampleMediaClient{
		clientID: clientID,
		// ... initialize other fields
	}
	
	// Create the adapter helpers
	factory := providers.NewListProviderFactory()
	
	// Set up the adapters
	client.playlistListProvider = factory.CreatePlaylistListProvider(client)
	client.collectionListProvider = factory.CreateCollectionListProvider(client)
	
	return client
}

func (c *ExampleMediaClient) GetClientID() uint64 {
	return c.clientID
}

// Implementation of PlaylistProvider interface

func (c *ExampleMediaClient) SupportsPlaylists() bool {
	return true
}

func (c *ExampleMediaClient) GetPlaylistItems(ctx context.Context, playlistID string, options *mediatypes.QueryOptions) ([]*models.MediaItem[*mediatypes.Playlist], error) {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) SearchPlaylists(ctx context.Context, options *mediatypes.QueryOptions) ([]*models.MediaItem[*mediatypes.Playlist], error) {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) CreatePlaylist(ctx context.Context, name string, description string) (*models.MediaItem[*mediatypes.Playlist], error) {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) UpdatePlaylist(ctx context.Context, playlistID string, name string, description string) (*models.MediaItem[*mediatypes.Playlist], error) {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) DeletePlaylist(ctx context.Context, playlistID string) error {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) AddItemPlaylist(ctx context.Context, playlistID string, itemID string) error {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) RemovePlaylistItem(ctx context.Context, playlistID string, itemID string) error {
	// Implement playlist-specific logic here
}

func (c *ExampleMediaClient) ReorderPlaylistItems(ctx context.Context, playlistID string, itemIDs []string) error {
	// Implement playlist-specific logic here
}

// Implementation of CollectionProvider interface

func (c *ExampleMediaClient) SupportsCollections() bool {
	return true
}

func (c *ExampleMediaClient) GetCollectionItems(ctx context.Context, collectionID string, options *mediatypes.QueryOptions) ([]*models.MediaItem[*mediatypes.Collection], error) {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) SearchCollections(ctx context.Context, options *mediatypes.QueryOptions) ([]*models.MediaItem[*mediatypes.Collection], error) {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) CreateCollection(ctx context.Context, name string, description string, itemIDs []string) (*models.MediaItem[*mediatypes.Collection], error) {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) UpdateCollection(ctx context.Context, collectionID string, name string, description string) (*models.MediaItem[*mediatypes.Collection], error) {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) DeleteCollection(ctx context.Context, collectionID string) error {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) AddItemCollection(ctx context.Context, collectionID string, itemID string) error {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) RemoveCollectionItem(ctx context.Context, collectionID string, itemID string) error {
	// Implement collection-specific logic here
}

func (c *ExampleMediaClient) ReorderCollectionItems(ctx context.Context, collectionID string, itemIDs []string) error {
	// Implement collection-specific logic here
}

// ListProvider interface methods using the adapters

// Playlist ListProvider interface

func (c *ExampleMediaClient) GetPlaylistList(ctx context.Context) providers.ListProvider[*mediatypes.Playlist] {
	return c.playlistListProvider
}

// Collection ListProvider interface

func (c *ExampleMediaClient) GetCollectionList(ctx context.Context) providers.ListProvider[*mediatypes.Collection] {
	return c.collectionListProvider
}