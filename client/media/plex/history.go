package plex

import (
	"context"
	"fmt"
	"suasor/client/media/types"
	"suasor/types/models"
	"suasor/utils"
)

// GetWatchHistory retrieves watch history from Plex
func (c *PlexClient) GetPlayHistory(ctx context.Context, options *types.QueryOptions) ([]models.MediaPlayHistory[types.MediaData], error) {
	// Get logger from context
	log := utils.LoggerFromContext(ctx)

	log.Info().
		Uint64("clientID", c.ClientID).
		Str("clientType", string(c.ClientType)).
		Str("baseURL", c.baseURL).
		Msg("Retrieving watch history from Plex server")

	log.Warn().
		Uint64("clientID", c.ClientID).
		Str("clientType", string(c.ClientType)).
		Msg("Watch history retrieval not yet implemented for Plex")

	// This would require querying Plex for watch history
	return []models.MediaPlayHistory[types.MediaData]{}, fmt.Errorf("Watch history retrieval not yet implemented for Plex")
}
