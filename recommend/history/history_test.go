package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"suasor/recommend/history"
)

func TestEnrichWithWatchedStatusMarksWatchedItems(t *testing.T) {
	now := time.Now()
	statusMap := map[uint64]history.WatchedStatus{
		42: {WatchedAt: now, Plays: 3},
	}
	items := history.EnrichWithWatchedStatus([]uint64{42, 7}, statusMap)

	assert.True(t, items[0].IsWatched)
	assert.NotNil(t, items[0].WatchedAt)
	assert.False(t, items[1].IsWatched)
	assert.Nil(t, items[1].WatchedAt)
}

func TestEnrichWithWatchedStatusEmptyInputs(t *testing.T) {
	items := history.EnrichWithWatchedStatus(nil, nil)
	assert.Empty(t, items)
}
