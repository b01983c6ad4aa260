// Package history implements the watch-history store (C14): an
// append-only, unique-by-(user, trakt_id, watched_at) event log and the
// read operations the scoring and profile components need from it.
package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"suasor/types/models"
)

// WatchedStatus is one entry of get_watched_status_map: when a
// candidate was watched and how many times.
type WatchedStatus struct {
	WatchedAt time.Time
	Plays     int
}

// Stats summarizes a user's watch history for profile building and
// phase-detection windowing.
type Stats struct {
	TotalWatched int
	Earliest     time.Time
	Latest       time.Time
}

// Store is the gorm-backed implementation of C14, following the same
// interface+struct+constructor shape the rest of this codebase's
// repositories use.
type Store interface {
	BatchInsert(ctx context.Context, events []*models.WatchEvent) error
	GetWatchedIDs(ctx context.Context, userID uint64, mediaType *models.MediaType) (map[uint64]struct{}, error)
	GetWatchedStatusMap(ctx context.Context, userID uint64, mediaType models.MediaType) (map[uint64]WatchedStatus, error)
	GetWatchStats(ctx context.Context, userID uint64) (Stats, error)
	GetTopGenres(ctx context.Context, userID uint64, k int) ([]string, error)
	GetRecentWatches(ctx context.Context, userID uint64, limit int, mediaType *models.MediaType) ([]models.WatchEvent, error)
	GetEventsInRange(ctx context.Context, userID uint64, start, end time.Time) ([]models.WatchEvent, error)
}

type store struct {
	db *gorm.DB
}

// NewStore builds a Store over db.
func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

// BatchInsert attempts a bulk insert-ignore first; if the batch insert
// itself errors (not merely conflicts, which OnConflict handles), it
// falls back to a per-row insert-ignore loop, matching spec §4.14.
func (s *store) BatchInsert(ctx context.Context, events []*models.WatchEvent) error {
	if len(events) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&events).Error
	if err == nil {
		return nil
	}

	var firstErr error
	for _, e := range events {
		if rowErr := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(e).Error; rowErr != nil && firstErr == nil {
			firstErr = rowErr
		}
	}
	if firstErr != nil {
		return fmt.Errorf("history: per-row insert-ignore fallback: %w", firstErr)
	}
	return nil
}

func (s *store) GetWatchedIDs(ctx context.Context, userID uint64, mediaType *models.MediaType) (map[uint64]struct{}, error) {
	q := s.db.WithContext(ctx).Model(&models.WatchEvent{}).Where("user_id = ?", userID)
	if mediaType != nil {
		q = q.Where("media_type = ?", *mediaType)
	}
	var tmdbIDs []uint64
	if err := q.Pluck("tmdb_id", &tmdbIDs).Error; err != nil {
		return nil, fmt.Errorf("history: get_watched_ids: %w", err)
	}
	out := make(map[uint64]struct{}, len(tmdbIDs))
	for _, id := range tmdbIDs {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *store) GetWatchedStatusMap(ctx context.Context, userID uint64, mediaType models.MediaType) (map[uint64]WatchedStatus, error) {
	var events []models.WatchEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND media_type = ?", userID, mediaType).
		Order("watched_at desc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("history: get_watched_status_map: %w", err)
	}

	out := make(map[uint64]WatchedStatus, len(events))
	for _, e := range events {
		existing, ok := out[e.TmdbID]
		if !ok || e.WatchedAt.After(existing.WatchedAt) {
			out[e.TmdbID] = WatchedStatus{WatchedAt: e.WatchedAt, Plays: e.Plays}
		} else {
			existing.Plays += e.Plays
			out[e.TmdbID] = existing
		}
	}
	return out, nil
}

func (s *store) GetWatchStats(ctx context.Context, userID uint64) (Stats, error) {
	var stats Stats
	row := s.db.WithContext(ctx).Model(&models.WatchEvent{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) as total_watched, MIN(watched_at) as earliest, MAX(watched_at) as latest").
		Row()

	var total int64
	var earliest, latest *time.Time
	if err := row.Scan(&total, &earliest, &latest); err != nil {
		return Stats{}, fmt.Errorf("history: get_watch_stats: %w", err)
	}
	stats.TotalWatched = int(total)
	if earliest != nil {
		stats.Earliest = *earliest
	}
	if latest != nil {
		stats.Latest = *latest
	}
	return stats, nil
}

func (s *store) GetTopGenres(ctx context.Context, userID uint64, k int) ([]string, error) {
	var events []models.WatchEvent
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("history: get_top_genres: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		for genre := range e.Genres {
			counts[genre]++
		}
	}

	type genreCount struct {
		genre string
		count int
	}
	ranked := make([]genreCount, 0, len(counts))
	for g, c := range counts {
		ranked = append(ranked, genreCount{g, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].genre < ranked[j].genre
	})
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.genre
	}
	return out, nil
}

func (s *store) GetRecentWatches(ctx context.Context, userID uint64, limit int, mediaType *models.MediaType) ([]models.WatchEvent, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("watched_at desc")
	if mediaType != nil {
		q = q.Where("media_type = ?", *mediaType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var events []models.WatchEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("history: get_recent_watches: %w", err)
	}
	return events, nil
}

// EnrichedItem is a candidate annotated with watched status, per spec
// §4.14's enrich_candidates_with_watched_status.
type EnrichedItem struct {
	TmdbID    uint64
	IsWatched bool
	WatchedAt *time.Time
}

// GetEventsInRange returns a user's watch events whose watched_at falls in
// [start, end], inclusive, used by phase detection (C15) to load one
// 14-day clustering window at a time.
func (s *store) GetEventsInRange(ctx context.Context, userID uint64, start, end time.Time) ([]models.WatchEvent, error) {
	var events []models.WatchEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND watched_at >= ? AND watched_at <= ?", userID, start, end).
		Order("watched_at asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("history: get_events_in_range: %w", err)
	}
	return events, nil
}

// EnrichWithWatchedStatus annotates tmdbIDs with watched status from
// statusMap (as produced by GetWatchedStatusMap).
func EnrichWithWatchedStatus(tmdbIDs []uint64, statusMap map[uint64]WatchedStatus) []EnrichedItem {
	out := make([]EnrichedItem, len(tmdbIDs))
	for i, id := range tmdbIDs {
		item := EnrichedItem{TmdbID: id}
		if st, ok := statusMap[id]; ok {
			item.IsWatched = true
			watchedAt := st.WatchedAt
			item.WatchedAt = &watchedAt
		}
		out[i] = item
	}
	return out
}
