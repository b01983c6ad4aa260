package models

import "time"

// WatchEvent is one append-only record of a user watching a candidate.
// Uniqueness is enforced on (user_id, trakt_id, watched_at); batch
// ingestion therefore uses an insert-ignore upsert rather than a plain
// insert (see repository.WatchHistoryRepository.BatchInsert).
type WatchEvent struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time

	UserID      uint64    `json:"userId" gorm:"uniqueIndex:idx_watch_event_unique;index"`
	CandidateID uint64    `json:"candidateId" gorm:"index"`
	TmdbID      uint64    `json:"tmdbId"`
	MediaType   MediaType `json:"mediaType" gorm:"type:varchar(10)"`
	TraktID     *uint64   `json:"traktId,omitempty" gorm:"uniqueIndex:idx_watch_event_unique"`
	WatchedAt   time.Time `json:"watchedAt" gorm:"uniqueIndex:idx_watch_event_unique;index"`

	Rating *int `json:"rating,omitempty"` // 1..10, user-supplied
	Plays  int  `json:"plays" gorm:"default:1"`

	// Denormalized metadata so history queries don't need a join for the
	// common case (matches original_source's get_watched_status_map shape).
	Title        string    `json:"title,omitempty"`
	Year         int       `json:"year,omitempty"`
	Genres       StringSet `json:"genres,omitempty" gorm:"type:jsonb"`
	Keywords     StringSet `json:"keywords,omitempty" gorm:"type:jsonb"`
	Overview     string    `json:"overview,omitempty" gorm:"type:text"`
	PosterPath   string    `json:"posterPath,omitempty"`
	RuntimeMins  int       `json:"runtimeMinutes,omitempty"`
	Language     string    `json:"language,omitempty"`
}

func (WatchEvent) TableName() string { return "watch_events" }
