package models

import "time"

type ObscurityPreference string

const (
	ObscurityObscure   ObscurityPreference = "obscure"
	ObscurityBalanced  ObscurityPreference = "balanced"
	ObscurityMainstream ObscurityPreference = "mainstream"
)

// WeightMap is a JSON-serializable map[string]float64 used for per-genre,
// per-decade, and per-language profile weights.
type WeightMap map[string]float64

// UserProfileCache is the cached, rebuildable taste profile derived from a
// user's watch history and ratings (C12). It is exclusively owned by the
// user it belongs to and invalidated by new WatchEvents or judgments.
type UserProfileCache struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint64 `json:"userId" gorm:"uniqueIndex"`

	GenreWeights    WeightMap `json:"genreWeights" gorm:"type:jsonb;serializer:json"`
	DecadeWeights   WeightMap `json:"decadeWeights" gorm:"type:jsonb;serializer:json"`
	LanguageWeights WeightMap `json:"languageWeights" gorm:"type:jsonb;serializer:json"`

	AvgPopularityWatched float64             `json:"avgPopularityWatched"`
	AvgRatingGiven       float64             `json:"avgRatingGiven"`
	ObscurityPreference  ObscurityPreference `json:"obscurityPreference" gorm:"type:varchar(12)"`

	RecentItems  Uint64Slice `json:"recentItems" gorm:"type:jsonb;serializer:json"`
	TopGenres    []string    `json:"topGenres,omitempty" gorm:"type:jsonb;serializer:json"`
	TotalWatched int         `json:"totalWatched"`

	VersionHash string `json:"versionHash"`
}

func (UserProfileCache) TableName() string { return "user_profile_caches" }

// Stale reports whether the cache row is older than ttl.
func (p *UserProfileCache) Stale(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.UpdatedAt) > ttl
}

// EmbeddingRecord persists a candidate's serialized primary embedding plus
// a content hash for staleness detection, alongside the in-memory
// vectorindex.Index that actually serves ANN queries.
type EmbeddingRecord struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	UpdatedAt time.Time

	CandidateID uint64    `json:"candidateId" gorm:"uniqueIndex"`
	MediaType   MediaType `json:"mediaType" gorm:"type:varchar(10)"`
	TmdbID      uint64    `json:"tmdbId"`

	// Vector is 384 little-endian float32 values, the same fixed binary
	// layout spec §9 mandates for Redis-stored preference vectors.
	Vector      []byte `json:"-" gorm:"type:bytea"`
	ContentHash string `json:"contentHash"`
}

func (EmbeddingRecord) TableName() string { return "embedding_records" }
