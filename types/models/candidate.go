package models

import "time"

// MediaType distinguishes a movie from a show throughout the core.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeShow  MediaType = "show"
)

// NormalizeMediaType maps the synonyms a prompt or filter may use ("tv",
// "series", "shows") onto the two canonical values.
func NormalizeMediaType(s string) MediaType {
	switch s {
	case "tv", "series", "show", "shows":
		return MediaTypeShow
	case "movie", "movies", "film", "films":
		return MediaTypeMovie
	default:
		return MediaType(s)
	}
}

// Candidate is a catalog entry for a single movie or show. It is owned
// exclusively by catalog ingestion; the recommendation core only reads it.
type Candidate struct {
	ID        uint64 `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	TmdbID    uint64    `json:"tmdbId" gorm:"uniqueIndex:idx_candidate_tmdb_media"`
	MediaType MediaType `json:"mediaType" gorm:"uniqueIndex:idx_candidate_tmdb_media;type:varchar(10)"`
	TraktID   *uint64   `json:"traktId,omitempty" gorm:"index"`

	Title         string `json:"title" gorm:"index"`
	OriginalTitle string `json:"originalTitle,omitempty"`
	Year          int    `json:"year,omitempty" gorm:"index"`
	Overview      string `json:"overview,omitempty" gorm:"type:text"`
	Tagline       string `json:"tagline,omitempty"`

	Genres              StringSet `json:"genres,omitempty" gorm:"type:jsonb"`
	Keywords            StringSet `json:"keywords,omitempty" gorm:"type:jsonb"`
	Cast                []string  `json:"cast,omitempty" gorm:"type:jsonb;serializer:json"`
	Directors           []string  `json:"directors,omitempty" gorm:"type:jsonb;serializer:json"`
	Writers             []string  `json:"writers,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedBy           []string  `json:"createdBy,omitempty" gorm:"type:jsonb;serializer:json"`
	ProductionCompanies []string  `json:"productionCompanies,omitempty" gorm:"type:jsonb;serializer:json"`
	Networks            []string  `json:"networks,omitempty" gorm:"type:jsonb;serializer:json"`
	ProductionCountries []string  `json:"productionCountries,omitempty" gorm:"type:jsonb;serializer:json"`
	SpokenLanguages     []string  `json:"spokenLanguages,omitempty" gorm:"type:jsonb;serializer:json"`

	// LLM-enriched lexical tags, produced by a background profile-enrichment
	// job and consumed by the lexical index (C6) for filter boosts.
	MoodTags  []string `json:"moodTags,omitempty" gorm:"type:jsonb;serializer:json"`
	ToneTags  []string `json:"toneTags,omitempty" gorm:"type:jsonb;serializer:json"`
	Themes    []string `json:"themes,omitempty" gorm:"type:jsonb;serializer:json"`

	RuntimeMinutes   int     `json:"runtimeMinutes,omitempty"`
	Rating           float64 `json:"rating,omitempty"`
	Votes            int     `json:"votes,omitempty"`
	Popularity       float64 `json:"popularity,omitempty"`
	OriginalLanguage string  `json:"originalLanguage,omitempty" gorm:"type:varchar(10);index"`
	ReleaseDate      *time.Time `json:"releaseDate,omitempty"`
	Status           string  `json:"status,omitempty"`
	Adult            bool    `json:"adult,omitempty"`
	Revenue          int64   `json:"revenue,omitempty"`
	Budget           int64   `json:"budget,omitempty"`
	Homepage         string  `json:"homepage,omitempty"`
	CollectionID     string  `json:"collectionId,omitempty" gorm:"index"`
	CollectionName   string  `json:"collectionName,omitempty"`

	// TV-only fields. Flat-optional rather than a sum type: gorm has no
	// native variant-record support and the rest of this codebase's
	// models use the same convention for kind-specific columns.
	SeasonCount     int        `json:"seasonCount,omitempty"`
	EpisodeCount    int        `json:"episodeCount,omitempty"`
	EpisodeRuntimes []int      `json:"episodeRuntimes,omitempty" gorm:"type:jsonb;serializer:json"`
	FirstAirDate    *time.Time `json:"firstAirDate,omitempty"`
	LastAirDate     *time.Time `json:"lastAirDate,omitempty"`
	InProduction    bool       `json:"inProduction,omitempty"`

	// Derived scores, recomputed lazily whenever the row changes.
	ObscurityScore  float64 `json:"obscurityScore"`
	MainstreamScore float64 `json:"mainstreamScore"`
	FreshnessScore  float64 `json:"freshnessScore"`

	// Active controls retrieval visibility without deleting the row.
	Active bool `json:"active" gorm:"default:true;index"`
}

func (Candidate) TableName() string { return "candidates" }

// Key returns the (tmdb_id, media_type) pair that uniquely identifies a
// candidate, used throughout C4-C7 for dense/lexical merge deduplication.
type CandidateKey struct {
	TmdbID    uint64
	MediaType MediaType
}

func (c *Candidate) Key() CandidateKey {
	return CandidateKey{TmdbID: c.TmdbID, MediaType: c.MediaType}
}

// ComposedText concatenates the fields the embedding service and TF-IDF
// scorer index, in the order spec §4.3 mandates, joined by ". ".
func (c *Candidate) ComposedText() string {
	parts := make([]string, 0, 32)
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	addAll := func(ss []string) {
		for _, s := range ss {
			add(s)
		}
	}

	add(c.Title)
	add(c.OriginalTitle)
	add(c.Overview)
	add(c.Tagline)
	add(string(c.MediaType))
	addAll(c.Genres.Slice())
	addAll(c.Keywords.Slice())
	addAll(c.ProductionCompanies)
	addAll(c.ProductionCountries)
	addAll(c.SpokenLanguages)
	addAll(c.Cast)
	addAll(c.Directors)
	addAll(c.Writers)
	addAll(c.CreatedBy)
	if c.Year > 0 {
		add(itoa(c.Year))
	}
	if c.ReleaseDate != nil {
		add(c.ReleaseDate.Format("2006-01-02"))
	}
	if c.RuntimeMinutes > 0 {
		add(itoa(c.RuntimeMinutes))
	}
	add(c.Status)
	addAll(c.Networks)
	if c.SeasonCount > 0 {
		add(itoa(c.SeasonCount))
	}
	if c.EpisodeCount > 0 {
		add(itoa(c.EpisodeCount))
	}
	for _, r := range c.EpisodeRuntimes {
		add(itoa(r))
	}
	if c.FirstAirDate != nil {
		add(c.FirstAirDate.Format("2006-01-02"))
	}
	if c.LastAirDate != nil {
		add(c.LastAirDate.Format("2006-01-02"))
	}
	if c.MediaType == MediaTypeShow {
		if c.InProduction {
			add("Currently in production")
		} else {
			add("Series completed")
		}
	}
	if c.Popularity > 0 {
		add(ftoa(c.Popularity))
	}
	if c.Rating > 0 {
		add(ftoa(c.Rating))
	}
	if c.Votes > 0 {
		add(itoa(c.Votes))
	}
	if c.Revenue > 0 {
		add(itoa64(c.Revenue))
	}
	if c.Budget > 0 {
		add(itoa64(c.Budget))
	}
	add(c.OriginalLanguage)
	add(c.Homepage)

	return joinDotSpace(parts)
}
