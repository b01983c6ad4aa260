package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"suasor/recommend/pairwise"
	"suasor/recommend/vecmath"
	"suasor/types/models"
)

// CandidateRepository resolves models.Candidate rows for the
// recommendation core. Its method set alone satisfies every narrow
// lookup interface the C7/C12/C13/C15 components declare
// (recommend/retrieval.CandidateLookup and PopularFallback,
// recommend/profile.CandidateLookup, recommend/phase.CandidateLookup,
// recommend/pairwise.CandidateLookup), following the same
// interface+struct+constructor shape as the rest of this package.
type CandidateRepository interface {
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error)
	GetByKeys(ctx context.Context, keys []models.CandidateKey) (map[models.CandidateKey]*models.Candidate, error)
	GetSummaries(ctx context.Context, ids []uint64) (map[uint64]pairwise.ItemSummary, error)
	TopPopular(ctx context.Context, mediaType string, k int) ([]*models.Candidate, error)
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository builds a CandidateRepository over db.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error) {
	if len(ids) == 0 {
		return map[uint64]*models.Candidate{}, nil
	}
	var rows []*models.Candidate
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("candidate repository: get by ids: %w", err)
	}
	out := make(map[uint64]*models.Candidate, len(rows))
	for _, c := range rows {
		out[c.ID] = c
	}
	return out, nil
}

func (r *candidateRepository) GetByKeys(ctx context.Context, keys []models.CandidateKey) (map[models.CandidateKey]*models.Candidate, error) {
	if len(keys) == 0 {
		return map[models.CandidateKey]*models.Candidate{}, nil
	}

	tmdbIDs := make([]uint64, 0, len(keys))
	seen := make(map[uint64]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k.TmdbID]; ok {
			continue
		}
		seen[k.TmdbID] = struct{}{}
		tmdbIDs = append(tmdbIDs, k.TmdbID)
	}

	var rows []*models.Candidate
	if err := r.db.WithContext(ctx).Where("tmdb_id IN ?", tmdbIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("candidate repository: get by keys: %w", err)
	}
	out := make(map[models.CandidateKey]*models.Candidate, len(rows))
	for _, c := range rows {
		out[c.Key()] = c
	}
	return out, nil
}

func (r *candidateRepository) GetSummaries(ctx context.Context, ids []uint64) (map[uint64]pairwise.ItemSummary, error) {
	candidates, err := r.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var embeddings []models.EmbeddingRecord
	if err := r.db.WithContext(ctx).Where("candidate_id IN ?", ids).Find(&embeddings).Error; err != nil {
		return nil, fmt.Errorf("candidate repository: get summaries: loading embeddings: %w", err)
	}
	vecByID := make(map[uint64][]float32, len(embeddings))
	for _, e := range embeddings {
		vecByID[e.CandidateID] = vecmath.Decode(e.Vector)
	}

	out := make(map[uint64]pairwise.ItemSummary, len(candidates))
	for id, c := range candidates {
		decade := ""
		if c.Year > 0 {
			decade = fmt.Sprintf("%ds", (c.Year/10)*10)
		}
		out[id] = pairwise.ItemSummary{
			ID:          c.ID,
			Genres:      c.Genres.Slice(),
			Decade:      decade,
			Language:    c.OriginalLanguage,
			Popularity:  c.Popularity,
			Vector:      vecByID[id],
			ReleaseYear: c.Year,
		}
	}
	return out, nil
}

func (r *candidateRepository) TopPopular(ctx context.Context, mediaType string, k int) ([]*models.Candidate, error) {
	if k <= 0 {
		k = 20
	}
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if mediaType != "" {
		q = q.Where("media_type = ?", mediaType)
	}
	var rows []*models.Candidate
	if err := q.Order("popularity DESC").Limit(k).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("candidate repository: top popular: %w", err)
	}
	return rows, nil
}
