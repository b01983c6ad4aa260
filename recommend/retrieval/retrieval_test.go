package retrieval_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/embedding"
	"suasor/recommend/retrieval"
	"suasor/recommend/vectorindex"
	"suasor/types/models"
)

type fakeCandidates struct {
	byID  map[uint64]*models.Candidate
	byKey map[models.CandidateKey]*models.Candidate
}

func (f *fakeCandidates) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error) {
	out := make(map[uint64]*models.Candidate)
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeCandidates) GetByKeys(ctx context.Context, keys []models.CandidateKey) (map[models.CandidateKey]*models.Candidate, error) {
	out := make(map[models.CandidateKey]*models.Candidate)
	for _, k := range keys {
		if c, ok := f.byKey[k]; ok {
			out[k] = c
		}
	}
	return out, nil
}

func candidate(id, tmdbID uint64, title string) *models.Candidate {
	c := &models.Candidate{ID: id, TmdbID: tmdbID, MediaType: models.MediaTypeMovie, Title: title, Active: true, Genres: models.NewStringSet("drama")}
	return c
}

func TestRetrieveMergesDenseAndLexicalHits(t *testing.T) {
	enc := embedding.NewService(384)
	dense := vectorindex.New(t.TempDir() + "/idx.bin")

	c1 := candidate(1, 100, "Alpha")
	c2 := candidate(2, 200, "Beta")

	v1 := enc.Encode("alpha story about space")
	v2 := enc.Encode("beta story about the sea")
	require.NoError(t, dense.Build(context.Background(), [][]float32{v1, v2}, []uint64{1, 2}))

	lookup := &fakeCandidates{
		byID:  map[uint64]*models.Candidate{1: c1, 2: c2},
		byKey: map[models.CandidateKey]*models.Candidate{c1.Key(): c1, c2.Key(): c2},
	}

	svc := retrieval.New(enc, dense, nil, lookup, nil, nil, nil)
	hits, err := svc.Retrieve(context.Background(), retrieval.Params{Query: "alpha story about space", K: 5})
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, uint64(1), hits[0].Candidate.ID)
}

func TestRetrieveDropsInactiveCandidates(t *testing.T) {
	enc := embedding.NewService(384)
	dense := vectorindex.New(t.TempDir() + "/idx.bin")

	c1 := candidate(1, 100, "Alpha")
	c1.Active = false
	v1 := enc.Encode("alpha story")
	require.NoError(t, dense.Build(context.Background(), [][]float32{v1}, []uint64{1}))

	lookup := &fakeCandidates{
		byID:  map[uint64]*models.Candidate{1: c1},
		byKey: map[models.CandidateKey]*models.Candidate{c1.Key(): c1},
	}
	svc := retrieval.New(enc, dense, nil, lookup, nil, nil, nil)
	hits, err := svc.Retrieve(context.Background(), retrieval.Params{Query: "alpha story", K: 5})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSuggestionsEmptyListReturnsEmptyWithoutFallback(t *testing.T) {
	enc := embedding.NewService(384)
	dense := vectorindex.New(t.TempDir() + "/idx.bin")
	svc := retrieval.New(enc, dense, nil, nil, nil, nil, nil)
	hits, err := svc.Suggestions(context.Background(), nil, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
