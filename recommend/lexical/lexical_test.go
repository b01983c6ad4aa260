package lexical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"suasor/recommend/lexical"
	"suasor/types/models"
)

func seedIndex(t *testing.T) *lexical.Index {
	t.Helper()
	idx, err := lexical.NewMemory()
	require.NoError(t, err)

	docs := []struct {
		key models.CandidateKey
		doc lexical.Document
	}{
		{
			key: models.CandidateKey{TmdbID: 1, MediaType: models.MediaTypeMovie},
			doc: lexical.Document{Title: "Inception", Cast: []string{"Leonardo DiCaprio"}, Genres: []string{"sci-fi"}},
		},
		{
			key: models.CandidateKey{TmdbID: 2, MediaType: models.MediaTypeMovie},
			doc: lexical.Document{Title: "Interstellar", Cast: []string{"Matthew McConaughey"}, Genres: []string{"sci-fi"}},
		},
		{
			key: models.CandidateKey{TmdbID: 3, MediaType: models.MediaTypeShow},
			doc: lexical.Document{Title: "The Office", Genres: []string{"comedy"}},
		},
	}
	for _, d := range docs {
		require.NoError(t, idx.Index(d.key, d.doc))
	}
	return idx
}

func TestSearchExactTitleRanksFirst(t *testing.T) {
	idx := seedIndex(t)
	hits, err := idx.Search("Inception", 10, lexical.SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	require.Equal(t, uint64(1), hits[0].Key.TmdbID)
	require.InDelta(t, 1.0, hits[0].Score, 1e-9)
}

func TestSearchScoresNormalizedToUnitMax(t *testing.T) {
	idx := seedIndex(t)
	hits, err := idx.Search("sci-fi", 10, lexical.SearchOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		require.LessOrEqual(t, h.Score, 1.0+1e-9)
	}
}

func TestSearchStrictTitleOnlyFindsNothingForGenreQuery(t *testing.T) {
	idx := seedIndex(t)
	hits, err := idx.Search("comedy", 10, lexical.SearchOptions{StrictTitleOnly: true})
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestDeleteRemovesDocument(t *testing.T) {
	idx := seedIndex(t)
	require.NoError(t, idx.Delete(models.CandidateKey{TmdbID: 1, MediaType: models.MediaTypeMovie}))

	hits, err := idx.Search("Inception", 10, lexical.SearchOptions{})
	require.NoError(t, err)
	for _, h := range hits {
		require.NotEqual(t, uint64(1), h.Key.TmdbID)
	}
}
