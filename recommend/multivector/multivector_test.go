package multivector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/multivector"
)

func unit(x, y float32) []float32 {
	v := make([]float32, 384)
	v[0], v[1] = x, y
	return v
}

func TestAddItemsAndSearchWithinLabel(t *testing.T) {
	idx := multivector.New(t.TempDir() + "/mv.bin")
	err := idx.AddItems(
		[]uint64{1, 2},
		[][]float32{unit(1, 0), unit(0, 1)},
		[]string{"title", "title"},
		[]string{"h1", "h2"},
	)
	require.NoError(t, err)

	hits := idx.Search("title", unit(1, 0), 2)
	require.NotEmpty(t, hits)
	assert.Equal(t, uint64(1), hits[0].CandidateID)
}

func TestGetMissingOrStaleDetectsHashChange(t *testing.T) {
	idx := multivector.New(t.TempDir() + "/mv.bin")
	require.NoError(t, idx.AddItems([]uint64{1}, [][]float32{unit(1, 0)}, []string{"keywords"}, []string{"h1"}))

	stale := idx.GetMissingOrStale("keywords", map[uint64]string{1: "h1", 2: "h2"})
	assert.ElementsMatch(t, []uint64{2}, stale)

	stale = idx.GetMissingOrStale("keywords", map[uint64]string{1: "h2"})
	assert.ElementsMatch(t, []uint64{1}, stale)
}

func TestReaddingEvictsPriorEntryForSameLabel(t *testing.T) {
	idx := multivector.New(t.TempDir() + "/mv.bin")
	require.NoError(t, idx.AddItems([]uint64{1}, [][]float32{unit(1, 0)}, []string{"title"}, []string{"h1"}))
	require.NoError(t, idx.AddItems([]uint64{1}, [][]float32{unit(0, 1)}, []string{"title"}, []string{"h2"}))

	stale := idx.GetMissingOrStale("title", map[uint64]string{1: "h2"})
	assert.Empty(t, stale)
}

func TestPositionsToItemsRoundTrip(t *testing.T) {
	idx := multivector.New(t.TempDir() + "/mv.bin")
	require.NoError(t, idx.AddItems([]uint64{7}, [][]float32{unit(1, 1)}, []string{"people"}, []string{"h"}))

	hits := idx.Search("people", unit(1, 1), 1)
	require.Len(t, hits, 1)
}
