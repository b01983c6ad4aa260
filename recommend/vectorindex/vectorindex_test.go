package vectorindex_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/vectorindex"
)

func TestBuildAndSearchReturnsNearestFirst(t *testing.T) {
	idx := vectorindex.New(filepath.Join(t.TempDir(), "idx.bin"))
	vectors := [][]float32{
		{1, 0, 0},
		{0.9, 0.1, 0},
		{0, 1, 0},
	}
	require.NoError(t, idx.Build(context.Background(), vectors, []uint64{1, 2, 3}))
	assert.Equal(t, 3, idx.Len())

	hits := idx.Search([]float32{1, 0, 0}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, uint64(1), hits[0].ID)
}

func TestBuildRejectsMismatchedLengths(t *testing.T) {
	idx := vectorindex.New(filepath.Join(t.TempDir(), "idx.bin"))
	err := idx.Build(context.Background(), [][]float32{{1, 0}}, []uint64{1, 2})
	assert.Error(t, err)
}

func TestAppendAddsWithoutDroppingExisting(t *testing.T) {
	idx := vectorindex.New(filepath.Join(t.TempDir(), "idx.bin"))
	require.NoError(t, idx.Build(context.Background(), [][]float32{{1, 0, 0}}, []uint64{1}))
	require.NoError(t, idx.Append([][]float32{{0, 1, 0}}, []uint64{2}))
	assert.Equal(t, 2, idx.Len())

	v, ok := idx.Vector(2)
	require.True(t, ok)
	assert.Len(t, v, 3)
}

func TestRemoveDropsVector(t *testing.T) {
	idx := vectorindex.New(filepath.Join(t.TempDir(), "idx.bin"))
	require.NoError(t, idx.Build(context.Background(), [][]float32{{1, 0}, {0, 1}}, []uint64{1, 2}))

	removed := idx.Remove(1)
	assert.True(t, removed)
	assert.Equal(t, 1, idx.Len())
	_, ok := idx.Vector(1)
	assert.False(t, ok)
}

func TestSearchOnEmptyIndexReturnsNil(t *testing.T) {
	idx := vectorindex.New(filepath.Join(t.TempDir(), "idx.bin"))
	assert.Nil(t, idx.Search([]float32{1, 0}, 5))
}

func TestSaveLoadRoundTripsVectorsExactly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx.bin")
	idx := vectorindex.New(path)
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.3, 0.3, 0.3},
	}
	ids := []uint64{10, 20, 30}
	require.NoError(t, idx.Build(context.Background(), vectors, ids))
	require.NoError(t, idx.Save())

	loaded, err := vectorindex.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, idx.Len(), loaded.Len())

	for _, id := range ids {
		want, ok := idx.Vector(id)
		require.True(t, ok)
		got, ok := loaded.Vector(id)
		require.True(t, ok)
		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-6)
		}
	}
}

func TestLoadMissingFileReturnsEmptyIndexNotError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")
	idx, err := vectorindex.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestSaveIsAtomicUnderConcurrentRebuilds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx.bin")
	idx := vectorindex.New(path)
	require.NoError(t, idx.Build(context.Background(), [][]float32{{1, 0}}, []uint64{1}))
	require.NoError(t, idx.Save())

	const rounds = 20
	errs := make(chan error, rounds)
	done := make(chan struct{})

	// one goroutine repeatedly rebuilds and saves while another repeatedly
	// loads from the same path; the write-then-rename in Save must leave
	// every Load observing either the old snapshot or the new one, never a
	// half-written file.
	go func() {
		defer close(done)
		for i := 0; i < rounds; i++ {
			if err := idx.Build(context.Background(), [][]float32{{1, 0}, {0, 1}}, []uint64{1, 2}); err != nil {
				errs <- err
				return
			}
			if err := idx.Save(); err != nil {
				errs <- err
				return
			}
		}
	}()

	for i := 0; i < rounds; i++ {
		if _, err := vectorindex.Load(context.Background(), path); err != nil {
			errs <- err
		}
	}
	<-done
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
