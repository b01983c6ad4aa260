package diversify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/diversify"
)

func TestSelectRespectsLimit(t *testing.T) {
	items := []diversify.Item{
		{Key: 1, Relevance: 0.9, Vector: []float32{1, 0}},
		{Key: 2, Relevance: 0.8, Vector: []float32{1, 0}},
		{Key: 3, Relevance: 0.7, Vector: []float32{0, 1}},
	}
	out := diversify.Select(items, 2, 0.7)
	require.Len(t, out, 2)
}

func TestSelectPrefersMostRelevantFirst(t *testing.T) {
	items := []diversify.Item{
		{Key: 1, Relevance: 0.9, Vector: []float32{1, 0}},
		{Key: 2, Relevance: 0.5, Vector: []float32{0, 1}},
	}
	out := diversify.Select(items, 2, 0.7)
	require.Len(t, out, 2)
	assert.Equal(t, uint64(1), out[0])
}

func TestSelectPenalizesRedundantDuplicates(t *testing.T) {
	// Two near-identical high-relevance items and one slightly lower but
	// distinct item: with enough novelty weight, the distinct item should
	// outrank the second near-duplicate.
	items := []diversify.Item{
		{Key: 1, Relevance: 0.95, Vector: []float32{1, 0, 0}},
		{Key: 2, Relevance: 0.94, Vector: []float32{1, 0, 0}},
		{Key: 3, Relevance: 0.80, Vector: []float32{0, 1, 0}},
	}
	out := diversify.Select(items, 2, 0.5)
	require.Len(t, out, 2)
	assert.Equal(t, uint64(1), out[0])
	assert.Equal(t, uint64(3), out[1])
}

func TestSelectEmptyInput(t *testing.T) {
	out := diversify.Select(nil, 5, 0.7)
	assert.Nil(t, out)
}

func TestSelectLimitLargerThanInput(t *testing.T) {
	items := []diversify.Item{
		{Key: 1, Relevance: 1, Vector: []float32{1}},
	}
	out := diversify.Select(items, 10, 0.7)
	assert.Len(t, out, 1)
}
