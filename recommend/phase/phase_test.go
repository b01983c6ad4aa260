package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/phase"
)

func TestHDBSCANApproxGroupsCloseVectors(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.99, 0.01, 0},
		{0, 1, 0},
		{0.01, 0.99, 0},
	}
	labels, err := phase.HDBSCANApprox(vectors, 2, 0.1)
	require.NoError(t, err)

	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[2], labels[3])
	assert.NotEqual(t, labels[0], labels[2])
}

func TestHDBSCANApproxMarksIsolatedPointsAsNoise(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	labels, err := phase.HDBSCANApprox(vectors, 2, 0.01)
	require.NoError(t, err)
	for _, l := range labels {
		assert.Equal(t, -1, l)
	}
}

func TestHDBSCANApproxRequiresAtLeastTwoPoints(t *testing.T) {
	_, err := phase.HDBSCANApprox([][]float32{{1, 0}}, 2, 0.1)
	assert.Error(t, err)
}

func TestKMeansSilhouetteSeparatesTwoTightGroups(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0}, {0.98, 0.02, 0}, {0.97, 0, 0.03},
		{0, 1, 0}, {0.02, 0.98, 0}, {0, 0.97, 0.03},
	}
	labels, err := phase.KMeansSilhouette(vectors, 2, 3)
	require.NoError(t, err)

	first := labels[0]
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, labels[i])
	}
	second := labels[3]
	assert.NotEqual(t, first, second)
	for i := 3; i < 6; i++ {
		assert.Equal(t, second, labels[i])
	}
}

func TestKMeansSilhouetteCapsKAtNMinusOne(t *testing.T) {
	vectors := [][]float32{{1, 0}, {0, 1}}
	labels, err := phase.KMeansSilhouette(vectors, 2, 4)
	require.NoError(t, err)
	assert.Len(t, labels, 2)
}
