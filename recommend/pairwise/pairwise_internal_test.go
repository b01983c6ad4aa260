package pairwise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suasor/recommend/vecmath"
)

func TestStepTowardStaysUnitNorm(t *testing.T) {
	vec := vecmath.Normalize([]float32{1, 0, 0})
	target := vecmath.Normalize([]float32{0, 1, 0})

	got := stepToward(vec, target, preferenceAlpha)
	assert.True(t, vecmath.IsUnit(got, 1e-5))
	// a step toward target should move closer to it than vec was.
	assert.Greater(t, vecmath.Cosine(got, target), vecmath.Cosine(vec, target))
}

func TestStepTowardNilVecAdoptsTarget(t *testing.T) {
	target := []float32{3, 4, 0}
	got := stepToward(nil, target, preferenceAlpha)
	assert.True(t, vecmath.IsUnit(got, 1e-5))
}

func TestStepTowardNilTargetIsNoop(t *testing.T) {
	vec := vecmath.Normalize([]float32{1, 0, 0})
	got := stepToward(vec, nil, preferenceAlpha)
	assert.Equal(t, vec, got)
}

func TestStepAwayStaysUnitNormAndMovesApart(t *testing.T) {
	vec := vecmath.Normalize([]float32{1, 1, 0})
	target := vecmath.Normalize([]float32{0, 1, 0})

	got := stepAway(vec, target, preferenceAlpha)
	assert.True(t, vecmath.IsUnit(got, 1e-5))
	assert.Less(t, vecmath.Cosine(got, target), vecmath.Cosine(vec, target))
}

func TestStepAwayNilInputsAreNoop(t *testing.T) {
	assert.Nil(t, stepAway(nil, []float32{1, 0}, preferenceAlpha))
	vec := []float32{1, 0}
	assert.Equal(t, vec, stepAway(vec, nil, preferenceAlpha))
}

func TestTotalPairsForPoolBands(t *testing.T) {
	assert.Equal(t, poolLargeTotalPairs, totalPairsForPool(20))
	assert.Equal(t, poolMidTotalPairs, totalPairsForPool(12))
	assert.Equal(t, minTotalPairs, totalPairsForPool(5))
	assert.Equal(t, 11, totalPairsForPool(11))
}

func TestTopKCapsAtMaxKAndPairBudget(t *testing.T) {
	assert.Equal(t, maxK, topK(1000, 1000000))
	// with a tiny pair budget, k is capped by n(n-1)/2 <= maxPairs
	assert.LessOrEqual(t, 0, topK(100, 3))
	k := topK(100, 3)
	assert.LessOrEqual(t, k*(k-1)/2, 3)
}

func TestTopKNeverExceedsN(t *testing.T) {
	assert.Equal(t, 5, topK(5, 1000000))
}

func TestSampleWeightedPairsNoDuplicatesAndNoSelfPairs(t *testing.T) {
	items := []ScoredItem{
		{ID: 1, EngineScore: 0.9},
		{ID: 2, EngineScore: 0.5},
		{ID: 3, EngineScore: 0.1},
		{ID: 4, EngineScore: 0.0},
	}
	pairs := sampleWeightedPairs(items, 10)
	seen := map[[2]uint64]bool{}
	for _, p := range pairs {
		assert.NotEqual(t, p.A, p.B)
		key := [2]uint64{p.A, p.B}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		assert.False(t, seen[key], "duplicate pair %v", key)
		seen[key] = true
	}
}

func TestSampleWeightedPairsRespectsMaxCombinations(t *testing.T) {
	items := []ScoredItem{{ID: 1, EngineScore: 1}, {ID: 2, EngineScore: 1}}
	pairs := sampleWeightedPairs(items, 50)
	assert.Len(t, pairs, 1)
}

func TestSampleWeightedPairsTooFewItems(t *testing.T) {
	assert.Nil(t, sampleWeightedPairs([]ScoredItem{{ID: 1}}, 10))
}

func TestWinRateNoPlaysIsZero(t *testing.T) {
	assert.Equal(t, 0.0, winRate(1, map[uint64]float64{}, map[uint64]int{}))
}

func TestWinRateComputesRatio(t *testing.T) {
	wins := map[uint64]float64{1: 3}
	played := map[uint64]int{1: 4}
	assert.InDelta(t, 0.75, winRate(1, wins, played), 1e-9)
}
