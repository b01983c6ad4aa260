package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/vecmath"
)

func TestNormalizeIsUnit(t *testing.T) {
	v := []float32{3, 4, 0}
	n := vecmath.Normalize(v)
	assert.True(t, vecmath.IsUnit(n, 1e-6))
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	n := vecmath.Normalize(v)
	assert.Equal(t, v, n)
}

func TestCosineIdentical(t *testing.T) {
	v := []float32{1, 2, 3}
	assert.InDelta(t, 1.0, vecmath.Cosine(v, v), 1e-9)
}

func TestCosineOrthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, vecmath.Cosine(a, b), 1e-9)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v := vecmath.Normalize([]float32{0.1, -0.2, 0.3, 1.5})
	b := vecmath.Encode(v)
	require.Len(t, b, 4*len(v))
	got := vecmath.Decode(b)
	require.Len(t, got, len(v))
	for i := range v {
		assert.InDelta(t, v[i], got[i], 1e-6)
	}
}

func TestRemapCosine(t *testing.T) {
	assert.InDelta(t, 0.0, vecmath.RemapCosine(-1), 1e-9)
	assert.InDelta(t, 0.5, vecmath.RemapCosine(0), 1e-9)
	assert.InDelta(t, 1.0, vecmath.RemapCosine(1), 1e-9)
}

func TestL2ToSimilarityMonotonic(t *testing.T) {
	assert.Greater(t, vecmath.L2ToSimilarity(0.1), vecmath.L2ToSimilarity(1.0))
}
