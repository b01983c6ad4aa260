package embedding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suasor/recommend/embedding"
	"suasor/recommend/vecmath"
)

func TestEncodeIsUnitNorm(t *testing.T) {
	s := embedding.NewService(384)
	v := s.Encode("a cozy slow-burn mystery with strong female leads")
	assert.True(t, vecmath.IsUnit(v, 1e-6))
}

func TestEncodeIsDeterministic(t *testing.T) {
	s := embedding.NewService(384)
	a := s.Encode("space opera with a found family crew")
	b := s.Encode("space opera with a found family crew")
	assert.Equal(t, a, b)
}

func TestEncodeEmptyTextIsZeroVector(t *testing.T) {
	s := embedding.NewService(384)
	v := s.Encode("")
	for _, x := range v {
		assert.Equal(t, float32(0), x)
	}
}

func TestEncodeSimilarTextsAreCloserThanUnrelated(t *testing.T) {
	s := embedding.NewService(384)
	a := s.Encode("a heartwarming romantic comedy set in Paris")
	b := s.Encode("a heartwarming romantic comedy set in Rome")
	c := s.Encode("a gritty documentary about deep sea mining")

	simAB := vecmath.Cosine(a, b)
	simAC := vecmath.Cosine(a, c)
	assert.Greater(t, simAB, simAC)
}

func TestEncodeBatchMatchesEncode(t *testing.T) {
	s := embedding.NewService(384)
	texts := []string{"one", "two", "three"}
	batch := s.EncodeBatch(texts)
	for i, text := range texts {
		assert.Equal(t, s.Encode(text), batch[i])
	}
}

func TestEncodeDefaultDimension(t *testing.T) {
	s := embedding.NewService(0)
	v := s.Encode("hello")
	assert.Len(t, v, vecmath.Dim)
}
