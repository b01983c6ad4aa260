package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suasor/recommend/profile"
	"suasor/types/models"
)

func TestFitScoreUnknownGenreDefault(t *testing.T) {
	s := profile.New(nil, nil, nil, nil)
	p := &models.UserProfileCache{
		GenreWeights:        models.WeightMap{"comedy": 1.0},
		ObscurityPreference: models.ObscurityBalanced,
		RecentItems:         models.Uint64Slice{1},
	}
	score := s.FitScore(p, profile.FitInput{Genres: []string{"horror"}, Popularity: 50})
	assert.InDelta(t, 0.4*0.1+0.4*0.5+0.2*0.7, score, 1e-9)
}

func TestFitScoreNoGenresUsesDefault(t *testing.T) {
	s := profile.New(nil, nil, nil, nil)
	p := &models.UserProfileCache{ObscurityPreference: models.ObscurityMainstream}
	score := s.FitScore(p, profile.FitInput{Genres: nil, Popularity: 90})
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestMultiVectorFitScoreFallsBackToPrimaryWithoutOverlap(t *testing.T) {
	got := profile.MultiVectorFitScore(nil, nil, 0.42, 0.5)
	assert.Equal(t, 0.42, got)
}

func TestAverageAspectVectorsUnitNorm(t *testing.T) {
	v1 := make([]float32, 384)
	v1[0] = 1
	v2 := make([]float32, 384)
	v2[1] = 1
	avg := profile.AverageAspectVectors([][]float32{v1, v2}, nil)
	var sumSq float64
	for _, x := range avg {
		sumSq += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, sumSq, 1e-4)
}
