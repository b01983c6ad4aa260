package intent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/intent"
	"suasor/recommend/textproc"
)

func newExtractor(t *testing.T) *intent.Extractor {
	t.Helper()
	return intent.New(nil, nil, textproc.NewProcessor())
}

func TestExtractRuleBasedOnlyPopulatesGenresFromVocab(t *testing.T) {
	e := newExtractor(t)
	got, err := e.Extract(context.Background(), "I want a funny comedy movie from the 90s", "", "")
	require.NoError(t, err)
	assert.Contains(t, got.Genres, "comedy")
	assert.Equal(t, 30, got.TargetSize)
}

func TestExtractPicksUpRuntimeConstraint(t *testing.T) {
	e := newExtractor(t)
	got, err := e.Extract(context.Background(), "something with runtime <= 100", "", "")
	require.NoError(t, err)
	require.NotNil(t, got.RuntimeMax)
	assert.Equal(t, 100, *got.RuntimeMax)
}

func TestExtractEmptyPromptReturnsEmptyIntent(t *testing.T) {
	e := newExtractor(t)
	got, err := e.Extract(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
	assert.Equal(t, 30, got.TargetSize)
}

func TestExtractSeedsBecomeQueryVariant(t *testing.T) {
	e := newExtractor(t)
	got, err := e.Extract(context.Background(), "something like Inception but lighter", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, got.QueryVariants)
	assert.Contains(t, got.QueryVariants[0], "like:")
}
