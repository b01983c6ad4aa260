package textproc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/textproc"
)

func TestParseEmptyPrompt(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("")
	assert.Equal(t, "", out.Normalized)
	assert.Empty(t, out.Tokens)
	assert.Empty(t, out.Lemmas)
	assert.Empty(t, out.Entities)
	assert.Empty(t, out.Seeds)
	assert.Empty(t, out.Constraints)
}

func TestParseWhitespaceOnlyPrompt(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("   \t\n  ")
	assert.Equal(t, "", out.Normalized)
}

func TestParseRomanticComediesAfter2015InSpanish(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("romantic comedies after 2015 in Spanish")

	assert.Contains(t, out.Tokens, "comedies")
	require.NotEmpty(t, out.Constraints)

	found := false
	for _, c := range out.Constraints {
		if c.Field == "year" && c.Comparator == ">=" && c.Value == 2015 {
			found = true
		}
	}
	assert.True(t, found, "expected an after-2015 year constraint, got %+v", out.Constraints)
}

func TestParseLikeInceptionButMoreCozy(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("like Inception but more cozy")

	require.NotEmpty(t, out.Seeds)
	assert.Equal(t, "inception", out.Seeds[0])
}

func TestParseSimilarToSeedsStopsAtExcept(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("similar to The Office except not a workplace comedy")

	require.NotEmpty(t, out.Seeds)
	assert.Equal(t, "the office", out.Seeds[0])
}

func TestParseNegativeCues(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("a movie without jump scares, no violence, avoid romance")

	assert.GreaterOrEqual(t, len(out.NegativeCues), 2)
}

func TestParseMediaTypeDetection(t *testing.T) {
	p := textproc.NewProcessor()

	show := p.Parse("find me some good shows to binge")
	assert.Equal(t, "show", show.MediaType)

	movie := p.Parse("find me a good movie for tonight")
	assert.Equal(t, "movie", movie.MediaType)

	ambiguous := p.Parse("find me something good to watch")
	assert.Equal(t, "", ambiguous.MediaType)
}

func TestParseNumericComparatorConstraint(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("anything with rating >= 7.5")

	require.NotEmpty(t, out.Constraints)
	assert.Equal(t, "rating", out.Constraints[0].Field)
	assert.Equal(t, ">=", out.Constraints[0].Comparator)
	assert.Equal(t, 7.5, out.Constraints[0].Value)
}

func TestParseBoolFlag(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("family friendly, no adult content please")

	found := false
	for _, c := range out.Constraints {
		if c.Field == "adult" && c.Flag {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseQuotedPhrase(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse(`something like "The Breakfast Club" but for adults`)

	require.NotEmpty(t, out.Phrases)
	assert.Equal(t, "The Breakfast Club", out.Phrases[0])
}

func TestParseEntitiesCapitalizedBigram(t *testing.T) {
	p := textproc.NewProcessor()
	out := p.Parse("anything directed by Christopher Nolan")

	assert.Contains(t, out.Entities, "Christopher Nolan")
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	p := textproc.NewProcessor()
	assert.NotPanics(t, func() {
		p.Parse("!!!???...,,,   \x00\x01 \xff")
	})
}
