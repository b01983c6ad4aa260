package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/recommend/scoring"
	"suasor/types/models"
)

func view(tmdbID uint64, mediaType string, genres []string, year int, pop, rating float64) scoring.CandidateView {
	return scoring.CandidateView{
		Key:        models.CandidateKey{TmdbID: tmdbID, MediaType: models.MediaType(mediaType)},
		MediaType:  mediaType,
		Genres:     genres,
		Year:       year,
		Popularity: pop,
		Rating:     rating,
	}
}

func TestPassesStrictFilterMediaTypeSynonym(t *testing.T) {
	c := view(1, "show", nil, 2020, 10, 7)
	f := scoring.Filters{MediaType: "tv"}
	assert.True(t, scoring.PassesStrictFilter(c, f))
}

func TestPassesStrictFilterGenreAnyMode(t *testing.T) {
	c := view(1, "movie", []string{"comedy", "romance"}, 2020, 10, 7)
	f := scoring.Filters{Genres: []string{"romance", "horror"}, GenreMode: scoring.GenreModeAny}
	assert.True(t, scoring.PassesStrictFilter(c, f))
}

func TestPassesStrictFilterGenreAllModeFailsOnPartialMatch(t *testing.T) {
	c := view(1, "movie", []string{"comedy"}, 2020, 10, 7)
	f := scoring.Filters{Genres: []string{"comedy", "romance"}, GenreMode: scoring.GenreModeAll}
	assert.False(t, scoring.PassesStrictFilter(c, f))
}

func TestPassesStrictFilterNumericComparator(t *testing.T) {
	c := view(1, "movie", nil, 2020, 10, 8.2)
	f := scoring.Filters{Numeric: []scoring.NumericComparator{{Field: "rating", Operator: ">=", Value: 7.5}}}
	assert.True(t, scoring.PassesStrictFilter(c, f))

	f2 := scoring.Filters{Numeric: []scoring.NumericComparator{{Field: "rating", Operator: ">=", Value: 9.0}}}
	assert.False(t, scoring.PassesStrictFilter(c, f2))
}

func TestPassesStrictFilterYearRange(t *testing.T) {
	c := view(1, "movie", nil, 2018, 10, 7)
	lo, hi := 2015, 2020
	f := scoring.Filters{YearRange: &[2]int{lo, hi}}
	assert.True(t, scoring.PassesStrictFilter(c, f))

	f2 := scoring.Filters{YearRange: &[2]int{2019, 2020}}
	assert.False(t, scoring.PassesStrictFilter(c, f2))
}

func TestScoreFinalScoreWithinReasonableBounds(t *testing.T) {
	inputs := []scoring.Input{
		{View: view(1, "movie", []string{"comedy"}, 2020, 80, 8), Text: "a funny cozy romantic comedy", Popularity: 80, Rating: 8},
		{View: view(2, "movie", []string{"horror"}, 1960, 5, 4), Text: "a dark horror film", Popularity: 5, Rating: 4},
	}
	ctx := scoring.Context{
		PromptText: "a funny cozy comedy",
		ListType:   scoring.ListTypeChat,
	}
	scored := scoring.Score(ctx, inputs, 0)
	require.Len(t, scored, 2)
	// Results are sorted descending.
	assert.GreaterOrEqual(t, scored[0].Final, scored[1].Final)
}

func TestScoreDropsFilteredCandidates(t *testing.T) {
	inputs := []scoring.Input{
		{View: view(1, "movie", []string{"comedy"}, 2020, 80, 8), Text: "comedy"},
		{View: view(2, "show", []string{"comedy"}, 2020, 80, 8), Text: "comedy show"},
	}
	ctx := scoring.Context{
		PromptText: "comedy",
		Filters:    scoring.Filters{MediaType: "movie"},
		ListType:   scoring.ListTypeChat,
	}
	scored := scoring.Score(ctx, inputs, 0)
	require.Len(t, scored, 1)
	assert.Equal(t, uint64(1), scored[0].Key.TmdbID)
}

func TestScoreEmptyInputReturnsEmpty(t *testing.T) {
	scored := scoring.Score(scoring.Context{ListType: scoring.ListTypeChat}, nil, 0)
	assert.Empty(t, scored)
}

func TestRecencyBonusAppliesForMoodListsOnly(t *testing.T) {
	old := scoring.Input{View: view(1, "movie", nil, 1950, 10, 5), Text: "old film"}
	recent := scoring.Input{View: view(2, "movie", nil, 2024, 10, 5), Text: "new film"}

	ctx := scoring.Context{PromptText: "film", ListType: scoring.ListTypeMood}
	scored := scoring.Score(ctx, []scoring.Input{old, recent}, 0)
	require.Len(t, scored, 2)

	byID := map[uint64]scoring.Scored{}
	for _, s := range scored {
		byID[s.Key.TmdbID] = s
	}
	assert.Less(t, byID[1].RecencyBonus, byID[2].RecencyBonus)
}
