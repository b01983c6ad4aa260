package scoring

import (
	"strings"

	"suasor/types/models"
)

// GenreMode controls whether Filters.Genres requires any or all genres
// to match, per spec §4.8 step 1.
type GenreMode string

const (
	GenreModeAny GenreMode = "any"
	GenreModeAll GenreMode = "all"
)

// NumericComparator is one {field, operator, threshold} constraint from
// spec §4.8's strict-filter numeric list.
type NumericComparator struct {
	Field    string
	Operator string // >=, <=, >, <, =
	Value    float64
}

// Filters is the explicit constraint set a caller attaches to a search
// or scoring call. Every field is optional; only fields explicitly set
// participate in strict filtering (step 1).
type Filters struct {
	MediaType string

	Genres    []string
	GenreMode GenreMode

	Actors  []string
	Studios []string

	Languages []string

	Years     []int
	YearRange *[2]int

	Adult *bool

	Numeric []NumericComparator

	Networks     []string
	Creators     []string
	Directors    []string
	Countries    []string
	InProduction *bool
}

// CandidateView is the subset of Candidate fields strict filtering and
// scoring need, decoupled from the gorm model so this package has no
// dependency on persistence details.
type CandidateView struct {
	Key models.CandidateKey

	MediaType string
	Genres    []string
	Cast      []string
	Studios   []string
	Language  string
	Year      int
	Adult     bool

	Rating     float64
	Votes      float64
	Revenue    float64
	Budget     float64
	Popularity float64
	Seasons    float64
	Episodes   float64
	Runtime    float64

	Networks     []string
	Creators     []string
	Directors    []string
	Countries    []string
	InProduction bool

	TraktID *uint64
}

func normalizeMediaType(s string) string {
	switch strings.ToLower(s) {
	case "tv", "series", "show", "shows":
		return "show"
	case "movie", "movies", "film", "films":
		return "movie"
	default:
		return strings.ToLower(s)
	}
}

func anySubstringMatch(needles []string, haystack []string) bool {
	for _, n := range needles {
		n = strings.ToLower(n)
		for _, h := range haystack {
			if strings.Contains(strings.ToLower(h), n) {
				return true
			}
		}
	}
	return false
}

func containsCI(list []string, v string) bool {
	v = strings.ToLower(v)
	for _, item := range list {
		if strings.ToLower(item) == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[strings.ToLower(x)] = struct{}{}
	}
	for _, x := range b {
		if _, ok := set[strings.ToLower(x)]; ok {
			return true
		}
	}
	return false
}

func containsAll(required, have []string) bool {
	set := make(map[string]struct{}, len(have))
	for _, x := range have {
		set[strings.ToLower(x)] = struct{}{}
	}
	for _, r := range required {
		if _, ok := set[strings.ToLower(r)]; !ok {
			return false
		}
	}
	return true
}

func compareNumeric(value float64, op string, threshold float64) bool {
	switch op {
	case ">=":
		return value >= threshold
	case "<=":
		return value <= threshold
	case ">":
		return value > threshold
	case "<":
		return value < threshold
	case "=":
		return value == threshold
	default:
		return true
	}
}

func numericFieldValue(c CandidateView, field string) (float64, bool) {
	switch strings.ToLower(field) {
	case "rating":
		return c.Rating, true
	case "votes":
		return c.Votes, true
	case "revenue":
		return c.Revenue, true
	case "budget":
		return c.Budget, true
	case "popularity":
		return c.Popularity, true
	case "seasons":
		return c.Seasons, true
	case "episodes":
		return c.Episodes, true
	case "runtime":
		return c.Runtime, true
	default:
		return 0, false
	}
}

// PassesStrictFilter implements spec §4.8 step 1: every explicit field
// in f must hold for c to survive.
func PassesStrictFilter(c CandidateView, f Filters) bool {
	if f.MediaType != "" && normalizeMediaType(c.MediaType) != normalizeMediaType(f.MediaType) {
		return false
	}

	if len(f.Genres) > 0 {
		if f.GenreMode == GenreModeAll {
			if !containsAll(f.Genres, c.Genres) {
				return false
			}
		} else if !intersects(f.Genres, c.Genres) {
			return false
		}
	}

	if len(f.Actors) > 0 && !anySubstringMatch(f.Actors, c.Cast) {
		return false
	}

	if len(f.Studios) > 0 && !anySubstringMatch(f.Studios, c.Studios) {
		return false
	}

	if len(f.Languages) > 0 {
		matched := false
		for _, lang := range f.Languages {
			if strings.EqualFold(lang, c.Language) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Years) > 0 || f.YearRange != nil {
		matched := false
		for _, y := range f.Years {
			if y == c.Year {
				matched = true
				break
			}
		}
		if !matched && f.YearRange != nil {
			lo, hi := f.YearRange[0], f.YearRange[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			matched = c.Year >= lo && c.Year <= hi
		}
		if !matched {
			return false
		}
	}

	if f.Adult != nil && *f.Adult != c.Adult {
		return false
	}

	for _, n := range f.Numeric {
		value, ok := numericFieldValue(c, n.Field)
		if !ok {
			continue
		}
		if !compareNumeric(value, n.Operator, n.Value) {
			return false
		}
	}

	if len(f.Networks) > 0 && !anySubstringMatch(f.Networks, c.Networks) {
		return false
	}
	if len(f.Creators) > 0 && !anySubstringMatch(f.Creators, c.Creators) {
		return false
	}
	if len(f.Directors) > 0 && !anySubstringMatch(f.Directors, c.Directors) {
		return false
	}
	if len(f.Countries) > 0 && !intersects(f.Countries, c.Countries) {
		return false
	}
	if f.InProduction != nil && *f.InProduction != c.InProduction {
		return false
	}

	return true
}
