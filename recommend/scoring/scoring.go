// Package scoring implements the scoring engine (C8): strict filtering,
// quick popularity/rating reduction, a multi-signal similarity blend,
// and per-list-type weighting, per spec §4.8.
package scoring

import (
	"math"
	"sort"
	"strings"

	"suasor/recommend/vecmath"
	"suasor/types/models"
)

// ListType selects which weight row of spec §4.8's blend table applies.
type ListType string

const (
	ListTypeChat   ListType = "chat"
	ListTypeMood   ListType = "mood"
	ListTypeTheme  ListType = "theme"
	ListTypeFusion ListType = "fusion"
)

type weights struct {
	sim, semantic, genre, rating, novelty, phrase, actorStudio, recency, watchHistory, tone float64
}

var weightTable = map[ListType]weights{
	ListTypeChat:   {sim: 0.25, semantic: 0.25, genre: 0.08, rating: 0.10, novelty: 0.05, phrase: 0.05, actorStudio: 0.08, recency: 0.05, watchHistory: 0.09, tone: 0.00},
	ListTypeMood:   {sim: 0.15, semantic: 0.20, genre: 0.10, rating: 0.10, novelty: -0.15, phrase: 0.08, actorStudio: 0.08, recency: 0.15, watchHistory: 0.09, tone: 0.01},
	ListTypeTheme:  {sim: 0.15, semantic: 0.20, genre: 0.10, rating: 0.10, novelty: -0.15, phrase: 0.08, actorStudio: 0.08, recency: 0.15, watchHistory: 0.09, tone: 0.01},
	ListTypeFusion: {sim: 0.10, semantic: 0.25, genre: 0.10, rating: 0.10, novelty: -0.15, phrase: 0.05, actorStudio: 0.08, recency: 0.15, watchHistory: 0.12, tone: 0.01},
}

// Input is one candidate entering the scoring pipeline, plus the
// precomputed text/embedding it's scored against.
type Input struct {
	View       CandidateView
	Text       string
	Embedding  []float32 // nil when unavailable
	Popularity float64
	Rating     float64
}

// WatchHistory captures what the scorer needs from a user's viewing
// record without depending on the history package directly.
type WatchHistory struct {
	WatchedTraktIDs   map[uint64]struct{}
	RecentMediaTypes  []string // media types of recently watched items, for the 60% rule
	ThumbsUp          map[uint64]struct{}
	ThumbsDown        map[uint64]struct{}
}

// Context bundles the call-scoped inputs that aren't per-candidate:
// the prompt, requested filters, list type, and optional signals.
type Context struct {
	PromptText      string
	Phrases         []string
	Filters         Filters
	ListType        ListType
	QueryEmbedding  []float32 // already L2-normalized
	Tones           []string
	History         *WatchHistory
	NoExplicitYear  bool
	MoodTimeBonus   float64 // precomputed by the caller from time-of-day rules
}

// Scored is one fully-scored candidate, carrying every signal spec §4.8
// requires callers be able to inspect via explanation metadata.
type Scored struct {
	Key   models.CandidateKey
	Final float64

	TFIDFSim        float64
	SemanticSim     float64
	GenreOverlap    float64
	PhraseBonus     float64
	ActorStudioBonus float64
	RecencyBonus    float64
	WatchHistoryBonus float64
	RatingsBoost    float64
	ToneBonus       float64
	MoodTimeBonus   float64

	DominantSignal string
}

const topKReduceDefault = 200

// Score runs the full C8 pipeline: strict filter, quick reduction,
// similarity signals, list-type blend. Returns candidates sorted by
// final score descending.
func Score(ctx Context, inputs []Input, topKReduce int) []Scored {
	if topKReduce <= 0 {
		topKReduce = topKReduceDefault
	}

	// Step 1: strict filtering.
	survivors := make([]Input, 0, len(inputs))
	for _, in := range inputs {
		if PassesStrictFilter(in.View, ctx.Filters) {
			survivors = append(survivors, in)
		}
	}
	if len(survivors) == 0 {
		return nil
	}

	// Step 2: quick reduction by composite popularity/rating score.
	maxPop, maxRating := 0.0, 0.0
	for _, in := range survivors {
		if in.Popularity > maxPop {
			maxPop = in.Popularity
		}
		if in.Rating > maxRating {
			maxRating = in.Rating
		}
	}
	type reduced struct {
		in         Input
		composite  float64
		popNorm    float64
		ratingNorm float64
	}
	reducedList := make([]reduced, len(survivors))
	for i, in := range survivors {
		popNorm := safeDiv(in.Popularity, maxPop)
		ratingNorm := safeDiv(in.Rating, maxRating)
		reducedList[i] = reduced{in: in, popNorm: popNorm, ratingNorm: ratingNorm, composite: 0.3*popNorm + 0.1*ratingNorm}
	}
	sort.Slice(reducedList, func(i, j int) bool { return reducedList[i].composite > reducedList[j].composite })
	if len(reducedList) > topKReduce {
		reducedList = reducedList[:topKReduce]
	}

	// Step 3: similarity signals.
	docs := make([]string, len(reducedList))
	for i, r := range reducedList {
		docs[i] = r.in.Text
	}
	space := fitTFIDF(append(docs, ctx.PromptText))
	promptVec := space.vector(ctx.PromptText)

	w, ok := weightTable[ctx.ListType]
	if !ok {
		w = weightTable[ListTypeChat]
	}

	out := make([]Scored, 0, len(reducedList))
	for _, r := range reducedList {
		s := Scored{Key: r.in.View.Key}

		s.TFIDFSim = cosineF64(promptVec, space.vector(r.in.Text))

		if r.in.Embedding != nil && ctx.QueryEmbedding != nil {
			s.SemanticSim = vecmath.Cosine(ctx.QueryEmbedding, r.in.Embedding)
		}

		s.GenreOverlap = jaccard(ctx.Filters.Genres, r.in.View.Genres)
		s.PhraseBonus = phraseFraction(ctx.Phrases, r.in.Text)
		s.ActorStudioBonus = actorStudioFraction(ctx.Filters, r.in.View)
		s.RecencyBonus = recencyBonus(ctx.ListType, ctx.NoExplicitYear, r.in.View.Year)
		s.WatchHistoryBonus = watchHistoryBonus(ctx.History, r.in.View)
		s.RatingsBoost = ratingsBoost(ctx.History, r.in.View)
		s.ToneBonus = toneBonus(ctx.Tones, r.popNorm)
		s.MoodTimeBonus = ctx.MoodTimeBonus

		novelty := 1 - r.popNorm

		final := w.sim*s.TFIDFSim + w.semantic*s.SemanticSim + w.genre*s.GenreOverlap +
			w.rating*r.ratingNorm + w.novelty*novelty + w.phrase*s.PhraseBonus +
			w.actorStudio*s.ActorStudioBonus + w.recency*s.RecencyBonus +
			w.watchHistory*s.WatchHistoryBonus + w.tone*s.ToneBonus + s.MoodTimeBonus

		final *= 1 + s.RatingsBoost
		s.Final = final
		s.DominantSignal = dominantSignal(s)

		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Final > out[j].Final })
	return out
}

func safeDiv(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a)+len(b))
	inter := 0
	lowerA := make(map[string]struct{}, len(a))
	for _, x := range a {
		lx := strings.ToLower(x)
		lowerA[lx] = struct{}{}
		set[lx] = struct{}{}
	}
	for _, x := range b {
		lx := strings.ToLower(x)
		set[lx] = struct{}{}
		if _, ok := lowerA[lx]; ok {
			inter++
		}
	}
	if len(set) == 0 {
		return 0
	}
	return float64(inter) / float64(len(set))
}

func phraseFraction(phrases []string, text string) float64 {
	if len(phrases) == 0 {
		return 0
	}
	lowerText := strings.ToLower(text)
	matched := 0
	for _, p := range phrases {
		if strings.Contains(lowerText, strings.ToLower(p)) {
			matched++
		}
	}
	return float64(matched) / float64(len(phrases))
}

func actorStudioFraction(f Filters, v CandidateView) float64 {
	requested := len(f.Actors) + len(f.Studios)
	if requested == 0 {
		return 0
	}
	matched := 0
	for _, a := range f.Actors {
		if anySubstringMatch([]string{a}, v.Cast) {
			matched++
		}
	}
	for _, s := range f.Studios {
		if anySubstringMatch([]string{s}, v.Studios) {
			matched++
		}
	}
	return float64(matched) / float64(requested)
}

// recencyBonus implements spec §4.8's year-based bonus, applied only
// for mood/theme/fusion lists or chat lists without an explicit year
// filter.
func recencyBonus(listType ListType, noExplicitYear bool, year int) float64 {
	applies := listType == ListTypeMood || listType == ListTypeTheme || listType == ListTypeFusion ||
		(listType == ListTypeChat && noExplicitYear)
	if !applies || year == 0 {
		return 0
	}
	if year < 1970 {
		return -0.3
	}
	span := 2025.0 - 1970.0
	frac := (float64(year) - 1970.0) / span
	return math.Max(0, math.Min(1, frac))
}

func watchHistoryBonus(h *WatchHistory, v CandidateView) float64 {
	if h == nil {
		return 0
	}
	if v.TraktID != nil {
		if _, watched := h.WatchedTraktIDs[*v.TraktID]; watched {
			return -0.5
		}
	}
	if len(h.RecentMediaTypes) == 0 {
		return 0
	}
	matchCount := 0
	for _, mt := range h.RecentMediaTypes {
		if strings.EqualFold(mt, v.MediaType) {
			matchCount++
		}
	}
	if float64(matchCount)/float64(len(h.RecentMediaTypes)) >= 0.6 {
		return 0.1
	}
	return 0
}

func ratingsBoost(h *WatchHistory, v CandidateView) float64 {
	if h == nil || v.TraktID == nil {
		return 0
	}
	boost := 0.0
	if _, up := h.ThumbsUp[*v.TraktID]; up {
		boost += 0.3
	}
	if _, down := h.ThumbsDown[*v.TraktID]; down {
		boost -= 0.7
	}
	return boost
}

var coz = map[string]struct{}{"light": {}, "cozy": {}, "wholesome": {}, "warm": {}}

func toneBonus(tones []string, ratingNorm float64) float64 {
	for _, t := range tones {
		if _, ok := coz[strings.ToLower(t)]; ok {
			return 0.5 * ratingNorm
		}
	}
	return 0
}

func dominantSignal(s Scored) string {
	best := "tfidf_sim"
	bestVal := s.TFIDFSim
	for name, val := range map[string]float64{
		"semantic_sim":  s.SemanticSim,
		"genre_overlap": s.GenreOverlap,
		"phrase_bonus":  s.PhraseBonus,
	} {
		if val > bestVal {
			bestVal = val
			best = name
		}
	}
	return best
}
