// Package retrieval implements the hybrid retriever (C7): merges dense
// (recommend/vectorindex) and lexical (recommend/lexical) search,
// enriches with catalog metadata, blends in profile fit scoring, and
// exposes the list-based suggestions algorithm.
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"suasor/cache"
	"suasor/recommend/embedding"
	"suasor/recommend/lexical"
	"suasor/recommend/profile"
	"suasor/recommend/vecmath"
	"suasor/recommend/vectorindex"
	"suasor/types/models"
	"suasor/utils/logger"
)

const (
	denseK            = 30
	lexicalK          = 12
	neutralAbsentScore = 0.3
	denseWeight       = 0.6
	lexicalWeight     = 0.4
	searchWeight      = 0.7
	fitWeight         = 0.3
	searchCacheTTL    = 45 * time.Second

	suggestionNeighborK   = 25
	suggestionMinSim      = 0.45
	suggestionWeight      = 0.5
	suggestionFitWeight   = 0.3
	suggestionDiversity   = 0.25
	suggestionTopGenreBonus = 0.05
	suggestionResultCap   = 20
	negativeCueStrength   = 0.25
)

// CandidateLookup resolves candidates by primary key or by
// (tmdb_id, media_type), the join key spec §4.7 merges on.
type CandidateLookup interface {
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error)
	GetByKeys(ctx context.Context, keys []models.CandidateKey) (map[models.CandidateKey]*models.Candidate, error)
}

// PopularFallback supplies the "no FAISS neighbors"/"no list items"
// fallback: a popular, well-rated candidate set.
type PopularFallback interface {
	TopPopular(ctx context.Context, mediaType string, k int) ([]*models.Candidate, error)
}

// Hit is one retrieval result, carrying every score component callers
// need for explanation metadata.
type Hit struct {
	Candidate   *models.Candidate
	SearchScore float64
	FitScore    float64
	Diversity   float64
	FinalScore  float64
}

// Params bundles one retrieve() call's inputs.
type Params struct {
	Query        string
	Seeds        []string
	Moods        []string
	NegativeCues []string
	MediaType    string
	UserID       uint64
	K            int
	SkipFit      bool
	StrictLexical bool
}

// Service implements C7's retrieve and suggestions operations.
type Service struct {
	encoder    embedding.Encoder
	dense      *vectorindex.Index
	lex        *lexical.Index
	candidates CandidateLookup
	profile    *profile.Service
	cache      *cache.Store
	fallback   PopularFallback
}

// New builds a retrieval Service.
func New(encoder embedding.Encoder, dense *vectorindex.Index, lex *lexical.Index, candidates CandidateLookup, prof *profile.Service, store *cache.Store, fallback PopularFallback) *Service {
	return &Service{encoder: encoder, dense: dense, lex: lex, candidates: candidates, profile: prof, cache: store, fallback: fallback}
}

// Retrieve implements retrieve(query, filters, k), spec §4.7.
func (s *Service) Retrieve(ctx context.Context, p Params) ([]Hit, error) {
	log := logger.LoggerFromContext(ctx)
	if p.K <= 0 {
		p.K = 20
	}

	cacheKey := searchCacheKey(p)
	if s.cache != nil {
		if raw, ok, err := s.cache.GetString(ctx, cacheKey); err == nil && ok {
			var cached []Hit
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	queryVec := s.buildQueryVector(p)

	denseHits := s.dense.Search(queryVec, denseK)
	denseIDs := make([]uint64, len(denseHits))
	for i, h := range denseHits {
		denseIDs[i] = h.ID
	}

	var lexHits []lexical.Hit
	if s.lex != nil {
		opts := lexical.SearchOptions{StrictTitleOnly: p.StrictLexical}
		hits, err := s.lex.Search(p.Query, lexicalK, opts)
		if err != nil {
			log.Warn().Err(err).Msg("retrieval: lexical search failed, continuing dense-only")
		} else {
			lexHits = hits
		}
	}

	denseByKey := make(map[models.CandidateKey]float64)
	if s.candidates != nil && len(denseIDs) > 0 {
		byID, err := s.candidates.GetByIDs(ctx, denseIDs)
		if err != nil {
			return nil, fmt.Errorf("retrieval: resolving dense hits: %w", err)
		}
		for _, h := range denseHits {
			if c, ok := byID[h.ID]; ok {
				denseByKey[c.Key()] = h.Similarity
			}
		}
	}

	lexByKey := make(map[models.CandidateKey]float64, len(lexHits))
	for _, h := range lexHits {
		lexByKey[h.Key] = h.Score
	}

	keys := make([]models.CandidateKey, 0, len(denseByKey)+len(lexByKey))
	seen := make(map[models.CandidateKey]struct{})
	for k := range denseByKey {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for k := range lexByKey {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return s.popularFallback(ctx, p)
	}

	var byKey map[models.CandidateKey]*models.Candidate
	if s.candidates != nil {
		var err error
		byKey, err = s.candidates.GetByKeys(ctx, keys)
		if err != nil {
			return nil, fmt.Errorf("retrieval: enriching hits: %w", err)
		}
	}

	var prof *models.UserProfileCache
	if !p.SkipFit && s.profile != nil && p.UserID != 0 {
		if built, err := s.profile.GetProfile(ctx, p.UserID, false); err == nil {
			prof = built
		}
	}

	out := make([]Hit, 0, len(keys))
	for _, k := range keys {
		c, ok := byKey[k]
		if !ok || !c.Active {
			continue
		}
		d, hasDense := denseByKey[k]
		l, hasLex := lexByKey[k]
		var searchScore float64
		switch {
		case hasDense && hasLex:
			searchScore = denseWeight*d + lexicalWeight*l
		case hasDense:
			searchScore = denseWeight*d + lexicalWeight*neutralAbsentScore
		default:
			searchScore = denseWeight*neutralAbsentScore + lexicalWeight*l
		}

		fit := 0.0
		final := searchScore
		if prof != nil {
			fit = s.profile.FitScore(prof, profile.FitInput{CandidateID: c.ID, Genres: c.Genres.Slice(), Popularity: c.Popularity})
			final = searchWeight*searchScore + fitWeight*fit
		}

		out = append(out, Hit{Candidate: c, SearchScore: searchScore, FitScore: fit, FinalScore: final})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FinalScore > out[j].FinalScore })
	if len(out) > p.K {
		out = out[:p.K]
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = s.cache.SetString(ctx, cacheKey, string(raw), searchCacheTTL)
		}
	}
	return out, nil
}

func (s *Service) popularFallback(ctx context.Context, p Params) ([]Hit, error) {
	if s.fallback == nil {
		return nil, nil
	}
	cands, err := s.fallback.TopPopular(ctx, p.MediaType, p.K)
	if err != nil {
		return nil, fmt.Errorf("retrieval: popular fallback: %w", err)
	}
	out := make([]Hit, len(cands))
	for i, c := range cands {
		out[i] = Hit{Candidate: c, SearchScore: neutralAbsentScore, FinalScore: neutralAbsentScore}
	}
	return out, nil
}

// buildQueryVector implements spec §4.7 step 1: encode the query,
// average in seed/mood variants, subtract negative-cue components, and
// renormalize.
func (s *Service) buildQueryVector(p Params) []float32 {
	vectors := [][]float32{s.encoder.Encode(p.Query)}
	for _, seed := range p.Seeds {
		vectors = append(vectors, s.encoder.Encode("like: "+seed))
	}
	for _, mood := range p.Moods {
		vectors = append(vectors, s.encoder.Encode("mood: "+mood))
	}

	q := vecmath.Normalize(vecmath.Mean(vectors))

	for _, cue := range p.NegativeCues {
		cueVec := s.encoder.Encode(cue)
		proj := vecmath.Dot(cueVec, q)
		q = vecmath.Normalize(vecmath.Sub(q, vecmath.Scale(cueVec, negativeCueStrength*proj)))
	}
	return q
}

func searchCacheKey(p Params) string {
	norm := strings.ToLower(strings.TrimSpace(p.Query))
	return fmt.Sprintf("search:%d:%s:%s:%d", p.UserID, norm, p.MediaType, p.K)
}

// ListItem is one candidate already on the list that suggestions()
// aggregates neighbors from.
type ListItem struct {
	CandidateID uint64
	Genres      []string
}

// Suggestions implements suggestions(list_items, k), spec §4.7's
// list-based algorithm: aggregate ANN neighbors across list items,
// boost by genre diversity, blend with profile fit.
func (s *Service) Suggestions(ctx context.Context, listItems []ListItem, userID uint64, k int) ([]Hit, error) {
	if k <= 0 || k > suggestionResultCap {
		k = suggestionResultCap
	}
	if len(listItems) == 0 {
		return s.popularFallback(ctx, Params{K: k})
	}

	inList := make(map[uint64]struct{}, len(listItems))
	genreCounts := make(map[string]int)
	for _, li := range listItems {
		inList[li.CandidateID] = struct{}{}
		for _, g := range li.Genres {
			genreCounts[strings.ToLower(g)]++
		}
	}
	median := medianCount(genreCounts)

	type agg struct {
		freq   int
		scores []float64
	}
	aggregates := make(map[uint64]*agg)
	for _, li := range listItems {
		vec, ok := s.dense.Vector(li.CandidateID)
		if !ok {
			continue
		}
		for _, hit := range s.dense.Search(vec, suggestionNeighborK) {
			if hit.Similarity < suggestionMinSim {
				continue
			}
			if _, skip := inList[hit.ID]; skip {
				continue
			}
			a, ok := aggregates[hit.ID]
			if !ok {
				a = &agg{}
				aggregates[hit.ID] = a
			}
			a.freq++
			a.scores = append(a.scores, hit.Similarity)
		}
	}

	if len(aggregates) == 0 {
		return s.popularFallback(ctx, Params{K: k})
	}

	maxAvgSim, maxFreq := 0.0, 0
	avgSims := make(map[uint64]float64, len(aggregates))
	for id, a := range aggregates {
		var sum float64
		for _, sc := range a.scores {
			sum += sc
		}
		avg := sum / float64(len(a.scores))
		avgSims[id] = avg
		if avg > maxAvgSim {
			maxAvgSim = avg
		}
		if a.freq > maxFreq {
			maxFreq = a.freq
		}
	}

	ids := make([]uint64, 0, len(aggregates))
	for id := range aggregates {
		ids = append(ids, id)
	}
	var byID map[uint64]*models.Candidate
	if s.candidates != nil {
		var err error
		byID, err = s.candidates.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("retrieval: enriching suggestions: %w", err)
		}
	}

	var prof *models.UserProfileCache
	if s.profile != nil && userID != 0 {
		if built, err := s.profile.GetProfile(ctx, userID, false); err == nil {
			prof = built
		}
	}
	topUserGenres := make(map[string]struct{})
	if prof != nil {
		for _, g := range prof.TopGenres {
			topUserGenres[strings.ToLower(g)] = struct{}{}
		}
	}

	out := make([]Hit, 0, len(aggregates))
	for id, a := range aggregates {
		c, ok := byID[id]
		if !ok || !c.Active {
			continue
		}

		suggestion := 0.6*safeRatio(avgSims[id], maxAvgSim) + 0.4*safeRatio(float64(a.freq), float64(maxFreq))

		// diversity is the fraction of the candidate's genres that are
		// underrepresented (count <= median) in the list's genre
		// distribution, normalized to [0,1]; the 0.25 weight below is
		// what bounds its contribution to the final score (spec §4.7's
		// "up to +0.15" describes a typical, not maximum, outcome for
		// partial genre overlap).
		diversity := 0.0
		candGenres := c.Genres.Slice()
		if len(candGenres) > 0 {
			underrepresented := 0
			for _, g := range candGenres {
				if genreCounts[strings.ToLower(g)] <= median {
					underrepresented++
				}
			}
			diversity = float64(underrepresented) / float64(len(candGenres))
		}

		fit := 0.0
		if prof != nil {
			fit = s.profile.FitScore(prof, profile.FitInput{CandidateID: c.ID, Genres: candGenres, Popularity: c.Popularity})
		}

		topGenreBonus := 0.0
		for _, g := range candGenres {
			if _, ok := topUserGenres[strings.ToLower(g)]; ok {
				topGenreBonus = suggestionTopGenreBonus
				break
			}
		}

		final := suggestionWeight*suggestion + suggestionFitWeight*fit + suggestionDiversity*diversity + topGenreBonus
		out = append(out, Hit{Candidate: c, SearchScore: suggestion, FitScore: fit, Diversity: diversity, FinalScore: final})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FinalScore > out[j].FinalScore })
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}

func safeRatio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func medianCount(counts map[string]int) int {
	if len(counts) == 0 {
		return 0
	}
	vals := make([]int, 0, len(counts))
	for _, v := range counts {
		vals = append(vals, v)
	}
	sort.Ints(vals)
	return vals[len(vals)/2]
}
