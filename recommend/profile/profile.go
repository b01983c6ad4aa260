// Package profile implements the user profile service and fit scorer
// (C12): builds a cached taste profile from watch history and ratings,
// then scores how well a candidate fits that profile.
package profile

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	"suasor/recommend/history"
	"suasor/recommend/vecmath"
	"suasor/types/models"
	"suasor/utils/logger"
)

const (
	cacheTTL        = time.Hour
	recentWindow    = 90 * 24 * time.Hour
	recentBoost     = 2.0
	recentItemsCap  = 20
	topGenresCap    = 5
	recentWatchesFetch = 200
)

// CandidateLookup resolves candidate metadata by id, implemented by a
// catalog repository; kept as a narrow interface so this package never
// imports a concrete gorm repository.
type CandidateLookup interface {
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error)
}

// EmbeddingLookup resolves a candidate's stored base embedding,
// implemented by recommend/vectorindex.Index.
type EmbeddingLookup interface {
	Vector(id uint64) ([]float32, bool)
}

// Service builds and caches profiles and scores candidate fit.
type Service struct {
	db         *gorm.DB
	history    history.Store
	candidates CandidateLookup
	embeddings EmbeddingLookup
}

// New builds a profile Service.
func New(db *gorm.DB, h history.Store, candidates CandidateLookup, embeddings EmbeddingLookup) *Service {
	return &Service{db: db, history: h, candidates: candidates, embeddings: embeddings}
}

// GetProfile implements get_profile(user_id, force_refresh?): returns the
// cached profile row if fresh, otherwise rebuilds it.
func (s *Service) GetProfile(ctx context.Context, userID uint64, forceRefresh bool) (*models.UserProfileCache, error) {
	log := logger.LoggerFromContext(ctx)

	if !forceRefresh {
		var cached models.UserProfileCache
		err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cached).Error
		if err == nil && !cached.Stale(cacheTTL, time.Now()) {
			return &cached, nil
		}
	}

	built, err := s.build(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile: build: %w", err)
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Assign(*built).
		FirstOrCreate(&models.UserProfileCache{UserID: userID}).Error; err != nil {
		log.Warn().Err(err).Uint64("userId", userID).Msg("profile: cache persist failed, returning uncached result")
	}
	return built, nil
}

// build implements the 6-step profile algorithm of spec §4.12.
func (s *Service) build(ctx context.Context, userID uint64) (*models.UserProfileCache, error) {
	events, err := s.history.GetRecentWatches(ctx, userID, recentWatchesFetch, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching watch events: %w", err)
	}

	genreCounts := make(map[string]float64)
	decadeCounts := make(map[string]float64)
	langCounts := make(map[string]float64)
	now := time.Now()

	var popSum float64
	var popN int
	recentIDs := make([]uint64, 0, recentItemsCap)

	sort.Slice(events, func(i, j int) bool { return events[i].WatchedAt.After(events[j].WatchedAt) })

	for _, e := range events {
		weight := 1.0
		if now.Sub(e.WatchedAt) <= recentWindow {
			weight = recentBoost
		}
		for genre := range e.Genres {
			genreCounts[genre] += weight
		}
		if e.Year > 0 {
			decade := fmt.Sprintf("%ds", (e.Year/10)*10)
			decadeCounts[decade] += weight
		}
		if e.Language != "" {
			langCounts[e.Language] += weight
		}
		if len(recentIDs) < recentItemsCap {
			recentIDs = append(recentIDs, e.CandidateID)
		}
	}

	if s.candidates != nil && len(recentIDs) > 0 {
		if cands, err := s.candidates.GetByIDs(ctx, recentIDs); err == nil {
			for _, c := range cands {
				popSum += c.Popularity
				popN++
			}
		}
	}

	profile := &models.UserProfileCache{
		UserID:          userID,
		GenreWeights:    normalizeToUnit(genreCounts),
		DecadeWeights:   normalizeToUnit(decadeCounts),
		LanguageWeights: normalizeToUnit(langCounts),
		RecentItems:     recentIDs,
		TopGenres:       topN(genreCounts, topGenresCap),
		TotalWatched:    len(events),
	}

	if popN > 0 {
		profile.AvgPopularityWatched = popSum / float64(popN)
	}
	profile.ObscurityPreference = obscurityFromPopularity(profile.AvgPopularityWatched)

	return profile, nil
}

func normalizeToUnit(counts map[string]float64) models.WeightMap {
	out := make(models.WeightMap, len(counts))
	max := 0.0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return out
	}
	for k, c := range counts {
		out[k] = c / max
	}
	return out
}

func topN(counts map[string]float64, n int) []string {
	type kv struct {
		k string
		v float64
	}
	list := make([]kv, 0, len(counts))
	for k, v := range counts {
		list = append(list, kv{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].v != list[j].v {
			return list[i].v > list[j].v
		}
		return list[i].k < list[j].k
	})
	if len(list) > n {
		list = list[:n]
	}
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.k
	}
	return out
}

func obscurityFromPopularity(avgPop float64) models.ObscurityPreference {
	switch {
	case avgPop < 20:
		return models.ObscurityObscure
	case avgPop < 60:
		return models.ObscurityBalanced
	default:
		return models.ObscurityMainstream
	}
}

// FitInput is one candidate to score fit for.
type FitInput struct {
	CandidateID uint64
	Genres      []string
	Popularity  float64
}

// FitScore implements C12's per-candidate fit scoring against a built
// profile, returning a value in [0,1].
func (s *Service) FitScore(profile *models.UserProfileCache, in FitInput) float64 {
	genreScore := s.genreScore(profile, in.Genres)
	simScore := s.similarityScore(profile, in.CandidateID)
	popScore := popularityScore(profile.ObscurityPreference, in.Popularity)

	wGenre, wSim, wPop := 0.4, 0.4, 0.2
	if len(profile.RecentItems) == 0 {
		shift := math.Min(0.2, wSim)
		wGenre += shift
		wSim -= shift
	}
	if len(in.Genres) == 0 {
		shift := math.Min(0.2, wGenre)
		wSim += shift
		wGenre -= shift
	}

	return wGenre*genreScore + wSim*simScore + wPop*popScore
}

func (s *Service) genreScore(profile *models.UserProfileCache, genres []string) float64 {
	if len(genres) == 0 {
		return 0.3
	}
	sum := 0.0
	for _, g := range genres {
		if w, ok := profile.GenreWeights[g]; ok {
			sum += w
		} else {
			sum += 0.1
		}
	}
	return sum / float64(len(genres))
}

func (s *Service) similarityScore(profile *models.UserProfileCache, candidateID uint64) float64 {
	if s.embeddings == nil || len(profile.RecentItems) == 0 {
		return 0.5
	}
	candVec, ok := s.embeddings.Vector(candidateID)
	if !ok {
		return 0.5
	}
	best := -1.0
	found := false
	for _, id := range profile.RecentItems {
		v, ok := s.embeddings.Vector(id)
		if !ok {
			continue
		}
		found = true
		if c := vecmath.Cosine(candVec, v); c > best {
			best = c
		}
	}
	if !found {
		return 0.5
	}
	return vecmath.RemapCosine(best)
}

// popularityScore implements spec §4.12's obscurity-gated popularity
// curve: balanced prefers a mid-range band; obscure/mainstream are
// monotone in opposite directions.
func popularityScore(pref models.ObscurityPreference, popularity float64) float64 {
	norm := math.Max(0, math.Min(1, popularity/100))
	switch pref {
	case models.ObscurityObscure:
		return 1 - norm
	case models.ObscurityMainstream:
		return norm
	default:
		if popularity >= 30 && popularity <= 70 {
			return 0.7
		}
		return 0.5
	}
}

// Aspect labels and weights for the multi-vector fit variant, spec
// §4.12's "base 0.20, title 0.25, keywords 0.30, people 0.20, brands 0.05".
var multiVectorAspectWeights = map[string]float64{
	"base":     0.20,
	"title":    0.25,
	"keywords": 0.30,
	"people":   0.20,
	"brands":   0.05,
}

// MultiVectorFitScore blends per-aspect cosine similarities between a
// candidate's aspect vectors and the user's per-aspect profile vectors
// (recency/rating-weighted averages of viewed items' vectors, supplied
// by the caller) with the primary fit score, per caller-supplied
// blendWeight ∈ [0,1] (weight on the multi-vector component).
func MultiVectorFitScore(candidateAspectVecs map[string][]float32, userAspectVecs map[string][]float32, primaryFit float64, blendWeight float64) float64 {
	var weighted, totalWeight float64
	for label, weight := range multiVectorAspectWeights {
		cv, ok1 := candidateAspectVecs[label]
		uv, ok2 := userAspectVecs[label]
		if !ok1 || !ok2 {
			continue
		}
		sim := vecmath.RemapCosine(vecmath.Cosine(cv, uv))
		weighted += weight * sim
		totalWeight += weight
	}
	if totalWeight == 0 {
		return primaryFit
	}
	multiVectorFit := weighted / totalWeight
	return (1-blendWeight)*primaryFit + blendWeight*multiVectorFit
}

// AverageAspectVectors computes a user's per-aspect profile vector as
// the mean of a set of viewed items' vectors for that aspect, optionally
// weighted (index-aligned with vecs) by recency/rating; renormalized to
// unit length, matching spec §4.12's "recency-and-rating-weighted
// averages" definition.
func AverageAspectVectors(vecs [][]float32, weights []float64) []float32 {
	if len(vecs) == 0 {
		return nil
	}
	if len(weights) != len(vecs) {
		weights = make([]float64, len(vecs))
		for i := range weights {
			weights[i] = 1
		}
	}
	dim := len(vecs[0])
	sum := make([]float32, dim)
	var totalW float64
	for i, v := range vecs {
		w := float32(weights[i])
		for d := 0; d < dim && d < len(v); d++ {
			sum[d] += w * v[d]
		}
		totalW += weights[i]
	}
	if totalW == 0 {
		return vecmath.Normalize(sum)
	}
	for d := range sum {
		sum[d] = sum[d] / float32(totalW)
	}
	return vecmath.Normalize(sum)
}
