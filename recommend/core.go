// Package recommend ties the fifteen components (C1-C15) together into
// the core's external surface: the eight operations spec §6 names as
// recommend.Core's methods. Every dependency is injected as the
// narrowest interface the wired component already exposes, so Core has
// no persistence logic of its own beyond orchestration.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"suasor/cache"
	"suasor/client/ai"
	"suasor/recommend/diversify"
	"suasor/recommend/embedding"
	"suasor/recommend/history"
	"suasor/recommend/intent"
	"suasor/recommend/judge"
	"suasor/recommend/pairwise"
	"suasor/recommend/phase"
	"suasor/recommend/profile"
	"suasor/recommend/retrieval"
	"suasor/recommend/scoring"
	"suasor/recommend/textproc"
	coreerrors "suasor/types/errors"
	"suasor/types/models"
)

const (
	diversifyLambda  = 0.7
	judgeBlendWeight = 0.3
	defaultItemLimit = 20
	broadRetrievalK  = 150
	personaTrunc     = 400
	historyTrunc     = 400
	maxRankerCalls   = 400
)

// EmbeddingLookup resolves a candidate's stored base embedding by
// candidate id. Satisfied by *recommend/vectorindex.Index.
type EmbeddingLookup interface {
	Vector(id uint64) ([]float32, bool)
}

// ListLookup resolves the owner and current items of a user-curated
// list, for suggest_for_list. Implemented by a repository adapter over
// the teacher's existing list tables; kept narrow so this package
// never imports that schema directly.
type ListLookup interface {
	GetListItems(ctx context.Context, listID uint64) (userID uint64, items []retrieval.ListItem, err error)
}

// Core implements spec §6's eight-operation internal API.
type Core struct {
	textproc   *textproc.Processor
	intent     *intent.Extractor
	encoder    embedding.Encoder
	retrieval  *retrieval.Service
	embeddings EmbeddingLookup
	judge      *judge.Judge // nil: judging skipped
	ranker     *pairwise.Ranker
	trainer    *pairwise.Trainer
	profile    *profile.Service
	history    history.Store
	phase      *phase.Detector
	lists      ListLookup // nil: suggest_for_list unavailable
	cache      *cache.Store
	ai         ai.AIClient // nil: chat lists run rule-based-only
}

// New builds a Core from its already-constructed component services.
func New(
	proc *textproc.Processor,
	extractor *intent.Extractor,
	encoder embedding.Encoder,
	retrievalSvc *retrieval.Service,
	embeddings EmbeddingLookup,
	judgeSvc *judge.Judge,
	ranker *pairwise.Ranker,
	trainer *pairwise.Trainer,
	profileSvc *profile.Service,
	historyStore history.Store,
	phaseDetector *phase.Detector,
	lists ListLookup,
	store *cache.Store,
	aiClient ai.AIClient,
) *Core {
	return &Core{
		textproc: proc, intent: extractor, encoder: encoder, retrieval: retrievalSvc, embeddings: embeddings,
		judge: judgeSvc, ranker: ranker, trainer: trainer, profile: profileSvc,
		history: historyStore, phase: phaseDetector, lists: lists, cache: store, ai: aiClient,
	}
}

// RecommendedItem is one entry of a generated list: the candidate plus
// every signal that produced its position, for client-side explanation.
type RecommendedItem struct {
	Candidate   *models.Candidate
	FinalScore  float64
	Explanation string
}

// ListResult is generate_chat_list's and hybrid_search's return shape.
type ListResult struct {
	Items   []RecommendedItem
	Persona string
}

// GenerateChatList implements generate_chat_list(prompt, user_id,
// item_limit): extract intent, retrieve broadly, score per spec §4.8,
// optionally judge and tournament-rank the top of the list, then
// diversify down to item_limit.
func (c *Core) GenerateChatList(ctx context.Context, prompt string, userID uint64, itemLimit int) (*ListResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, coreerrors.NewInputError("recommend: prompt must not be empty")
	}
	if itemLimit <= 0 {
		itemLimit = defaultItemLimit
	}

	personaText, historySummary := c.personaAndHistory(ctx, userID)

	in, err := c.intent.Extract(ctx, prompt, personaText, historySummary)
	if err != nil {
		return nil, fmt.Errorf("recommend: extracting intent: %w", err)
	}

	params := retrieval.Params{
		Query:        prompt,
		Seeds:        append(append([]string{}, in.Actors...), in.Directors...),
		Moods:        in.Moods,
		NegativeCues: in.NegativeCues,
		MediaType:    "",
		UserID:       userID,
		K:            broadRetrievalK,
	}
	hits, err := c.retrieval.Retrieve(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("recommend: retrieving candidates: %w", err)
	}
	if len(hits) == 0 {
		return &ListResult{}, nil
	}

	var queryVec []float32
	if c.encoder != nil {
		queryVec = c.encoder.Encode(prompt)
	}

	scored := c.scoreHits(ctx, hits, scoring.Context{
		PromptText:     prompt,
		Phrases:        in.QueryVariants,
		Filters:        filtersFromIntent(in),
		ListType:       scoring.ListTypeChat,
		QueryEmbedding: queryVec,
		Tones:          in.Tones,
		NoExplicitYear: in.Era == "",
	})
	if len(scored) == 0 {
		return &ListResult{}, nil
	}

	c.maybeJudge(ctx, prompt, scored, personaText, historySummary)
	c.maybeRank(ctx, scored)

	final := c.diversifyAndLimit(scored, itemLimit)
	return &ListResult{Items: final, Persona: personaText}, nil
}

// SuggestForList implements suggest_for_list(list_id): aggregate ANN
// neighbors of the list's current items, per spec §4.7's suggestions
// operation, capped at 20 results.
func (c *Core) SuggestForList(ctx context.Context, listID uint64) ([]RecommendedItem, error) {
	if c.lists == nil {
		return nil, coreerrors.NewInternalError("recommend: no list lookup configured", nil)
	}
	userID, items, err := c.lists.GetListItems(ctx, listID)
	if err != nil {
		return nil, coreerrors.NewNotFoundError(fmt.Sprintf("recommend: list %d not found", listID))
	}

	hits, err := c.retrieval.Suggestions(ctx, items, userID, defaultItemLimit)
	if err != nil {
		return nil, fmt.Errorf("recommend: suggestions: %w", err)
	}

	out := make([]RecommendedItem, len(hits))
	for i, h := range hits {
		out[i] = RecommendedItem{
			Candidate:   h.Candidate,
			FinalScore:  h.FinalScore,
			Explanation: fmt.Sprintf("search %.2f, fit %.2f", h.SearchScore, h.FitScore),
		}
	}
	return out, nil
}

// HybridSearch implements hybrid_search(query, user_id, media_type?,
// limit): a direct pass-through to C7's retrieve, bypassing C8/C10/C11
// since ad hoc search results are already ranked by the hybrid blend.
func (c *Core) HybridSearch(ctx context.Context, query string, userID uint64, mediaType string, limit int) ([]RecommendedItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, coreerrors.NewInputError("recommend: query must not be empty")
	}
	if limit <= 0 {
		limit = defaultItemLimit
	}

	hits, err := c.retrieval.Retrieve(ctx, retrieval.Params{
		Query:     query,
		MediaType: mediaType,
		UserID:    userID,
		K:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("recommend: hybrid search: %w", err)
	}

	out := make([]RecommendedItem, len(hits))
	for i, h := range hits {
		out[i] = RecommendedItem{Candidate: h.Candidate, FinalScore: h.FinalScore}
	}
	return out, nil
}

// GetProfile implements get_profile(user_id, force_refresh?).
func (c *Core) GetProfile(ctx context.Context, userID uint64, forceRefresh bool) (*models.UserProfileCache, error) {
	return c.profile.GetProfile(ctx, userID, forceRefresh)
}

// CreatePairwiseSession implements create_pairwise_session(user_id,
// prompt, list_type, pool).
func (c *Core) CreatePairwiseSession(ctx context.Context, userID uint64, prompt, listType string, pool []uint64) (*models.PairwiseSession, error) {
	return c.trainer.CreateSession(ctx, userID, prompt, listType, pool)
}

// NextPair implements next_pair(session_id).
func (c *Core) NextPair(ctx context.Context, sessionID uint64) (*pairwise.Pair, error) {
	return c.trainer.NextPair(ctx, sessionID)
}

// SubmitJudgment implements submit_judgment(session_id, a, b, winner,
// response_time_ms).
func (c *Core) SubmitJudgment(ctx context.Context, sessionID uint64, a, b uint64, winner models.PairwiseWinner, responseTimeMs int) error {
	return c.trainer.SubmitJudgment(ctx, sessionID, a, b, winner, responseTimeMs)
}

// SessionStatus implements session_status(session_id): the frozen pool
// size, pairs judged so far, and completion state.
func (c *Core) SessionStatus(ctx context.Context, sessionID uint64) (*models.PairwiseSession, error) {
	session, err := c.trainer.SessionStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("recommend: session status: %w", err)
	}
	return session, nil
}

// UserProfile implements user_profile(user_id): an alias of get_profile
// exposed under spec §6's own name for the pairwise training surface.
func (c *Core) UserProfile(ctx context.Context, userID uint64) (*models.UserProfileCache, error) {
	return c.profile.GetProfile(ctx, userID, false)
}

// DetectPhases implements detect_phases(user_id).
func (c *Core) DetectPhases(ctx context.Context, userID uint64) ([]models.ViewingPhase, error) {
	return c.phase.DetectAllPhases(ctx, userID)
}

// CurrentPhase implements current_phase(user_id).
func (c *Core) CurrentPhase(ctx context.Context, userID uint64) (*models.ViewingPhase, error) {
	return c.phase.CurrentPhase(ctx, userID)
}

// PredictNextPhase implements predict_next_phase(user_id).
func (c *Core) PredictNextPhase(ctx context.Context, userID uint64) (*phase.Prediction, error) {
	return c.phase.PredictNextPhase(ctx, userID, 0)
}

// personaAndHistory builds the short persona/history text the intent
// extractor and judge both take, from the user's profile and recent
// watches. Returns empty strings (not an error) on any lookup failure:
// a missing profile degrades the prompt, it never fails the list.
func (c *Core) personaAndHistory(ctx context.Context, userID uint64) (persona, historySummary string) {
	if c.profile != nil {
		if prof, err := c.profile.GetProfile(ctx, userID, false); err == nil && prof != nil {
			persona = truncate(fmt.Sprintf("Top genres: %s. Obscurity preference: %s.",
				strings.Join(prof.TopGenres, ", "), prof.ObscurityPreference), personaTrunc)
		}
	}
	if c.history != nil {
		if recent, err := c.history.GetRecentWatches(ctx, userID, 10, nil); err == nil && len(recent) > 0 {
			titles := make([]string, 0, len(recent))
			for _, e := range recent {
				titles = append(titles, e.Title)
			}
			historySummary = truncate(strings.Join(titles, ", "), historyTrunc)
		}
	}
	return persona, historySummary
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// filtersFromIntent maps C2's extracted Intent onto C8's explicit
// Filters, spec §4.8 step 1's strict-filter input.
func filtersFromIntent(in intent.Intent) scoring.Filters {
	f := scoring.Filters{
		Genres:    in.Genres,
		GenreMode: scoring.GenreModeAny,
		Actors:    in.Actors,
		Directors: in.Directors,
		Studios:   in.Studios,
	}
	if in.RuntimeMin != nil {
		f.Numeric = append(f.Numeric, scoring.NumericComparator{Field: "runtime", Operator: ">=", Value: float64(*in.RuntimeMin)})
	}
	if in.RuntimeMax != nil {
		f.Numeric = append(f.Numeric, scoring.NumericComparator{Field: "runtime", Operator: "<=", Value: float64(*in.RuntimeMax)})
	}
	return f
}

// scoreHits converts retrieval hits into scoring.Input, runs C8, and
// returns the result joined back to each hit's full Candidate so
// downstream judging/ranking/diversification have it without a second
// lookup.
func (c *Core) scoreHits(ctx context.Context, hits []retrieval.Hit, sctx scoring.Context) []scoredCandidate {
	byKey := make(map[models.CandidateKey]*models.Candidate, len(hits))
	inputs := make([]scoring.Input, 0, len(hits))
	for _, h := range hits {
		if h.Candidate == nil {
			continue
		}
		byKey[h.Candidate.Key()] = h.Candidate
		var vec []float32
		if c.embeddings != nil {
			if v, ok := c.embeddings.Vector(h.Candidate.ID); ok {
				vec = v
			}
		}
		inputs = append(inputs, scoring.Input{
			View:       candidateView(h.Candidate),
			Text:       candidateText(h.Candidate),
			Embedding:  vec,
			Popularity: h.Candidate.Popularity,
			Rating:     h.Candidate.Rating,
		})
	}
	scored := scoring.Score(sctx, inputs, 0)
	out := make([]scoredCandidate, 0, len(scored))
	for _, s := range scored {
		cand, ok := byKey[s.Key]
		if !ok {
			continue
		}
		out = append(out, scoredCandidate{candidate: cand, scored: s})
	}
	return out
}

// scoredCandidate pairs a scoring.Scored result with the full catalog
// row it was computed from, the unit Core's judge/rank/diversify
// stages operate on.
type scoredCandidate struct {
	candidate *models.Candidate
	scored    scoring.Scored
	judge     float64
	hasJudge  bool
}

// maybeJudge runs C9 over the scored list's current order and blends
// its absolute score back into each item's final score. A nil Judge or
// any batch failure leaves engine scores untouched, per spec §7.
func (c *Core) maybeJudge(ctx context.Context, prompt string, scored []scoredCandidate, persona, historySummary string) {
	if c.judge == nil || len(scored) == 0 {
		return
	}
	items := make([]judge.Item, len(scored))
	for i, s := range scored {
		items[i] = judgeItem(s.candidate)
	}
	results := c.judge.Judge(ctx, prompt, items, persona, historySummary)
	for i := range scored {
		if r, ok := results[scored[i].candidate.ID]; ok {
			scored[i].judge = r.Score
			scored[i].hasJudge = true
			scored[i].scored.Final = (1-judgeBlendWeight)*scored[i].scored.Final + judgeBlendWeight*r.Score
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].scored.Final > scored[j].scored.Final })
}

// maybeRank runs C10's LLM tournament reorder over the blended list's
// top-K. A nil Ranker leaves the engine/judge order untouched.
func (c *Core) maybeRank(ctx context.Context, scored []scoredCandidate) {
	if c.ranker == nil || len(scored) < 2 {
		return
	}
	rankerItems := make([]pairwise.ScoredItem, len(scored))
	itemByID := make(map[uint64]pairwise.PairItem, len(scored))
	for i, s := range scored {
		rankerItems[i] = pairwise.ScoredItem{ID: s.candidate.ID, EngineScore: s.scored.Final}
		itemByID[s.candidate.ID] = pairItem(s.candidate)
	}
	reordered, err := c.ranker.Rank(ctx, rankerItems, itemByID, maxRankerCalls)
	if err != nil || len(reordered) != len(scored) {
		return
	}
	byID := make(map[uint64]scoredCandidate, len(scored))
	for _, s := range scored {
		byID[s.candidate.ID] = s
	}
	for i, r := range reordered {
		scored[i] = byID[r.ID]
	}
}

// diversifyAndLimit runs C11's MMR selection over the final blended
// order and returns up to limit RecommendedItems with explanations.
func (c *Core) diversifyAndLimit(scored []scoredCandidate, limit int) []RecommendedItem {
	items := make([]diversify.Item, len(scored))
	byID := make(map[uint64]scoredCandidate, len(scored))
	for i, s := range scored {
		var vec []float32
		if c.embeddings != nil {
			if v, ok := c.embeddings.Vector(s.candidate.ID); ok {
				vec = v
			}
		}
		items[i] = diversify.Item{Key: s.candidate.ID, Relevance: s.scored.Final, Vector: vec}
		byID[s.candidate.ID] = s
	}
	keys := diversify.Select(items, limit, diversifyLambda)

	out := make([]RecommendedItem, 0, len(keys))
	for _, k := range keys {
		s, ok := byID[k]
		if !ok {
			continue
		}
		out = append(out, RecommendedItem{
			Candidate:   s.candidate,
			FinalScore:  s.scored.Final,
			Explanation: explanation(s),
		})
	}
	return out
}

func explanation(s scoredCandidate) string {
	signal := s.scored.DominantSignal
	if s.hasJudge {
		return fmt.Sprintf("matched on %s, judge score %.2f", signal, s.judge)
	}
	return fmt.Sprintf("matched on %s", signal)
}

func candidateView(c *models.Candidate) scoring.CandidateView {
	return scoring.CandidateView{
		Key:          c.Key(),
		MediaType:    string(c.MediaType),
		Genres:       c.Genres.Slice(),
		Cast:         c.Cast,
		Studios:      c.ProductionCompanies,
		Language:     c.OriginalLanguage,
		Year:         c.Year,
		Adult:        c.Adult,
		Rating:       c.Rating,
		Votes:        float64(c.Votes),
		Revenue:      float64(c.Revenue),
		Budget:       float64(c.Budget),
		Popularity:   c.Popularity,
		Seasons:      float64(c.SeasonCount),
		Episodes:     float64(c.EpisodeCount),
		Runtime:      float64(c.RuntimeMinutes),
		Networks:     c.Networks,
		Creators:     c.CreatedBy,
		Directors:    c.Directors,
		Countries:    c.ProductionCountries,
		InProduction: c.InProduction,
		TraktID:      c.TraktID,
	}
}

// candidateText builds the free-text document C8's TF-IDF signal and
// C1's phrase matching run against.
func candidateText(c *models.Candidate) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString(" ")
	b.WriteString(c.Overview)
	b.WriteString(" ")
	b.WriteString(c.Tagline)
	b.WriteString(" ")
	b.WriteString(strings.Join(c.Genres.Slice(), " "))
	b.WriteString(" ")
	b.WriteString(strings.Join(c.Keywords.Slice(), " "))
	return b.String()
}

func judgeItem(c *models.Candidate) judge.Item {
	return judge.Item{
		ID:         c.ID,
		Title:      c.Title,
		Year:       c.Year,
		MediaType:  string(c.MediaType),
		Genres:     c.Genres.Slice(),
		Keywords:   c.Keywords.Slice(),
		Overview:   c.Overview,
		People:     append(append([]string{}, c.Cast...), c.Directors...),
		Studio:     firstOrEmpty(c.ProductionCompanies),
		Network:    firstOrEmpty(c.Networks),
		Rating:     c.Rating,
		Votes:      c.Votes,
		Popularity: c.Popularity,
		Language:   c.OriginalLanguage,
		Runtime:    c.RuntimeMinutes,
	}
}

func pairItem(c *models.Candidate) pairwise.PairItem {
	return pairwise.PairItem{
		ID:             c.ID,
		Title:          c.Title,
		Year:           c.Year,
		MediaType:      string(c.MediaType),
		Genres:         c.Genres.Slice(),
		Keywords:       c.Keywords.Slice(),
		Plot:           c.Overview,
		Tagline:        c.Tagline,
		Cast:           c.Cast,
		Studio:         firstOrEmpty(c.ProductionCompanies),
		Network:        firstOrEmpty(c.Networks),
		Rating:         c.Rating,
		Votes:          c.Votes,
		Popularity:     c.Popularity,
		Language:       c.OriginalLanguage,
		Runtime:        c.RuntimeMinutes,
		Status:         c.Status,
		SeasonCount:    c.SeasonCount,
		EpisodeCount:   c.EpisodeCount,
		ObscurityScore: c.ObscurityScore,
	}
}

func firstOrEmpty(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
