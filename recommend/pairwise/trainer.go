package pairwise

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"suasor/cache"
	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/vecmath"
	"suasor/types/models"
	coreerrors "suasor/types/errors"
	"suasor/utils/logger"
)

const (
	poolLargeThreshold  = 15
	poolLargeTotalPairs = 20
	poolMidThreshold    = 10
	poolMidTotalPairs   = 15
	minTotalPairs       = 10

	preferenceAlpha      = 0.08
	bothMidpointAlpha    = 0.6
	neitherRepelAlpha    = 0.4
	interpretableBoost   = 0.1

	preferenceVectorTTL = 90 * 24 * time.Hour
	interpretableTTL    = 30 * 24 * time.Hour
	personaDeltaKeep    = 10

	deltaTimeout = 30 * time.Second
)

// ItemSummary is the per-candidate info the trainer needs to serve pairs
// and update interpretable weights: genre/decade/language tags and a
// popularity figure it turns into an obscurity signal.
type ItemSummary struct {
	ID         uint64
	Genres     []string
	Decade     string
	Language   string
	Popularity float64
	Vector     []float32
	ReleaseYear int
}

// CandidateLookup resolves item summaries for a pool of candidate ids.
type CandidateLookup interface {
	GetSummaries(ctx context.Context, ids []uint64) (map[uint64]ItemSummary, error)
}

// Trainer implements C13: pairwise session lifecycle, immediate
// preference-vector updates, and persona-delta summarization.
type Trainer struct {
	db         *gorm.DB
	cache      *cache.Store
	candidates CandidateLookup
	ai         ai.AIClient
}

// NewTrainer builds a Trainer.
func NewTrainer(db *gorm.DB, store *cache.Store, candidates CandidateLookup, aiClient ai.AIClient) *Trainer {
	return &Trainer{db: db, cache: store, candidates: candidates, ai: aiClient}
}

// CreateSession implements create_pairwise_session: freezes a candidate
// pool and total_pairs target per spec §4.13's pool-size bands.
func (t *Trainer) CreateSession(ctx context.Context, userID uint64, prompt, listType string, pool []uint64) (*models.PairwiseSession, error) {
	if len(pool) < 2 {
		return nil, coreerrors.NewInputError("pairwise: pool must have at least 2 candidates")
	}

	total := totalPairsForPool(len(pool))

	session := &models.PairwiseSession{
		UserID:        userID,
		Prompt:        prompt,
		ListType:      listType,
		CandidatePool: models.Uint64Slice(pool),
		TotalPairs:    total,
		Status:        models.PairwiseSessionActive,
		StartedAt:     time.Now(),
		JudgedPairs:   models.JudgedPairSet{},
	}
	if err := t.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, coreerrors.NewInternalError("pairwise: creating session", err)
	}
	return session, nil
}

// SessionStatus implements session_status(session_id): the session row
// as persisted, including pool size, pairs judged, and completion state.
func (t *Trainer) SessionStatus(ctx context.Context, sessionID uint64) (*models.PairwiseSession, error) {
	var session models.PairwiseSession
	if err := t.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		return nil, coreerrors.NewNotFoundError(fmt.Sprintf("pairwise: session %d not found", sessionID))
	}
	return &session, nil
}

// ExpireStaleSessions marks every still-active session untouched for
// longer than olderThan as abandoned, the session-cleanup background
// task spec §5 names alongside index rebuild and phase detection.
// Abandoned sessions are left in place (not deleted) since their
// judgments already fed applyUpdate and remain valid training data.
func (t *Trainer) ExpireStaleSessions(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := t.db.WithContext(ctx).
		Model(&models.PairwiseSession{}).
		Where("status = ? AND updated_at < ?", models.PairwiseSessionActive, cutoff).
		Update("status", models.PairwiseSessionAbandoned)
	if res.Error != nil {
		return 0, fmt.Errorf("pairwise: expiring stale sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func totalPairsForPool(n int) int {
	switch {
	case n >= poolLargeThreshold:
		return poolLargeTotalPairs
	case n >= poolMidThreshold:
		return poolMidTotalPairs
	default:
		if n > minTotalPairs {
			return n
		}
		return minTotalPairs
	}
}

// NextPair implements next_pair: round-robin serves the next unjudged
// pair from the session's frozen pool, nil if the session is exhausted
// or complete.
func (t *Trainer) NextPair(ctx context.Context, sessionID uint64) (*Pair, error) {
	var session models.PairwiseSession
	if err := t.db.WithContext(ctx).First(&session, sessionID).Error; err != nil {
		return nil, coreerrors.NewNotFoundError("pairwise: session not found")
	}
	if session.Status != models.PairwiseSessionActive || session.CompletedPairs >= session.TotalPairs {
		return nil, nil
	}

	pool := session.CandidatePool
	n := len(pool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			key := models.PairKey(pool[i], pool[j])
			if _, judged := session.JudgedPairs[key]; judged {
				continue
			}
			return &Pair{A: pool[i], B: pool[j]}, nil
		}
	}
	return nil, nil
}

// SubmitJudgment implements submit_judgment: records the judgment,
// immediately updates the user's preference vector and interpretable
// weights, and advances session progress — all inside a row-locked
// transaction so concurrent submissions for the same session serialize.
func (t *Trainer) SubmitJudgment(ctx context.Context, sessionID uint64, a, b uint64, winner models.PairwiseWinner, responseTimeMs int) error {
	log := logger.LoggerFromContext(ctx)

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.PairwiseSession
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&session, sessionID).Error; err != nil {
			return coreerrors.NewNotFoundError("pairwise: session not found")
		}
		if session.Status != models.PairwiseSessionActive {
			return coreerrors.NewInputError("pairwise: session is not active")
		}

		key := models.PairKey(a, b)
		if session.JudgedPairs == nil {
			session.JudgedPairs = models.JudgedPairSet{}
		}
		session.JudgedPairs[key] = struct{}{}
		session.CompletedPairs++
		if session.CompletedPairs >= session.TotalPairs {
			session.Status = models.PairwiseSessionCompleted
		}

		judgment := models.PairwiseJudgment{
			SessionID:      sessionID,
			CandidateA:     a,
			CandidateB:     b,
			Winner:         winner,
			ResponseTimeMs: responseTimeMs,
		}
		if err := tx.Create(&judgment).Error; err != nil {
			return coreerrors.NewInternalError("pairwise: recording judgment", err)
		}
		if err := tx.Save(&session).Error; err != nil {
			return coreerrors.NewInternalError("pairwise: updating session", err)
		}

		if t.candidates != nil {
			summaries, err := t.candidates.GetSummaries(ctx, []uint64{a, b})
			if err != nil {
				log.Warn().Err(err).Msg("pairwise: fetching candidate summaries for update failed")
			} else {
				if err := t.applyUpdate(ctx, session.UserID, winner, summaries[a], summaries[b]); err != nil {
					log.Warn().Err(err).Msg("pairwise: preference update failed, judgment still recorded")
				}
			}
		}

		if session.Status == models.PairwiseSessionCompleted {
			t.summarizeSessionAsync(ctx, session.UserID, session.ID, session.Prompt)
		}
		return nil
	})
}

// applyUpdate implements spec §4.13's immediate preference-vector and
// interpretable-weight updates for one judgment.
func (t *Trainer) applyUpdate(ctx context.Context, userID uint64, winner models.PairwiseWinner, a, b ItemSummary) error {
	if t.cache == nil {
		return nil
	}
	vec, err := t.loadPreferenceVector(ctx, userID)
	if err != nil {
		return err
	}

	switch winner {
	case models.WinnerA:
		vec = stepToward(vec, a.Vector, preferenceAlpha)
	case models.WinnerB:
		vec = stepToward(vec, b.Vector, preferenceAlpha)
	case models.WinnerBoth:
		if a.Vector != nil && b.Vector != nil {
			mid := vecmath.Normalize(vecmath.Mean([][]float32{a.Vector, b.Vector}))
			vec = stepToward(vec, mid, preferenceAlpha*bothMidpointAlpha)
		}
	case models.WinnerNeither:
		if a.Vector != nil && b.Vector != nil {
			mid := vecmath.Normalize(vecmath.Mean([][]float32{a.Vector, b.Vector}))
			vec = stepAway(vec, mid, preferenceAlpha*neitherRepelAlpha)
		}
	default: // skip
		return nil
	}

	if err := t.savePreferenceVector(ctx, userID, vec); err != nil {
		return err
	}

	return t.updateInterpretableWeights(ctx, userID, winner, a, b)
}

// stepToward nudges vec by alpha toward target, renormalizing to unit
// length per spec §8's invariant.
func stepToward(vec, target []float32, alpha float64) []float32 {
	if target == nil {
		return vec
	}
	if vec == nil {
		return vecmath.Normalize(target)
	}
	delta := vecmath.Scale(vecmath.Sub(target, vec), alpha)
	return vecmath.Normalize(vecmath.Add(vec, delta))
}

// stepAway nudges vec by alpha away from target.
func stepAway(vec, target []float32, alpha float64) []float32 {
	if target == nil || vec == nil {
		return vec
	}
	delta := vecmath.Scale(vecmath.Sub(vec, target), alpha)
	return vecmath.Normalize(vecmath.Add(vec, delta))
}

func preferenceVectorKey(userID uint64) string {
	return fmt.Sprintf("pairwise:pref_vec:%d", userID)
}

func interpretableWeightsKey(userID uint64) string {
	return fmt.Sprintf("pairwise:interpretable:%d", userID)
}

func (t *Trainer) loadPreferenceVector(ctx context.Context, userID uint64) ([]float32, error) {
	raw, found, err := t.cache.GetBytes(ctx, preferenceVectorKey(userID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return vecmath.Decode(raw), nil
}

func (t *Trainer) savePreferenceVector(ctx context.Context, userID uint64, vec []float32) error {
	if vec == nil {
		return nil
	}
	return t.cache.SetBytes(ctx, preferenceVectorKey(userID), vecmath.Encode(vec), preferenceVectorTTL)
}

// InterpretableWeights is the human-readable counterpart to the opaque
// preference vector: per-tag boosts a host UI can render as "more like
// this" explanations.
type InterpretableWeights struct {
	Genres     map[string]float64 `json:"genres"`
	Decades    map[string]float64 `json:"decades"`
	Languages  map[string]float64 `json:"languages"`
	Obscurity  float64            `json:"obscurity"`
	Freshness  float64            `json:"freshness"`
}

func (t *Trainer) updateInterpretableWeights(ctx context.Context, userID uint64, winner models.PairwiseWinner, a, b ItemSummary) error {
	weights, err := t.loadInterpretableWeights(ctx, userID)
	if err != nil {
		return err
	}

	var winItem, loseItem *ItemSummary
	switch winner {
	case models.WinnerA:
		winItem, loseItem = &a, &b
	case models.WinnerB:
		winItem, loseItem = &b, &a
	default:
		return nil
	}

	boostTags(weights.Genres, winItem.Genres, interpretableBoost)
	boostTags(weights.Genres, loseItem.Genres, -interpretableBoost)
	if winItem.Decade != "" {
		weights.Decades[winItem.Decade] += interpretableBoost
	}
	if winItem.Language != "" {
		weights.Languages[winItem.Language] += interpretableBoost
	}
	if winItem.Popularity < loseItem.Popularity {
		weights.Obscurity += interpretableBoost
	} else if winItem.Popularity > loseItem.Popularity {
		weights.Obscurity -= interpretableBoost
	}
	if winItem.ReleaseYear > loseItem.ReleaseYear {
		weights.Freshness += interpretableBoost
	} else if winItem.ReleaseYear < loseItem.ReleaseYear {
		weights.Freshness -= interpretableBoost
	}

	return t.saveInterpretableWeights(ctx, userID, weights)
}

func boostTags(m map[string]float64, tags []string, delta float64) {
	for _, tag := range tags {
		m[tag] += delta
	}
}

func (t *Trainer) loadInterpretableWeights(ctx context.Context, userID uint64) (*InterpretableWeights, error) {
	raw, found, err := t.cache.GetString(ctx, interpretableWeightsKey(userID))
	w := &InterpretableWeights{Genres: map[string]float64{}, Decades: map[string]float64{}, Languages: map[string]float64{}}
	if err != nil {
		return nil, err
	}
	if !found {
		return w, nil
	}
	if err := json.Unmarshal([]byte(raw), w); err != nil {
		return w, nil
	}
	return w, nil
}

func (t *Trainer) saveInterpretableWeights(ctx context.Context, userID uint64, w *InterpretableWeights) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return t.cache.SetString(ctx, interpretableWeightsKey(userID), string(raw), interpretableTTL)
}

// summarizeSessionAsync fires the persona-delta LLM summary without
// blocking submit_judgment's response; failures are logged, never
// surfaced, since the delta is a soft enrichment, not a session outcome.
func (t *Trainer) summarizeSessionAsync(ctx context.Context, userID, sessionID uint64, prompt string) {
	if t.ai == nil || t.db == nil {
		return
	}
	log := logger.LoggerFromContext(ctx)

	var judgments []models.PairwiseJudgment
	if err := t.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&judgments).Error; err != nil {
		log.Warn().Err(err).Msg("pairwise: loading judgments for persona delta failed")
		return
	}
	if len(judgments) == 0 {
		return
	}

	summary, err := t.summarizeJudgments(ctx, prompt, judgments)
	if err != nil {
		log.Warn().Err(err).Msg("pairwise: persona delta summarization failed")
		return
	}

	delta := models.PersonaDelta{UserID: userID, SessionID: sessionID, Summary: summary}
	if err := t.db.WithContext(ctx).Create(&delta).Error; err != nil {
		log.Warn().Err(err).Msg("pairwise: persisting persona delta failed")
		return
	}

	t.trimPersonaDeltas(ctx, userID)
}

func (t *Trainer) summarizeJudgments(ctx context.Context, prompt string, judgments []models.PairwiseJudgment) (string, error) {
	sysPrompt := "Summarize what this user's pairwise judgments reveal about their taste, in 2-3 plain sentences. No preamble."
	var body string
	for _, j := range judgments {
		body += fmt.Sprintf("pair(%d,%d)=%s ", j.CandidateA, j.CandidateB, j.Winner)
	}
	userPrompt := fmt.Sprintf("Session prompt: %s\nJudgments: %s", prompt, body)

	ctx2, cancel := context.WithTimeout(ctx, deltaTimeout)
	defer cancel()
	return t.ai.GenerateText(ctx2, userPrompt, &aitypes.GenerationOptions{
		Temperature:        0.3,
		MaxTokens:          200,
		SystemInstructions: sysPrompt,
	})
}

func (t *Trainer) trimPersonaDeltas(ctx context.Context, userID uint64) {
	var ids []uint64
	if err := t.db.WithContext(ctx).Model(&models.PersonaDelta{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(personaDeltaKeep).
		Pluck("id", &ids).Error; err != nil || len(ids) == 0 {
		return
	}
	t.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.PersonaDelta{})
}
