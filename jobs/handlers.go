package jobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"suasor/cache"
	"suasor/recommend"
	"suasor/recommend/embedding"
	"suasor/recommend/multivector"
	"suasor/recommend/pairwise"
	"suasor/recommend/phase"
	"suasor/recommend/vecmath"
	"suasor/recommend/vectorindex"
	"suasor/types/models"
	"suasor/utils/logger"
)

const (
	aiListLockTTL      = time.Hour
	sessionIdleTimeout = 6 * time.Hour
	generatedListTTL   = 24 * time.Hour
)

// multiVectorAspects are the C5 aspect labels a rebuild keeps current,
// matching the weights recommend/profile.MultiVectorFitScore blends
// against ("base" is the primary C4 embedding, rebuilt separately).
var multiVectorAspects = []string{"title", "keywords", "people", "brands"}

// Handlers wires every background task to the component services it
// needs. None of these dependencies is owned by this package: it is
// pure composition, the same shape recommend.Core itself uses.
type Handlers struct {
	db      *gorm.DB
	dense   *vectorindex.Index
	multi   *multivector.Index
	encoder embedding.Encoder
	phase   *phase.Detector
	trainer *pairwise.Trainer
	core    *recommend.Core
	locks   *cache.Store
	cache   *cache.Store
}

// NewHandlers builds a Handlers from its already-constructed dependencies.
func NewHandlers(
	db *gorm.DB,
	dense *vectorindex.Index,
	multi *multivector.Index,
	encoder embedding.Encoder,
	phaseDetector *phase.Detector,
	trainer *pairwise.Trainer,
	core *recommend.Core,
	store *cache.Store,
) *Handlers {
	return &Handlers{
		db: db, dense: dense, multi: multi, encoder: encoder,
		phase: phaseDetector, trainer: trainer, core: core,
		locks: store, cache: store,
	}
}

// Register wires every handler onto mux under its task type.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRebuildIndex, h.HandleRebuildIndex)
	mux.HandleFunc(TypePhaseSweep, h.HandlePhaseSweep)
	mux.HandleFunc(TypeGenerateList, h.HandleGenerateList)
	mux.HandleFunc(TypeSessionCleanup, h.HandleSessionCleanup)
}

// HandleRebuildIndex implements the index-rebuild background task:
// recomputes any missing or content-changed embedding for the active
// candidate set, persists it to embedding_records, then rebuilds C4's
// dense index in full and refreshes C5's per-aspect indexes
// incrementally via GetMissingOrStale.
func (h *Handlers) HandleRebuildIndex(ctx context.Context, _ *asynq.Task) error {
	log := logger.LoggerFromContext(ctx)

	var candidates []models.Candidate
	if err := h.db.WithContext(ctx).Where("active = ?", true).Find(&candidates).Error; err != nil {
		return fmt.Errorf("jobs: loading active candidates: %w", err)
	}
	if len(candidates) == 0 {
		log.Info().Msg("jobs: rebuild found no active candidates, nothing to do")
		return nil
	}

	if err := h.rebuildDense(ctx, candidates); err != nil {
		return fmt.Errorf("jobs: rebuilding dense index: %w", err)
	}
	if h.multi != nil {
		if err := h.rebuildMulti(ctx, candidates); err != nil {
			return fmt.Errorf("jobs: rebuilding multi-vector index: %w", err)
		}
	}

	log.Info().Int("candidates", len(candidates)).Msg("jobs: index rebuild complete")
	return nil
}

func (h *Handlers) rebuildDense(ctx context.Context, candidates []models.Candidate) error {
	ids := make([]uint64, 0, len(candidates))
	for i := range candidates {
		ids = append(ids, candidates[i].ID)
	}

	var existing []models.EmbeddingRecord
	if err := h.db.WithContext(ctx).Where("candidate_id IN ?", ids).Find(&existing).Error; err != nil {
		return fmt.Errorf("loading embedding records: %w", err)
	}
	hashByID := make(map[uint64]string, len(existing))
	vecByID := make(map[uint64][]float32, len(existing))
	for _, rec := range existing {
		hashByID[rec.CandidateID] = rec.ContentHash
		vecByID[rec.CandidateID] = vecmath.Decode(rec.Vector)
	}

	for _, c := range candidates {
		hash := contentHash(baseText(&c))
		if hashByID[c.ID] == hash {
			continue
		}
		vec := h.encoder.Encode(baseText(&c))
		if err := h.db.WithContext(ctx).
			Where("candidate_id = ?", c.ID).
			Assign(models.EmbeddingRecord{
				CandidateID: c.ID, MediaType: c.MediaType, TmdbID: c.TmdbID,
				Vector: vecmath.Encode(vec), ContentHash: hash,
			}).
			FirstOrCreate(&models.EmbeddingRecord{CandidateID: c.ID}).Error; err != nil {
			return fmt.Errorf("persisting embedding record for candidate %d: %w", c.ID, err)
		}
		vecByID[c.ID] = vec
	}

	vectors := make([][]float32, 0, len(ids))
	builtIDs := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if v, ok := vecByID[id]; ok {
			vectors = append(vectors, v)
			builtIDs = append(builtIDs, id)
		}
	}
	if err := h.dense.Build(ctx, vectors, builtIDs); err != nil {
		return err
	}
	return h.dense.Save()
}

func (h *Handlers) rebuildMulti(ctx context.Context, candidates []models.Candidate) error {
	for _, label := range multiVectorAspects {
		idToHash := make(map[uint64]string, len(candidates))
		textByID := make(map[uint64]string, len(candidates))
		for i := range candidates {
			c := &candidates[i]
			text := aspectText(c, label)
			if text == "" {
				continue
			}
			hash := contentHash(text)
			idToHash[c.ID] = hash
			textByID[c.ID] = text
		}
		stale := h.multi.GetMissingOrStale(label, idToHash)
		if len(stale) == 0 {
			continue
		}

		ids := make([]uint64, 0, len(stale))
		vectors := make([][]float32, 0, len(stale))
		labels := make([]string, 0, len(stale))
		hashes := make([]string, 0, len(stale))
		for _, id := range stale {
			text, ok := textByID[id]
			if !ok {
				continue
			}
			ids = append(ids, id)
			vectors = append(vectors, h.encoder.Encode(text))
			labels = append(labels, label)
			hashes = append(hashes, idToHash[id])
		}
		if len(ids) == 0 {
			continue
		}
		if err := h.multi.AddItems(ids, vectors, labels, hashes); err != nil {
			return fmt.Errorf("aspect %q: %w", label, err)
		}
	}
	return h.multi.Save()
}

// HandlePhaseSweep implements the phase-detection background task:
// runs detect_all_phases for one user (Payload.UserID), or every active
// user when it is zero, serialized per user behind phase_detect_lock.
func (h *Handlers) HandlePhaseSweep(ctx context.Context, t *asynq.Task) error {
	log := logger.LoggerFromContext(ctx)

	var payload PhaseSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("jobs: invalid phase sweep payload: %w", err)
	}

	userIDs := []uint64{payload.UserID}
	if payload.UserID == 0 {
		if err := h.db.WithContext(ctx).
			Model(&models.WatchEvent{}).
			Distinct("user_id").
			Pluck("user_id", &userIDs).Error; err != nil {
			return fmt.Errorf("jobs: loading active users: %w", err)
		}
	}

	var firstErr error
	for _, userID := range userIDs {
		lockKey := fmt.Sprintf("phase_detect_lock:%d", userID)
		lock, acquired, err := h.locks.TryAcquireLock(ctx, lockKey, 600*time.Second)
		if err != nil {
			log.Warn().Err(err).Uint64("userId", userID).Msg("jobs: phase lock acquire failed")
			continue
		}
		if !acquired {
			continue
		}
		_, err = h.phase.DetectAllPhases(ctx, userID)
		if relErr := lock.Release(ctx); relErr != nil {
			log.Warn().Err(relErr).Uint64("userId", userID).Msg("jobs: phase lock release failed")
		}
		if err != nil {
			log.Warn().Err(err).Uint64("userId", userID).Msg("jobs: phase detection failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// HandleGenerateList implements the list-generation background task:
// runs generate_chat_list off the request path and caches its result
// under the list's own id, serialized per list behind ai_list_lock so
// two concurrent triggers for the same list never both do the work.
func (h *Handlers) HandleGenerateList(ctx context.Context, t *asynq.Task) error {
	var payload GenerateListPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("jobs: invalid generate list payload: %w", err)
	}

	lockKey := fmt.Sprintf("ai_list_lock:%d", payload.ListID)
	lock, acquired, err := h.locks.TryAcquireLock(ctx, lockKey, aiListLockTTL)
	if err != nil {
		return fmt.Errorf("jobs: acquiring list lock: %w", err)
	}
	if !acquired {
		return nil
	}
	defer lock.Release(ctx)

	result, err := h.core.GenerateChatList(ctx, payload.Prompt, payload.UserID, payload.ItemLimit)
	if err != nil {
		return fmt.Errorf("jobs: generating list %d: %w", payload.ListID, err)
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("jobs: marshaling list %d result: %w", payload.ListID, err)
	}
	return h.cache.SetString(ctx, fmt.Sprintf("chat_list:%d", payload.ListID), string(b), generatedListTTL)
}

// HandleSessionCleanup implements the C13 session-cleanup background
// task named alongside index rebuild and phase detection.
func (h *Handlers) HandleSessionCleanup(ctx context.Context, _ *asynq.Task) error {
	log := logger.LoggerFromContext(ctx)
	n, err := h.trainer.ExpireStaleSessions(ctx, sessionIdleTimeout)
	if err != nil {
		return fmt.Errorf("jobs: session cleanup: %w", err)
	}
	log.Info().Int64("expired", n).Msg("jobs: session cleanup complete")
	return nil
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// baseText mirrors recommend.candidateText's free-text document, kept
// as its own small copy here since that function is unexported and
// this package only needs it for content-hashing/encoding, not scoring.
func baseText(c *models.Candidate) string {
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

// aspectText builds the per-label document C5's multi-vector index
// encodes, matching the aspect list recommend/multivector.go documents
// ("title", "keywords", "people", "brands").
func aspectText(c *models.Candidate, label string) string {
	switch label {
	case "title":
		return strings.TrimSpace(c.Title + " " + c.OriginalTitle)
	case "keywords":
		return strings.Join(c.Keywords.Slice(), " ")
	case "people":
		return strings.Join(append(append([]string{}, c.Cast...), c.Directors...), " ")
	case "brands":
		return strings.Join(append(append([]string{}, c.ProductionCompanies...), c.Networks...), " ")
	default:
		return ""
	}
}
