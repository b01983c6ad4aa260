// Package phase implements the viewing-phase detector (C15): clusters a
// user's watch history into 14-day windows, clusters each window over
// candidate base embeddings, and turns qualifying clusters into labeled,
// scored ViewingPhase rows. It also predicts the user's next phase from
// recent pairwise feedback or, failing that, from the tail of their
// history.
package phase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"suasor/cache"
	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/history"
	"suasor/recommend/llmutil"
	"suasor/recommend/vecmath"
	"suasor/recommend/vectorindex"
	"suasor/types/models"
	"suasor/utils/logger"
)

const (
	windowSize           = 14 * 24 * time.Hour
	minClusterSize       = 2
	clusterEpsilon       = 0.1
	kmeansKMin           = 2
	kmeansKMaxCap        = 4
	phaseScoreThreshold  = 0.35
	activeScoreThreshold = 0.55
	activeRecencyWindow  = 14 * 24 * time.Hour
	franchiseMinFraction = 0.40
	existenceOverlap     = 0.60
	lockTTL              = 10 * time.Minute
	labelTimeout         = 60 * time.Second
	defaultLookbackDays  = 42

	weightCohesion  = 0.35
	weightDensity   = 0.25
	weightFranchise = 0.20
	weightThematic  = 0.20
)

const franchiseIcon = "🎬"
const defaultIcon = "🎞️"

// genreEmoji is the fallback icon map for non-franchise phase labels,
// carried verbatim from original_source/backend/app/services/phase_detector.py's
// GENRE_EMOJI_MAP (spec §4.15 names the field but not its contents; see
// DESIGN.md's Open Question decision).
var genreEmoji = map[string]string{
	"science fiction": "🚀", "sci-fi": "🚀", "space": "🌌",
	"thriller": "🧨", "horror": "👻", "comedy": "😂", "romance": "❤️",
	"action": "💥", "adventure": "🗺️", "drama": "🎭", "fantasy": "🧙",
	"mystery": "🔍", "crime": "🕵️", "documentary": "📹", "animation": "🎨",
	"family": "👨‍👩‍👧", "war": "⚔️", "western": "🤠", "music": "🎵", "history": "📜",
}

// genericKeywords are keyword tags too vague to anchor a phase label on
// (credits-stinger markers, franchise-shape descriptors that say
// nothing about content); the rule-based labeler falls through to
// dominant genres when the top keyword is one of these.
var genericKeywords = map[string]bool{
	"sequel": true, "remake": true, "standalone": true,
	"duringcreditsstinger": true, "aftercreditsstinger": true,
	"based on novel or book": true,
}

// CandidateLookup resolves candidate metadata by the same id convention
// recommend/profile's CandidateLookup and recommend/vectorindex use
// (models.Candidate.ID, the primary key), so phase, profile, and the
// dense index all share one catalog-repository adapter in the app layer.
type CandidateLookup interface {
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Candidate, error)
}

// EmbeddingLookup resolves a candidate's stored base embedding by
// candidate id.
type EmbeddingLookup interface {
	Vector(id uint64) ([]float32, bool)
}

// Detector implements C15.
type Detector struct {
	db         *gorm.DB
	history    history.Store
	candidates CandidateLookup
	embeddings EmbeddingLookup
	dense      *vectorindex.Index
	ai         ai.AIClient
	cache      *cache.Store
}

// New builds a Detector. dense and ai may be nil: predict_next_phase's
// pairwise-search path degrades to genre/keyword aggregation without a
// dense index, and phase labeling falls back to the rule-based labeler
// without an LLM client.
func New(db *gorm.DB, h history.Store, candidates CandidateLookup, embeddings EmbeddingLookup, dense *vectorindex.Index, aiClient ai.AIClient, store *cache.Store) *Detector {
	return &Detector{db: db, history: h, candidates: candidates, embeddings: embeddings, dense: dense, ai: aiClient, cache: store}
}

func lockKey(userID uint64) string { return fmt.Sprintf("phase_detect_lock:%d", userID) }

// DetectAllPhases implements detect_all_phases(user): spec §4.15 steps
// 1-7. It runs under the per-user `phase_detect_lock:<user>` lease
// (spec §5) so two concurrent callers never recompute at once.
func (d *Detector) DetectAllPhases(ctx context.Context, userID uint64) ([]models.ViewingPhase, error) {
	log := logger.LoggerFromContext(ctx)

	if d.cache != nil {
		lock, ok, err := d.cache.TryAcquireLock(ctx, lockKey(userID), lockTTL)
		if err != nil {
			return nil, fmt.Errorf("phase: acquiring lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("phase: detection already running for user %d", userID)
		}
		defer func() { _ = lock.Release(ctx) }()
	}

	stats, err := d.history.GetWatchStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("phase: watch stats: %w", err)
	}
	if stats.TotalWatched == 0 {
		return nil, nil
	}

	now := time.Now()
	windows := splitWindows(stats.Earliest, stats.Latest, windowSize, now)

	var detected []models.ViewingPhase
	for _, w := range windows {
		phases, err := d.detectWindow(ctx, userID, w.start, w.end, now)
		if err != nil {
			log.Warn().Err(err).Uint64("userId", userID).Time("windowStart", w.start).Msg("phase: window detection failed, skipping")
			continue
		}
		detected = append(detected, phases...)
	}

	for i := range detected {
		if err := d.upsert(ctx, &detected[i]); err != nil {
			log.Warn().Err(err).Msg("phase: persisting phase failed")
		}
	}

	if err := d.closeStale(ctx, userID, now); err != nil {
		log.Warn().Err(err).Msg("phase: close-stale pass failed")
	}

	var all []models.ViewingPhase
	if err := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_at asc").Find(&all).Error; err != nil {
		return detected, fmt.Errorf("phase: reloading phases: %w", err)
	}
	return all, nil
}

type timeWindow struct{ start, end time.Time }

// splitWindows cuts [earliest, latest] into non-overlapping 14-day
// windows up to now, per spec §4.15 step 1.
func splitWindows(earliest, latest time.Time, size time.Duration, now time.Time) []timeWindow {
	if latest.Before(earliest) {
		latest = earliest
	}
	if now.After(latest) {
		latest = now
	}
	var out []timeWindow
	for start := earliest; start.Before(latest); start = start.Add(size) {
		end := start.Add(size)
		if end.After(now) {
			end = now
		}
		if !end.After(start) {
			break
		}
		out = append(out, timeWindow{start, end})
	}
	return out
}

// detectWindow implements spec §4.15 steps 2-4 for one 14-day window.
func (d *Detector) detectWindow(ctx context.Context, userID uint64, start, end, now time.Time) ([]models.ViewingPhase, error) {
	events, err := d.history.GetEventsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	type embedded struct {
		event models.WatchEvent
		vec   []float32
	}
	var items []embedded
	if d.embeddings != nil {
		for _, e := range events {
			if v, ok := d.embeddings.Vector(e.CandidateID); ok {
				items = append(items, embedded{event: e, vec: v})
			}
		}
	}
	if len(items) < 2 {
		return nil, nil
	}

	vectors := make([][]float32, len(items))
	for i, it := range items {
		vectors[i] = it.vec
	}

	labels, err := HDBSCANApprox(vectors, minClusterSize, clusterEpsilon)
	if err != nil {
		kMax := kmeansKMaxCap
		if kMax > len(items)-1 {
			kMax = len(items) - 1
		}
		labels, err = KMeansSilhouette(vectors, kmeansKMin, kMax)
		if err != nil {
			return nil, fmt.Errorf("phase: clustering window: %w", err)
		}
	}

	clusters := make(map[int][]int)
	for i, l := range labels {
		if l == noiseLabel {
			continue
		}
		clusters[l] = append(clusters[l], i)
	}

	var out []models.ViewingPhase
	for _, idxs := range clusters {
		members := make([]models.WatchEvent, len(idxs))
		memberVecs := make([][]float32, len(idxs))
		for i, idx := range idxs {
			members[i] = items[idx].event
			memberVecs[i] = items[idx].vec
		}

		phase, err := d.buildPhase(ctx, userID, members, memberVecs, start, end, len(items), now)
		if err != nil || phase == nil {
			continue
		}
		out = append(out, *phase)
	}
	return out, nil
}

// buildPhase computes a cluster's metrics (spec §4.15 step 4), rejects
// it below the score floor, and labels it (step 5).
func (d *Detector) buildPhase(ctx context.Context, userID uint64, members []models.WatchEvent, vecs [][]float32, windowStart, windowEnd time.Time, windowItemCount int, now time.Time) (*models.ViewingPhase, error) {
	cohesion := cohesionOf(vecs)
	density := 0.0
	if windowItemCount > 0 {
		density = float64(len(members)) / float64(windowItemCount)
	}

	genreCounts := make(map[string]int)
	keywordCounts := make(map[string]int)
	candidateIDs := make([]uint64, len(members))
	for i, m := range members {
		candidateIDs[i] = m.CandidateID
		for g := range m.Genres {
			genreCounts[g]++
		}
		for k := range m.Keywords {
			keywordCounts[k]++
		}
	}

	var candMeta map[uint64]*models.Candidate
	if d.candidates != nil {
		candMeta, _ = d.candidates.GetByIDs(ctx, candidateIDs)
	}

	collectionCounts := make(map[string]int)
	collectionNames := make(map[string]string)
	for _, m := range members {
		if c, ok := candMeta[m.CandidateID]; ok && c.CollectionID != "" {
			collectionCounts[c.CollectionID]++
			collectionNames[c.CollectionID] = c.CollectionName
		}
	}

	dominantGenres := topKeys(genreCounts, 3)
	dominantKeywords := topKeys(keywordCounts, 5)
	thematicConsistency := fractionOfMode(genreCounts, len(members))

	franchiseID, franchiseCount := modeKey(collectionCounts)
	franchiseDominance := 0.0
	if len(members) > 0 {
		franchiseDominance = float64(franchiseCount) / float64(len(members))
	}

	phaseScore := weightCohesion*cohesion + weightDensity*density +
		weightFranchise*franchiseDominance + weightThematic*thematicConsistency
	if phaseScore < phaseScoreThreshold {
		return nil, nil
	}

	recent := !windowEnd.Before(now.Add(-activeRecencyWindow))
	var phaseType models.PhaseType
	var endAt *time.Time
	switch {
	case phaseScore >= activeScoreThreshold && recent:
		phaseType = models.PhaseActive
	case recent:
		phaseType = models.PhaseMinor
		e := windowEnd
		endAt = &e
	default:
		phaseType = models.PhaseHistorical
		e := windowEnd
		endAt = &e
	}

	var label, icon, explanation string
	isFranchise := franchiseID != "" && franchiseDominance >= franchiseMinFraction
	if isFranchise {
		name := collectionNames[franchiseID]
		if name == "" {
			name = franchiseID
		}
		label = name + " Phase"
		icon = franchiseIcon
		explanation = fmt.Sprintf("Dominated by the %s collection (%.0f%% of watched items in this window).", name, franchiseDominance*100)
	} else {
		label, icon, explanation = d.label(ctx, members, candMeta, dominantGenres, dominantKeywords)
	}

	posters := representativePosters(members, 3)

	members64 := make(models.Uint64Slice, len(candidateIDs))
	copy(members64, candidateIDs)

	return &models.ViewingPhase{
		UserID:                userID,
		Label:                 label,
		Icon:                  icon,
		StartAt:               windowStart,
		EndAt:                 endAt,
		Members:               members64,
		DominantGenres:        dominantGenres,
		DominantKeywords:      dominantKeywords,
		FranchiseID:           franchiseIDOrEmpty(isFranchise, franchiseID),
		FranchiseName:         franchiseNameOrEmpty(isFranchise, collectionNames[franchiseID]),
		Cohesion:              cohesion,
		WatchDensity:          density,
		FranchiseDominance:    franchiseDominance,
		ThematicConsistency:   thematicConsistency,
		PhaseScore:            phaseScore,
		PhaseType:             phaseType,
		Explanation:           explanation,
		RepresentativePosters: posters,
	}, nil
}

func franchiseIDOrEmpty(isFranchise bool, id string) string {
	if isFranchise {
		return id
	}
	return ""
}

func franchiseNameOrEmpty(isFranchise bool, name string) string {
	if isFranchise {
		return name
	}
	return ""
}

// cohesionOf is the mean pairwise cosine within a cluster; singletons
// score 1.0 per spec §8's boundary-behavior invariant.
func cohesionOf(vecs [][]float32) float64 {
	if len(vecs) <= 1 {
		return 1.0
	}
	sum, n := 0.0, 0
	for i := 0; i < len(vecs); i++ {
		for j := i + 1; j < len(vecs); j++ {
			sum += vecmath.Cosine(vecs[i], vecs[j])
			n++
		}
	}
	if n == 0 {
		return 1.0
	}
	return sum / float64(n)
}

func fractionOfMode(counts map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	_, mode := modeKey(counts)
	return float64(mode) / float64(total)
}

// modeKey returns the most frequent key and its count, breaking ties on
// key ordering so the result is deterministic.
func modeKey(counts map[string]int) (string, int) {
	var bestKey string
	bestCount := 0
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if counts[k] > bestCount {
			bestCount = counts[k]
			bestKey = k
		}
	}
	return bestKey, bestCount
}

func topKeys(counts map[string]int, n int) []string {
	type kv struct {
		k string
		v int
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

func representativePosters(members []models.WatchEvent, n int) []string {
	var out []string
	for _, m := range members {
		if m.PosterPath == "" {
			continue
		}
		out = append(out, m.PosterPath)
		if len(out) >= n {
			break
		}
	}
	return out
}

func mediaTypeSuffix(members []models.WatchEvent) string {
	counts := map[models.MediaType]int{}
	for _, m := range members {
		counts[m.MediaType]++
	}
	if counts[models.MediaTypeShow] > counts[models.MediaTypeMovie] {
		return "Shows"
	}
	return "Movies"
}

func iconForGenres(genres []string) string {
	for _, g := range genres {
		if icon, ok := genreEmoji[strings.ToLower(g)]; ok {
			return icon
		}
	}
	return defaultIcon
}

// label implements spec §4.15 step 5's non-franchise labeling: an LLM
// call given up to three representative items plus the user persona,
// falling back to the rule-based top-keyword-or-genres labeler on any
// LLM failure.
func (d *Detector) label(ctx context.Context, members []models.WatchEvent, candMeta map[uint64]*models.Candidate, dominantGenres, dominantKeywords []string) (label, icon, explanation string) {
	suffix := mediaTypeSuffix(members)
	icon = iconForGenres(dominantGenres)

	if d.ai != nil {
		if l, ic, ex, err := d.llmLabel(ctx, members, candMeta); err == nil {
			return l, ic, ex
		}
	}
	return ruleBasedLabel(dominantGenres, dominantKeywords, suffix, icon)
}

func ruleBasedLabel(dominantGenres, dominantKeywords []string, suffix, icon string) (string, string, string) {
	var base string
	if len(dominantKeywords) > 0 && !genericKeywords[strings.ToLower(dominantKeywords[0])] {
		base = strings.Title(dominantKeywords[0])
	} else if len(dominantGenres) > 0 {
		n := 2
		if len(dominantGenres) < n {
			n = len(dominantGenres)
		}
		base = strings.Join(dominantGenres[:n], " & ")
	} else {
		base = "Mixed"
	}
	label := fmt.Sprintf("%s %s", base, suffix)
	explanation := fmt.Sprintf("Clustered around %s.", strings.ToLower(base))
	return label, icon, explanation
}

type representativeItem struct {
	Title    string   `json:"title"`
	Year     int      `json:"year,omitempty"`
	Genres   []string `json:"genres,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Overview string   `json:"overview,omitempty"`
}

type labelResponse struct {
	Label       string `json:"label"`
	Explanation string `json:"explanation"`
	Icon        string `json:"icon"`
}

func (d *Detector) llmLabel(ctx context.Context, members []models.WatchEvent, candMeta map[uint64]*models.Candidate) (label, icon, explanation string, err error) {
	reps := make([]representativeItem, 0, 3)
	for _, m := range members {
		if len(reps) >= 3 {
			break
		}
		item := representativeItem{Title: m.Title, Year: m.Year, Genres: m.Genres.Slice(), Keywords: m.Keywords.Slice(), Overview: truncate(m.Overview, 160)}
		if c, ok := candMeta[m.CandidateID]; ok {
			if len(c.Genres) > 0 {
				item.Genres = c.Genres.Slice()
			}
			if len(c.Keywords) > 0 {
				item.Keywords = c.Keywords.Slice()
			}
		}
		reps = append(reps, item)
	}

	var itemsJSON strings.Builder
	for i, r := range reps {
		if i > 0 {
			itemsJSON.WriteString("; ")
		}
		fmt.Fprintf(&itemsJSON, "%s (%d) [%s]", r.Title, r.Year, strings.Join(r.Genres, ","))
	}

	sysPrompt := `You label a cluster of watched titles as a "viewing phase". Respond with strict JSON only: {"label":"3-6 words","explanation":"1-2 sentences","icon":"single emoji"}.`
	userPrompt := fmt.Sprintf("Representative items: %s", itemsJSON.String())

	var text string
	callErr := llmutil.WithTimeout(ctx, labelTimeout, func(cctx context.Context) error {
		var genErr error
		text, genErr = d.ai.GenerateText(cctx, userPrompt, &aitypes.GenerationOptions{
			Temperature:        0.2,
			MaxTokens:          200,
			SystemInstructions: sysPrompt,
			ResponseFormat:     "json",
		})
		return genErr
	})
	if callErr != nil {
		return "", "", "", callErr
	}

	var resp labelResponse
	if err := llmutil.ExtractJSON(text, &resp); err != nil {
		return "", "", "", err
	}
	if resp.Label == "" {
		return "", "", "", fmt.Errorf("phase: llm label empty")
	}
	if resp.Icon == "" {
		resp.Icon = defaultIcon
	}
	return resp.Label, resp.Icon, resp.Explanation, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// upsert implements spec §4.15 step 6: update an existing overlapping,
// ≥60%-shared-membership phase in place, otherwise insert a new one.
func (d *Detector) upsert(ctx context.Context, p *models.ViewingPhase) error {
	var existing []models.ViewingPhase
	if err := d.db.WithContext(ctx).Where("user_id = ?", p.UserID).Find(&existing).Error; err != nil {
		return fmt.Errorf("phase: loading existing phases: %w", err)
	}

	newEnd := p.StartAt
	if p.EndAt != nil {
		newEnd = *p.EndAt
	} else {
		newEnd = time.Now()
	}
	newSet := toSet(p.Members)

	for i := range existing {
		e := &existing[i]
		eEnd := e.StartAt
		if e.EndAt != nil {
			eEnd = *e.EndAt
		} else {
			eEnd = time.Now()
		}
		if !overlaps(e.StartAt, eEnd, p.StartAt, newEnd) {
			continue
		}
		if overlapFraction(toSet(e.Members), newSet) < existenceOverlap {
			continue
		}

		e.Label = p.Label
		e.Icon = p.Icon
		e.EndAt = p.EndAt
		e.Members = p.Members
		e.DominantGenres = p.DominantGenres
		e.DominantKeywords = p.DominantKeywords
		e.FranchiseID = p.FranchiseID
		e.FranchiseName = p.FranchiseName
		e.Cohesion = p.Cohesion
		e.WatchDensity = p.WatchDensity
		e.FranchiseDominance = p.FranchiseDominance
		e.ThematicConsistency = p.ThematicConsistency
		e.PhaseScore = p.PhaseScore
		e.PhaseType = p.PhaseType
		e.Explanation = p.Explanation
		e.RepresentativePosters = p.RepresentativePosters
		return d.db.WithContext(ctx).Save(e).Error
	}

	return d.db.WithContext(ctx).Create(p).Error
}

func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func toSet(ids models.Uint64Slice) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// overlapFraction divides shared membership by the smaller set's size,
// per DESIGN.md's Open Question decision on the ambiguous "shares ≥60%"
// denominator.
func overlapFraction(a, b map[uint64]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for id := range small {
		if _, ok := big[id]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(small))
}

// closeStale implements spec §4.15 step 7: an active phase whose
// members have no watches in the last 14 days is closed.
func (d *Detector) closeStale(ctx context.Context, userID uint64, now time.Time) error {
	var actives []models.ViewingPhase
	if err := d.db.WithContext(ctx).Where("user_id = ? AND end_at IS NULL", userID).Find(&actives).Error; err != nil {
		return fmt.Errorf("phase: loading active phases: %w", err)
	}

	for i := range actives {
		p := &actives[i]
		last, err := d.lastWatchAmong(ctx, userID, p.Members)
		if err != nil {
			continue
		}
		if last.IsZero() || now.Sub(last) > activeRecencyWindow {
			end := now.Add(-activeRecencyWindow)
			p.EndAt = &end
			p.PhaseType = models.PhaseHistorical
			if err := d.db.WithContext(ctx).Save(p).Error; err != nil {
				return fmt.Errorf("phase: closing stale phase %d: %w", p.ID, err)
			}
		}
	}
	return nil
}

func (d *Detector) lastWatchAmong(ctx context.Context, userID uint64, candidateIDs models.Uint64Slice) (time.Time, error) {
	if len(candidateIDs) == 0 {
		return time.Time{}, nil
	}
	var latest *time.Time
	row := d.db.WithContext(ctx).Model(&models.WatchEvent{}).
		Where("user_id = ? AND candidate_id IN ?", userID, []uint64(candidateIDs)).
		Select("MAX(watched_at)").Row()
	if err := row.Scan(&latest); err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return time.Time{}, nil
	}
	return *latest, nil
}

// CurrentPhase returns the user's open (end_at nil) active phase, if any.
func (d *Detector) CurrentPhase(ctx context.Context, userID uint64) (*models.ViewingPhase, error) {
	var p models.ViewingPhase
	err := d.db.WithContext(ctx).
		Where("user_id = ? AND end_at IS NULL AND phase_type = ?", userID, models.PhaseActive).
		Order("phase_score desc").First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("phase: current phase: %w", err)
	}
	return &p, nil
}

// Prediction is predict_next_phase's non-persisted output.
type Prediction struct {
	Genres       []string
	Keywords     []string
	CandidateIDs []uint64
	Source       string // "pairwise" or "cluster"
}

// PredictNextPhase implements predict_next_phase(user, lookback_days):
// tries pairwise-judgment-based prediction first, falling back to
// clustering the lookback window, per spec §4.15's closing paragraph.
func (d *Detector) PredictNextPhase(ctx context.Context, userID uint64, lookbackDays int) (*Prediction, error) {
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}
	lookback := time.Duration(lookbackDays) * 24 * time.Hour

	if pred, err := d.predictFromPairwise(ctx, userID, lookback); err == nil && pred != nil {
		return pred, nil
	}
	return d.predictFromClustering(ctx, userID, lookback)
}

func (d *Detector) predictFromPairwise(ctx context.Context, userID uint64, lookback time.Duration) (*Prediction, error) {
	if d.candidates == nil {
		return nil, nil
	}
	since := time.Now().Add(-lookback)

	var sessions []models.PairwiseSession
	if err := d.db.WithContext(ctx).Where("user_id = ? AND started_at >= ?", userID, since).Find(&sessions).Error; err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	sessionIDs := make([]uint64, len(sessions))
	for i, s := range sessions {
		sessionIDs[i] = s.ID
	}

	var judgments []models.PairwiseJudgment
	if err := d.db.WithContext(ctx).Where("session_id IN ?", sessionIDs).Find(&judgments).Error; err != nil {
		return nil, err
	}

	var winnerIDs []uint64
	for _, j := range judgments {
		switch j.Winner {
		case models.WinnerA:
			winnerIDs = append(winnerIDs, j.CandidateA)
		case models.WinnerB:
			winnerIDs = append(winnerIDs, j.CandidateB)
		case models.WinnerBoth:
			winnerIDs = append(winnerIDs, j.CandidateA, j.CandidateB)
		}
	}
	if len(winnerIDs) == 0 {
		return nil, nil
	}

	winners, err := d.candidates.GetByIDs(ctx, winnerIDs)
	if err != nil || len(winners) == 0 {
		return nil, nil
	}

	genreCounts := make(map[string]int)
	keywordCounts := make(map[string]int)
	var vectors [][]float32
	for id, c := range winners {
		for g := range c.Genres {
			genreCounts[g]++
		}
		for k := range c.Keywords {
			keywordCounts[k]++
		}
		if d.embeddings != nil {
			if v, ok := d.embeddings.Vector(id); ok {
				vectors = append(vectors, v)
			}
		}
	}

	pred := &Prediction{Genres: topKeys(genreCounts, 5), Keywords: topKeys(keywordCounts, 8), Source: "pairwise"}
	if d.dense != nil && len(vectors) > 0 {
		query := vecmath.Normalize(vecmath.Mean(vectors))
		hits := d.dense.Search(query, 20)
		ids := make([]uint64, len(hits))
		for i, h := range hits {
			ids[i] = h.ID
		}
		pred.CandidateIDs = ids
	}
	if len(pred.Genres) == 0 && len(pred.CandidateIDs) == 0 {
		return nil, nil
	}
	return pred, nil
}

func (d *Detector) predictFromClustering(ctx context.Context, userID uint64, lookback time.Duration) (*Prediction, error) {
	stats, err := d.history.GetWatchStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("phase: predict clustering stats: %w", err)
	}
	if stats.TotalWatched == 0 {
		return nil, nil
	}

	now := time.Now()
	start := now.Add(-lookback)
	if start.Before(stats.Earliest) {
		start = stats.Earliest
	}

	events, err := d.history.GetEventsInRange(ctx, userID, start, now)
	if err != nil {
		return nil, fmt.Errorf("phase: predict clustering events: %w", err)
	}

	genreCounts := make(map[string]int)
	keywordCounts := make(map[string]int)
	var vectors [][]float32
	candidateIDs := make([]uint64, 0, len(events))
	for _, e := range events {
		for g := range e.Genres {
			genreCounts[g]++
		}
		for k := range e.Keywords {
			keywordCounts[k]++
		}
		if d.embeddings != nil {
			if v, ok := d.embeddings.Vector(e.CandidateID); ok {
				vectors = append(vectors, v)
				candidateIDs = append(candidateIDs, e.CandidateID)
			}
		}
	}
	if len(genreCounts) == 0 && len(keywordCounts) == 0 {
		return nil, nil
	}

	var ids []uint64
	if len(vectors) >= 2 {
		kMax := kmeansKMaxCap
		if kMax > len(vectors)-1 {
			kMax = len(vectors) - 1
		}
		labels, err := KMeansSilhouette(vectors, kmeansKMin, kMax)
		if err == nil {
			biggest := largestCluster(labels)
			for i, l := range labels {
				if l == biggest {
					ids = append(ids, candidateIDs[i])
				}
			}
		}
	}

	return &Prediction{
		Genres:       topKeys(genreCounts, 5),
		Keywords:     topKeys(keywordCounts, 8),
		CandidateIDs: ids,
		Source:       "cluster",
	}, nil
}

func largestCluster(labels []int) int {
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	best, bestCount := 0, -1
	for l, c := range counts {
		if c > bestCount {
			bestCount = c
			best = l
		}
	}
	return best
}
