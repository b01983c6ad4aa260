// Package pairwise implements the pairwise ranker (C10) and pairwise
// trainer (C13): LLM tournament reordering of a scored list's top-K, and
// the session lifecycle that turns individual A/B judgments into
// immediate preference-vector and interpretable-weight updates.
package pairwise

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/llmutil"
	"suasor/utils/logger"
)

const (
	maxK            = 60
	defaultMaxPairs = 400
	pairsPerItem    = 8
	batchSize       = 12
	rankerTimeout   = 60 * time.Second
)

// ScoredItem is one engine-scored candidate entering the ranker.
type ScoredItem struct {
	ID          uint64
	EngineScore float64
}

// PairItem is the compact per-candidate summary sent to the LLM for
// tournament judgments, spec §4.10's up-to-24-field list.
type PairItem struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Year          int      `json:"year"`
	MediaType     string   `json:"mediaType"`
	Genres        []string `json:"genres"`
	Keywords      []string `json:"keywords"`
	Plot          string   `json:"plot"`
	Tagline       string   `json:"tagline"`
	Cast          []string `json:"cast"`
	Studio        string   `json:"studio"`
	Network       string   `json:"network"`
	Rating        float64  `json:"rating"`
	Votes         int      `json:"votes"`
	Popularity    float64  `json:"popularity"`
	Language      string   `json:"language"`
	Runtime       int      `json:"runtime"`
	Certification string   `json:"certification"`
	Status        string   `json:"status"`
	SeasonCount   int      `json:"seasonCount"`
	EpisodeCount  int      `json:"episodeCount"`
	ObscurityScore float64 `json:"obscurityScore"`
}

// Pair is one unordered candidate comparison.
type Pair struct {
	A, B uint64
}

// Ranker performs C10's LLM tournament reordering.
type Ranker struct {
	ai ai.AIClient
}

// NewRanker builds a Ranker.
func NewRanker(aiClient ai.AIClient) *Ranker {
	return &Ranker{ai: aiClient}
}

// Rank implements spec §4.10's full algorithm: reorders the top-K of
// scored (already engine-score sorted, descending) by LLM win rate,
// appending the untouched remainder in its original engine order.
// itemByID supplies the compact summary for each candidate id touched by
// the tournament.
func (r *Ranker) Rank(ctx context.Context, scored []ScoredItem, itemByID map[uint64]PairItem, maxPairs int) ([]ScoredItem, error) {
	if maxPairs <= 0 {
		maxPairs = defaultMaxPairs
	}
	if len(scored) == 0 {
		return nil, nil
	}

	k := topK(len(scored), maxPairs)
	top := scored[:k]
	rest := scored[k:]

	pairs := sampleWeightedPairs(top, minInt(maxPairs, k*pairsPerItem))

	wins := make(map[uint64]float64)
	played := make(map[uint64]int)

	for start := 0; start < len(pairs); start += batchSize {
		end := start + batchSize
		if end > len(pairs) {
			end = len(pairs)
		}
		batch := pairs[start:end]

		judgments, err := r.judgeBatch(ctx, batch, itemByID)
		if err != nil {
			logger.LoggerFromContext(ctx).Warn().Err(err).Msg("pairwise: ranker batch failed, skipping")
			continue
		}
		for _, j := range judgments {
			switch j.Winner {
			case "a":
				wins[j.A] += 1
				played[j.A]++
				played[j.B]++
			case "b":
				wins[j.B] += 1
				played[j.A]++
				played[j.B]++
			case "tie":
				wins[j.A] += 0.5
				wins[j.B] += 0.5
				played[j.A]++
				played[j.B]++
			default: // "skip" or malformed: not counted as played
			}
		}
	}

	reordered := make([]ScoredItem, len(top))
	copy(reordered, top)
	sort.SliceStable(reordered, func(i, j int) bool {
		return winRate(reordered[i].ID, wins, played) > winRate(reordered[j].ID, wins, played)
	})

	out := append(reordered, rest...)
	return out, nil
}

func winRate(id uint64, wins map[uint64]float64, played map[uint64]int) float64 {
	p := played[id]
	if p == 0 {
		return 0
	}
	return wins[id] / float64(p)
}

// topK implements spec §4.10 step 1: K = min(60, N, largest n such that
// n(n-1)/2 <= max_pairs).
func topK(n, maxPairs int) int {
	k := n
	if k > maxK {
		k = maxK
	}
	largest := int((1 + math.Sqrt(1+8*float64(maxPairs))) / 2)
	if largest < k {
		k = largest
	}
	if k < 0 {
		k = 0
	}
	return k
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// sampleWeightedPairs implements spec §4.10 step 2: a weighted
// (with-replacement, deduped) pair sample, per-item probability
// proportional to (engine_score + 0.1), target unique pairs = target.
func sampleWeightedPairs(items []ScoredItem, target int) []Pair {
	n := len(items)
	if n < 2 || target <= 0 {
		return nil
	}

	weights := make([]float64, n)
	var total float64
	for i, it := range items {
		w := it.EngineScore + 0.1
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(n)
	}

	maxPairs := n * (n - 1) / 2
	if target > maxPairs {
		target = maxPairs
	}

	rng := rand.New(rand.NewSource(1))
	seen := make(map[[2]int]struct{})
	var pairs []Pair
	attempts := 0
	maxAttempts := target * 20
	for len(pairs) < target && attempts < maxAttempts {
		attempts++
		i := weightedIndex(rng, weights, total)
		j := weightedIndex(rng, weights, total)
		if i == j {
			continue
		}
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		key := [2]int{lo, hi}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, Pair{A: items[lo].ID, B: items[hi].ID})
	}
	return pairs
}

func weightedIndex(rng *rand.Rand, weights []float64, total float64) int {
	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r <= cum {
			return i
		}
	}
	return len(weights) - 1
}

type judgment struct {
	A, B   uint64
	Winner string
}

type judgeResponse struct {
	Judgments []struct {
		A      uint64 `json:"a"`
		B      uint64 `json:"b"`
		Winner string `json:"winner"`
	} `json:"judgments"`
}

func (r *Ranker) judgeBatch(ctx context.Context, batch []Pair, itemByID map[uint64]PairItem) ([]judgment, error) {
	type pairPayload struct {
		A PairItem `json:"a"`
		B PairItem `json:"b"`
	}
	payload := make([]pairPayload, len(batch))
	for i, p := range batch {
		payload[i] = pairPayload{A: itemByID[p.A], B: itemByID[p.B]}
	}
	itemsJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("pairwise: marshaling batch: %w", err)
	}

	sysPrompt := `You judge head-to-head media comparisons. For each pair decide which item (a or b) better fits a typical strong recommendation, or "tie" if indistinguishable, or "skip" if you cannot judge. Respond with strict JSON only: {"judgments":[{"a":0,"b":0,"winner":"a|b|tie|skip"}]}.`
	userPrompt := string(itemsJSON)

	var text string
	err = llmutil.WithTimeout(ctx, rankerTimeout, func(cctx context.Context) error {
		var genErr error
		text, genErr = r.ai.GenerateText(cctx, userPrompt, &aitypes.GenerationOptions{
			Temperature:        0.0,
			MaxTokens:          1000,
			SystemInstructions: sysPrompt,
			ResponseFormat:     "json",
		})
		return genErr
	})
	if err != nil {
		return nil, err
	}

	var resp judgeResponse
	if err := llmutil.ExtractJSON(text, &resp); err != nil {
		return nil, fmt.Errorf("pairwise: invalid response: %w", err)
	}

	out := make([]judgment, 0, len(resp.Judgments))
	for _, j := range resp.Judgments {
		out = append(out, judgment{A: j.A, B: j.B, Winner: j.Winner})
	}
	return out, nil
}
