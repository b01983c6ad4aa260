// Package judge implements the LLM judge (C9): optional absolute
// rescoring of candidates in small batches against a fixed rubric, never
// failing the overall pipeline on an LLM error.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"suasor/cache"
	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/llmutil"
	"suasor/utils/logger"
)

const (
	defaultBatchSize   = 5
	judgeTimeout       = 90 * time.Second
	targetCalibration  = 0.70
	reasonCacheTTL     = time.Hour
	overviewTrunc      = 180
)

// Item is the compact candidate summary sent to the judge, spec §4.9's
// field list.
type Item struct {
	ID         uint64   `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	MediaType  string   `json:"mediaType"`
	Genres     []string `json:"genres"`
	Keywords   []string `json:"keywords"`
	Overview   string   `json:"overview"`
	People     []string `json:"people"`
	Studio     string   `json:"studio"`
	Network    string   `json:"network"`
	Rating     float64  `json:"rating"`
	Votes      int      `json:"votes"`
	Popularity float64  `json:"popularity"`
	Language   string   `json:"language"`
	Runtime    int      `json:"runtime"`
}

// Result is one judged candidate.
type Result struct {
	Score   float64
	Reasons []string
}

// rubric is the fixed weighted scoring rubric spec §4.9 names; it is
// sent to the model as guidance text, not computed locally (the judge's
// score is whatever the LLM returns, clamped to [0,1]).
var rubric = []struct {
	Name   string
	Weight float64
}{
	{"on_topic_fit", 0.45},
	{"mood_season_fit", 0.25},
	{"genre_language_runtime", 0.10},
	{"quality_signal", 0.10},
	{"constraints", 0.05},
	{"user_profile_fit", 0.05},
}

// Judge performs C9's judge operation.
type Judge struct {
	ai        ai.AIClient
	cache     *cache.Store
	batchSize int
}

// New builds a Judge. aiClient must not be nil; a nil Judge (via the
// caller simply not invoking it) is how this optional rescoring stage
// is skipped.
func New(aiClient ai.AIClient, store *cache.Store) *Judge {
	return &Judge{ai: aiClient, cache: store, batchSize: defaultBatchSize}
}

type scoreResponse struct {
	Scores []struct {
		ID      uint64   `json:"id"`
		Score   float64  `json:"score"`
		Reasons []string `json:"reasons"`
	} `json:"scores"`
}

// Judge runs the batched rescoring of spec §4.9, returning a map from
// candidate id to Result. A batch that fails (timeout, HTTP error,
// unparseable response) simply contributes no entries; it never returns
// an error to the caller.
func (j *Judge) Judge(ctx context.Context, querySummary string, items []Item, persona, historySummary string) map[uint64]Result {
	log := logger.LoggerFromContext(ctx)
	out := make(map[uint64]Result, len(items))

	for start := 0; start < len(items); start += j.batchSize {
		end := start + j.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		scores, err := j.judgeBatch(ctx, querySummary, batch, persona, historySummary)
		if err != nil {
			log.Warn().Err(err).Int("batchStart", start).Msg("judge: batch failed, yielding no scores for it")
			continue
		}
		for id, r := range scores {
			out[id] = r
		}
	}
	return out
}

func (j *Judge) judgeBatch(ctx context.Context, querySummary string, batch []Item, persona, historySummary string) (map[uint64]Result, error) {
	itemsJSON, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("judge: marshaling batch: %w", err)
	}

	var rubricDesc strings.Builder
	for _, r := range rubric {
		fmt.Fprintf(&rubricDesc, "%s=%.2f ", r.Name, r.Weight)
	}

	sysPrompt := fmt.Sprintf(
		`You are a recommendation judge. Score each candidate in [0,1] against this weighted rubric: %s. A well-matching item should score near %.2f. Respond with strict JSON only: {"scores":[{"id":0,"score":0.0,"reasons":["...","..."]}]}. Use at most 2 short reasons per item.`,
		rubricDesc.String(), targetCalibration,
	)
	userPrompt := fmt.Sprintf("Query: %s\nPersona: %s\nHistory: %s\nCandidates: %s", querySummary, persona, historySummary, string(itemsJSON))

	var text string
	err = llmutil.WithTimeout(ctx, judgeTimeout, func(cctx context.Context) error {
		var genErr error
		text, genErr = j.ai.GenerateText(cctx, userPrompt, &aitypes.GenerationOptions{
			Temperature:        0.0,
			MaxTokens:          1200,
			SystemInstructions: sysPrompt,
			ResponseFormat:     "json",
		})
		return genErr
	})
	if err != nil {
		return nil, err
	}

	var resp scoreResponse
	if err := llmutil.ExtractJSON(text, &resp); err != nil {
		return nil, fmt.Errorf("judge: invalid response: %w", err)
	}

	out := make(map[uint64]Result, len(resp.Scores))
	for _, s := range resp.Scores {
		if s.Score < 0 || s.Score > 1 {
			continue
		}
		reasons := s.Reasons
		if len(reasons) > 2 {
			reasons = reasons[:2]
		}
		out[s.ID] = Result{Score: s.Score, Reasons: reasons}
		if j.cache != nil && len(reasons) > 0 {
			key := reasonCacheKey(querySummary, s.ID)
			if raw, err := json.Marshal(reasons); err == nil {
				_ = j.cache.SetString(ctx, key, string(raw), reasonCacheTTL)
			}
		}
	}
	return out, nil
}

func reasonCacheKey(querySummary string, id uint64) string {
	return fmt.Sprintf("judge:reasons:%x:%d", hashString(querySummary), id)
}

func hashString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
