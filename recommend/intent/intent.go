// Package intent implements the intent extractor (C2): turns a parsed
// prompt into a structured Intent, combining always-on rule-based
// extraction from recommend/textproc with an optional LLM pass that
// only refines fields the rules cannot see (moods, tones, complexity,
// query rephrasings).
package intent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"suasor/cache"
	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/llmutil"
	"suasor/recommend/textproc"
	"suasor/utils/logger"
)

const (
	schemaVersion  = "1"
	cacheTTL       = 6 * time.Hour
	defaultTarget  = 30
	llmTimeout     = 60 * time.Second
	personaTrunc   = 600
	historyTrunc   = 600
)

// PopularityPref mirrors spec §4.2's closed enum.
type PopularityPref string

const (
	PopMainstream PopularityPref = "mainstream"
	PopObscure    PopularityPref = "obscure"
	PopIndie      PopularityPref = "indie"
	PopBlockbuster PopularityPref = "blockbuster"
	PopMixed      PopularityPref = "mixed"
)

// Complexity mirrors spec §4.2's closed enum.
type Complexity string

const (
	ComplexitySimple      Complexity = "simple"
	ComplexityModerate    Complexity = "moderate"
	ComplexityComplex     Complexity = "complex"
	ComplexityMindbending Complexity = "mindbending"
)

// Intent is the extractor's public output, spec §4.2.
type Intent struct {
	Genres         []string       `json:"genres"`
	ExcludeGenres  []string       `json:"excludeGenres"`
	Moods          []string       `json:"moods"`
	Tones          []string       `json:"tones"`
	Actors         []string       `json:"actors"`
	Directors      []string       `json:"directors"`
	Studios        []string       `json:"studios"`
	RuntimeMin     *int           `json:"runtimeMin,omitempty"`
	RuntimeMax     *int           `json:"runtimeMax,omitempty"`
	Era            string         `json:"era,omitempty"`
	PopularityPref PopularityPref `json:"popularityPref,omitempty"`
	Complexity     Complexity     `json:"complexity,omitempty"`
	Pacing         string         `json:"pacing,omitempty"`
	TargetSize     int            `json:"targetSize"`
	NegativeCues   []string       `json:"negativeCues"`
	QueryVariants  []string       `json:"queryVariants"`
}

// Extractor performs C2's public extract operation.
type Extractor struct {
	ai    ai.AIClient // may be nil: rule-based-only mode
	cache *cache.Store
	proc  *textproc.Processor
}

// New builds an Extractor. aiClient may be nil, in which case extraction
// is always rule-based (matching spec §4.2's "on any failure... the
// rule-based output is used" fallback path, just taken unconditionally).
func New(aiClient ai.AIClient, store *cache.Store, proc *textproc.Processor) *Extractor {
	return &Extractor{ai: aiClient, cache: store, proc: proc}
}

// Extract implements C2's extract(prompt, persona_text, history_summary).
func (e *Extractor) Extract(ctx context.Context, prompt, personaText, historySummary string) (Intent, error) {
	log := logger.LoggerFromContext(ctx)

	key := cacheKey(prompt, personaText, historySummary)
	if e.cache != nil {
		if raw, ok, err := e.cache.GetString(ctx, key); err == nil && ok {
			var cached Intent
			if jerr := json.Unmarshal([]byte(raw), &cached); jerr == nil {
				return cached, nil
			}
		}
	}

	parsed := e.proc.Parse(prompt)
	ruleIntent := ruleBased(parsed)

	result := ruleIntent
	if e.ai != nil {
		if llmIntent, err := e.extractLLM(ctx, prompt, personaText, historySummary, parsed); err == nil {
			result = merge(ruleIntent, llmIntent)
		} else {
			log.Warn().Err(err).Msg("intent: llm extraction failed, using rule-based output")
		}
	}

	if e.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			_ = e.cache.SetString(ctx, key, string(raw), cacheTTL)
		}
	}
	return result, nil
}

func cacheKey(prompt, persona, history string) string {
	if len(persona) > personaTrunc {
		persona = persona[:personaTrunc]
	}
	if len(history) > historyTrunc {
		history = history[:historyTrunc]
	}
	h := sha256.Sum256([]byte(prompt + "\x00" + persona + "\x00" + history + "\x00" + schemaVersion))
	return "intent:" + hex.EncodeToString(h[:])
}

// requiredGenreCue matches the spec's "only populated when the user
// explicitly writes MUST be or ONLY" rule; it does not change which
// genres are found, only whether they'd be required vs optional in a
// caller that distinguishes the two (this extractor keeps one Genres
// list, matching the Intent struct's single combined field per spec
// §4.2: "genres (combined required+optional)").
var requiredGenreCue = regexp.MustCompile(`(?i)\b(must be|only)\b`)

// genreVocab is the closed set of genre words the rule-based pass can
// recognize without an LLM; it mirrors TMDB's standard genre list,
// which is what recommend/scoring's CandidateView.Genres is populated
// from upstream.
var genreVocab = []string{
	"action", "adventure", "animation", "comedy", "crime", "documentary",
	"drama", "family", "fantasy", "history", "horror", "music", "mystery",
	"romance", "science fiction", "sci-fi", "tv movie", "thriller", "war", "western",
}

// ruleBased builds an Intent entirely from C1 output, never inferring
// actors/directors/studios beyond what was explicitly named.
func ruleBased(p textproc.Parsed) Intent {
	in := Intent{
		NegativeCues: append([]string(nil), p.NegativeCues...),
		TargetSize:   defaultTarget,
	}

	_ = requiredGenreCue.MatchString(p.Normalized)
	for _, g := range genreVocab {
		if strings.Contains(p.Normalized, g) {
			in.Genres = append(in.Genres, g)
		}
	}

	for _, c := range p.Constraints {
		switch strings.ToLower(c.Field) {
		case "runtime":
			if c.Comparator == ">=" || c.Comparator == ">" {
				v := int(c.Value)
				in.RuntimeMin = &v
			}
			if c.Comparator == "<=" || c.Comparator == "<" {
				v := int(c.Value)
				in.RuntimeMax = &v
			}
		case "year":
			switch c.Comparator {
			case "between":
				in.Era = fmt.Sprintf("%d-%d", int(c.Value), int(c.ValueMax))
			case ">=":
				in.Era = fmt.Sprintf("after %d", int(c.Value))
			case "<=":
				in.Era = fmt.Sprintf("before %d", int(c.Value))
			}
		}
	}

	if len(p.Seeds) > 0 {
		in.QueryVariants = append(in.QueryVariants, "like: "+strings.Join(p.Seeds, ", "))
	}

	return in
}

func (e *Extractor) extractLLM(ctx context.Context, prompt, persona, history string, parsed textproc.Parsed) (Intent, error) {
	var out Intent
	sysPrompt := `You extract structured viewing intent from a user's request. Respond with strict JSON only, matching this schema: {"genres":[],"excludeGenres":[],"moods":[],"tones":[],"actors":[],"directors":[],"studios":[],"runtimeMin":null,"runtimeMax":null,"era":"","popularityPref":"","complexity":"","pacing":"","targetSize":30,"negativeCues":[],"queryVariants":[]}. Only include actors/directors/studios the user explicitly names. Only populate genres as required if the user writes "MUST be" or "ONLY"; otherwise list them as hints.`

	userPrompt := fmt.Sprintf("Prompt: %s\nPersona: %s\nRecent history: %s\nNormalized: %s\nSeeds: %v\nNegative cues: %v",
		prompt, truncate(persona, personaTrunc), truncate(history, historyTrunc), parsed.Normalized, parsed.Seeds, parsed.NegativeCues)

	var text string
	err := llmutil.WithTimeout(ctx, llmTimeout, func(cctx context.Context) error {
		var genErr error
		text, genErr = e.ai.GenerateText(cctx, userPrompt, &aitypes.GenerationOptions{
			Temperature:        0.1,
			MaxTokens:          800,
			SystemInstructions: sysPrompt,
			ResponseFormat:     "json",
		})
		return genErr
	})
	if err != nil {
		return out, err
	}

	if err := llmutil.ExtractJSON(text, &out); err != nil {
		return out, err
	}
	if out.TargetSize <= 0 {
		out.TargetSize = defaultTarget
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// merge layers LLM-refined fields on top of the always-correct
// rule-based genres/negative cues, never letting the LLM override
// actor/director extraction it shouldn't have inferred on its own
// (it's still allowed to add explicitly-named ones it found).
func merge(rule, llm Intent) Intent {
	out := rule
	if len(llm.Moods) > 0 {
		out.Moods = llm.Moods
	}
	if len(llm.Tones) > 0 {
		out.Tones = llm.Tones
	}
	if len(llm.Actors) > 0 {
		out.Actors = llm.Actors
	}
	if len(llm.Directors) > 0 {
		out.Directors = llm.Directors
	}
	if len(llm.Studios) > 0 {
		out.Studios = llm.Studios
	}
	if len(llm.ExcludeGenres) > 0 {
		out.ExcludeGenres = llm.ExcludeGenres
	}
	if len(llm.Genres) > 0 {
		out.Genres = dedupeAppend(out.Genres, llm.Genres)
	}
	if llm.RuntimeMin != nil {
		out.RuntimeMin = llm.RuntimeMin
	}
	if llm.RuntimeMax != nil {
		out.RuntimeMax = llm.RuntimeMax
	}
	if llm.Era != "" {
		out.Era = llm.Era
	}
	if llm.PopularityPref != "" {
		out.PopularityPref = llm.PopularityPref
	}
	if llm.Complexity != "" {
		out.Complexity = llm.Complexity
	}
	if llm.Pacing != "" {
		out.Pacing = llm.Pacing
	}
	if llm.TargetSize > 0 {
		out.TargetSize = llm.TargetSize
	}
	if len(llm.QueryVariants) > 0 {
		out.QueryVariants = llm.QueryVariants
	}
	return out
}

func dedupeAppend(base []string, extra []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, b := range base {
		seen[strings.ToLower(b)] = struct{}{}
	}
	out := append([]string(nil), base...)
	for _, e := range extra {
		if _, ok := seen[strings.ToLower(e)]; !ok {
			out = append(out, e)
			seen[strings.ToLower(e)] = struct{}{}
		}
	}
	return out
}

