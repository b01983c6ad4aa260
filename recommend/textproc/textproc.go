// Package textproc implements the text processor (C1): turning a raw
// chat prompt into tokens, lemmas, entities, phrases, constraints, and
// other structured hints the intent extractor (C2) builds on.
package textproc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis"
)

// Constraint is one structured hint pulled out of the prompt: a numeric
// comparator ("rating >= 7.5"), a year range, or a boolean flag ("no
// adult").
type Constraint struct {
	Field      string  `json:"field"`
	Comparator string  `json:"comparator,omitempty"`
	Value      float64 `json:"value,omitempty"`
	ValueMax   float64 `json:"valueMax,omitempty"`
	Flag       bool    `json:"flag,omitempty"`
}

// Parsed is the C1 contract's output. Every field is best-effort; a
// malformed or empty prompt still produces a zero-valued Parsed rather
// than an error.
type Parsed struct {
	Normalized   string       `json:"normalized"`
	Tokens       []string     `json:"tokens"`
	Lemmas       []string     `json:"lemmas"`
	Entities     []string     `json:"entities"`
	Phrases      []string     `json:"phrases"`
	Constraints  []Constraint `json:"constraints"`
	NegativeCues []string     `json:"negativeCues"`
	Seeds        []string     `json:"seeds"`
	MediaType    string       `json:"mediaType,omitempty"`
}

var (
	showWords  = regexp.MustCompile(`(?i)\b(shows?|series|tv)\b`)
	movieWords = regexp.MustCompile(`(?i)\b(movies?|films?)\b`)

	quotedPhrase = regexp.MustCompile(`"([^"]+)"`)

	negativeCue = regexp.MustCompile(`(?i)\b(without|no|avoid|not)\s+([a-z][a-z0-9 '-]{1,40}?)(?:[,.!?]|$|\s+(?:and|or|but)\b)`)

	seedIntro = regexp.MustCompile(`(?i)\b(like|similar to)\s+(.+)$`)
	seedStop  = regexp.MustCompile(`(?i)\b(but|except|however|though|although)\b`)

	yearRange = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*(?:-|to|–)\s*(19|20)\d{2}\b`)
	afterYear = regexp.MustCompile(`(?i)\bafter\s+((?:19|20)\d{2})\b`)
	beforeYear = regexp.MustCompile(`(?i)\bbefore\s+((?:19|20)\d{2})\b`)

	numericComparator = regexp.MustCompile(`(?i)\b(rating|runtime|popularity|year)\s*(>=|<=|>|<|=)\s*(\d+(?:\.\d+)?)`)

	boolFlag = regexp.MustCompile(`(?i)\bno\s+(adult)\b`)

	capitalizedBigram = regexp.MustCompile(`\b([A-Z][a-zA-Z'-]+)\s+([A-Z][a-zA-Z'-]+)\b`)

	punctStrip = regexp.MustCompile(`[^a-z0-9.,!?\s]`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// Processor runs the C1 pipeline. The zero value is usable; it builds a
// fresh bleve analyzer (Porter stemmer + English stopword filter) on
// first use.
type Processor struct {
	analyzer *analysis.Analyzer
}

// NewProcessor builds a Processor backed by bleve's "en" analyzer
// (Porter stemmer + stopword filter, registered under analysis/lang/en),
// the same pipeline the lexical index (C6) uses for indexing, reused
// here for lemmatization so C1 and C6 never drift on what counts as a
// stem.
func NewProcessor() *Processor {
	mapping := bleve.NewIndexMapping()
	return &Processor{analyzer: mapping.AnalyzerNamed("en")}
}

// Parse implements the C1 contract. It never returns an error: a
// malformed or empty prompt yields a Parsed with empty/best-effort
// fields rather than failing the caller.
func (p *Processor) Parse(prompt string) Parsed {
	normalized := normalize(prompt)

	out := Parsed{
		Normalized: normalized,
	}
	if normalized == "" {
		return out
	}

	out.Tokens = strings.Fields(normalized)
	out.Lemmas = p.lemmatize(normalized)
	out.Entities = extractEntities(prompt)
	out.Phrases = extractPhrases(prompt)
	out.Constraints = extractConstraints(normalized)
	out.NegativeCues = extractNegativeCues(normalized)
	out.Seeds = extractSeeds(normalized)
	out.MediaType = detectMediaType(normalized)

	return out
}

// normalize lowercases, collapses whitespace, and strips punctuation
// except .,!? per spec §4.1.
func normalize(prompt string) string {
	lower := strings.ToLower(strings.TrimSpace(prompt))
	stripped := punctStrip.ReplaceAllString(lower, " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(stripped, " "))
}

func (p *Processor) lemmatize(normalized string) []string {
	if p == nil || p.analyzer == nil {
		return strings.Fields(normalized)
	}
	stream := p.analyzer.Analyze([]byte(normalized))
	out := make([]string, 0, len(stream))
	for _, t := range stream {
		if len(t.Term) > 0 {
			out = append(out, string(t.Term))
		}
	}
	return out
}

// extractEntities applies a capitalized-bigram heuristic against the
// original (non-normalized) prompt, since capitalization is the only
// signal available once stopwords/case are stripped. This is not a
// statistical NER model — no such model ships in the corpus this core
// was built against, so the heuristic stands in for it.
func extractEntities(prompt string) []string {
	matches := capitalizedBigram.FindAllStringSubmatch(prompt, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1] + " " + m[2]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func extractPhrases(prompt string) []string {
	matches := quotedPhrase.FindAllStringSubmatch(prompt, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

// extractNegativeCues finds `without X` / `no X` / `avoid X` / `not X`
// spans and returns the cue phrase with the trigger word stripped.
func extractNegativeCues(normalized string) []string {
	matches := negativeCue.FindAllStringSubmatch(normalized, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		cue := strings.TrimSpace(m[2])
		if cue == "" {
			continue
		}
		out = append(out, cue)
	}
	return out
}

// extractSeeds finds titles referenced after "like" / "similar to",
// cutting the span at the first stop token (but, except, however,
// though, although).
func extractSeeds(normalized string) []string {
	m := seedIntro.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}
	rest := m[2]
	if loc := seedStop.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	rest = strings.TrimSpace(strings.Trim(rest, ",. "))
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, " and ")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.Trim(part, ",. "))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// extractConstraints pulls numeric comparators, year ranges/bounds, and
// boolean flags out of the normalized prompt.
func extractConstraints(normalized string) []Constraint {
	var out []Constraint

	for _, m := range numericComparator.FindAllStringSubmatch(normalized, -1) {
		v, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		out = append(out, Constraint{Field: m[1], Comparator: m[2], Value: v})
	}

	if m := yearRange.FindString(normalized); m != "" {
		years := regexp.MustCompile(`(19|20)\d{2}`).FindAllString(m, 2)
		if len(years) == 2 {
			lo, _ := strconv.ParseFloat(years[0], 64)
			hi, _ := strconv.ParseFloat(years[1], 64)
			if lo > hi {
				lo, hi = hi, lo
			}
			out = append(out, Constraint{Field: "year", Comparator: "between", Value: lo, ValueMax: hi})
		}
	}
	if m := afterYear.FindStringSubmatch(normalized); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		out = append(out, Constraint{Field: "year", Comparator: ">=", Value: v})
	}
	if m := beforeYear.FindStringSubmatch(normalized); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		out = append(out, Constraint{Field: "year", Comparator: "<=", Value: v})
	}

	for _, m := range boolFlag.FindAllStringSubmatch(normalized, -1) {
		out = append(out, Constraint{Field: m[1], Flag: true})
	}

	return out
}

func detectMediaType(normalized string) string {
	isShow := showWords.MatchString(normalized)
	isMovie := movieWords.MatchString(normalized)
	switch {
	case isShow && !isMovie:
		return "show"
	case isMovie && !isShow:
		return "movie"
	default:
		return ""
	}
}
