// Package multivector implements the multi-vector index (C5): several
// labeled aspect vectors per candidate (title, keywords, people, brands,
// ...), each label backed by its own github.com/coder/hnsw graph, sharing
// vectorindex's atomic-persist pattern.
package multivector

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/coder/hnsw"
	"github.com/gofrs/flock"

	"suasor/recommend/vecmath"
)

// Hit is one per-label search result.
type Hit struct {
	CandidateID uint64
	Similarity  float64
}

// PosItem is the reverse-map result for positions_to_items: which
// candidate and which aspect label a stored position belongs to.
type PosItem struct {
	CandidateID uint64
	Label       string
}

// entry is one (label, content-hash) record for a candidate, plus the
// position assigned to it in that label's graph.
type entry struct {
	Pos   uint64
	Label string
	Hash  string
}

// Index holds items[id].entries[] and the reverse pos->(id,label) map
// spec §4.5 names, on top of one hnsw graph per label.
type Index struct {
	mu   sync.RWMutex
	path string

	nextPos uint64
	graphs  map[string]*hnsw.Graph[uint64]  // label -> graph, keyed by pos
	vectors map[string]map[uint64][]float32 // label -> pos -> vector, persistence source of truth
	items   map[uint64][]entry              // candidate id -> entries
	reverse map[uint64]PosItem              // pos -> (id, label)
}

// New builds an empty multi-vector Index persisted at path.
func New(path string) *Index {
	return &Index{
		path:    path,
		graphs:  make(map[string]*hnsw.Graph[uint64]),
		vectors: make(map[string]map[uint64][]float32),
		items:   make(map[uint64][]entry),
		reverse: make(map[uint64]PosItem),
	}
}

func (idx *Index) graphFor(label string) *hnsw.Graph[uint64] {
	g, ok := idx.graphs[label]
	if !ok {
		g = hnsw.NewGraph[uint64]()
		g.Distance = hnsw.CosineDistance
		idx.graphs[label] = g
		idx.vectors[label] = make(map[uint64][]float32)
	}
	return g
}

// AddItems implements add_items(ids, vectors, labels, hashes): one
// (id, vector, label, hash) quadruple per call site row. A prior entry
// for the same (id, label) is evicted from its graph before the new one
// is added, so re-adding after a content change never leaves a stale
// vector searchable.
func (idx *Index) AddItems(ids []uint64, vectors [][]float32, labels []string, hashes []string) error {
	if len(ids) != len(vectors) || len(ids) != len(labels) || len(ids) != len(hashes) {
		return fmt.Errorf("multivector: mismatched slice lengths")
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()

	for i, id := range ids {
		label := labels[i]
		idx.evictLocked(id, label)

		g := idx.graphFor(label)
		pos := idx.nextPos
		idx.nextPos++

		v := vecmath.Normalize(vectors[i])
		g.Add(hnsw.MakeNode(pos, v))
		idx.vectors[label][pos] = v

		idx.items[id] = append(idx.items[id], entry{Pos: pos, Label: label, Hash: hashes[i]})
		idx.reverse[pos] = PosItem{CandidateID: id, Label: label}
	}
	return nil
}

// evictLocked removes any existing entry for (id, label) from its graph
// and both maps. Caller must hold idx.mu.
func (idx *Index) evictLocked(id uint64, label string) {
	entries := idx.items[id]
	kept := entries[:0]
	for _, e := range entries {
		if e.Label == label {
			if g, ok := idx.graphs[label]; ok {
				g.Delete(e.Pos)
			}
			delete(idx.vectors[label], e.Pos)
			delete(idx.reverse, e.Pos)
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		delete(idx.items, id)
	} else {
		idx.items[id] = kept
	}
}

// Search runs an ANN query against one aspect label's graph.
func (idx *Index) Search(label string, query []float32, k int) []Hit {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	g, ok := idx.graphs[label]
	if !ok || g.Len() == 0 {
		return nil
	}
	neighbors := g.Search(vecmath.Normalize(query), k)
	out := make([]Hit, len(neighbors))
	for i, n := range neighbors {
		out[i] = Hit{CandidateID: idx.reverse[n.Key].CandidateID, Similarity: vecmath.Cosine(query, n.Value)}
	}
	return out
}

// GetMissingOrStale implements get_missing_or_stale(id→hash) for one
// label: an id is returned if it has no entry for that label, or its
// stored hash differs from the one the caller now computes for it.
func (idx *Index) GetMissingOrStale(label string, idToHash map[uint64]string) []uint64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var stale []uint64
	for id, hash := range idToHash {
		found := false
		for _, e := range idx.items[id] {
			if e.Label == label {
				found = true
				if e.Hash != hash {
					stale = append(stale, id)
				}
				break
			}
		}
		if !found {
			stale = append(stale, id)
		}
	}
	return stale
}

// PositionsToItems implements positions_to_items(positions).
func (idx *Index) PositionsToItems(positions []uint64) []PosItem {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]PosItem, 0, len(positions))
	for _, p := range positions {
		if item, ok := idx.reverse[p]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Labels returns the aspect labels currently populated, used by callers
// that need to iterate every aspect for a multi-vector fit score.
func (idx *Index) Labels() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, 0, len(idx.graphs))
	for l := range idx.graphs {
		out = append(out, l)
	}
	return out
}

// snapshot is the on-disk gob-encoded form, independent of coder/hnsw's
// internal layout so a persisted index survives a library version bump,
// matching vectorindex.snapshot's approach.
type snapshot struct {
	NextPos uint64
	Labels  []string
	IDs     [][]uint64
	Poss    [][]uint64
	Vecs    [][][]float32
	Items   map[uint64][]entry
}

// Save atomically persists the index under a single exclusive writer
// lock, temp file + rename, identical to vectorindex.Index.Save.
func (idx *Index) Save() (err error) {
	idx.mu.RLock()
	snap := idx.snapshotLocked()
	idx.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(idx.path), 0o755); err != nil {
		return fmt.Errorf("multivector: mkdir: %w", err)
	}

	lockPath := idx.path + ".lock"
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("multivector: acquiring writer lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("multivector: another writer holds %s", lockPath)
	}
	defer fl.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return fmt.Errorf("multivector: encoding snapshot: %w", err)
	}

	tmp := idx.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("multivector: writing temp snapshot: %w", err)
	}
	return os.Rename(tmp, idx.path)
}

func (idx *Index) snapshotLocked() snapshot {
	snap := snapshot{NextPos: idx.nextPos, Items: idx.items}
	for label, vecs := range idx.vectors {
		snap.Labels = append(snap.Labels, label)
		ids := make([]uint64, 0, len(vecs))
		vs := make([][]float32, 0, len(vecs))
		for pos, v := range vecs {
			ids = append(ids, pos)
			vs = append(vs, v)
		}
		snap.Poss = append(snap.Poss, ids)
		snap.Vecs = append(snap.Vecs, vs)
	}
	return snap
}

// Load reads a previously Saved snapshot, rebuilding the in-memory
// graphs from it. A missing file yields an empty index.
func Load(path string) (*Index, error) {
	idx := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("multivector: reading snapshot: %w", err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("multivector: decoding snapshot: %w", err)
	}

	idx.nextPos = snap.NextPos
	idx.items = snap.Items
	if idx.items == nil {
		idx.items = make(map[uint64][]entry)
	}
	idx.reverse = make(map[uint64]PosItem)
	for id, entries := range idx.items {
		for _, e := range entries {
			idx.reverse[e.Pos] = PosItem{CandidateID: id, Label: e.Label}
		}
	}

	for i, label := range snap.Labels {
		g := idx.graphFor(label)
		poss := snap.Poss[i]
		vecs := snap.Vecs[i]
		nodes := make([]hnsw.Node[uint64], len(poss))
		for j, pos := range poss {
			nodes[j] = hnsw.MakeNode(pos, vecs[j])
			idx.vectors[label][pos] = vecs[j]
		}
		g.Add(nodes...)
	}
	return idx, nil
}
