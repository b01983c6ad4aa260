// Package vectorindex implements the primary vector index (C4): a
// single approximate-nearest-neighbor index over all active candidate
// base embeddings, backed by github.com/coder/hnsw and persisted
// atomically to disk.
package vectorindex

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/coder/hnsw"
	"github.com/gofrs/flock"

	"suasor/recommend/vecmath"
	"suasor/utils/logger"
)

// Hit is one search result: a candidate ID and a similarity monotonic
// in cosine, per spec §4.4.
type Hit struct {
	ID         uint64
	Similarity float64
}

// Index wraps a coder/hnsw graph keyed by candidate ID, guarded by a
// RWMutex for in-process concurrent reads and a file lock for
// cross-process exclusive persistence, matching spec §5's "one
// exclusive writer, many concurrent readers" model.
//
// vectors duplicates what the graph already holds, keyed the same way,
// so Save/Load don't depend on coder/hnsw exposing a full-enumeration
// API: it is the single source of truth for persistence, and the graph
// is rebuilt from it on Load.
type Index struct {
	mu   sync.RWMutex
	path string

	graph   *hnsw.Graph[uint64]
	vectors map[uint64][]float32
}

// New builds an empty Index. path is the on-disk snapshot location;
// Load reads an existing snapshot from the same path.
func New(path string) *Index {
	g := hnsw.NewGraph[uint64]()
	g.Distance = hnsw.CosineDistance
	return &Index{path: path, graph: g, vectors: make(map[uint64][]float32)}
}

// Build replaces the index contents with vectors/ids wholesale, used by
// the periodic rebuild job.
func (idx *Index) Build(ctx context.Context, vectors [][]float32, ids []uint64) error {
	if len(vectors) != len(ids) {
		return fmt.Errorf("vectorindex: %d vectors but %d ids", len(vectors), len(ids))
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()

	g := hnsw.NewGraph[uint64]()
	g.Distance = hnsw.CosineDistance
	nodes := make([]hnsw.Node[uint64], len(ids))
	vecByID := make(map[uint64][]float32, len(ids))
	for i, id := range ids {
		v := vecmath.Normalize(vectors[i])
		nodes[i] = hnsw.MakeNode(id, v)
		vecByID[id] = v
	}
	g.Add(nodes...)
	idx.graph = g
	idx.vectors = vecByID

	logger.LoggerFromContext(ctx).Info().Int("count", len(ids)).Msg("vectorindex: rebuilt")
	return nil
}

// Append adds vectors/ids to the existing index without a full rebuild.
func (idx *Index) Append(vectors [][]float32, ids []uint64) error {
	if len(vectors) != len(ids) {
		return fmt.Errorf("vectorindex: %d vectors but %d ids", len(vectors), len(ids))
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()

	nodes := make([]hnsw.Node[uint64], len(ids))
	for i, id := range ids {
		v := vecmath.Normalize(vectors[i])
		nodes[i] = hnsw.MakeNode(id, v)
		idx.vectors[id] = v
	}
	idx.graph.Add(nodes...)
	return nil
}

// Remove drops a candidate from the index, used when a catalog row goes
// inactive.
func (idx *Index) Remove(id uint64) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.vectors, id)
	return idx.graph.Delete(id)
}

// Search returns the k nearest candidates to queryVec, similarity
// descending.
func (idx *Index) Search(queryVec []float32, k int) []Hit {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.graph.Len() == 0 {
		return nil
	}
	neighbors := idx.graph.Search(vecmath.Normalize(queryVec), k)
	out := make([]Hit, len(neighbors))
	for i, n := range neighbors {
		out[i] = Hit{ID: n.Key, Similarity: vecmath.Cosine(queryVec, n.Value)}
	}
	return out
}

// Vector returns the stored (normalized) vector for id, used by C12's
// fit scorer to compare a candidate's base embedding against a user's
// recent items without a second round-trip through search.
func (idx *Index) Vector(id uint64) ([]float32, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	v, ok := idx.vectors[id]
	return v, ok
}

// Len reports the number of vectors currently indexed.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.graph.Len()
}

// snapshot is the on-disk gob-encoded form of the index: parallel
// id/vector slices, independent of coder/hnsw's internal graph layout
// so a persisted index can be rebuilt under a different library version.
type snapshot struct {
	IDs     []uint64
	Vectors [][]float32
}

// Save atomically persists the index to idx.path: write to a temp file
// in the same directory, fsync, then rename over the target, under an
// exclusive flock so only one writer can do this at a time, per spec
// §4.4/§5.
func (idx *Index) Save() (err error) {
	idx.mu.RLock()
	ids, vectors := idx.snapshotLocked()
	idx.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(idx.path), 0o755); err != nil {
		return fmt.Errorf("vectorindex: mkdir: %w", err)
	}

	lockPath := idx.path + ".lock"
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return fmt.Errorf("vectorindex: acquiring writer lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("vectorindex: another writer holds %s", lockPath)
	}
	defer fl.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snapshot{IDs: ids, Vectors: vectors}); err != nil {
		return fmt.Errorf("vectorindex: encoding snapshot: %w", err)
	}

	tmp := idx.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("vectorindex: writing temp snapshot: %w", err)
	}
	if err := os.Rename(tmp, idx.path); err != nil {
		return fmt.Errorf("vectorindex: renaming snapshot into place: %w", err)
	}
	return nil
}

func (idx *Index) snapshotLocked() ([]uint64, [][]float32) {
	ids := make([]uint64, 0, len(idx.vectors))
	vectors := make([][]float32, 0, len(idx.vectors))
	for id, v := range idx.vectors {
		ids = append(ids, id)
		vectors = append(vectors, v)
	}
	return ids, vectors
}

// Load reads a previously Saved snapshot from path, rebuilding the
// in-memory graph from it. A missing file is not an error: the caller
// gets an empty index, matching first-run behavior.
func Load(ctx context.Context, path string) (*Index, error) {
	idx := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vectorindex: reading snapshot: %w", err)
	}

	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("vectorindex: decoding snapshot: %w", err)
	}
	if err := idx.Build(ctx, snap.Vectors, snap.IDs); err != nil {
		return nil, err
	}
	return idx, nil
}
