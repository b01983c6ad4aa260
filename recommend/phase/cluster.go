package phase

import (
	"fmt"
	"math"
)

// noiseLabel marks a point HDBSCANApprox/KMeansSilhouette assign to no
// cluster (dropped below minClusterSize, or the empty k-means bucket
// that never happens in practice but is handled defensively).
const noiseLabel = -1

// HDBSCANApprox approximates HDBSCAN's `min_samples=1,
// cluster_selection_epsilon=0.1` behavior spec §4.15 step 3 names: at
// min_samples=1, HDBSCAN's cluster assignment at a fixed epsilon cut
// coincides with single-linkage connectivity at that same distance
// threshold, so a union-find over all pairs within epsilon reproduces it
// without vendoring a clustering library absent from this corpus (see
// DESIGN.md). Clusters smaller than minClusterSize are relabeled noise,
// matching HDBSCAN's min_cluster_size semantics.
func HDBSCANApprox(vectors [][]float32, minClusterSize int, epsilon float64) ([]int, error) {
	n := len(vectors)
	if n < 2 {
		return nil, fmt.Errorf("phase: hdbscan approx requires at least 2 points, got %d", n)
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if euclidean(vectors[i], vectors[j]) <= epsilon {
				uf.union(i, j)
			}
		}
	}

	labels := make([]int, n)
	rootToLabel := make(map[int]int)
	next := 0
	for i := 0; i < n; i++ {
		root := uf.find(i)
		label, ok := rootToLabel[root]
		if !ok {
			label = next
			rootToLabel[root] = label
			next++
		}
		labels[i] = label
	}

	counts := make(map[int]int, next)
	for _, l := range labels {
		counts[l]++
	}
	for i, l := range labels {
		if counts[l] < minClusterSize {
			labels[i] = noiseLabel
		}
	}
	return labels, nil
}

// KMeansSilhouette is the fallback spec §4.15 step 3 names for when
// HDBSCAN "fails" (here: too few points to form any epsilon-connected
// cluster). It runs Lloyd's algorithm for every k in [kMin, kMax] and
// keeps the k with the best mean silhouette score. Initialization is
// deterministic (evenly spaced indices, not random restarts) so
// detect_all_phases run twice over unchanged history reproduces the
// same member sets, per spec §8's idempotence property.
func KMeansSilhouette(vectors [][]float32, kMin, kMax int) ([]int, error) {
	n := len(vectors)
	if n < 2 {
		return nil, fmt.Errorf("phase: kmeans requires at least 2 points, got %d", n)
	}
	if kMax > n-1 {
		kMax = n - 1
	}
	if kMax < kMin {
		kMax = kMin
	}
	if kMin < 1 {
		kMin = 1
	}

	bestScore := math.Inf(-1)
	var bestLabels []int
	for k := kMin; k <= kMax; k++ {
		if k > n {
			continue
		}
		labels, ok := kmeans(vectors, k)
		if !ok {
			continue
		}
		score := silhouette(vectors, labels)
		if score > bestScore {
			bestScore = score
			bestLabels = labels
		}
	}
	if bestLabels == nil {
		return nil, fmt.Errorf("phase: kmeans found no valid clustering for k in [%d,%d]", kMin, kMax)
	}
	return bestLabels, nil
}

const kmeansIterations = 25

func kmeans(vectors [][]float32, k int) ([]int, bool) {
	n := len(vectors)
	if k < 1 || k > n {
		return nil, false
	}
	if k == 1 {
		labels := make([]int, n)
		return labels, true
	}

	centroids := make([][]float64, k)
	step := n / k
	for c := 0; c < k; c++ {
		idx := c * step
		if idx >= n {
			idx = n - 1
		}
		centroids[c] = toFloat64(vectors[idx])
	}

	labels := make([]int, n)
	for iter := 0; iter < kmeansIterations; iter++ {
		changed := false
		for i, v := range vectors {
			best, bestDist := 0, math.Inf(1)
			fv := toFloat64(v)
			for c, centroid := range centroids {
				d := euclidean64(fv, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		dim := len(vectors[0])
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, v := range vectors {
			c := labels[i]
			counts[c]++
			for d, x := range v {
				sums[c][d] += float64(x)
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range centroids[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}
	return labels, true
}

// silhouette computes the mean silhouette coefficient over all points;
// higher is better. Returns -1 (worst possible) if every point is
// alone in its cluster, so that configuration never wins over a
// multi-point clustering.
func silhouette(vectors [][]float32, labels []int) float64 {
	n := len(vectors)
	members := make(map[int][]int)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	if len(members) < 2 {
		return -1
	}

	var total float64
	for i := range vectors {
		own := labels[i]
		a := meanDist(vectors, i, members[own], true)

		b := math.Inf(1)
		for l, idxs := range members {
			if l == own {
				continue
			}
			d := meanDist(vectors, i, idxs, false)
			if d < b {
				b = d
			}
		}

		s := 0.0
		switch {
		case len(members[own]) <= 1:
			s = 0
		case a < b:
			s = 1 - a/b
		case a > b:
			s = b/a - 1
		}
		total += s
	}
	return total / float64(n)
}

func meanDist(vectors [][]float32, i int, others []int, excludeSelf bool) float64 {
	sum, count := 0.0, 0
	for _, j := range others {
		if excludeSelf && j == i {
			continue
		}
		sum += euclidean(vectors[i], vectors[j])
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func euclidean(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func euclidean64(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// unionFind is a standard disjoint-set with path compression and
// union-by-rank, used to materialize HDBSCANApprox's epsilon-connectivity
// graph into cluster labels.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
