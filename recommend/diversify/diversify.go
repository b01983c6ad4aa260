// Package diversify implements the diversifier (C11): maximal marginal
// relevance selection over scored candidates, trading off relevance
// against novelty relative to items already chosen.
package diversify

import (
	"suasor/recommend/vecmath"
)

// Item is one candidate entering MMR selection: an opaque key, its base
// relevance score, and the vector used to measure similarity to other
// items (either a TF-IDF vector or an embedding, caller's choice).
type Item struct {
	Key       uint64
	Relevance float64
	Vector    []float32
}

// Select runs MMR over items and returns up to limit keys ordered by
// selection order (most relevant-yet-novel first). lambda balances
// relevance (1.0) against novelty (0.0); spec §4.11 defaults it to 0.7.
func Select(items []Item, limit int, lambda float64) []uint64 {
	if limit <= 0 || len(items) == 0 {
		return nil
	}
	if limit > len(items) {
		limit = len(items)
	}

	remaining := make([]Item, len(items))
	copy(remaining, items)

	selected := make([]uint64, 0, limit)
	selectedVectors := make([][]float32, 0, limit)

	for len(selected) < limit && len(remaining) > 0 {
		bestIdx := -1
		bestScore := 0.0

		for i, cand := range remaining {
			novelty := 0.0
			for _, sv := range selectedVectors {
				sim := vecmath.Cosine(cand.Vector, sv)
				if sim > novelty {
					novelty = sim
				}
			}
			mmr := lambda*cand.Relevance - (1-lambda)*novelty
			if bestIdx == -1 || mmr > bestScore {
				bestIdx = i
				bestScore = mmr
			}
		}

		chosen := remaining[bestIdx]
		selected = append(selected, chosen.Key)
		selectedVectors = append(selectedVectors, chosen.Vector)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}
