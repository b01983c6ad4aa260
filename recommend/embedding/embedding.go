// Package embedding implements the embedding service (C3): turning
// candidate or query text into unit-norm 384-dim vectors.
//
// No sentence-transformer runtime is available in this environment, so
// Service is backed by a deterministic feature-hashing encoder rather
// than a model client — see DESIGN.md. Everything downstream depends on
// the Encoder interface, not this concrete type, so a real model-backed
// client can replace it without touching callers.
package embedding

import (
	"hash/fnv"
	"strings"

	"suasor/recommend/vecmath"
)

// Encoder is the C3 contract: encode(text) -> vec, encode_batch(texts) ->
// matrix. Implementations are stateless apart from whatever model state
// they lazily load.
type Encoder interface {
	Encode(text string) []float32
	EncodeBatch(texts []string) [][]float32
}

// Service is the deterministic feature-hashing Encoder. It hashes word
// unigrams and character trigrams into Dim signed buckets (the hashing
// trick), sums them, and L2-normalizes the result. Identical input always
// produces an identical vector, satisfying the round-trip property spec
// §8 requires of the embedding contract.
type Service struct {
	dim int
}

// NewService builds a Service producing vectors of the given dimension.
// dim should match config's recommend.embeddingDim (384 by default).
func NewService(dim int) *Service {
	if dim <= 0 {
		dim = vecmath.Dim
	}
	return &Service{dim: dim}
}

// Encode implements Encoder.
func (s *Service) Encode(text string) []float32 {
	v := make([]float32, s.dim)
	for _, feat := range features(text) {
		bucket, sign := hashFeature(feat, s.dim)
		v[bucket] += sign
	}
	return vecmath.Normalize(v)
}

// EncodeBatch implements Encoder.
func (s *Service) EncodeBatch(texts []string) [][]float32 {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = s.Encode(t)
	}
	return out
}

// features splits text into lowercase word tokens and 3-character
// trigrams within each token, giving the hash both a word-level and a
// sub-word (misspelling/inflection tolerant) signal.
func features(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	feats := make([]string, 0, len(words)*4)
	for _, w := range words {
		feats = append(feats, "w:"+w)
		padded := "^" + w + "$"
		for i := 0; i+3 <= len(padded); i++ {
			feats = append(feats, "t:"+padded[i:i+3])
		}
	}
	return feats
}

// hashFeature maps a feature string onto a bucket in [0,dim) and a sign
// in {-1,+1}, the standard two-hash feature-hashing trick that keeps the
// hashed representation an unbiased estimator of the original dot
// product in expectation.
func hashFeature(feat string, dim int) (int, float32) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(feat))
	bucketHash := h.Sum32()

	h2 := fnv.New32a()
	_, _ = h2.Write([]byte("sign:" + feat))
	signHash := h2.Sum32()

	bucket := int(bucketHash % uint32(dim))
	if signHash%2 == 0 {
		return bucket, 1
	}
	return bucket, -1
}
