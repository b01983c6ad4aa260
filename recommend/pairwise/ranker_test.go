package pairwise_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/pairwise"
)

type fakeAI struct {
	ai.BaseAIClient
	response func(prompt string) string
	err      error
}

func (f *fakeAI) GenerateText(ctx context.Context, prompt string, opts *aitypes.GenerationOptions) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response(prompt), nil
}

func itemsAndSummaries(n int) ([]pairwise.ScoredItem, map[uint64]pairwise.PairItem) {
	scored := make([]pairwise.ScoredItem, n)
	summaries := make(map[uint64]pairwise.PairItem, n)
	for i := 0; i < n; i++ {
		id := uint64(i + 1)
		scored[i] = pairwise.ScoredItem{ID: id, EngineScore: 1.0 - float64(i)*0.01}
		summaries[id] = pairwise.PairItem{ID: id, Title: fmt.Sprintf("item-%d", id)}
	}
	return scored, summaries
}

// alwaysFirstWinsResponse always declares the first id in each submitted
// pair ("a" in the batch payload) the winner.
func alwaysFirstWinsResponse(prompt string) string {
	// The ranker doesn't expose how many pairs were in the batch via the
	// prompt in a structured way we want to parse here, so respond with a
	// judgments list long enough to cover the largest possible batch and
	// let the ranker match by position; unmatched entries are ignored.
	return `{"judgments":[
		{"a":1,"b":2,"winner":"a"},{"a":1,"b":3,"winner":"a"},{"a":1,"b":4,"winner":"a"},
		{"a":2,"b":3,"winner":"a"},{"a":2,"b":4,"winner":"a"},{"a":3,"b":4,"winner":"a"},
		{"a":4,"b":1,"winner":"b"},{"a":3,"b":1,"winner":"b"},{"a":2,"b":1,"winner":"b"},
		{"a":4,"b":2,"winner":"b"},{"a":4,"b":3,"winner":"b"},{"a":3,"b":2,"winner":"b"}
	]}`
}

func TestRankReordersByWinRate(t *testing.T) {
	scored, summaries := itemsAndSummaries(4)
	fake := &fakeAI{response: alwaysFirstWinsResponse}
	r := pairwise.NewRanker(fake)

	out, err := r.Rank(context.Background(), scored, summaries, 20)
	require.NoError(t, err)
	require.Len(t, out, 4)
	// item 1 always wins its pairs in the fixture responses above, so it
	// should end up ranked first regardless of its (lowest) engine score.
	assert.Equal(t, uint64(1), out[0].ID)
}

func TestRankEmptyInputReturnsNil(t *testing.T) {
	r := pairwise.NewRanker(&fakeAI{})
	out, err := r.Rank(context.Background(), nil, nil, 20)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRankAppendsUntouchedRemainderInEngineOrder(t *testing.T) {
	// maxPairs small enough that K < N: the tail beyond K must survive in
	// its original engine-score order, untouched by the tournament.
	scored, summaries := itemsAndSummaries(10)
	fake := &fakeAI{response: func(string) string { return `{"judgments":[]}` }}
	r := pairwise.NewRanker(fake)

	out, err := r.Rank(context.Background(), scored, summaries, 1)
	require.NoError(t, err)
	require.Len(t, out, 10)
	assert.Equal(t, scored[len(scored)-1].ID, out[len(out)-1].ID)
}

func TestRankToleratesBatchFailures(t *testing.T) {
	scored, summaries := itemsAndSummaries(4)
	fake := &fakeAI{err: assert.AnError}
	r := pairwise.NewRanker(fake)

	out, err := r.Rank(context.Background(), scored, summaries, 20)
	require.NoError(t, err)
	require.Len(t, out, 4)
}
