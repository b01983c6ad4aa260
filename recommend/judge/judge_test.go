package judge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suasor/client/ai"
	aitypes "suasor/client/ai/types"
	"suasor/recommend/judge"
)

type fakeAI struct {
	ai.BaseAIClient
	response string
	err      error
}

func (f *fakeAI) GenerateText(ctx context.Context, prompt string, opts *aitypes.GenerationOptions) (string, error) {
	return f.response, f.err
}

func TestJudgeParsesValidResponse(t *testing.T) {
	fake := &fakeAI{response: `{"scores":[{"id":1,"score":0.8,"reasons":["on topic","good mood fit"]},{"id":2,"score":1.4,"reasons":["bad"]}]}`}
	j := judge.New(fake, nil)

	results := j.Judge(context.Background(), "space adventure", []judge.Item{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, "", "")
	require.Contains(t, results, uint64(1))
	assert.InDelta(t, 0.8, results[1].Score, 1e-9)
	assert.NotContains(t, results, uint64(2), "out-of-range score must be discarded")
}

func TestJudgeBatchFailureYieldsEmptyScoresNotError(t *testing.T) {
	fake := &fakeAI{err: assert.AnError}
	j := judge.New(fake, nil)

	results := j.Judge(context.Background(), "query", []judge.Item{{ID: 1}}, "", "")
	assert.Empty(t, results)
}

func TestJudgeBatchesLargeItemLists(t *testing.T) {
	fake := &fakeAI{response: `{"scores":[{"id":1,"score":0.5,"reasons":[]}]}`}
	j := judge.New(fake, nil)

	items := make([]judge.Item, 12)
	for i := range items {
		items[i] = judge.Item{ID: uint64(i + 1)}
	}
	results := j.Judge(context.Background(), "q", items, "", "")
	assert.NotEmpty(t, results)
}
