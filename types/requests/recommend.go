package requests

import "suasor/types/models"

// GenerateChatListRequest is generate_chat_list's request body.
type GenerateChatListRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	ItemLimit int    `json:"itemLimit"`
}

// HybridSearchRequest is hybrid_search's query parameters.
type HybridSearchRequest struct {
	Query     string `form:"query" binding:"required"`
	MediaType string `form:"mediaType"`
	Limit     int    `form:"limit"`
}

// CreatePairwiseSessionRequest is create_pairwise_session's request body.
type CreatePairwiseSessionRequest struct {
	Prompt   string   `json:"prompt"`
	ListType string   `json:"listType"`
	Pool     []uint64 `json:"pool" binding:"required"`
}

// SubmitJudgmentRequest is submit_judgment's request body.
type SubmitJudgmentRequest struct {
	CandidateA     uint64                `json:"candidateA" binding:"required"`
	CandidateB     uint64                `json:"candidateB" binding:"required"`
	Winner         models.PairwiseWinner `json:"winner" binding:"required"`
	ResponseTimeMs int                   `json:"responseTimeMs"`
}
