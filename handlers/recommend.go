package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"suasor/recommend"
	coreerrors "suasor/types/errors"
	"suasor/types/requests"
	"suasor/types/responses"
)

// RecommendHandler exposes recommend.Core's operations over HTTP:
// generate_chat_list, suggest_for_list, hybrid_search, the pairwise
// training flow, profile inspection, and phase detection.
type RecommendHandler struct {
	core *recommend.Core
}

// NewRecommendHandler builds a RecommendHandler over an already-wired
// recommend.Core.
func NewRecommendHandler(core *recommend.Core) *RecommendHandler {
	return &RecommendHandler{core: core}
}

func userIDFromContext(c *gin.Context) (uint64, bool) {
	v, exists := c.Get("userID")
	if !exists {
		responses.RespondUnauthorized(c, nil, "Authentication required")
		return 0, false
	}
	return v.(uint64), true
}

// respondCoreError maps a recommend.Core failure onto the HTTP status
// its CoreError.Kind names, falling back to a generic 500.
func respondCoreError(c *gin.Context, err error, fallback string) {
	var coreErr *coreerrors.CoreError
	if ce, ok := err.(*coreerrors.CoreError); ok {
		coreErr = ce
	}
	if coreErr == nil {
		responses.RespondInternalError(c, err, fallback)
		return
	}
	switch coreErr.Kind {
	case coreerrors.KindInput:
		responses.RespondBadRequest(c, err, fallback)
	case coreerrors.KindNotFound:
		responses.RespondNotFound(c, err, fallback)
	case coreerrors.KindAuth:
		responses.RespondUnauthorized(c, err, fallback)
	case coreerrors.KindTransientExternal:
		responses.RespondServiceUnavailable(c, err, fallback)
	case coreerrors.KindDataIntegrity:
		responses.RespondConflict(c, err, fallback)
	default:
		responses.RespondInternalError(c, err, fallback)
	}
}

// GenerateChatList godoc
// @Summary Generate a recommendation list from a free-text prompt
// @Router /api/v1/recommend/chat-list [post]
func (h *RecommendHandler) GenerateChatList(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req requests.GenerateChatListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	result, err := h.core.GenerateChatList(c.Request.Context(), req.Prompt, userID, req.ItemLimit)
	if err != nil {
		respondCoreError(c, err, "Failed to generate recommendation list")
		return
	}
	responses.RespondOK(c, result, "Recommendation list generated successfully")
}

// HybridSearch godoc
// @Summary Run a hybrid dense+lexical search
// @Router /api/v1/recommend/search [get]
func (h *RecommendHandler) HybridSearch(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req requests.HybridSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	items, err := h.core.HybridSearch(c.Request.Context(), req.Query, userID, req.MediaType, req.Limit)
	if err != nil {
		respondCoreError(c, err, "Failed to search")
		return
	}
	responses.RespondListOK(c, items, len(items), "Search complete")
}

// SuggestForList godoc
// @Summary Suggest candidates similar to a curated list's current items
// @Router /api/v1/recommend/lists/{id}/suggestions [get]
func (h *RecommendHandler) SuggestForList(c *gin.Context) {
	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	items, err := h.core.SuggestForList(c.Request.Context(), listID)
	if err != nil {
		respondCoreError(c, err, "Failed to suggest list items")
		return
	}
	responses.RespondListOK(c, items, len(items), "Suggestions generated successfully")
}

// GetProfile godoc
// @Summary Get the current user's taste profile
// @Router /api/v1/recommend/profile [get]
func (h *RecommendHandler) GetProfile(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	forceRefresh := c.Query("forceRefresh") == "true"

	profile, err := h.core.GetProfile(c.Request.Context(), userID, forceRefresh)
	if err != nil {
		respondCoreError(c, err, "Failed to load profile")
		return
	}
	responses.RespondOK(c, profile, "Profile retrieved successfully")
}

// CreatePairwiseSession godoc
// @Summary Start a pairwise comparison training session
// @Router /api/v1/recommend/pairwise/sessions [post]
func (h *RecommendHandler) CreatePairwiseSession(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req requests.CreatePairwiseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	session, err := h.core.CreatePairwiseSession(c.Request.Context(), userID, req.Prompt, req.ListType, req.Pool)
	if err != nil {
		respondCoreError(c, err, "Failed to create pairwise session")
		return
	}
	responses.RespondCreated(c, session, "Pairwise session created successfully")
}

// NextPair godoc
// @Summary Get the next undjudged pair in a pairwise session
// @Router /api/v1/recommend/pairwise/sessions/{id}/next [get]
func (h *RecommendHandler) NextPair(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	pair, err := h.core.NextPair(c.Request.Context(), sessionID)
	if err != nil {
		respondCoreError(c, err, "Failed to get next pair")
		return
	}
	responses.RespondOK(c, pair, "Next pair retrieved successfully")
}

// SubmitJudgment godoc
// @Summary Submit a pairwise judgment
// @Router /api/v1/recommend/pairwise/sessions/{id}/judgments [post]
func (h *RecommendHandler) SubmitJudgment(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.RespondValidationError(c, err)
		return
	}
	var req requests.SubmitJudgmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	if err := h.core.SubmitJudgment(c.Request.Context(), sessionID, req.CandidateA, req.CandidateB, req.Winner, req.ResponseTimeMs); err != nil {
		respondCoreError(c, err, "Failed to submit judgment")
		return
	}
	responses.RespondOK(c, http.StatusOK, "Judgment submitted successfully")
}

// SessionStatus godoc
// @Summary Get a pairwise session's progress
// @Router /api/v1/recommend/pairwise/sessions/{id} [get]
func (h *RecommendHandler) SessionStatus(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.RespondValidationError(c, err)
		return
	}

	session, err := h.core.SessionStatus(c.Request.Context(), sessionID)
	if err != nil {
		respondCoreError(c, err, "Failed to get session status")
		return
	}
	responses.RespondOK(c, session, "Session status retrieved successfully")
}

// CurrentPhase godoc
// @Summary Get the current user's active viewing phase
// @Router /api/v1/recommend/phases/current [get]
func (h *RecommendHandler) CurrentPhase(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	phase, err := h.core.CurrentPhase(c.Request.Context(), userID)
	if err != nil {
		respondCoreError(c, err, "Failed to get current phase")
		return
	}
	responses.RespondOK(c, phase, "Current phase retrieved successfully")
}

// PredictNextPhase godoc
// @Summary Predict the current user's next viewing phase
// @Router /api/v1/recommend/phases/predict [get]
func (h *RecommendHandler) PredictNextPhase(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	prediction, err := h.core.PredictNextPhase(c.Request.Context(), userID)
	if err != nil {
		respondCoreError(c, err, "Failed to predict next phase")
		return
	}
	responses.RespondOK(c, prediction, "Next phase prediction retrieved successfully")
}
