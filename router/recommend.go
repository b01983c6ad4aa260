// router/recommend.go
package router

import (
	"github.com/gin-gonic/gin"

	"suasor/handlers"
)

// RegisterRecommendRoutes registers the recommendation core's HTTP
// surface: chat-list generation, hybrid search, list suggestions, the
// pairwise training flow, profile inspection, and phase detection.
func RegisterRecommendRoutes(rg *gin.RouterGroup, h *handlers.RecommendHandler) {
	if h == nil {
		return
	}

	recommend := rg.Group("/recommend")
	{
		recommend.POST("/chat-list", h.GenerateChatList)
		recommend.GET("/search", h.HybridSearch)
		recommend.GET("/profile", h.GetProfile)

		recommend.GET("/lists/:id/suggestions", h.SuggestForList)

		recommend.POST("/pairwise/sessions", h.CreatePairwiseSession)
		recommend.GET("/pairwise/sessions/:id", h.SessionStatus)
		recommend.GET("/pairwise/sessions/:id/next", h.NextPair)
		recommend.POST("/pairwise/sessions/:id/judgments", h.SubmitJudgment)

		recommend.GET("/phases/current", h.CurrentPhase)
		recommend.GET("/phases/predict", h.PredictNextPhase)
	}
}
