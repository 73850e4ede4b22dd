package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/score"
)

type ScoresStore interface {
	Record(ctx context.Context, req score.RecordRequest) (score.Summary, error)
	GetByOwner(ctx context.Context, uid string) (score.Summary, error)
}

type ScoresHandler struct {
	repo ScoresStore
}

func NewScoresHandler(repo ScoresStore) *ScoresHandler {
	return &ScoresHandler{repo: repo}
}

// RecordScore persists one result and answers with the owner's refreshed
// history plus the average over every stored record, new one included.
func (h *ScoresHandler) RecordScore(ctx *gin.Context) {
	var req score.RecordRequest

	if !BindJSON(ctx, &req) {
		return
	}

	summary, err := h.repo.Record(ctx.Request.Context(), req)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (h *ScoresHandler) GetScores(ctx *gin.Context) {
	summary, err := h.repo.GetByOwner(ctx.Request.Context(), ctx.Param("uid"))

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
