package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/class"
)

type ClassesStore interface {
	Create(ctx context.Context, c class.Class) (class.Class, error)
	ListByOwner(ctx context.Context, uid string) ([]class.Class, error)
}

type ClassesHandler struct {
	repo ClassesStore
}

func NewClassesHandler(repo ClassesStore) *ClassesHandler {
	return &ClassesHandler{repo: repo}
}

func (h *ClassesHandler) CreateClass(ctx *gin.Context) {
	var c class.Class

	if !BindJSON(ctx, &c) {
		return
	}

	stored, err := h.repo.Create(ctx.Request.Context(), c)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"class":   stored,
	})
}

func (h *ClassesHandler) ListClasses(ctx *gin.Context) {
	uid := ctx.Query("uid")

	if uid == "" {
		RespondBadRequest(ctx, "uid query parameter is required", nil)
		return
	}

	classes, err := h.repo.ListByOwner(ctx.Request.Context(), uid)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, classes)
}
