package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/task"
	"github.com/fahimahmed420/CampusPilot-server/internal/repo/mongodb"
)

type TasksStore interface {
	Create(ctx context.Context, t task.Task) (task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) (mongodb.UpdateAck, error)
	DeleteByID(ctx context.Context, id string) (mongodb.DeleteAck, error)
}

type TasksHandler struct {
	repo TasksStore
}

func NewTasksHandler(repo TasksStore) *TasksHandler {
	return &TasksHandler{repo: repo}
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	var t task.Task

	if !BindJSON(ctx, &t) {
		return
	}

	stored, err := h.repo.Create(ctx.Request.Context(), t)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    stored,
	})
}

func (h *TasksHandler) ListTasks(ctx *gin.Context) {
	tasks, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// UpdateTask merges the supplied fields into the document. An id that
// matches nothing still acknowledges success with matchedCount 0; only a
// malformed id is an error.
func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	fields := map[string]any{}

	if !BindJSON(ctx, &fields) {
		return
	}

	ack, err := h.repo.UpdateByID(ctx.Request.Context(), ctx.Param("id"), fields)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":       true,
		"matchedCount":  ack.Matched,
		"modifiedCount": ack.Modified,
	})
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	ack, err := h.repo.DeleteByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"deletedCount": ack.Deleted,
	})
}
