package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/repo/mongodb"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get("request_id")

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

// respondRepoError maps repository sentinel errors onto the HTTP taxonomy:
// malformed ids and missing owners are client errors, missing records are
// 404s, and anything else (store connectivity included) is a 500 carrying
// the failure's message.
func respondRepoError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, mongodb.ErrInvalidID):
		RespondBadRequest(ctx, "Malformed id", nil)
	case errors.Is(err, mongodb.ErrMissingOwner):
		RespondBadRequest(ctx, "uid is required", nil)
	case errors.Is(err, mongodb.ErrNotFound):
		RespondNotFound(ctx, notFoundMessage)
	default:
		RespondInternal(ctx, err.Error())
	}
}
