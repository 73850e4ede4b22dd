package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/user"
)

// Small interface so tests can fake the repository.
type UsersStore interface {
	CreateIfAbsent(ctx context.Context, u user.User) (user.User, bool, error)
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByUID(ctx context.Context, uid string) (user.User, error)
}

type UsersHandler struct {
	repo UsersStore
}

func NewUsersHandler(repo UsersStore) *UsersHandler {
	return &UsersHandler{repo: repo}
}

// CreateUser is idempotent per uid: the first call inserts, every repeat
// returns the already-stored record and says so in the message.
func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var u user.User

	if !BindJSON(ctx, &u) {
		return
	}

	stored, created, err := h.repo.CreateIfAbsent(ctx.Request.Context(), u)

	if err != nil {
		respondRepoError(ctx, err, "User not found")
		return
	}

	message := "User created"

	if !created {
		message = "User already exists"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    stored,
	})
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	u, err := h.repo.GetByID(ctx.Request.Context(), ctx.Param("id"))

	if err != nil {
		respondRepoError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *UsersHandler) GetUserByUID(ctx *gin.Context) {
	u, err := h.repo.GetByUID(ctx.Request.Context(), ctx.Param("uid"))

	if err != nil {
		respondRepoError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, u)
}
