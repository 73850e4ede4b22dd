package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/transaction"
)

type TransactionsStore interface {
	Create(ctx context.Context, req transaction.CreateRequest) (transaction.Transaction, error)
	ListByOwner(ctx context.Context, uid string) ([]transaction.Transaction, error)
}

type TransactionsHandler struct {
	repo TransactionsStore
}

func NewTransactionsHandler(repo TransactionsStore) *TransactionsHandler {
	return &TransactionsHandler{repo: repo}
}

func (h *TransactionsHandler) CreateTransaction(ctx *gin.Context) {
	var req transaction.CreateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	tx, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transaction": tx,
	})
}

func (h *TransactionsHandler) ListTransactions(ctx *gin.Context) {
	txs, err := h.repo.ListByOwner(ctx.Request.Context(), ctx.Param("uid"))

	if err != nil {
		respondRepoError(ctx, err, "")
		return
	}

	ctx.JSON(http.StatusOK, txs)
}
