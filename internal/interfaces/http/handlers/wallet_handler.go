package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/kravata"
	"token-market.backend/internal/interfaces/http/response"
)

type walletService interface {
	GetBalance(ctx context.Context, externalID string) ([]kravata.Balance, error)
	ListTransactions(ctx context.Context, externalID string) ([]kravata.Transaction, error)
}

type pseService interface {
	GetPSEURL(ctx context.Context, transactionID, bankName, bankCode string) (string, error)
}

// WalletHandler proxies wallet reads to the payment provider
type WalletHandler struct {
	walletUsecase walletService
	pseClient     pseService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase walletService, pseClient pseService) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase, pseClient: pseClient}
}

// GetBalance returns provider-side balances
// GET /api/v1/wallet/balance?externalId=
func (h *WalletHandler) GetBalance(c *gin.Context) {
	externalID := c.Query("externalId")
	if externalID == "" {
		response.Error(c, domainerrors.BadRequest("externalId is required"))
		return
	}

	balances, err := h.walletUsecase.GetBalance(c.Request.Context(), externalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if balances == nil {
		balances = []kravata.Balance{}
	}

	response.Success(c, http.StatusOK, gin.H{"balances": balances})
}

// ListTransactions returns provider-side transaction history
// GET /api/v1/wallet/transactions?externalId=
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	externalID := c.Query("externalId")
	if externalID == "" {
		response.Error(c, domainerrors.BadRequest("externalId is required"))
		return
	}

	txs, err := h.walletUsecase.ListTransactions(c.Request.Context(), externalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if txs == nil {
		txs = []kravata.Transaction{}
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": txs})
}

// GetPSEURL re-issues the payment redirect for a pending transaction
// GET /api/v1/payments/pse?transactionId=&bankName=&bankCode=
func (h *WalletHandler) GetPSEURL(c *gin.Context) {
	transactionID := c.Query("transactionId")
	if transactionID == "" {
		response.Error(c, domainerrors.BadRequest("transactionId is required"))
		return
	}

	pseURL, err := h.pseClient.GetPSEURL(c.Request.Context(), transactionID, c.Query("bankName"), c.Query("bankCode"))
	if err != nil {
		response.Error(c, domainerrors.Upstream("failed to fetch payment URL", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pseURL": pseURL})
}
