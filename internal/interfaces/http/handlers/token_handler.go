package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/interfaces/http/response"
	"token-market.backend/pkg/utils"
)

type TokenService interface {
	ListTokens(ctx context.Context, page, limit int) ([]*entities.Token, int64, error)
	GetToken(ctx context.Context, id string) (*entities.Token, error)
}

// TokenHandler handles token catalog endpoints
type TokenHandler struct {
	tokenUsecase TokenService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenUsecase TokenService) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// ListTokens lists the token catalog
// GET /api/v1/tokens
func (h *TokenHandler) ListTokens(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	tokens, total, err := h.tokenUsecase.ListTokens(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	if tokens == nil {
		tokens = []*entities.Token{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"tokens":     tokens,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetToken gets a token by ID
// GET /api/v1/tokens/:id
func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.tokenUsecase.GetToken(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Token not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
