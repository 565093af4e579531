package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/interfaces/http/response"
)

type AuthService interface {
	CreateBuyerSession(ctx context.Context, externalID string) (string, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles session endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// CreateSession issues a buyer session token for a KYC-approved external ID
// POST /api/v1/auth/session
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var input struct {
		ExternalID string `json:"externalId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token, err := h.authUsecase.CreateBuyerSession(c.Request.Context(), input.ExternalID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrKYCNotApproved) {
			response.Error(c, domainerrors.Forbidden("KYC verification not approved"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}

// Login authenticates an admin and issues an admin session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token, err := h.authUsecase.AdminLogin(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			response.Error(c, domainerrors.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
