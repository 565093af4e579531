package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/pkg/logger"
)

type WebhookService interface {
	ProcessEvent(ctx context.Context, eventType string, data json.RawMessage) error
}

// WebhookHandler handles inbound payment-provider webhooks
type WebhookHandler struct {
	webhookUsecase WebhookService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase}
}

// HandleKravata processes a Kravata settlement notification
// POST /api/v1/webhooks/kravata
func (h *WebhookHandler) HandleKravata(c *gin.Context) {
	var payload struct {
		EventType string          `json:"eventType" binding:"required"`
		Data      json.RawMessage `json:"data"`
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid webhook payload",
		})
		return
	}

	err := h.webhookUsecase.ProcessEvent(c.Request.Context(), payload.EventType, payload.Data)
	if err != nil {
		logger.Error(c.Request.Context(), "webhook processing failed",
			zap.String("event_type", payload.EventType),
			zap.Error(err),
		)
		status := http.StatusInternalServerError
		if errors.Is(err, domainerrors.ErrBadRequest) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
