package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/interfaces/http/response"
	"token-market.backend/pkg/utils"
)

type PurchaseService interface {
	CreatePurchase(ctx context.Context, input *entities.PurchaseInput) (*entities.PurchaseResponse, error)
}

// PurchaseHandler handles the purchase flow
type PurchaseHandler struct {
	purchaseUsecase PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseUsecase PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseUsecase: purchaseUsecase}
}

// CreatePurchase registers a purchase intent and returns the payment redirect
// POST /api/v1/purchase
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var input entities.PurchaseInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.purchaseUsecase.CreatePurchase(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Oferta no encontrada"))
		case errors.Is(err, domainerrors.ErrOfferNotActive):
			response.Error(c, domainerrors.Invalid("Oferta no disponible", domainerrors.ErrOfferNotActive))
		case errors.Is(err, domainerrors.ErrInsufficientQuantity):
			response.Error(c, domainerrors.Invalid("Cantidad insuficiente disponible", domainerrors.ErrInsufficientQuantity))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":             true,
		"orderId":             result.OrderID,
		"transactionId":       result.TransactionID,
		"pseURL":              result.PSEURL,
		"totalPrice":          result.TotalPrice,
		"totalPriceFormatted": utils.FormatCOP(result.TotalPrice),
		"remainingQuantity":   result.RemainingQuantity,
	})
}
