package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/interfaces/http/response"
	"token-market.backend/pkg/utils"
)

type OfferService interface {
	CreateOffer(ctx context.Context, input *entities.CreateOfferInput) (*entities.Offer, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*entities.Offer, error)
	ListOffers(ctx context.Context, page, limit int) ([]*entities.Offer, int64, error)
	CancelOffer(ctx context.Context, offerID uuid.UUID, sellerExternalID string) error
}

// OfferHandler handles offer endpoints
type OfferHandler struct {
	offerUsecase OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerUsecase OfferService) *OfferHandler {
	return &OfferHandler{offerUsecase: offerUsecase}
}

// ListOffers lists active offers
// GET /api/v1/offers
func (h *OfferHandler) ListOffers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	offers, total, err := h.offerUsecase.ListOffers(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	if offers == nil {
		offers = []*entities.Offer{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"offers":     offers,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetOffer gets an offer by ID
// GET /api/v1/offers/:id
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	offer, err := h.offerUsecase.GetOffer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Oferta no encontrada"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"offer": offer})
}

// CreateOffer creates a new listing
// POST /api/v1/offers
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var input entities.CreateOfferInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	offer, err := h.offerUsecase.CreateOffer(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Token not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"offer": offer})
}

// CancelOffer cancels an active offer on behalf of its seller
// POST /api/v1/offers/:id/cancel
func (h *OfferHandler) CancelOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid offer ID"))
		return
	}

	var input struct {
		SellerExternalID string `json:"sellerExternalId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.offerUsecase.CancelOffer(c.Request.Context(), id, input.SellerExternalID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Oferta no encontrada"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("Offer does not belong to this seller"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
