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

type SupportService interface {
	CreateTicket(ctx context.Context, input *entities.CreateTicketInput) (*entities.SupportTicket, error)
	GetTicket(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error)
	ListTickets(ctx context.Context, page, limit int) ([]*entities.SupportTicket, int64, error)
	UpdateTicketStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error
}

// SupportHandler handles support ticket endpoints
type SupportHandler struct {
	supportUsecase SupportService
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportUsecase SupportService) *SupportHandler {
	return &SupportHandler{supportUsecase: supportUsecase}
}

// CreateTicket opens a support ticket
// POST /api/v1/support/tickets
func (h *SupportHandler) CreateTicket(c *gin.Context) {
	var input entities.CreateTicketInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ticket, err := h.supportUsecase.CreateTicket(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBadRequest) {
			response.Error(c, domainerrors.BadRequest("Exactly one of externalId or documento is required"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ticket": ticket})
}

// GetTicket gets a ticket by its number
// GET /api/v1/support/tickets/:number
func (h *SupportHandler) GetTicket(c *gin.Context) {
	ticket, err := h.supportUsecase.GetTicket(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Ticket not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ticket": ticket})
}

// ListTickets lists all tickets (admin only)
// GET /api/v1/admin/tickets
func (h *SupportHandler) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	tickets, total, err := h.supportUsecase.ListTickets(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	if tickets == nil {
		tickets = []*entities.SupportTicket{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"tickets":    tickets,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateTicketStatus changes a ticket's status (admin only)
// PUT /api/v1/admin/tickets/:number/status
func (h *SupportHandler) UpdateTicketStatus(c *gin.Context) {
	var input struct {
		Estado string `json:"estado" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	err := h.supportUsecase.UpdateTicketStatus(c.Request.Context(), c.Param("number"), entities.TicketStatus(input.Estado))
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Ticket not found"))
		case errors.Is(err, domainerrors.ErrBadRequest):
			response.Error(c, domainerrors.BadRequest("Invalid ticket status"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
