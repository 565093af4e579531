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

type OrderService interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetOrdersByBuyer(ctx context.Context, buyerExternalID string, page, limit int) ([]*entities.Order, int64, error)
	ListOrders(ctx context.Context, page, limit int) ([]*entities.Order, int64, error)
}

// OrderHandler handles order read endpoints
type OrderHandler struct {
	orderService OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrder gets an order by ID
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Order not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// ListOrders lists orders for a buyer
// GET /api/v1/orders?buyerExternalId=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	buyerExternalID := c.Query("buyerExternalId")
	if buyerExternalID == "" {
		response.Error(c, domainerrors.BadRequest("buyerExternalId is required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	orders, total, err := h.orderService.GetOrdersByBuyer(c.Request.Context(), buyerExternalID, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	if orders == nil {
		orders = []*entities.Order{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ListAllOrders lists all orders (admin only)
// GET /api/v1/admin/orders
func (h *OrderHandler) ListAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	if orders == nil {
		orders = []*entities.Order{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
