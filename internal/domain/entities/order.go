package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order represents a buyer's record of intent to purchase from an Offer,
// tracked through payment settlement. Created pending; completed only via
// webhook reconciliation; failed via the pending-order sweep.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	BuyerExternalID string      `json:"buyerExternalId"`
	BuyerWalletID   string      `json:"buyerWalletId"`
	OfferID         uuid.UUID   `json:"offerId"`
	Quantity        int64       `json:"quantity"`
	TotalPrice      string      `json:"totalPrice"`
	TransactionID   null.String `json:"transactionId,omitempty"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	// Joins
	Offer *Offer `json:"offer,omitempty"`
}

// PurchaseInput represents a buyer's purchase request
type PurchaseInput struct {
	OfferID             string `json:"offerId" binding:"required"`
	Quantity            int64  `json:"quantity" binding:"required"`
	BuyerExternalID     string `json:"buyerExternalId" binding:"required"`
	BuyerWalletID       string `json:"buyerWalletId" binding:"required"`
	BuyerWalletAddress  string `json:"buyerWalletAddress"`
}

// PurchaseResponse is returned once the payment redirect is issued
type PurchaseResponse struct {
	OrderID           uuid.UUID `json:"orderId"`
	TransactionID     string    `json:"transactionId"`
	PSEURL            string    `json:"pseURL"`
	TotalPrice        float64   `json:"totalPrice"`
	RemainingQuantity int64     `json:"remainingQuantity"`
}
