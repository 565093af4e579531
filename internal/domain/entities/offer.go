package entities

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus represents offer status
type OfferStatus string

const (
	OfferStatusActive    OfferStatus = "active"
	OfferStatusSold      OfferStatus = "sold"
	OfferStatusCancelled OfferStatus = "cancelled"
)

// Offer represents a seller's standing listing of N units of a token at a
// fixed unit price. Invariant: quantity > 0 whenever status is active;
// quantity 0 forces status sold.
type Offer struct {
	ID            uuid.UUID   `json:"id"`
	SellerID      uuid.UUID   `json:"sellerId"`
	TokenID       uuid.UUID   `json:"tokenId"`
	Quantity      int64       `json:"quantity"`
	PricePerToken float64     `json:"pricePerToken"`
	Status        OfferStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`

	// Joins
	Token  *Token  `json:"token,omitempty"`
	Seller *Seller `json:"seller,omitempty"`
}

// CreateOfferInput represents input for listing an offer
type CreateOfferInput struct {
	SellerExternalID string  `json:"sellerExternalId" binding:"required"`
	WalletID         string  `json:"walletId" binding:"required"`
	WalletAddress    string  `json:"walletAddress"`
	TokenID          string  `json:"tokenId" binding:"required"`
	Quantity         int64   `json:"quantity" binding:"required"`
	PricePerToken    float64 `json:"pricePerToken" binding:"required"`
}
