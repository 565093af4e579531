package entities

import (
	"time"

	"github.com/google/uuid"
)

// Token represents a fractional real-estate token listed on the marketplace.
// Rows are created by administrative sync tooling; the marketplace reads them.
type Token struct {
	ID           uuid.UUID `json:"id"`
	TokenAddress string    `json:"tokenAddress"`
	Protocol     string    `json:"protocol"`
	Name         string    `json:"name"`
	Symbol       string    `json:"symbol"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Blockchain   string    `json:"blockchain"`
	CreatedAt    time.Time `json:"createdAt"`
}
