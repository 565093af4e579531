package entities

import (
	"time"

	"github.com/google/uuid"
)

// Seller represents a marketplace seller. ExternalID is the identifier issued
// by the compliance provider after KYC approval and is the natural key.
type Seller struct {
	ID            uuid.UUID `json:"id"`
	ExternalID    string    `json:"externalId"`
	WalletID      string    `json:"walletId"`
	WalletAddress string    `json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
