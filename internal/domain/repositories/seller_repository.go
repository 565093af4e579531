package repositories

import (
	"context"

	"token-market.backend/internal/domain/entities"
)

// SellerRepository defines seller data operations
type SellerRepository interface {
	// Upsert inserts the seller or, when external_id already exists, updates
	// wallet_id and wallet_address. Fills in the persisted ID.
	Upsert(ctx context.Context, seller *entities.Seller) error
	GetByExternalID(ctx context.Context, externalID string) (*entities.Seller, error)
}
