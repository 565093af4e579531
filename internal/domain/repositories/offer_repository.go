package repositories

import (
	"context"

	"github.com/google/uuid"
	"token-market.backend/internal/domain/entities"
)

// OfferRepository defines offer data operations. All quantity mutations are
// conditional updates checked by affected-row count; callers never
// read-then-write quantities.
type OfferRepository interface {
	Create(ctx context.Context, offer *entities.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entities.Offer, int64, error)

	// Reserve decrements quantity by qty only while the offer is active and
	// has at least qty units, marking the offer sold when it reaches zero.
	// Returns the remaining quantity, or ErrInsufficientQuantity when the
	// conditional update matched no row.
	Reserve(ctx context.Context, id uuid.UUID, qty int64) (int64, error)

	// Release returns qty previously reserved units, reopening a sold-out
	// offer. Cancelled offers get their quantity back but stay cancelled.
	Release(ctx context.Context, id uuid.UUID, qty int64) error

	// Settle applies a remotely settled amount: quantity = max(0, quantity-n),
	// forcing status sold at zero.
	Settle(ctx context.Context, id uuid.UUID, amount int64) (int64, error)

	// Cancel sets status cancelled regardless of quantity; only the owning
	// seller may cancel.
	Cancel(ctx context.Context, id, sellerID uuid.UUID) error
}
