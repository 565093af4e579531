package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"token-market.backend/internal/domain/entities"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Order, error)

	// GetLatestPendingByOffer is the best-effort correlation fallback used by
	// webhook reconciliation when the transaction id was never recorded.
	GetLatestPendingByOffer(ctx context.Context, offerID uuid.UUID) (*entities.Order, error)

	// SetTransactionID records the remote transaction id on a freshly
	// created order.
	SetTransactionID(ctx context.Context, id uuid.UUID, transactionID string) error

	// MarkCompleted transitions pending -> completed, recording the
	// transaction id if missing. A no-op (ErrNotFound) for orders that are
	// not pending.
	MarkCompleted(ctx context.Context, id uuid.UUID, transactionID string) error

	// MarkFailed transitions pending -> failed; used by the expiry sweep.
	MarkFailed(ctx context.Context, id uuid.UUID) error

	ListByBuyer(ctx context.Context, buyerExternalID string, limit, offset int) ([]*entities.Order, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Order, int64, error)

	// GetExpiredPending returns pending orders created before the cutoff.
	GetExpiredPending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Order, error)
}
