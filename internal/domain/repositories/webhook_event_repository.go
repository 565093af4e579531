package repositories

import (
	"context"

	"token-market.backend/internal/domain/entities"
)

// WebhookEventRepository tracks applied settlement notifications
type WebhookEventRepository interface {
	// Create records an applied transaction id. Returns ErrAlreadyExists when
	// the transaction id was recorded before (duplicate delivery).
	Create(ctx context.Context, event *entities.WebhookEvent) error
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
}
