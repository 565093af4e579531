package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
	"token-market.backend/pkg/utils"
)

// WebhookEventRepository implements the applied-transaction set
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) Create(ctx context.Context, event *entities.WebhookEvent) error {
	db := GetDB(ctx, r.db)
	m := &models.WebhookEvent{
		ID:            event.ID,
		TransactionID: event.TransactionID,
		EventType:     event.EventType,
		OfferID:       event.OfferID,
		Amount:        event.Amount,
		Payload:       event.Payload,
		CreatedAt:     time.Now(),
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}
	if m.Payload == "" {
		m.Payload = "{}"
	}

	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	event.ID = m.ID
	event.CreatedAt = m.CreatedAt
	return nil
}

func (r *WebhookEventRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.WebhookEvent{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueViolation matches both the Postgres and SQLite unique-constraint
// error texts; GORM does not normalize them.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
