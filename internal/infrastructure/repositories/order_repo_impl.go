package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
)

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	db := GetDB(ctx, r.db)
	m := &models.Order{
		ID:              order.ID,
		BuyerExternalID: order.BuyerExternalID,
		BuyerWalletID:   order.BuyerWalletID,
		OfferID:         order.OfferID,
		Quantity:        order.Quantity,
		TotalPrice:      order.TotalPrice,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if order.TransactionID.Valid {
		v := order.TransactionID.String
		m.TransactionID = &v
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	order.ID = m.ID
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Offer").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return orderToEntity(&m), nil
}

func (r *OrderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return orderToEntity(&m), nil
}

func (r *OrderRepository) GetLatestPendingByOffer(ctx context.Context, offerID uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("offer_id = ? AND status = ?", offerID, string(entities.OrderStatusPending)).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return orderToEntity(&m), nil
}

func (r *OrderRepository) SetTransactionID(ctx context.Context, id uuid.UUID, transactionID string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"transaction_id": transactionID,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkCompleted transitions pending -> completed; the condition on status
// makes late or duplicate settlements a no-op.
func (r *OrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID, transactionID string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, string(entities.OrderStatusPending)).
		Updates(map[string]interface{}{
			"status":         string(entities.OrderStatusCompleted),
			"transaction_id": gorm.Expr("COALESCE(transaction_id, ?)", transactionID),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, string(entities.OrderStatusPending)).
		Updates(map[string]interface{}{
			"status":     string(entities.OrderStatusFailed),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerExternalID string, limit, offset int) ([]*entities.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("buyer_external_id = ?", buyerExternalID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Offer").Preload("Offer.Token").
		Where("buyer_external_id = ?", buyerExternalID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return ordersToEntities(ms), total, nil
}

func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*entities.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	return ordersToEntities(ms), total, nil
}

func (r *OrderRepository) GetExpiredPending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Order, error) {
	var ms []models.Order
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.OrderStatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return ordersToEntities(ms), nil
}

func ordersToEntities(ms []models.Order) []*entities.Order {
	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, orderToEntity(&ms[i]))
	}
	return orders
}

func orderToEntity(m *models.Order) *entities.Order {
	o := &entities.Order{
		ID:              m.ID,
		BuyerExternalID: m.BuyerExternalID,
		BuyerWalletID:   m.BuyerWalletID,
		OfferID:         m.OfferID,
		Quantity:        m.Quantity,
		TotalPrice:      m.TotalPrice,
		TransactionID:   null.StringFromPtr(m.TransactionID),
		Status:          entities.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Offer.ID != uuid.Nil {
		o.Offer = offerToEntity(&m.Offer)
	}
	return o
}
