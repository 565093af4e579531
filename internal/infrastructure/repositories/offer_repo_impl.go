package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
)

// OfferRepository implements offer data operations
type OfferRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, offer *entities.Offer) error {
	db := GetDB(ctx, r.db)
	m := &models.Offer{
		ID:            offer.ID,
		SellerID:      offer.SellerID,
		TokenID:       offer.TokenID,
		Quantity:      offer.Quantity,
		PricePerToken: offer.PricePerToken,
		Status:        string(offer.Status),
		CreatedAt:     offer.CreatedAt,
		UpdatedAt:     offer.UpdatedAt,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	offer.ID = m.ID
	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	var m models.Offer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Token").Preload("Seller").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return offerToEntity(&m), nil
}

func (r *OfferRepository) ListActive(ctx context.Context, limit, offset int) ([]*entities.Offer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Offer{}).
		Where("status = ?", string(entities.OfferStatusActive)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Offer
	if err := r.db.WithContext(ctx).
		Preload("Token").Preload("Seller").
		Where("status = ?", string(entities.OfferStatusActive)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	offers := make([]*entities.Offer, 0, len(ms))
	for i := range ms {
		offers = append(offers, offerToEntity(&ms[i]))
	}
	return offers, total, nil
}

// Reserve holds qty units for a purchase. The decrement is conditional on the
// current quantity so two concurrent purchases cannot both take the last
// units.
func (r *OfferRepository) Reserve(ctx context.Context, id uuid.UUID, qty int64) (int64, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ? AND status = ? AND quantity >= ?", id, string(entities.OfferStatusActive), qty).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrInsufficientQuantity
	}

	remaining, err := r.quantityOf(ctx, db, id)
	if err != nil {
		return 0, err
	}
	if remaining == 0 {
		if err := r.markSoldIfDrained(ctx, db, id); err != nil {
			return 0, err
		}
	}
	return remaining, nil
}

// Release returns previously reserved units, e.g. when a pending order
// expires. A sold-out offer goes back to active; a cancelled offer keeps its
// status.
func (r *OfferRepository) Release(ctx context.Context, id uuid.UUID, qty int64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"status":     gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", string(entities.OfferStatusSold), string(entities.OfferStatusActive)),
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

// Settle applies a remotely settled amount, clamping at zero.
func (r *OfferRepository) Settle(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("CASE WHEN quantity > ? THEN quantity - ? ELSE 0 END", amount, amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrNotFound
	}

	remaining, err := r.quantityOf(ctx, db, id)
	if err != nil {
		return 0, err
	}
	if remaining == 0 {
		if err := r.markSoldIfDrained(ctx, db, id); err != nil {
			return 0, err
		}
	}
	return remaining, nil
}

func (r *OfferRepository) Cancel(ctx context.Context, id, sellerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ? AND seller_id = ? AND status <> ?", id, sellerID, string(entities.OfferStatusCancelled)).
		Updates(map[string]interface{}{
			"status":     string(entities.OfferStatusCancelled),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing offer from a foreign seller
		var m models.Offer
		if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}
		if m.SellerID != sellerID {
			return domainerrors.ErrForbidden
		}
		// Already cancelled: treat as success
	}
	return nil
}

func (r *OfferRepository) quantityOf(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	var m models.Offer
	if err := db.WithContext(ctx).Select("quantity").Where("id = ?", id).First(&m).Error; err != nil {
		return 0, err
	}
	return m.Quantity, nil
}

// markSoldIfDrained flips a drained offer to sold; cancelled offers stay
// cancelled.
func (r *OfferRepository) markSoldIfDrained(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Model(&models.Offer{}).
		Where("id = ? AND quantity = 0 AND status = ?", id, string(entities.OfferStatusActive)).
		Updates(map[string]interface{}{
			"status":     string(entities.OfferStatusSold),
			"updated_at": time.Now(),
		}).Error
}

func offerToEntity(m *models.Offer) *entities.Offer {
	o := &entities.Offer{
		ID:            m.ID,
		SellerID:      m.SellerID,
		TokenID:       m.TokenID,
		Quantity:      m.Quantity,
		PricePerToken: m.PricePerToken,
		Status:        entities.OfferStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Token.ID != uuid.Nil {
		o.Token = tokenToEntity(&m.Token)
	}
	if m.Seller.ID != uuid.Nil {
		o.Seller = sellerToEntity(&m.Seller)
	}
	return o
}
