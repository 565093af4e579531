package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
	"token-market.backend/pkg/utils"
)

// SellerRepository implements seller data operations
type SellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) *SellerRepository {
	return &SellerRepository{db: db}
}

// Upsert inserts or refreshes a seller keyed on external_id
func (r *SellerRepository) Upsert(ctx context.Context, seller *entities.Seller) error {
	db := GetDB(ctx, r.db)
	now := time.Now()

	m := &models.Seller{
		ID:            seller.ID,
		ExternalID:    seller.ExternalID,
		WalletID:      seller.WalletID,
		WalletAddress: seller.WalletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if m.ID == uuid.Nil {
		m.ID = utils.GenerateUUIDv7()
	}

	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"wallet_id", "wallet_address", "updated_at"}),
	}).Create(m).Error; err != nil {
		return err
	}

	// Conflict path keeps the existing row's id; read it back so callers can
	// reference the seller in the same request.
	var persisted models.Seller
	if err := db.WithContext(ctx).Where("external_id = ?", seller.ExternalID).First(&persisted).Error; err != nil {
		return err
	}
	seller.ID = persisted.ID
	seller.CreatedAt = persisted.CreatedAt
	seller.UpdatedAt = persisted.UpdatedAt
	return nil
}

func (r *SellerRepository) GetByExternalID(ctx context.Context, externalID string) (*entities.Seller, error) {
	var m models.Seller
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("external_id = ?", externalID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return sellerToEntity(&m), nil
}

func sellerToEntity(m *models.Seller) *entities.Seller {
	return &entities.Seller{
		ID:            m.ID,
		ExternalID:    m.ExternalID,
		WalletID:      m.WalletID,
		WalletAddress: m.WalletAddress,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
