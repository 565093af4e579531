package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
)

// TokenRepository implements token catalog reads
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	var m models.Token
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

func (r *TokenRepository) List(ctx context.Context, limit, offset int) ([]*entities.Token, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Token{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Token
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	tokens := make([]*entities.Token, 0, len(ms))
	for i := range ms {
		tokens = append(tokens, tokenToEntity(&ms[i]))
	}
	return tokens, total, nil
}

func tokenToEntity(m *models.Token) *entities.Token {
	return &entities.Token{
		ID:           m.ID,
		TokenAddress: m.TokenAddress,
		Protocol:     m.Protocol,
		Name:         m.Name,
		Symbol:       m.Symbol,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Blockchain:   m.Blockchain,
		CreatedAt:    m.CreatedAt,
	}
}
