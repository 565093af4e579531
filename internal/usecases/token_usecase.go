package usecases

import (
	"context"

	"github.com/google/uuid"

	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/pkg/utils"
)

// TokenUsecase serves the token catalog
type TokenUsecase struct {
	tokenRepo repositories.TokenRepository
}

// NewTokenUsecase creates a new token usecase
func NewTokenUsecase(tokenRepo repositories.TokenRepository) *TokenUsecase {
	return &TokenUsecase{tokenRepo: tokenRepo}
}

// ListTokens returns the token catalog
func (u *TokenUsecase) ListTokens(ctx context.Context, page, limit int) ([]*entities.Token, int64, error) {
	p := utils.GetPaginationParams(page, limit)
	return u.tokenRepo.List(ctx, p.Limit, p.CalculateOffset())
}

// GetToken returns a single token by id
func (u *TokenUsecase) GetToken(ctx context.Context, id string) (*entities.Token, error) {
	tokenID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrBadRequest
	}
	token, err := u.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domainerrors.ErrNotFound
	}
	return token, nil
}
