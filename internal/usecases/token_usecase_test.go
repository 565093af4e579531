package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/usecases"
)

func TestTokenUsecase_ListTokens_ClampsPagination(t *testing.T) {
	repo := new(MockTokenRepository)
	repo.On("List", mock.Anything, 20, 0).Return([]*entities.Token{{Symbol: "EDC"}}, int64(1), nil)

	uc := usecases.NewTokenUsecase(repo)
	tokens, total, err := uc.ListTokens(context.Background(), -1, 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tokens, 1)
	repo.AssertExpectations(t)
}

func TestTokenUsecase_ListTokens_Offset(t *testing.T) {
	repo := new(MockTokenRepository)
	repo.On("List", mock.Anything, 10, 20).Return([]*entities.Token{}, int64(0), nil)

	uc := usecases.NewTokenUsecase(repo)
	_, _, err := uc.ListTokens(context.Background(), 3, 10)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTokenUsecase_GetToken(t *testing.T) {
	repo := new(MockTokenRepository)
	tokenID := uuid.New()
	repo.On("GetByID", mock.Anything, tokenID).Return(&entities.Token{ID: tokenID, Symbol: "EDC"}, nil)

	uc := usecases.NewTokenUsecase(repo)
	token, err := uc.GetToken(context.Background(), tokenID.String())

	require.NoError(t, err)
	assert.Equal(t, "EDC", token.Symbol)
}

func TestTokenUsecase_GetToken_BadID(t *testing.T) {
	uc := usecases.NewTokenUsecase(new(MockTokenRepository))

	_, err := uc.GetToken(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
}

func TestTokenUsecase_GetToken_NotFound(t *testing.T) {
	repo := new(MockTokenRepository)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)

	uc := usecases.NewTokenUsecase(repo)
	_, err := uc.GetToken(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
