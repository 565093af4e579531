package usecases

import (
	"context"

	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/kravata"
)

// ProviderWalletAPI is the slice of the Kravata client the wallet views use
type ProviderWalletAPI interface {
	GetBalance(ctx context.Context, externalID string) ([]kravata.Balance, error)
	ListTransactions(ctx context.Context, externalID string) ([]kravata.Transaction, error)
}

// WalletUsecase proxies wallet reads to the payment provider
type WalletUsecase struct {
	provider ProviderWalletAPI
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(provider ProviderWalletAPI) *WalletUsecase {
	return &WalletUsecase{provider: provider}
}

// GetBalance returns the provider-side balances for an external id
func (u *WalletUsecase) GetBalance(ctx context.Context, externalID string) ([]kravata.Balance, error) {
	if externalID == "" {
		return nil, domainerrors.ErrBadRequest
	}
	balances, err := u.provider.GetBalance(ctx, externalID)
	if err != nil {
		return nil, domainerrors.Upstream("failed to fetch balance", err)
	}
	return balances, nil
}

// ListTransactions returns the provider-side transaction history
func (u *WalletUsecase) ListTransactions(ctx context.Context, externalID string) ([]kravata.Transaction, error) {
	if externalID == "" {
		return nil, domainerrors.ErrBadRequest
	}
	txs, err := u.provider.ListTransactions(ctx, externalID)
	if err != nil {
		return nil, domainerrors.Upstream("failed to fetch transactions", err)
	}
	return txs, nil
}
