package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/internal/infrastructure/kravata"
	"token-market.backend/pkg/logger"
	"token-market.backend/pkg/utils"
)

// ProviderOrderAPI is the slice of the Kravata client the purchase flow uses
type ProviderOrderAPI interface {
	CreateOrder(ctx context.Context, req *kravata.CreateOrderRequest) (*kravata.CreateOrderResponse, error)
	GetPSEURL(ctx context.Context, transactionID, bankName, bankCode string) (string, error)
}

// PurchaseUsecase handles the purchase-intent flow: validate the offer,
// reserve inventory, record the order, and hand the buyer to the payment
// redirect.
type PurchaseUsecase struct {
	offerRepo repositories.OfferRepository
	orderRepo repositories.OrderRepository
	uow       repositories.UnitOfWork
	provider  ProviderOrderAPI
}

// NewPurchaseUsecase creates a new purchase usecase
func NewPurchaseUsecase(
	offerRepo repositories.OfferRepository,
	orderRepo repositories.OrderRepository,
	uow repositories.UnitOfWork,
	provider ProviderOrderAPI,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		offerRepo: offerRepo,
		orderRepo: orderRepo,
		uow:       uow,
		provider:  provider,
	}
}

// CreatePurchase executes a buyer's intent to purchase quantity units of an
// offer. The order insert and the offer reservation commit atomically; the
// reservation is the authoritative inventory decrement for this order (the
// settlement webhook never decrements again for locally created orders).
func (u *PurchaseUsecase) CreatePurchase(ctx context.Context, input *entities.PurchaseInput) (*entities.PurchaseResponse, error) {
	if input.Quantity <= 0 || input.BuyerExternalID == "" || input.BuyerWalletID == "" {
		return nil, domainerrors.ErrBadRequest
	}
	offerID, err := uuid.Parse(input.OfferID)
	if err != nil {
		return nil, domainerrors.ErrBadRequest
	}

	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != entities.OfferStatusActive {
		return nil, domainerrors.ErrOfferNotActive
	}
	if offer.Quantity < input.Quantity {
		return nil, domainerrors.ErrInsufficientQuantity
	}

	breakdown := CalculatePrice(input.Quantity, offer.PricePerToken)

	now := time.Now()
	order := &entities.Order{
		ID:              utils.GenerateUUIDv7(),
		BuyerExternalID: input.BuyerExternalID,
		BuyerWalletID:   input.BuyerWalletID,
		OfferID:         offer.ID,
		Quantity:        input.Quantity,
		TotalPrice:      utils.FormatAmount(breakdown.TotalPrice),
		Status:          entities.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var remaining int64
	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		remaining, err = u.offerRepo.Reserve(txCtx, offer.ID, input.Quantity)
		return err
	}); err != nil {
		return nil, err
	}

	tokenSymbol := ""
	if offer.Token != nil {
		tokenSymbol = offer.Token.Symbol
	}
	req := &kravata.CreateOrderRequest{
		Amount:        breakdown.TotalPrice,
		TokenSymbol:   tokenSymbol,
		PaymentMethod: kravata.PaymentMethodPSE,
		Buyer: kravata.OrderParty{
			ExternalID:    input.BuyerExternalID,
			WalletID:      input.BuyerWalletID,
			WalletAddress: input.BuyerWalletAddress,
		},
		Quantity:      input.Quantity,
		PricePerToken: offer.PricePerToken,
	}
	if offer.Seller != nil {
		req.Seller = kravata.OrderParty{
			ExternalID:    offer.Seller.ExternalID,
			WalletID:      offer.Seller.WalletID,
			WalletAddress: offer.Seller.WalletAddress,
		}
	}

	remote, err := u.provider.CreateOrder(ctx, req)
	if err != nil {
		u.compensate(ctx, order)
		return nil, domainerrors.Upstream("failed to create provider order", err)
	}

	if err := u.orderRepo.SetTransactionID(ctx, order.ID, remote.TransactionID); err != nil {
		// The webhook falls back to offer-based correlation, so a missing
		// transaction id is recoverable. Log and continue.
		logger.Warn(ctx, "failed to record transaction id on order",
			zap.String("order_id", order.ID.String()),
			zap.String("transaction_id", remote.TransactionID),
			zap.Error(err),
		)
	}

	pseURL, err := u.provider.GetPSEURL(ctx, remote.TransactionID, "", "")
	if err != nil {
		u.compensate(ctx, order)
		return nil, domainerrors.Upstream("failed to obtain payment redirect", err)
	}

	return &entities.PurchaseResponse{
		OrderID:           order.ID,
		TransactionID:     remote.TransactionID,
		PSEURL:            pseURL,
		TotalPrice:        breakdown.TotalPrice,
		RemainingQuantity: remaining,
	}, nil
}

// compensate unwinds a reservation whose remote leg failed: the order is
// marked failed and the reserved units go back on the offer. Best effort;
// the pending-order sweep covers anything left behind.
func (u *PurchaseUsecase) compensate(ctx context.Context, order *entities.Order) {
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.MarkFailed(txCtx, order.ID); err != nil {
			return err
		}
		return u.offerRepo.Release(txCtx, order.OfferID, order.Quantity)
	})
	if err != nil {
		logger.Error(ctx, "failed to release reservation after provider error",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}
}

// GetOrder gets an order by ID
func (u *PurchaseUsecase) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return u.orderRepo.GetByID(ctx, id)
}

// GetOrdersByBuyer lists a buyer's orders, newest first
func (u *PurchaseUsecase) GetOrdersByBuyer(ctx context.Context, buyerExternalID string, page, limit int) ([]*entities.Order, int64, error) {
	p := utils.GetPaginationParams(page, limit)
	return u.orderRepo.ListByBuyer(ctx, buyerExternalID, p.Limit, p.CalculateOffset())
}

// ListOrders lists all orders (admin view)
func (u *PurchaseUsecase) ListOrders(ctx context.Context, page, limit int) ([]*entities.Order, int64, error) {
	p := utils.GetPaginationParams(page, limit)
	return u.orderRepo.List(ctx, p.Limit, p.CalculateOffset())
}
