package usecases

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/pkg/logger"
)

// EventTypeTransactionCompleted is the only event that triggers
// reconciliation; everything else is logged and ignored.
const EventTypeTransactionCompleted = "transaction.completed"

// SettlementData is the data payload of a provider settlement event
type SettlementData struct {
	TransactionID string `json:"transactionId"`
	Token         string `json:"token"`
	Amount        int64  `json:"amount"`
	ExternalID    string `json:"externalId"`
	OfferID       string `json:"offerId"`
}

// WebhookUsecase reconciles asynchronous settlement notifications from the
// payment provider against local order and offer state.
type WebhookUsecase struct {
	orderRepo        repositories.OrderRepository
	offerRepo        repositories.OfferRepository
	webhookEventRepo repositories.WebhookEventRepository
	uow              repositories.UnitOfWork
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	orderRepo repositories.OrderRepository,
	offerRepo repositories.OfferRepository,
	webhookEventRepo repositories.WebhookEventRepository,
	uow repositories.UnitOfWork,
) *WebhookUsecase {
	return &WebhookUsecase{
		orderRepo:        orderRepo,
		offerRepo:        offerRepo,
		webhookEventRepo: webhookEventRepo,
		uow:              uow,
	}
}

// ProcessEvent processes a provider webhook payload.
//
// Reconciliation policy: the purchase path's reservation is the
// authoritative inventory decrement, so a settlement whose order is found
// locally (pending or already completed) only transitions the order. The
// offer is decremented here solely for settlements with no local order
// (remote-originated fills, or orders the expiry sweep already failed and
// released). Every applied transaction id is recorded first, making
// re-delivery a no-op.
func (u *WebhookUsecase) ProcessEvent(ctx context.Context, eventType string, data json.RawMessage) error {
	if eventType != EventTypeTransactionCompleted {
		logger.Info(ctx, "ignoring webhook event", zap.String("event_type", eventType))
		return nil
	}

	var payload SettlementData
	if err := json.Unmarshal(data, &payload); err != nil {
		return domainerrors.ErrBadRequest
	}
	if payload.TransactionID == "" || payload.OfferID == "" || payload.Amount <= 0 {
		return domainerrors.ErrBadRequest
	}
	offerID, err := uuid.Parse(payload.OfferID)
	if err != nil {
		return domainerrors.ErrBadRequest
	}

	applied, err := u.webhookEventRepo.ExistsByTransactionID(ctx, payload.TransactionID)
	if err != nil {
		return err
	}
	if applied {
		logger.Info(ctx, "settlement already applied, skipping",
			zap.String("transaction_id", payload.TransactionID))
		return nil
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		event := &entities.WebhookEvent{
			TransactionID: payload.TransactionID,
			EventType:     eventType,
			OfferID:       &offerID,
			Amount:        payload.Amount,
			Payload:       string(data),
		}
		if err := u.webhookEventRepo.Create(txCtx, event); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				// Concurrent duplicate delivery lost the race; nothing to do.
				return nil
			}
			return err
		}

		order := u.correlateOrder(txCtx, payload.TransactionID, offerID)

		settleOffer := true
		if order != nil {
			switch order.Status {
			case entities.OrderStatusPending:
				if err := u.orderRepo.MarkCompleted(txCtx, order.ID, payload.TransactionID); err != nil {
					// Order state is secondary to inventory; soft-fail.
					logger.Error(txCtx, "failed to complete order",
						zap.String("order_id", order.ID.String()),
						zap.Error(err),
					)
				}
				settleOffer = false
			case entities.OrderStatusCompleted:
				settleOffer = false
			case entities.OrderStatusFailed:
				// The sweep released this order's reservation before the
				// settlement arrived; re-apply the decrement below.
				logger.Warn(txCtx, "settlement arrived for expired order",
					zap.String("order_id", order.ID.String()),
					zap.String("transaction_id", payload.TransactionID),
				)
			}
		}

		if settleOffer {
			remaining, err := u.offerRepo.Settle(txCtx, offerID, payload.Amount)
			if err != nil {
				return err
			}
			logger.Info(txCtx, "offer settled",
				zap.String("offer_id", offerID.String()),
				zap.Int64("remaining", remaining),
			)
		}
		return nil
	})
}

// correlateOrder finds the local order for a settlement: by transaction id
// first, then the newest pending order on the offer. Correlation failures are
// soft; reconciliation proceeds without an order.
func (u *WebhookUsecase) correlateOrder(ctx context.Context, transactionID string, offerID uuid.UUID) *entities.Order {
	order, err := u.orderRepo.GetByTransactionID(ctx, transactionID)
	if err == nil {
		return order
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Error(ctx, "order correlation lookup failed", zap.Error(err))
		return nil
	}

	order, err = u.orderRepo.GetLatestPendingByOffer(ctx, offerID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			logger.Error(ctx, "pending-order fallback lookup failed", zap.Error(err))
		}
		return nil
	}
	return order
}
