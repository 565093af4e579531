package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/pkg/logger"
)

const expiryBatchSize = 100

// OrderExpiryJob fails pending orders whose payment never settled and
// returns their reserved quantity to the offer.
type OrderExpiryJob struct {
	orderRepo repositories.OrderRepository
	offerRepo repositories.OfferRepository
	uow       repositories.UnitOfWork
	interval  time.Duration
	ttl       time.Duration
	stop      chan struct{}
}

// NewOrderExpiryJob creates a new pending-order expiry job
func NewOrderExpiryJob(
	orderRepo repositories.OrderRepository,
	offerRepo repositories.OfferRepository,
	uow repositories.UnitOfWork,
	interval, ttl time.Duration,
) *OrderExpiryJob {
	return &OrderExpiryJob{
		orderRepo: orderRepo,
		offerRepo: offerRepo,
		uow:       uow,
		interval:  interval,
		ttl:       ttl,
		stop:      make(chan struct{}),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called
func (j *OrderExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting order expiry job",
		zap.Duration("interval", j.interval),
		zap.Duration("ttl", j.ttl),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// Stop terminates the sweep loop
func (j *OrderExpiryJob) Stop() {
	close(j.stop)
}

func (j *OrderExpiryJob) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-j.ttl)

	expired, err := j.orderRepo.GetExpiredPending(ctx, cutoff, expiryBatchSize)
	if err != nil {
		logger.Error(ctx, "failed to fetch expired pending orders", zap.Error(err))
		return
	}
	if len(expired) == 0 {
		return
	}

	logger.Info(ctx, "expiring stale pending orders", zap.Int("count", len(expired)))

	for _, order := range expired {
		// Each order fails and releases atomically so one bad row does not
		// block the batch.
		err := j.uow.Do(ctx, func(txCtx context.Context) error {
			if err := j.orderRepo.MarkFailed(txCtx, order.ID); err != nil {
				return err
			}
			return j.offerRepo.Release(txCtx, order.OfferID, order.Quantity)
		})
		if err != nil {
			logger.Error(ctx, "failed to expire order",
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
		}
	}
}
