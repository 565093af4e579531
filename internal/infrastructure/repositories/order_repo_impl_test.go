package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
)

func newOrderTestEnv(t *testing.T) (*OrderRepository, *gorm.DB, uuid.UUID, context.Context) {
	db := newTestDB(t)
	createTokenTable(t, db)
	createSellerTable(t, db)
	createOfferTable(t, db)
	createOrderTable(t, db)

	tokenID := seedToken(t, db)
	sellerID := seedSeller(t, db, "seller-1")
	offerID := seedOffer(t, db, sellerID, tokenID, 10, entities.OfferStatusActive)

	return NewOrderRepository(db), db, offerID, context.Background()
}

func newPendingOrder(offerID uuid.UUID, createdAt time.Time) *entities.Order {
	return &entities.Order{
		ID:              uuid.New(),
		BuyerExternalID: "buyer-1",
		BuyerWalletID:   "wallet-1",
		OfferID:         offerID,
		Quantity:        2,
		TotalPrice:      "1010900",
		Status:          entities.OrderStatusPending,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	order := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "1010900", got.TotalPrice)
	require.Equal(t, entities.OrderStatusPending, got.Status)
	require.False(t, got.TransactionID.Valid)
	require.NotNil(t, got.Offer)
	require.Equal(t, offerID, got.Offer.ID)
}

func TestOrderRepository_SetTransactionIDAndCorrelate(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	order := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.SetTransactionID(ctx, order.ID, "tx-42"))

	got, err := repo.GetByTransactionID(ctx, "tx-42")
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)

	_, err = repo.GetByTransactionID(ctx, "tx-unknown")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderRepository_GetLatestPendingByOffer(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	older := newPendingOrder(offerID, time.Now().Add(-time.Hour))
	newer := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.GetLatestPendingByOffer(ctx, offerID)
	require.NoError(t, err)
	require.Equal(t, newer.ID, got.ID)

	// Completed orders no longer correlate
	require.NoError(t, repo.MarkCompleted(ctx, newer.ID, "tx-1"))
	got, err = repo.GetLatestPendingByOffer(ctx, offerID)
	require.NoError(t, err)
	require.Equal(t, older.ID, got.ID)
}

func TestOrderRepository_MarkCompleted_OnlyPending(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	order := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.MarkCompleted(ctx, order.ID, "tx-a"))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusCompleted, got.Status)
	require.Equal(t, "tx-a", got.TransactionID.String)

	// Second completion is a no-op
	err = repo.MarkCompleted(ctx, order.ID, "tx-b")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err = repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "tx-a", got.TransactionID.String)
}

func TestOrderRepository_MarkCompleted_KeepsExistingTransactionID(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	order := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.SetTransactionID(ctx, order.ID, "tx-original"))

	require.NoError(t, repo.MarkCompleted(ctx, order.ID, "tx-other"))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "tx-original", got.TransactionID.String)
}

func TestOrderRepository_MarkFailed_OnlyPending(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	order := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.MarkFailed(ctx, order.ID))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusFailed, got.Status)

	// Failed orders cannot complete
	err = repo.MarkCompleted(ctx, order.ID, "tx-late")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderRepository_ListByBuyer(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	mine := newPendingOrder(offerID, time.Now())
	require.NoError(t, repo.Create(ctx, mine))

	other := newPendingOrder(offerID, time.Now())
	other.BuyerExternalID = "buyer-2"
	require.NoError(t, repo.Create(ctx, other))

	orders, total, err := repo.ListByBuyer(ctx, "buyer-1", 10, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	require.Equal(t, mine.ID, orders[0].ID)
}

func TestOrderRepository_GetExpiredPending(t *testing.T) {
	repo, _, offerID, ctx := newOrderTestEnv(t)

	stale := newPendingOrder(offerID, time.Now().Add(-2*time.Hour))
	fresh := newPendingOrder(offerID, time.Now())
	done := newPendingOrder(offerID, time.Now().Add(-2*time.Hour))
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, done))
	require.NoError(t, repo.MarkCompleted(ctx, done.ID, "tx-done"))

	expired, err := repo.GetExpiredPending(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	require.Equal(t, stale.ID, expired[0].ID)
}
