package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
)

func TestWebhookEventRepository_CreateAndExists(t *testing.T) {
	db := newTestDB(t)
	createWebhookEventTable(t, db)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	offerID := uuid.New()
	event := &entities.WebhookEvent{
		TransactionID: "tx-1",
		EventType:     "transaction.settled",
		OfferID:       &offerID,
		Amount:        3,
		Payload:       `{"transactionId":"tx-1"}`,
	}
	require.NoError(t, repo.Create(ctx, event))
	require.NotEqual(t, uuid.Nil, event.ID)
	require.False(t, event.CreatedAt.IsZero())

	seen, err := repo.ExistsByTransactionID(ctx, "tx-1")
	require.NoError(t, err)
	require.True(t, seen)

	seen, err = repo.ExistsByTransactionID(ctx, "tx-other")
	require.NoError(t, err)
	require.False(t, seen)
}

func TestWebhookEventRepository_DuplicateTransactionID(t *testing.T) {
	db := newTestDB(t)
	createWebhookEventTable(t, db)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	first := &entities.WebhookEvent{TransactionID: "tx-dup", EventType: "transaction.settled", Amount: 1}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.WebhookEvent{TransactionID: "tx-dup", EventType: "transaction.settled", Amount: 1}
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestWebhookEventRepository_EmptyPayloadStoredAsObject(t *testing.T) {
	db := newTestDB(t)
	createWebhookEventTable(t, db)
	repo := NewWebhookEventRepository(db)
	ctx := context.Background()

	event := &entities.WebhookEvent{TransactionID: "tx-empty", EventType: "transaction.settled"}
	require.NoError(t, repo.Create(ctx, event))

	var payload string
	require.NoError(t, db.Raw("SELECT payload FROM webhook_events WHERE transaction_id = ?", "tx-empty").Scan(&payload).Error)
	require.Equal(t, "{}", payload)
}
