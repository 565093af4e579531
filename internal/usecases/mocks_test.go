package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"token-market.backend/internal/domain/entities"
	"token-market.backend/internal/infrastructure/kravata"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *entities.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListActive(ctx context.Context, limit, offset int) ([]*entities.Offer, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfferRepository) Reserve(ctx context.Context, id uuid.UUID, qty int64) (int64, error) {
	args := m.Called(ctx, id, qty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) Release(ctx context.Context, id uuid.UUID, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func (m *MockOfferRepository) Settle(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) Cancel(ctx context.Context, id, sellerID uuid.UUID) error {
	args := m.Called(ctx, id, sellerID)
	return args.Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Order, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLatestPendingByOffer(ctx context.Context, offerID uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) SetTransactionID(ctx context.Context, id uuid.UUID, transactionID string) error {
	args := m.Called(ctx, id, transactionID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkCompleted(ctx context.Context, id uuid.UUID, transactionID string) error {
	args := m.Called(ctx, id, transactionID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByBuyer(ctx context.Context, buyerExternalID string, limit, offset int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, buyerExternalID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) List(ctx context.Context, limit, offset int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GetExpiredPending(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

// Mock SellerRepository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) Upsert(ctx context.Context, seller *entities.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *MockSellerRepository) GetByExternalID(ctx context.Context, externalID string) (*entities.Seller, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Seller), args.Error(1)
}

// Mock TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Token, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Token), args.Error(1)
}

func (m *MockTokenRepository) List(ctx context.Context, limit, offset int) ([]*entities.Token, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Token), args.Get(1).(int64), args.Error(2)
}

// Mock WebhookEventRepository
type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) Create(ctx context.Context, event *entities.WebhookEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockWebhookEventRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

// Mock SupportTicketRepository
type MockSupportTicketRepository struct {
	mock.Mock
}

func (m *MockSupportTicketRepository) Create(ctx context.Context, ticket *entities.SupportTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockSupportTicketRepository) GetByNumber(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error) {
	args := m.Called(ctx, ticketNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportTicketRepository) List(ctx context.Context, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SupportTicket), args.Get(1).(int64), args.Error(2)
}

func (m *MockSupportTicketRepository) UpdateStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error {
	args := m.Called(ctx, ticketNumber, status)
	return args.Error(0)
}

// Mock provider client (order + wallet + compliance slices)
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateOrder(ctx context.Context, req *kravata.CreateOrderRequest) (*kravata.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kravata.CreateOrderResponse), args.Error(1)
}

func (m *MockProvider) GetPSEURL(ctx context.Context, transactionID, bankName, bankCode string) (string, error) {
	args := m.Called(ctx, transactionID, bankName, bankCode)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetBalance(ctx context.Context, externalID string) ([]kravata.Balance, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kravata.Balance), args.Error(1)
}

func (m *MockProvider) ListTransactions(ctx context.Context, externalID string) ([]kravata.Transaction, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kravata.Transaction), args.Error(1)
}

func (m *MockProvider) GetKYCStatus(ctx context.Context, externalID string) (*kravata.KYCStatus, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kravata.KYCStatus), args.Error(1)
}
