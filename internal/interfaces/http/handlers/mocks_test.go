package handlers_test

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"token-market.backend/internal/domain/entities"
)

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) CreatePurchase(ctx context.Context, input *entities.PurchaseInput) (*entities.PurchaseResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PurchaseResponse), args.Error(1)
}

type MockWebhookService struct {
	mock.Mock
}

func (m *MockWebhookService) ProcessEvent(ctx context.Context, eventType string, data json.RawMessage) error {
	args := m.Called(ctx, eventType, data)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) CreateBuyerSession(ctx context.Context, externalID string) (string, error) {
	args := m.Called(ctx, externalID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) CreateOffer(ctx context.Context, input *entities.CreateOfferInput) (*entities.Offer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Offer), args.Error(1)
}

func (m *MockOfferService) GetOffer(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Offer), args.Error(1)
}

func (m *MockOfferService) ListOffers(ctx context.Context, page, limit int) ([]*entities.Offer, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *MockOfferService) CancelOffer(ctx context.Context, offerID uuid.UUID, sellerExternalID string) error {
	args := m.Called(ctx, offerID, sellerExternalID)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderService) GetOrdersByBuyer(ctx context.Context, buyerExternalID string, page, limit int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, buyerExternalID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) ListOrders(ctx context.Context, page, limit int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

type MockSupportService struct {
	mock.Mock
}

func (m *MockSupportService) CreateTicket(ctx context.Context, input *entities.CreateTicketInput) (*entities.SupportTicket, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportService) GetTicket(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error) {
	args := m.Called(ctx, ticketNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SupportTicket), args.Error(1)
}

func (m *MockSupportService) ListTickets(ctx context.Context, page, limit int) ([]*entities.SupportTicket, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.SupportTicket), args.Get(1).(int64), args.Error(2)
}

func (m *MockSupportService) UpdateTicketStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error {
	args := m.Called(ctx, ticketNumber, status)
	return args.Error(0)
}
