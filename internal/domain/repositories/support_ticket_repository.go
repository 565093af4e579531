package repositories

import (
	"context"

	"token-market.backend/internal/domain/entities"
)

// SupportTicketRepository defines support ticket data operations
type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entities.SupportTicket) error
	GetByNumber(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error)
	List(ctx context.Context, limit, offset int) ([]*entities.SupportTicket, int64, error)
	UpdateStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error
}
