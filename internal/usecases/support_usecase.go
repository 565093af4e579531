package usecases

import (
	"context"
	"time"

	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/pkg/utils"
)

// SupportUsecase handles support ticket business logic
type SupportUsecase struct {
	ticketRepo repositories.SupportTicketRepository
}

// NewSupportUsecase creates a new support usecase
func NewSupportUsecase(ticketRepo repositories.SupportTicketRepository) *SupportUsecase {
	return &SupportUsecase{ticketRepo: ticketRepo}
}

// CreateTicket opens a ticket. Exactly one of ExternalID (KYC-approved users)
// or Documento (everyone else) must identify the reporter.
func (u *SupportUsecase) CreateTicket(ctx context.Context, input *entities.CreateTicketInput) (*entities.SupportTicket, error) {
	hasExternal := input.ExternalID != ""
	hasDocumento := input.Documento != ""
	if hasExternal == hasDocumento {
		return nil, domainerrors.BadRequest("exactly one of externalId or documento is required")
	}

	number, err := utils.GenerateTicketNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ticket := &entities.SupportTicket{
		ID:           utils.GenerateUUIDv7(),
		TicketNumber: number,
		TipoProblema: input.TipoProblema,
		ExternalID:   input.ExternalID,
		Documento:    input.Documento,
		Correo:       input.Correo,
		Comentarios:  input.Comentarios,
		Archivos:     input.Archivos,
		Estado:       entities.TicketStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetTicket fetches a ticket by its number
func (u *SupportUsecase) GetTicket(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error) {
	return u.ticketRepo.GetByNumber(ctx, ticketNumber)
}

// ListTickets lists tickets, newest first (admin view)
func (u *SupportUsecase) ListTickets(ctx context.Context, page, limit int) ([]*entities.SupportTicket, int64, error) {
	p := utils.GetPaginationParams(page, limit)
	return u.ticketRepo.List(ctx, p.Limit, p.CalculateOffset())
}

// UpdateTicketStatus moves a ticket through its workflow (admin action)
func (u *SupportUsecase) UpdateTicketStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error {
	switch status {
	case entities.TicketStatusOpen, entities.TicketStatusInProgress, entities.TicketStatusClosed:
	default:
		return domainerrors.BadRequest("invalid ticket status")
	}
	return u.ticketRepo.UpdateStatus(ctx, ticketNumber, status)
}
