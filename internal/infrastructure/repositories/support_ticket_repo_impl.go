package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/models"
)

// SupportTicketRepository implements support ticket data operations
type SupportTicketRepository struct {
	db *gorm.DB
}

// NewSupportTicketRepository creates a new support ticket repository
func NewSupportTicketRepository(db *gorm.DB) *SupportTicketRepository {
	return &SupportTicketRepository{db: db}
}

func (r *SupportTicketRepository) Create(ctx context.Context, ticket *entities.SupportTicket) error {
	db := GetDB(ctx, r.db)

	archivos, err := json.Marshal(ticket.Archivos)
	if err != nil {
		return err
	}

	m := &models.SupportTicket{
		ID:           ticket.ID,
		TicketNumber: ticket.TicketNumber,
		TipoProblema: ticket.TipoProblema,
		Correo:       ticket.Correo,
		Comentarios:  ticket.Comentarios,
		Archivos:     string(archivos),
		Estado:       string(ticket.Estado),
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
	if ticket.ExternalID != "" {
		m.ExternalID = &ticket.ExternalID
	}
	if ticket.Documento != "" {
		m.Documento = &ticket.Documento
	}

	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	ticket.ID = m.ID
	return nil
}

func (r *SupportTicketRepository) GetByNumber(ctx context.Context, ticketNumber string) (*entities.SupportTicket, error) {
	var m models.SupportTicket
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("ticket_number = ?", ticketNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return ticketToEntity(&m), nil
}

func (r *SupportTicketRepository) List(ctx context.Context, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SupportTicket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.SupportTicket
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	tickets := make([]*entities.SupportTicket, 0, len(ms))
	for i := range ms {
		tickets = append(tickets, ticketToEntity(&ms[i]))
	}
	return tickets, total, nil
}

func (r *SupportTicketRepository) UpdateStatus(ctx context.Context, ticketNumber string, status entities.TicketStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.SupportTicket{}).
		Where("ticket_number = ?", ticketNumber).
		Updates(map[string]interface{}{
			"estado":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func ticketToEntity(m *models.SupportTicket) *entities.SupportTicket {
	t := &entities.SupportTicket{
		ID:           m.ID,
		TicketNumber: m.TicketNumber,
		TipoProblema: m.TipoProblema,
		Correo:       m.Correo,
		Comentarios:  m.Comentarios,
		Estado:       entities.TicketStatus(m.Estado),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ExternalID != nil {
		t.ExternalID = *m.ExternalID
	}
	if m.Documento != nil {
		t.Documento = *m.Documento
	}
	if m.Archivos != "" {
		// Tolerate malformed stored attachments rather than failing the read
		_ = json.Unmarshal([]byte(m.Archivos), &t.Archivos)
	}
	return t
}
