package models

import (
	"time"

	"github.com/google/uuid"
)

type SupportTicket struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TicketNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	TipoProblema string    `gorm:"type:varchar(100);not null"`
	ExternalID   *string   `gorm:"type:varchar(255);index"`
	Documento    *string   `gorm:"type:varchar(50)"`
	Correo       string    `gorm:"type:varchar(255);not null"`
	Comentarios  string    `gorm:"type:text;not null"`
	Archivos     string    `gorm:"type:jsonb;default:'[]'"`
	Estado       string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
