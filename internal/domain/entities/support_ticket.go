package entities

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents support ticket status
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "abierto"
	TicketStatusInProgress TicketStatus = "en_proceso"
	TicketStatusClosed     TicketStatus = "cerrado"
)

// TicketFile is an uploaded attachment reference
type TicketFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// SupportTicket represents a user support request. Exactly one of ExternalID
// or Documento must be set, depending on whether the reporter completed KYC.
type SupportTicket struct {
	ID           uuid.UUID    `json:"id"`
	TicketNumber string       `json:"ticketNumber"`
	TipoProblema string       `json:"tipoProblema"`
	ExternalID   string       `json:"externalId,omitempty"`
	Documento    string       `json:"documento,omitempty"`
	Correo       string       `json:"correo"`
	Comentarios  string       `json:"comentarios"`
	Archivos     []TicketFile `json:"archivos,omitempty"`
	Estado       TicketStatus `json:"estado"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// CreateTicketInput represents input for opening a support ticket
type CreateTicketInput struct {
	TipoProblema string       `json:"tipoProblema" binding:"required"`
	ExternalID   string       `json:"externalId"`
	Documento    string       `json:"documento"`
	Correo       string       `json:"correo" binding:"required"`
	Comentarios  string       `json:"comentarios" binding:"required"`
	Archivos     []TicketFile `json:"archivos"`
}
