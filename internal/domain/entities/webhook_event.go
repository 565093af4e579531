package entities

import (
	"time"

	"github.com/google/uuid"
)

// WebhookEvent records a settlement notification that has already been
// applied. TransactionID is unique; re-deliveries of the same transaction are
// detected against this set so offer quantity is never decremented twice.
type WebhookEvent struct {
	ID            uuid.UUID  `json:"id"`
	TransactionID string     `json:"transactionId"`
	EventType     string     `json:"eventType"`
	OfferID       *uuid.UUID `json:"offerId,omitempty"`
	Amount        int64      `json:"amount"`
	Payload       string     `json:"payload,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
