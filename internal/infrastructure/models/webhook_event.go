package models

import (
	"time"

	"github.com/google/uuid"
)

type WebhookEvent struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TransactionID string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	EventType     string     `gorm:"type:varchar(100);not null"`
	OfferID       *uuid.UUID `gorm:"type:uuid;index"`
	Amount        int64
	Payload       string `gorm:"type:jsonb;default:'{}'"`
	CreatedAt     time.Time
}
