package models

import (
	"time"

	"github.com/google/uuid"
)

type Seller struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ExternalID    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	WalletID      string    `gorm:"type:varchar(255)"`
	WalletAddress string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
