package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BuyerExternalID string    `gorm:"type:varchar(255);not null;index"`
	BuyerWalletID   string    `gorm:"type:varchar(255);not null"`
	OfferID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int64     `gorm:"not null"`
	TotalPrice      string    `gorm:"type:varchar(100);not null"`
	TransactionID   *string   `gorm:"type:varchar(255);index"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Offer Offer `gorm:"foreignKey:OfferID"`
}
