package models

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int64     `gorm:"not null"`
	PricePerToken float64   `gorm:"type:numeric;not null"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Token  Token  `gorm:"foreignKey:TokenID"`
	Seller Seller `gorm:"foreignKey:SellerID"`
}
