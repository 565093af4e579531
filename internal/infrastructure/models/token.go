package models

import (
	"time"

	"github.com/google/uuid"
)

type Token struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TokenAddress string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Protocol     string    `gorm:"type:varchar(50)"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Symbol       string    `gorm:"type:varchar(50);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:varchar(500)"`
	Blockchain   string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
