package models

import (
	"time"
)

// Treasury is the platform-owned balance that funds wallet top-ups.
// Exactly one row exists, looked up by its unique name.
type Treasury struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	BalanceCents int64     `gorm:"not null;default:0" json:"balance_cents"`
	Currency     string    `gorm:"size:3;not null;default:'EUR'" json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Treasury) TableName() string { return "treasuries" }
