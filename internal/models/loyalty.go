package models

import (
	"time"
)

// Loyalty tracks purchases per user and the resulting discount tier.
// Created once at registration; the tier never regresses from PREMIUM.
type Loyalty struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Tier           string    `gorm:"size:10;not null;default:'DEFAULT'" json:"tier"` // DEFAULT | PREMIUM
	GamesPurchased int       `gorm:"not null;default:0" json:"games_purchased"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Loyalty) TableName() string { return "loyalties" }
