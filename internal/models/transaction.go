package models

import (
	"time"
)

// Transaction is the immutable audit record of one attempted fund movement.
// Rows are append-only: every charge, fund addition or treasury grant
// attempt produces exactly one, approved or failed.
type Transaction struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OwnerID          uint      `gorm:"not null;index" json:"owner_id"`
	Sender           string    `gorm:"size:64;not null" json:"sender"`
	Receiver         string    `gorm:"size:64;not null" json:"receiver"`
	AmountCents      int64     `gorm:"not null" json:"amount_cents"`
	BalanceLeftCents int64     `gorm:"not null" json:"balance_left_cents"` // wallet balance after the attempt
	Currency         string    `gorm:"size:3;not null" json:"currency"`
	Type             string    `gorm:"size:10;not null;index" json:"type"`   // DEPOSIT | WITHDRAWAL
	Status           string    `gorm:"size:10;not null;index" json:"status"` // APPROVED | FAILED
	Description      string    `gorm:"size:255;not null" json:"description"`
	FailureReason    *string   `gorm:"size:255" json:"failure_reason,omitempty"` // set only on FAILED rows
	CreatedAt        time.Time `json:"created_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
