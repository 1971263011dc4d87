package models

import (
	"time"

	"gorm.io/gorm"
)

type Game struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	PublisherID   uint           `gorm:"not null;index" json:"publisher_id"`
	Title         string         `gorm:"uniqueIndex;size:255;not null" json:"title"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	PriceCents    int64          `gorm:"not null" json:"price_cents"`
	Genre         string         `gorm:"size:20;not null" json:"genre"`
	IsAvailable   bool           `gorm:"not null;default:false" json:"is_available"`
	ImageCoverURL string         `gorm:"size:512" json:"image_cover_url"`
	ReleaseDate   time.Time      `json:"release_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Publisher User `gorm:"foreignKey:PublisherID" json:"-"`

	// Purchasers is the game side of the games_users purchase relation.
	// Membership only ever grows; both sides are written by the purchase flow.
	Purchasers []User `gorm:"many2many:games_users" json:"-"`
}

func (Game) TableName() string { return "games" }
