package models

import (
	"time"

	"jubbisoft/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash   string         `gorm:"size:255;not null" json:"-"`
	FirstName      string         `gorm:"size:64" json:"first_name"`
	LastName       string         `gorm:"size:64" json:"last_name"`
	Email          *string        `gorm:"uniqueIndex;size:255" json:"email"` // nil when not set (avoids duplicate '' on unique index)
	ProfilePicture string         `gorm:"size:512" json:"profile_picture"`
	Role           string         `gorm:"size:20;not null;index" json:"role"` // USER | ADMIN
	Country        string         `gorm:"size:64" json:"country"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Wallet  *Wallet  `gorm:"foreignKey:UserID" json:"wallet,omitempty"`
	Loyalty *Loyalty `gorm:"foreignKey:UserID" json:"loyalty,omitempty"`

	// OwnedGames is the buyer side of the games_users purchase relation.
	OwnedGames []Game `gorm:"many2many:games_users" json:"owned_games,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == domain.RoleAdmin }
