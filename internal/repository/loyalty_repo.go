package repository

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"gorm.io/gorm"
)

type LoyaltyRepository struct {
	db *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository {
	return &LoyaltyRepository{db: db}
}

func (r *LoyaltyRepository) GetByUserID(userID uint) (*models.Loyalty, error) {
	var l models.Loyalty
	err := r.db.Where("user_id = ?", userID).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loyalty record for user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoyaltyRepository) Create(l *models.Loyalty) error {
	return r.db.Create(l).Error
}

func (r *LoyaltyRepository) Save(l *models.Loyalty) error {
	return r.db.Save(l).Error
}
