package repository

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TreasuryRepository struct {
	db *gorm.DB
}

func NewTreasuryRepository(db *gorm.DB) *TreasuryRepository {
	return &TreasuryRepository{db: db}
}

func (r *TreasuryRepository) GetByName(name string) (*models.Treasury, error) {
	var t models.Treasury
	err := r.db.Where("name = ?", name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("treasury %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TreasuryRepository) Create(t *models.Treasury) error {
	return r.db.Create(t).Error
}

// Debit subtracts amountCents from the treasury balance under a row lock.
// Callers must run inside a transaction. Returns ErrTreasuryUnderfunded
// without mutating when the balance is short.
func (r *TreasuryRepository) Debit(name string, amountCents int64) (*models.Treasury, error) {
	var t models.Treasury
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("name = ?", name).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("treasury %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if t.BalanceCents < amountCents {
		return &t, domain.ErrTreasuryUnderfunded
	}
	t.BalanceCents -= amountCents
	if err := r.db.Model(&t).Update("balance_cents", t.BalanceCents).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
