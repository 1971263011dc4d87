package repository

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) GetByID(id uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.First(&w, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("wallet %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("wallet for user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) Create(w *models.Wallet) error {
	return r.db.Create(w).Error
}

func (r *WalletRepository) Save(w *models.Wallet) error {
	return r.db.Save(w).Error
}

// lockByID reads a wallet row under SELECT ... FOR UPDATE. Callers must run
// inside a transaction; the lock is held until commit, serializing
// concurrent read-check-write cycles against the same wallet.
func (r *WalletRepository) lockByID(id uint) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&w, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("wallet %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Debit subtracts amountCents from the wallet balance. On
// ErrWalletInactive or ErrInsufficientBalance the returned wallet carries
// the untouched pre-attempt state.
func (r *WalletRepository) Debit(walletID uint, amountCents int64) (*models.Wallet, error) {
	w, err := r.lockByID(walletID)
	if err != nil {
		return nil, err
	}
	if w.Status == domain.WalletStatusInactive {
		return w, domain.ErrWalletInactive
	}
	if w.BalanceCents < amountCents {
		return w, domain.ErrInsufficientBalance
	}
	w.BalanceCents -= amountCents
	if err := r.db.Model(w).Update("balance_cents", w.BalanceCents).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// Credit adds amountCents to the wallet balance. Fails only for an
// inactive wallet, mirroring Debit.
func (r *WalletRepository) Credit(walletID uint, amountCents int64) (*models.Wallet, error) {
	w, err := r.lockByID(walletID)
	if err != nil {
		return nil, err
	}
	if w.Status == domain.WalletStatusInactive {
		return w, domain.ErrWalletInactive
	}
	w.BalanceCents += amountCents
	if err := r.db.Model(w).Update("balance_cents", w.BalanceCents).Error; err != nil {
		return nil, err
	}
	return w, nil
}
