package repository

import (
	"jubbisoft/internal/service"

	"gorm.io/gorm"
)

// NewStores builds the full store bundle over a gorm handle. Passing a
// transaction handle binds every store to that transaction.
func NewStores(db *gorm.DB) service.Stores {
	return service.Stores{
		Users:        NewUserRepository(db),
		Games:        NewGameRepository(db),
		Wallets:      NewWalletRepository(db),
		Transactions: NewTransactionRepository(db),
		Loyalties:    NewLoyaltyRepository(db),
		Treasuries:   NewTreasuryRepository(db),
	}
}

// TxManager implements service.TxManager over gorm transactions.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) InTx(fn func(service.Stores) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}
