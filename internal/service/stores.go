package service

import (
	"jubbisoft/internal/models"
)

// Store interfaces are declared here, on the consumer side; the gorm
// implementations live in internal/repository.

type UserStore interface {
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Create(u *models.User) error
	Save(u *models.User) error
}

type GameStore interface {
	GetByID(id uint) (*models.Game, error)
	GetByTitle(title string) (*models.Game, error)
	GetAll() ([]models.Game, error)
	GetAllAvailable() ([]models.Game, error)
	GetAllByPublisherID(publisherID uint) ([]models.Game, error)
	GetPurchasedByUserID(userID uint) ([]models.Game, error)
	Create(g *models.Game) error
	Save(g *models.Game) error
	Delete(id uint) error
	IsOwnedBy(gameID, userID uint) (bool, error)
	RecordOwnership(gameID, userID uint) error
}

type WalletStore interface {
	GetByID(id uint) (*models.Wallet, error)
	GetByUserID(userID uint) (*models.Wallet, error)
	Create(w *models.Wallet) error
	Save(w *models.Wallet) error
	// Debit and Credit perform the atomic read-check-write of a balance.
	// On ErrWalletInactive or ErrInsufficientBalance the returned wallet
	// carries the untouched pre-attempt state.
	Debit(walletID uint, amountCents int64) (*models.Wallet, error)
	Credit(walletID uint, amountCents int64) (*models.Wallet, error)
}

type TransactionStore interface {
	Create(t *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	ListByOwnerID(ownerID uint) ([]models.Transaction, error)
}

type LoyaltyStore interface {
	GetByUserID(userID uint) (*models.Loyalty, error)
	Create(l *models.Loyalty) error
	Save(l *models.Loyalty) error
}

type TreasuryStore interface {
	GetByName(name string) (*models.Treasury, error)
	Create(t *models.Treasury) error
	Debit(name string, amountCents int64) (*models.Treasury, error)
}

// Stores bundles every entity store bound to one database scope.
type Stores struct {
	Users        UserStore
	Games        GameStore
	Wallets      WalletStore
	Transactions TransactionStore
	Loyalties    LoyaltyStore
	Treasuries   TreasuryStore
}

// TxManager runs a function against stores bound to a single database
// transaction, committing on nil and rolling back on error. Multi-step
// flows (registration, purchase, treasury grant) use it as their explicit
// unit-of-work boundary.
type TxManager interface {
	InTx(fn func(Stores) error) error
}

// Notifier delivers purchase notices to the external notice service.
// Delivery is best-effort: callers log and discard any error.
type Notifier interface {
	CreateNotice(userID, gameID uint, title, description, username, gameURL, publisherName string) error
}
