package service

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"go.uber.org/zap"
)

const reasonTreasuryUnderfunded = "Treasury does not have enough funds"

// TreasuryService owns the platform treasury: the singleton balance that
// funds user wallet top-ups.
type TreasuryService struct {
	stores  Stores
	tx      TxManager
	wallets *WalletService
}

func NewTreasuryService(stores Stores, tx TxManager, wallets *WalletService) *TreasuryService {
	return &TreasuryService{stores: stores, tx: tx, wallets: wallets}
}

// Bootstrap creates the singleton treasury row with the seed balance if it
// does not exist yet. Idempotent; the unique name constraint guards
// concurrent bootstraps.
func (s *TreasuryService) Bootstrap() error {
	_, err := s.stores.Treasuries.GetByName(domain.TreasuryName)
	if err == nil {
		zap.S().Info("treasury already exists, skipping initialization")
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	t := &models.Treasury{
		Name:         domain.TreasuryName,
		BalanceCents: domain.TreasurySeedCents,
		Currency:     domain.CurrencyEUR,
	}
	if createErr := s.stores.Treasuries.Create(t); createErr != nil {
		// A concurrent bootstrap may have won the race on the unique name.
		if _, retryErr := s.stores.Treasuries.GetByName(domain.TreasuryName); retryErr == nil {
			return nil
		}
		return createErr
	}
	zap.S().Infof("treasury initialized with balance %s EUR", domain.FormatCents(t.BalanceCents))
	return nil
}

func (s *TreasuryService) Get() (*models.Treasury, error) {
	return s.stores.Treasuries.GetByName(domain.TreasuryName)
}

// Grant moves the fixed top-up amount from the treasury into the user's
// wallet. The returned Transaction is FAILED when the treasury is
// underfunded or the wallet is inactive; the treasury is debited only
// after the wallet deposit is APPROVED. The whole grant runs in one
// transaction.
func (s *TreasuryService) Grant(userID uint) (*models.Transaction, error) {
	var txn *models.Transaction
	err := s.tx.InTx(func(st Stores) error {
		treasury, err := st.Treasuries.GetByName(domain.TreasuryName)
		if err != nil {
			return fmt.Errorf("treasury not initialized: %w", err)
		}
		user, err := st.Users.GetByID(userID)
		if err != nil {
			return err
		}
		if user.Wallet == nil {
			return fmt.Errorf("wallet for user %d: %w", userID, domain.ErrNotFound)
		}

		if treasury.BalanceCents < domain.TreasuryGrantCents {
			zap.S().Errorf("grant failed for user %d: treasury underfunded", userID)
			reason := reasonTreasuryUnderfunded
			txn = &models.Transaction{
				OwnerID:          user.ID,
				Sender:           domain.PlatformName,
				Receiver:         fmt.Sprintf("wallet-%d", user.Wallet.ID),
				AmountCents:      domain.TreasuryGrantCents,
				BalanceLeftCents: user.Wallet.BalanceCents,
				Currency:         user.Wallet.Currency,
				Type:             domain.TransactionTypeDeposit,
				Status:           domain.TransactionStatusFailed,
				Description:      fmt.Sprintf("Attempt to add funds: %s EUR", domain.FormatCents(domain.TreasuryGrantCents)),
				FailureReason:    &reason,
			}
			return st.Transactions.Create(txn)
		}

		txn, err = s.wallets.AddFundsTx(st, user.Wallet.ID, domain.TreasuryGrantCents)
		if err != nil {
			return err
		}
		if txn.Status == domain.TransactionStatusFailed {
			zap.S().Errorf("grant failed for user %d: wallet %d inactive", userID, user.Wallet.ID)
			return nil
		}

		if _, err := st.Treasuries.Debit(domain.TreasuryName, domain.TreasuryGrantCents); err != nil {
			return err
		}
		zap.S().Infof("granted %s EUR to user %d (wallet %d)",
			domain.FormatCents(domain.TreasuryGrantCents), userID, user.Wallet.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
