package service

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"go.uber.org/zap"
)

// Failure reasons recorded on FAILED transactions.
const (
	reasonInactiveWallet      = "Inactive wallet status"
	reasonInsufficientBalance = "Not enough balance to purchase this game!"
	reasonInactiveDeposit     = "Inactive wallet"
)

// WalletService moves money in and out of user wallets. Every attempt,
// successful or not, persists exactly one Transaction.
type WalletService struct {
	stores Stores
	tx     TxManager
}

func NewWalletService(stores Stores, tx TxManager) *WalletService {
	return &WalletService{stores: stores, tx: tx}
}

// CreateWalletTx initializes the wallet for a new user with the signup
// bonus, within the caller's transactional scope.
func (s *WalletService) CreateWalletTx(st Stores, userID uint) (*models.Wallet, error) {
	w := &models.Wallet{
		UserID:       userID,
		BalanceCents: domain.SignupBonusCents,
		Status:       domain.WalletStatusActive,
		Currency:     domain.CurrencyEUR,
	}
	if err := st.Wallets.Create(w); err != nil {
		return nil, err
	}
	zap.S().Infof("created wallet %d with bonus balance %s", w.ID, domain.FormatCents(w.BalanceCents))
	return w, nil
}

// Charge attempts to withdraw amountCents from the wallet. The returned
// Transaction is FAILED (with a reason) for an inactive wallet or an
// insufficient balance, APPROVED otherwise; the error is non-nil only for
// fatal faults such as a missing wallet.
func (s *WalletService) Charge(walletID uint, amountCents int64, description string) (*models.Transaction, error) {
	var txn *models.Transaction
	err := s.tx.InTx(func(st Stores) error {
		var err error
		txn, err = s.ChargeTx(st, walletID, amountCents, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ChargeTx is Charge running within an existing transactional scope, so
// the purchase flow can commit the charge together with its follow-up
// writes.
func (s *WalletService) ChargeTx(st Stores, walletID uint, amountCents int64, description string) (*models.Transaction, error) {
	w, err := st.Wallets.Debit(walletID, amountCents)
	switch {
	case errors.Is(err, domain.ErrWalletInactive):
		zap.S().Warnf("charge failed for wallet %d: inactive", walletID)
		return s.record(st, w, amountCents, domain.TransactionTypeWithdrawal, description, reasonInactiveWallet)
	case errors.Is(err, domain.ErrInsufficientBalance):
		zap.S().Warnf("charge failed for wallet %d: insufficient balance", walletID)
		return s.record(st, w, amountCents, domain.TransactionTypeWithdrawal, description, reasonInsufficientBalance)
	case err != nil:
		return nil, err
	}
	zap.S().Infof("charged %s EUR from wallet %d (new balance %s)",
		domain.FormatCents(amountCents), walletID, domain.FormatCents(w.BalanceCents))
	return s.record(st, w, amountCents, domain.TransactionTypeWithdrawal, description, "")
}

// AddFunds credits amountCents to the wallet. Mirror of Charge: it fails
// only for an inactive wallet and always persists one Transaction.
func (s *WalletService) AddFunds(walletID uint, amountCents int64) (*models.Transaction, error) {
	var txn *models.Transaction
	err := s.tx.InTx(func(st Stores) error {
		var err error
		txn, err = s.AddFundsTx(st, walletID, amountCents)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// AddFundsTx is AddFunds within an existing transactional scope.
func (s *WalletService) AddFundsTx(st Stores, walletID uint, amountCents int64) (*models.Transaction, error) {
	description := fmt.Sprintf("Added funds %s EUR", domain.FormatCents(amountCents))
	w, err := st.Wallets.Credit(walletID, amountCents)
	switch {
	case errors.Is(err, domain.ErrWalletInactive):
		zap.S().Warnf("deposit failed for wallet %d: inactive", walletID)
		return s.record(st, w, amountCents, domain.TransactionTypeDeposit, description, reasonInactiveDeposit)
	case err != nil:
		return nil, err
	}
	zap.S().Infof("added %s EUR to wallet %d (new balance %s)",
		domain.FormatCents(amountCents), walletID, domain.FormatCents(w.BalanceCents))
	return s.record(st, w, amountCents, domain.TransactionTypeDeposit, description, "")
}

// record persists the audit row for one fund-movement attempt. The wallet
// carries the post-attempt balance (unchanged when failureReason is set).
func (s *WalletService) record(st Stores, w *models.Wallet, amountCents int64, txType, description, failureReason string) (*models.Transaction, error) {
	walletRef := fmt.Sprintf("wallet-%d", w.ID)
	txn := &models.Transaction{
		OwnerID:          w.UserID,
		Sender:           walletRef,
		Receiver:         domain.PlatformName,
		AmountCents:      amountCents,
		BalanceLeftCents: w.BalanceCents,
		Currency:         w.Currency,
		Type:             txType,
		Status:           domain.TransactionStatusApproved,
	}
	if txType == domain.TransactionTypeDeposit {
		txn.Sender = domain.PlatformName
		txn.Receiver = walletRef
	}
	txn.Description = description
	if failureReason != "" {
		txn.Status = domain.TransactionStatusFailed
		txn.FailureReason = &failureReason
	}
	if err := st.Transactions.Create(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *WalletService) GetByUserID(userID uint) (*models.Wallet, error) {
	return s.stores.Wallets.GetByUserID(userID)
}

// SwitchStatus flips a wallet between ACTIVE and INACTIVE.
func (s *WalletService) SwitchStatus(walletID uint) (*models.Wallet, error) {
	w, err := s.stores.Wallets.GetByID(walletID)
	if err != nil {
		return nil, err
	}
	if w.Status == domain.WalletStatusActive {
		w.Status = domain.WalletStatusInactive
	} else {
		w.Status = domain.WalletStatusActive
	}
	if err := s.stores.Wallets.Save(w); err != nil {
		return nil, err
	}
	return w, nil
}
