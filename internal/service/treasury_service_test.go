package service

import (
	"testing"

	"jubbisoft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSeedsTreasury(t *testing.T) {
	e := newEnv()

	require.NoError(t, e.treasury.Bootstrap())

	tr, err := e.treasury.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.TreasuryName, tr.Name)
	assert.Equal(t, int64(100000), tr.BalanceCents)
	assert.Equal(t, domain.CurrencyEUR, tr.Currency)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	e := newEnv()
	seedTreasury(e.db, 4200)

	require.NoError(t, e.treasury.Bootstrap())

	tr, err := e.treasury.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(4200), tr.BalanceCents)
}

func TestGrantMovesFundsFromTreasuryToWallet(t *testing.T) {
	e := newEnv()
	seedTreasury(e.db, 100000)
	u := seedUser(e.db, "alice", 0, domain.WalletStatusActive)

	txn, err := e.treasury.Grant(u.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionStatusApproved, txn.Status)
	assert.Equal(t, domain.TransactionTypeDeposit, txn.Type)
	assert.Equal(t, int64(10000), txn.AmountCents)
	assert.Equal(t, int64(10000), txn.BalanceLeftCents)

	w, err := e.wallets.GetByUserID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), w.BalanceCents)

	tr, err := e.treasury.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(90000), tr.BalanceCents)
}

func TestGrantUnderfundedTreasury(t *testing.T) {
	e := newEnv()
	seedTreasury(e.db, 5000) // less than one grant
	u := seedUser(e.db, "bob", 300, domain.WalletStatusActive)

	txn, err := e.treasury.Grant(u.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
	require.NotNil(t, txn.FailureReason)
	assert.Equal(t, "Treasury does not have enough funds", *txn.FailureReason)
	assert.Equal(t, "Attempt to add funds: 100.00 EUR", txn.Description)
	assert.Equal(t, int64(300), txn.BalanceLeftCents)

	w, err := e.wallets.GetByUserID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(300), w.BalanceCents)

	tr, err := e.treasury.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(5000), tr.BalanceCents)
}

func TestGrantInactiveWalletLeavesTreasuryUntouched(t *testing.T) {
	e := newEnv()
	seedTreasury(e.db, 100000)
	u := seedUser(e.db, "carol", 300, domain.WalletStatusActive)
	u.Wallet.Status = domain.WalletStatusInactive

	txn, err := e.treasury.Grant(u.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionStatusFailed, txn.Status)
	require.NotNil(t, txn.FailureReason)
	assert.Equal(t, "Inactive wallet", *txn.FailureReason)

	tr, err := e.treasury.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(100000), tr.BalanceCents)
}

func TestGrantUnknownUser(t *testing.T) {
	e := newEnv()
	seedTreasury(e.db, 100000)

	_, err := e.treasury.Grant(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, e.db.transactions)
}

func TestGrantWithoutBootstrap(t *testing.T) {
	e := newEnv()
	u := seedUser(e.db, "dave", 0, domain.WalletStatusActive)

	_, err := e.treasury.Grant(u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
