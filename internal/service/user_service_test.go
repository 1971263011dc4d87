package service

import (
	"testing"

	"jubbisoft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesWalletAndLoyalty(t *testing.T) {
	e := newEnv()

	u, err := e.users.Register(RegisterInput{Username: "alice", Password: "s3cret", Country: "NL"})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	require.NotNil(t, u.Wallet)
	assert.Equal(t, int64(10000), u.Wallet.BalanceCents)
	assert.Equal(t, domain.WalletStatusActive, u.Wallet.Status)
	assert.Equal(t, domain.CurrencyEUR, u.Wallet.Currency)

	require.NotNil(t, u.Loyalty)
	assert.Equal(t, domain.LoyaltyTierDefault, u.Loyalty.Tier)
	assert.Equal(t, 0, u.Loyalty.GamesPurchased)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := newEnv()
	seedUser(e.db, "alice", 0, domain.WalletStatusActive)

	_, err := e.users.Register(RegisterInput{Username: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAuthenticate(t *testing.T) {
	e := newEnv()
	u, err := e.users.Register(RegisterInput{Username: "bob", Password: "s3cret"})
	require.NoError(t, err)

	got, err := e.users.Authenticate("bob", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	e := newEnv()
	_, err := e.users.Register(RegisterInput{Username: "bob", Password: "s3cret"})
	require.NoError(t, err)

	_, err = e.users.Authenticate("bob", "wrong")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)

	_, err = e.users.Authenticate("nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	e := newEnv()
	u, err := e.users.Register(RegisterInput{Username: "carol", Password: "s3cret"})
	require.NoError(t, err)
	u.IsActive = false

	_, err = e.users.Authenticate("carol", "s3cret")
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestEditDetails(t *testing.T) {
	e := newEnv()
	u := seedUser(e.db, "dave", 0, domain.WalletStatusActive)

	got, err := e.users.EditDetails(u.ID, EditUserInput{
		FirstName: "Dave",
		LastName:  "Jones",
		Email:     " dave@example.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dave", got.FirstName)
	require.NotNil(t, got.Email)
	assert.Equal(t, "dave@example.com", *got.Email)

	// Clearing the email sets it back to nil.
	got, err = e.users.EditDetails(u.ID, EditUserInput{Email: ""})
	require.NoError(t, err)
	assert.Nil(t, got.Email)
}

func TestEditDetailsEmailTaken(t *testing.T) {
	e := newEnv()
	other := seedUser(e.db, "erin", 0, domain.WalletStatusActive)
	email := "erin@example.com"
	other.Email = &email
	u := seedUser(e.db, "frank", 0, domain.WalletStatusActive)

	_, err := e.users.EditDetails(u.ID, EditUserInput{Email: "erin@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSwitchRoleAndStatus(t *testing.T) {
	e := newEnv()
	u := seedUser(e.db, "grace", 0, domain.WalletStatusActive)

	got, err := e.users.SwitchRole(u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	got, err = e.users.SwitchStatus(u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
