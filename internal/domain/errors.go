package domain

import "errors"

// Validation errors: surfaced before any monetary or persistence side effect.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email is already in use")
	ErrTitleTaken    = errors.New("title is already in use")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidPrice  = errors.New("price must be greater than zero")
	ErrInvalidGenre  = errors.New("a valid genre must be selected")
	ErrSelfPurchase  = errors.New("you cannot buy your own game")
	ErrAlreadyOwned  = errors.New("you already own this game")
	ErrUserInactive  = errors.New("user account is deactivated")
	ErrBadCredentials = errors.New("invalid username or password")
)

// ErrNotFound marks a required lookup that found nothing. Repositories
// wrap it with context; services treat it as a data-integrity fault.
var ErrNotFound = errors.New("record not found")

// Business-expected transactional failures. The wallet and treasury stores
// return these from conditional debits; services convert them into FAILED
// transaction records rather than propagating them to callers.
var (
	ErrWalletInactive      = errors.New("wallet is inactive")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrTreasuryUnderfunded = errors.New("treasury does not have enough funds")
)

// IsValidation reports whether err is a domain validation error that should
// surface to the client as a bad request.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrUsernameTaken, ErrEmailTaken, ErrTitleTaken, ErrEmptyTitle,
		ErrEmptyDescription, ErrInvalidPrice, ErrInvalidGenre,
		ErrSelfPurchase, ErrAlreadyOwned,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
