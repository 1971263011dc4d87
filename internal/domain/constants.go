package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	WalletStatusActive   = "ACTIVE"
	WalletStatusInactive = "INACTIVE"
)

const (
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeWithdrawal = "WITHDRAWAL"
)

const (
	TransactionStatusApproved = "APPROVED"
	TransactionStatusFailed   = "FAILED"
)

const (
	LoyaltyTierDefault = "DEFAULT"
	LoyaltyTierPremium = "PREMIUM"
)

const (
	GenreAction     = "ACTION"
	GenreAdventure  = "ADVENTURE"
	GenreRPG        = "RPG"
	GenreStrategy   = "STRATEGY"
	GenreSports     = "SPORTS"
	GenreSimulation = "SIMULATION"
	GenreHorror     = "HORROR"
	GenreIndie      = "INDIE"
)

// Genres lists every valid game genre, used for create/edit validation.
var Genres = []string{
	GenreAction, GenreAdventure, GenreRPG, GenreStrategy,
	GenreSports, GenreSimulation, GenreHorror, GenreIndie,
}

// PlatformName is the counterparty recorded on wallet transactions.
const PlatformName = "Jubbisoft Ltd."

// TreasuryName is the well-known name of the singleton treasury row.
const TreasuryName = "Treasury vault"

const CurrencyEUR = "EUR"

// Monetary amounts are int64 cents. These figures drive the wallet,
// treasury and loyalty behavior.
const (
	SignupBonusCents   int64 = 10000  // 100.00 EUR credited to every new wallet
	TreasuryGrantCents int64 = 10000  // 100.00 EUR per treasury grant
	TreasurySeedCents  int64 = 100000 // 1000.00 EUR initial treasury balance

	PremiumDiscountBps int64 = 3000 // 30% discount for PREMIUM members
	PremiumThreshold   int   = 2    // purchases needed to reach PREMIUM
)
