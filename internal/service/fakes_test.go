package service

import (
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"
)

// memDB backs the in-memory store fakes shared by the service tests.
type memDB struct {
	users        map[uint]*models.User
	games        map[uint]*models.Game
	wallets      map[uint]*models.Wallet
	loyalties    map[uint]*models.Loyalty // keyed by user ID
	treasuries   map[string]*models.Treasury
	transactions []*models.Transaction
	ownership    map[[2]uint]bool // (gameID, userID)
	nextID       uint
}

func newMemDB() *memDB {
	return &memDB{
		users:      make(map[uint]*models.User),
		games:      make(map[uint]*models.Game),
		wallets:    make(map[uint]*models.Wallet),
		loyalties:  make(map[uint]*models.Loyalty),
		treasuries: make(map[string]*models.Treasury),
		ownership:  make(map[[2]uint]bool),
	}
}

func (db *memDB) id() uint {
	db.nextID++
	return db.nextID
}

func (db *memDB) stores() Stores {
	return Stores{
		Users:        &fakeUsers{db},
		Games:        &fakeGames{db},
		Wallets:      &fakeWallets{db},
		Transactions: &fakeTransactions{db},
		Loyalties:    &fakeLoyalties{db},
		Treasuries:   &fakeTreasuries{db},
	}
}

// fakeTx satisfies TxManager by running the function against the same
// store bundle, without transactional semantics.
type fakeTx struct {
	st Stores
}

func (f *fakeTx) InTx(fn func(Stores) error) error { return fn(f.st) }

// fakeNotifier records notice calls and can be told to fail.
type fakeNotifier struct {
	calls []noticeCall
	err   error
}

type noticeCall struct {
	userID, gameID                                   uint
	title, description, username, gameURL, publisher string
}

func (f *fakeNotifier) CreateNotice(userID, gameID uint, title, description, username, gameURL, publisherName string) error {
	f.calls = append(f.calls, noticeCall{userID, gameID, title, description, username, gameURL, publisherName})
	return f.err
}

// ---- UserStore ----

type fakeUsers struct{ db *memDB }

func (f *fakeUsers) GetByID(id uint) (*models.User, error) {
	u, ok := f.db.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	for _, w := range f.db.wallets {
		if w.UserID == id {
			u.Wallet = w
			break
		}
	}
	return u, nil
}

func (f *fakeUsers) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.db.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %q: %w", email, domain.ErrNotFound)
}

func (f *fakeUsers) GetAll() ([]models.User, error) {
	var list []models.User
	for _, u := range f.db.users {
		list = append(list, *u)
	}
	return list, nil
}

func (f *fakeUsers) Create(u *models.User) error {
	u.ID = f.db.id()
	f.db.users[u.ID] = u
	return nil
}

func (f *fakeUsers) Save(u *models.User) error {
	f.db.users[u.ID] = u
	return nil
}

// ---- GameStore ----

type fakeGames struct{ db *memDB }

func (f *fakeGames) GetByID(id uint) (*models.Game, error) {
	g, ok := f.db.games[id]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", id, domain.ErrNotFound)
	}
	return g, nil
}

func (f *fakeGames) GetByTitle(title string) (*models.Game, error) {
	for _, g := range f.db.games {
		if g.Title == title {
			return g, nil
		}
	}
	return nil, fmt.Errorf("game %q: %w", title, domain.ErrNotFound)
}

func (f *fakeGames) GetAll() ([]models.Game, error) {
	var list []models.Game
	for _, g := range f.db.games {
		list = append(list, *g)
	}
	return list, nil
}

func (f *fakeGames) GetAllAvailable() ([]models.Game, error) {
	var list []models.Game
	for _, g := range f.db.games {
		if g.IsAvailable {
			list = append(list, *g)
		}
	}
	return list, nil
}

func (f *fakeGames) GetAllByPublisherID(publisherID uint) ([]models.Game, error) {
	var list []models.Game
	for _, g := range f.db.games {
		if g.PublisherID == publisherID {
			list = append(list, *g)
		}
	}
	return list, nil
}

func (f *fakeGames) GetPurchasedByUserID(userID uint) ([]models.Game, error) {
	var list []models.Game
	for key := range f.db.ownership {
		if key[1] == userID {
			if g, ok := f.db.games[key[0]]; ok {
				list = append(list, *g)
			}
		}
	}
	return list, nil
}

func (f *fakeGames) Create(g *models.Game) error {
	g.ID = f.db.id()
	f.db.games[g.ID] = g
	return nil
}

func (f *fakeGames) Save(g *models.Game) error {
	f.db.games[g.ID] = g
	return nil
}

func (f *fakeGames) Delete(id uint) error {
	delete(f.db.games, id)
	return nil
}

func (f *fakeGames) IsOwnedBy(gameID, userID uint) (bool, error) {
	return f.db.ownership[[2]uint{gameID, userID}], nil
}

func (f *fakeGames) RecordOwnership(gameID, userID uint) error {
	key := [2]uint{gameID, userID}
	if f.db.ownership[key] {
		return fmt.Errorf("duplicate ownership row for game %d user %d", gameID, userID)
	}
	f.db.ownership[key] = true
	return nil
}

// ---- WalletStore ----

type fakeWallets struct{ db *memDB }

func (f *fakeWallets) GetByID(id uint) (*models.Wallet, error) {
	w, ok := f.db.wallets[id]
	if !ok {
		return nil, fmt.Errorf("wallet %d: %w", id, domain.ErrNotFound)
	}
	return w, nil
}

func (f *fakeWallets) GetByUserID(userID uint) (*models.Wallet, error) {
	for _, w := range f.db.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, fmt.Errorf("wallet for user %d: %w", userID, domain.ErrNotFound)
}

func (f *fakeWallets) Create(w *models.Wallet) error {
	w.ID = f.db.id()
	f.db.wallets[w.ID] = w
	return nil
}

func (f *fakeWallets) Save(w *models.Wallet) error {
	f.db.wallets[w.ID] = w
	return nil
}

func (f *fakeWallets) Debit(walletID uint, amountCents int64) (*models.Wallet, error) {
	w, ok := f.db.wallets[walletID]
	if !ok {
		return nil, fmt.Errorf("wallet %d: %w", walletID, domain.ErrNotFound)
	}
	if w.Status == domain.WalletStatusInactive {
		return w, domain.ErrWalletInactive
	}
	if w.BalanceCents < amountCents {
		return w, domain.ErrInsufficientBalance
	}
	w.BalanceCents -= amountCents
	return w, nil
}

func (f *fakeWallets) Credit(walletID uint, amountCents int64) (*models.Wallet, error) {
	w, ok := f.db.wallets[walletID]
	if !ok {
		return nil, fmt.Errorf("wallet %d: %w", walletID, domain.ErrNotFound)
	}
	if w.Status == domain.WalletStatusInactive {
		return w, domain.ErrWalletInactive
	}
	w.BalanceCents += amountCents
	return w, nil
}

// ---- TransactionStore ----

type fakeTransactions struct{ db *memDB }

func (f *fakeTransactions) Create(t *models.Transaction) error {
	t.ID = f.db.id()
	f.db.transactions = append(f.db.transactions, t)
	return nil
}

func (f *fakeTransactions) GetByID(id uint) (*models.Transaction, error) {
	for _, t := range f.db.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("transaction %d: %w", id, domain.ErrNotFound)
}

func (f *fakeTransactions) ListByOwnerID(ownerID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	for _, t := range f.db.transactions {
		if t.OwnerID == ownerID {
			list = append(list, *t)
		}
	}
	return list, nil
}

// ---- LoyaltyStore ----

type fakeLoyalties struct{ db *memDB }

func (f *fakeLoyalties) GetByUserID(userID uint) (*models.Loyalty, error) {
	l, ok := f.db.loyalties[userID]
	if !ok {
		return nil, fmt.Errorf("loyalty record for user %d: %w", userID, domain.ErrNotFound)
	}
	return l, nil
}

func (f *fakeLoyalties) Create(l *models.Loyalty) error {
	l.ID = f.db.id()
	f.db.loyalties[l.UserID] = l
	return nil
}

func (f *fakeLoyalties) Save(l *models.Loyalty) error {
	f.db.loyalties[l.UserID] = l
	return nil
}

// ---- TreasuryStore ----

type fakeTreasuries struct{ db *memDB }

func (f *fakeTreasuries) GetByName(name string) (*models.Treasury, error) {
	t, ok := f.db.treasuries[name]
	if !ok {
		return nil, fmt.Errorf("treasury %q: %w", name, domain.ErrNotFound)
	}
	return t, nil
}

func (f *fakeTreasuries) Create(t *models.Treasury) error {
	t.ID = f.db.id()
	f.db.treasuries[t.Name] = t
	return nil
}

func (f *fakeTreasuries) Debit(name string, amountCents int64) (*models.Treasury, error) {
	t, ok := f.db.treasuries[name]
	if !ok {
		return nil, fmt.Errorf("treasury %q: %w", name, domain.ErrNotFound)
	}
	if t.BalanceCents < amountCents {
		return t, domain.ErrTreasuryUnderfunded
	}
	t.BalanceCents -= amountCents
	return t, nil
}

// ---- seeding helpers ----

func seedUser(db *memDB, username string, balanceCents int64, walletStatus string) *models.User {
	u := &models.User{Username: username, Role: domain.RoleUser, IsActive: true}
	u.ID = db.id()
	db.users[u.ID] = u
	w := &models.Wallet{
		UserID:       u.ID,
		BalanceCents: balanceCents,
		Status:       walletStatus,
		Currency:     domain.CurrencyEUR,
	}
	w.ID = db.id()
	db.wallets[w.ID] = w
	u.Wallet = w
	l := &models.Loyalty{UserID: u.ID, Tier: domain.LoyaltyTierDefault}
	l.ID = db.id()
	db.loyalties[u.ID] = l
	return u
}

func seedGame(db *memDB, title string, priceCents int64, publisherID uint) *models.Game {
	g := &models.Game{
		PublisherID: publisherID,
		Title:       title,
		Description: "a game",
		PriceCents:  priceCents,
		Genre:       domain.GenreAction,
		IsAvailable: true,
	}
	g.ID = db.id()
	db.games[g.ID] = g
	return g
}

func seedTreasury(db *memDB, balanceCents int64) *models.Treasury {
	t := &models.Treasury{
		Name:         domain.TreasuryName,
		BalanceCents: balanceCents,
		Currency:     domain.CurrencyEUR,
	}
	t.ID = db.id()
	db.treasuries[t.Name] = t
	return t
}

// env bundles everything a service test needs.
type env struct {
	db        *memDB
	st        Stores
	tx        *fakeTx
	wallets   *WalletService
	loyalties *LoyaltyService
	treasury  *TreasuryService
	users     *UserService
	notifier  *fakeNotifier
}

func newEnv() *env {
	db := newMemDB()
	st := db.stores()
	tx := &fakeTx{st: st}
	wallets := NewWalletService(st, tx)
	loyalties := NewLoyaltyService(st)
	return &env{
		db:        db,
		st:        st,
		tx:        tx,
		wallets:   wallets,
		loyalties: loyalties,
		treasury:  NewTreasuryService(st, tx, wallets),
		users:     NewUserService(st, tx, wallets, loyalties),
		notifier:  &fakeNotifier{},
	}
}

func (e *env) gameService() *GameService {
	return NewGameService(e.st, e.tx, e.wallets, e.loyalties, e.notifier, "http://localhost:8080")
}
