package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"go.uber.org/zap"
)

// GameService manages the catalog and orchestrates game purchases.
type GameService struct {
	stores    Stores
	tx        TxManager
	wallets   *WalletService
	loyalties *LoyaltyService
	notifier  Notifier
	publicURL string
}

func NewGameService(stores Stores, tx TxManager, wallets *WalletService, loyalties *LoyaltyService, notifier Notifier, publicURL string) *GameService {
	return &GameService{
		stores:    stores,
		tx:        tx,
		wallets:   wallets,
		loyalties: loyalties,
		notifier:  notifier,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

type CreateGameInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"price_cents"`
	Genre         string `json:"genre"`
	ImageCoverURL string `json:"image_cover_url"`
}

type EditGameInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"price_cents"`
	Genre         string `json:"genre"`
	ImageCoverURL string `json:"image_cover_url"`
}

func validGenre(genre string) bool {
	for _, g := range domain.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Create adds a game to the catalog. New games stay unavailable until the
// publisher toggles them on.
func (s *GameService) Create(in CreateGameInput, publisherID uint) (*models.Game, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if _, err := s.stores.Games.GetByTitle(title); err == nil {
		return nil, domain.ErrTitleTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if in.PriceCents <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if !validGenre(in.Genre) {
		return nil, domain.ErrInvalidGenre
	}
	g := &models.Game{
		PublisherID:   publisherID,
		Title:         title,
		Description:   in.Description,
		PriceCents:    in.PriceCents,
		Genre:         in.Genre,
		IsAvailable:   false,
		ImageCoverURL: strings.TrimSpace(in.ImageCoverURL),
		ReleaseDate:   time.Now(),
	}
	if err := s.stores.Games.Create(g); err != nil {
		return nil, err
	}
	zap.S().Infof("created game %q (price %s)", g.Title, domain.FormatCents(g.PriceCents))
	return g, nil
}

// Edit re-validates and updates a game's details. An empty image URL keeps
// the existing cover.
func (s *GameService) Edit(gameID uint, in EditGameInput) (*models.Game, error) {
	g, err := s.stores.Games.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if existing, err := s.stores.Games.GetByTitle(title); err == nil {
		if existing.ID != g.ID {
			return nil, domain.ErrTitleTaken
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrEmptyDescription
	}
	if in.PriceCents <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	if !validGenre(in.Genre) {
		return nil, domain.ErrInvalidGenre
	}

	g.Title = title
	g.Description = in.Description
	g.PriceCents = in.PriceCents
	g.Genre = in.Genre
	if cover := strings.TrimSpace(in.ImageCoverURL); cover != "" {
		g.ImageCoverURL = cover
	}
	if err := s.stores.Games.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GameService) GetByID(id uint) (*models.Game, error) {
	return s.stores.Games.GetByID(id)
}

func (s *GameService) GetAll() ([]models.Game, error) {
	return s.stores.Games.GetAll()
}

func (s *GameService) GetAllAvailable() ([]models.Game, error) {
	return s.stores.Games.GetAllAvailable()
}

func (s *GameService) GetAllByPublisherID(publisherID uint) ([]models.Game, error) {
	return s.stores.Games.GetAllByPublisherID(publisherID)
}

func (s *GameService) GetPurchasedBy(userID uint) ([]models.Game, error) {
	return s.stores.Games.GetPurchasedByUserID(userID)
}

func (s *GameService) Delete(id uint) error {
	return s.stores.Games.Delete(id)
}

// ToggleAvailability flips a game in or out of the storefront.
func (s *GameService) ToggleAvailability(gameID uint) (*models.Game, error) {
	g, err := s.stores.Games.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	g.IsAvailable = !g.IsAvailable
	if err := s.stores.Games.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Purchase runs the full purchase flow for one (game, buyer) pair.
//
// Self-purchase and duplicate-purchase are rejected before any monetary
// side effect. The discount comes from the buyer's loyalty state before
// this purchase is counted, so the purchase that crosses the PREMIUM
// threshold still prices at the old tier. The charge, the ownership writes
// and the loyalty update commit in one transaction; a FAILED charge
// commits alone and grants nothing. The returned Transaction reports the
// outcome in every path.
func (s *GameService) Purchase(gameID, buyerID uint) (*models.Transaction, error) {
	game, err := s.stores.Games.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	buyer, err := s.stores.Users.GetByID(buyerID)
	if err != nil {
		return nil, err
	}

	if game.PublisherID == buyer.ID {
		return nil, domain.ErrSelfPurchase
	}
	owned, err := s.stores.Games.IsOwnedBy(game.ID, buyer.ID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, domain.ErrAlreadyOwned
	}

	if buyer.Wallet == nil {
		return nil, fmt.Errorf("wallet for user %d: %w", buyer.ID, domain.ErrNotFound)
	}
	discountBps, err := s.loyalties.DiscountBps(buyer.ID)
	if err != nil {
		return nil, err
	}
	finalPriceCents := domain.ApplyDiscount(game.PriceCents, discountBps)
	description := fmt.Sprintf("Purchase of game '%s'", game.Title)

	var txn *models.Transaction
	err = s.tx.InTx(func(st Stores) error {
		txn, err = s.wallets.ChargeTx(st, buyer.Wallet.ID, finalPriceCents, description)
		if err != nil {
			return err
		}
		if txn.Status == domain.TransactionStatusFailed {
			// The FAILED audit row commits; ownership and loyalty stay put.
			zap.S().Warnf("charge for game %q failed for user %d", game.Title, buyer.ID)
			return nil
		}
		if err := st.Games.RecordOwnership(game.ID, buyer.ID); err != nil {
			return err
		}
		return s.loyalties.RecordPurchaseTx(st, buyer.ID)
	})
	if err != nil {
		return nil, err
	}

	if txn.Status == domain.TransactionStatusApproved {
		s.sendPurchaseNotice(game, buyer)
	}
	return txn, nil
}

// sendPurchaseNotice is best-effort: a notice failure never affects the
// outcome of the purchase that triggered it.
func (s *GameService) sendPurchaseNotice(game *models.Game, buyer *models.User) {
	if s.notifier == nil {
		return
	}
	publisherName := ""
	if publisher, err := s.stores.Users.GetByID(game.PublisherID); err == nil {
		publisherName = publisher.Username
	}
	gameURL := fmt.Sprintf("%s/games/%d", s.publicURL, game.ID)
	err := s.notifier.CreateNotice(buyer.ID, game.ID, "Successful purchase",
		fmt.Sprintf("You bought '%s'", game.Title), buyer.Username, gameURL, publisherName)
	if err != nil {
		zap.S().Warnf("can't create notice for user %d: %v", buyer.ID, err)
		return
	}
	zap.S().Infof("created purchase notice for user %d", buyer.ID)
}
