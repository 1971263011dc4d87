package repository

import (
	"errors"
	"fmt"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"gorm.io/gorm"
)

type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var g models.Game
	err := r.db.First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("game %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepository) GetByTitle(title string) (*models.Game, error) {
	var g models.Game
	err := r.db.Where("title = ?", title).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("game %q: %w", title, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GameRepository) GetAll() ([]models.Game, error) {
	var list []models.Game
	err := r.db.Order("release_date DESC").Find(&list).Error
	return list, err
}

func (r *GameRepository) GetAllAvailable() ([]models.Game, error) {
	var list []models.Game
	err := r.db.Where("is_available = ?", true).Order("release_date DESC").Find(&list).Error
	return list, err
}

func (r *GameRepository) GetAllByPublisherID(publisherID uint) ([]models.Game, error) {
	var list []models.Game
	err := r.db.Where("publisher_id = ?", publisherID).Order("release_date DESC").Find(&list).Error
	return list, err
}

// GetPurchasedByUserID returns the games a user owns, newest release first.
func (r *GameRepository) GetPurchasedByUserID(userID uint) ([]models.Game, error) {
	var list []models.Game
	err := r.db.
		Joins("JOIN games_users gu ON gu.game_id = games.id").
		Where("gu.user_id = ?", userID).
		Order("games.release_date DESC").
		Find(&list).Error
	return list, err
}

func (r *GameRepository) Create(g *models.Game) error {
	return r.db.Create(g).Error
}

func (r *GameRepository) Save(g *models.Game) error {
	return r.db.Save(g).Error
}

func (r *GameRepository) Delete(id uint) error {
	return r.db.Delete(&models.Game{}, id).Error
}

// IsOwnedBy reports whether the user already appears in the game's
// purchaser list.
func (r *GameRepository) IsOwnedBy(gameID, userID uint) (bool, error) {
	var count int64
	err := r.db.Table("games_users").
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	return count > 0, err
}

// RecordOwnership writes the purchase relation. The single join row backs
// both directions (user.OwnedGames and game.Purchasers); its composite
// primary key rejects duplicates.
func (r *GameRepository) RecordOwnership(gameID, userID uint) error {
	return r.db.Exec("INSERT INTO games_users (game_id, user_id) VALUES (?, ?)", gameID, userID).Error
}
