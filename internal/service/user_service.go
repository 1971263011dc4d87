package service

import (
	"errors"
	"strings"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration, authentication and account management.
type UserService struct {
	stores    Stores
	tx        TxManager
	wallets   *WalletService
	loyalties *LoyaltyService
}

func NewUserService(stores Stores, tx TxManager, wallets *WalletService, loyalties *LoyaltyService) *UserService {
	return &UserService{stores: stores, tx: tx, wallets: wallets, loyalties: loyalties}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	Country  string `json:"country"`
}

type EditUserInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
}

// Register creates the user together with their wallet (signup bonus) and
// loyalty record in one transaction, so no user ever exists without either.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	if _, err := s.stores.Users.GetByUsername(in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Country:      in.Country,
		IsActive:     true,
	}
	err = s.tx.InTx(func(st Stores) error {
		if err := st.Users.Create(user); err != nil {
			return err
		}
		wallet, err := s.wallets.CreateWalletTx(st, user.ID)
		if err != nil {
			return err
		}
		user.Wallet = wallet
		loyalty, err := s.loyalties.CreateLoyaltyTx(st, user.ID)
		if err != nil {
			return err
		}
		user.Loyalty = loyalty
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.S().Infof("registered user %q (id %d)", user.Username, user.ID)
	return user, nil
}

// Authenticate checks credentials and the active flag. Unknown usernames
// and wrong passwords both report ErrBadCredentials.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.stores.Users.GetByUsername(username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.stores.Users.GetByID(id)
}

func (s *UserService) GetAll() ([]models.User, error) {
	return s.stores.Users.GetAll()
}

// EditDetails updates profile fields. An empty email clears the column to
// NULL so the unique index never collides on empty strings.
func (s *UserService) EditDetails(userID uint, in EditUserInput) (*models.User, error) {
	user, err := s.stores.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		if existing, err := s.stores.Users.GetByEmail(email); err == nil {
			if existing.ID != user.ID {
				return nil, domain.ErrEmailTaken
			}
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		user.Email = &email
	} else {
		user.Email = nil
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.ProfilePicture = in.ProfilePicture
	if err := s.stores.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SwitchStatus toggles the active flag on a user account.
func (s *UserService) SwitchStatus(userID uint) (*models.User, error) {
	user, err := s.stores.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	if err := s.stores.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SwitchRole toggles a user between USER and ADMIN.
func (s *UserService) SwitchRole(userID uint) (*models.User, error) {
	user, err := s.stores.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleUser {
		user.Role = domain.RoleAdmin
	} else {
		user.Role = domain.RoleUser
	}
	if err := s.stores.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
