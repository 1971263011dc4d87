package service

import (
	"jubbisoft/internal/domain"
	"jubbisoft/internal/models"

	"go.uber.org/zap"
)

// LoyaltyService tracks purchases per user and computes the discount a
// buyer is entitled to.
type LoyaltyService struct {
	stores Stores
}

func NewLoyaltyService(stores Stores) *LoyaltyService {
	return &LoyaltyService{stores: stores}
}

func (s *LoyaltyService) GetByUserID(userID uint) (*models.Loyalty, error) {
	return s.stores.Loyalties.GetByUserID(userID)
}

// DiscountBps returns the buyer's discount in basis points: 3000 for
// PREMIUM members, 0 otherwise. A missing loyalty record is a
// data-integrity fault and surfaces as an error, never as a default.
func (s *LoyaltyService) DiscountBps(userID uint) (int64, error) {
	l, err := s.stores.Loyalties.GetByUserID(userID)
	if err != nil {
		return 0, err
	}
	if l.Tier == domain.LoyaltyTierPremium {
		return domain.PremiumDiscountBps, nil
	}
	return 0, nil
}

// CreateLoyaltyTx initializes the loyalty record for a new user within the
// caller's transactional scope: zero purchases, DEFAULT tier.
func (s *LoyaltyService) CreateLoyaltyTx(st Stores, userID uint) (*models.Loyalty, error) {
	l := &models.Loyalty{
		UserID:         userID,
		Tier:           domain.LoyaltyTierDefault,
		GamesPurchased: 0,
	}
	if err := st.Loyalties.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

// RecordPurchaseTx increments the purchase counter after an approved
// purchase and promotes the member to PREMIUM at the threshold. The tier
// never regresses; re-promoting an already PREMIUM member is a no-op.
func (s *LoyaltyService) RecordPurchaseTx(st Stores, userID uint) error {
	l, err := st.Loyalties.GetByUserID(userID)
	if err != nil {
		return err
	}
	l.GamesPurchased++
	if l.GamesPurchased >= domain.PremiumThreshold && l.Tier != domain.LoyaltyTierPremium {
		l.Tier = domain.LoyaltyTierPremium
		zap.S().Infof("user %d promoted to PREMIUM after %d purchases", userID, l.GamesPurchased)
	}
	return st.Loyalties.Save(l)
}
