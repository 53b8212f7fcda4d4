package repositories

import (
	"context"
	"errors"

	"pullapi/internal/models"

	"gorm.io/gorm"
)

var ErrFeeRuleNotFound = errors.New("fee rule not found")

// FeeRuleRepository looks up the local fee schedule. The lookup is an
// exact match on the full key; there is no fallback hierarchy, a miss
// means the caller has to ask the remote pricing authority.
type FeeRuleRepository interface {
	Find(ctx context.Context, receivingCountry, currency string, transferType *string, isDeposit, isPickup bool) (*models.FeeRule, error)
}

type feeRuleRepository struct {
	db *gorm.DB
}

func NewFeeRuleRepository(db *gorm.DB) FeeRuleRepository {
	return &feeRuleRepository{db: db}
}

func (r *feeRuleRepository) Find(ctx context.Context, receivingCountry, currency string, transferType *string, isDeposit, isPickup bool) (*models.FeeRule, error) {
	q := r.db.WithContext(ctx).
		Where("receiving_country = ? AND currency = ? AND is_deposit = ? AND is_pickup = ?",
			receivingCountry, currency, isDeposit, isPickup)

	// Deposits may omit the transfer type; such submissions only match
	// rules that carry no transfer type themselves.
	if transferType == nil {
		q = q.Where("transfer_type IS NULL")
	} else {
		q = q.Where("transfer_type = ?", *transferType)
	}

	var rule models.FeeRule
	if err := q.First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeRuleNotFound
		}
		return nil, err
	}
	return &rule, nil
}
