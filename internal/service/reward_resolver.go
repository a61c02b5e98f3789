package service

import (
	"strings"
	"unicode/utf8"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"

	"github.com/shopspring/decimal"
)

// RewardResolver validates reward configurations and computes discounts. It is
// pure: no repository access, no clock.
type RewardResolver struct{}

// NewRewardResolver creates a reward resolver.
func NewRewardResolver() *RewardResolver {
	return &RewardResolver{}
}

var percentCeiling = decimal.NewFromInt(100)

// ValidateConfig checks a reward configuration. The first failing rule wins.
func (r *RewardResolver) ValidateConfig(reward *models.Reward) error {
	if reward == nil || strings.TrimSpace(reward.Type) == "" {
		return ErrRewardTypeRequired
	}

	rewardType := strings.TrimSpace(reward.Type)
	if rewardType == constants.RewardTypeNone {
		return nil
	}

	description := strings.TrimSpace(reward.Description)
	if description == "" {
		return ErrRewardDescriptionRequired
	}
	if utf8.RuneCountInString(description) > constants.RewardDescriptionMaxLen {
		return ErrRewardDescriptionTooLong
	}

	switch rewardType {
	case constants.RewardTypePercentDiscount:
		value := reward.Value.Decimal
		if value.LessThanOrEqual(decimal.Zero) || value.GreaterThan(percentCeiling) {
			return ErrRewardPercentRange
		}
	case constants.RewardTypeFixedAmount:
		if reward.Value.Decimal.LessThanOrEqual(decimal.Zero) {
			return ErrRewardFixedPositive
		}
	case constants.RewardTypeFreeProduct:
		if reward.ProductID == 0 {
			return ErrRewardProductRequired
		}
	case constants.RewardTypeBuyXGetY:
		if reward.BuyQuantity <= 0 || reward.FreeQuantity <= 0 {
			return ErrRewardQuantitiesPositive
		}
	case constants.RewardTypeCustom:
		if strings.TrimSpace(reward.CustomConfig) == "" {
			return ErrRewardCustomRequired
		}
	default:
		return ErrRewardTypeRequired
	}
	return nil
}

// ComputeDiscount computes the discount and final payable amount for a
// purchase. It trusts a pre-validated reward; only PERCENT_DISCOUNT and
// FIXED_AMOUNT produce a monetary discount, every other type leaves the
// amount untouched.
func (r *RewardResolver) ComputeDiscount(reward *models.Reward, purchaseAmount models.Money) (models.Money, models.Money) {
	amount := purchaseAmount.Decimal
	discount := decimal.Zero

	if reward != nil {
		switch strings.TrimSpace(reward.Type) {
		case constants.RewardTypePercentDiscount:
			discount = amount.Mul(reward.Value.Decimal).Div(percentCeiling)
		case constants.RewardTypeFixedAmount:
			discount = reward.Value.Decimal
			if discount.GreaterThan(amount) {
				discount = amount
			}
		}
	}

	final := amount.Sub(discount)
	if final.LessThan(decimal.Zero) {
		final = decimal.Zero
	}
	return models.NewMoneyFromDecimal(discount), models.NewMoneyFromDecimal(final)
}
