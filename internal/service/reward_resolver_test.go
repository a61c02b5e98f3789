package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
)

func TestValidateConfigPerType(t *testing.T) {
	resolver := NewRewardResolver()

	cases := []struct {
		name    string
		reward  *models.Reward
		wantErr error
	}{
		{"nil reward", nil, ErrRewardTypeRequired},
		{"empty type", &models.Reward{Type: "  "}, ErrRewardTypeRequired},
		{"none needs nothing", &models.Reward{Type: constants.RewardTypeNone}, nil},
		{
			"missing description",
			&models.Reward{Type: constants.RewardTypePercentDiscount, Value: models.NewMoneyFromFloat(10)},
			ErrRewardDescriptionRequired,
		},
		{
			"description over limit",
			&models.Reward{
				Type:        constants.RewardTypePercentDiscount,
				Value:       models.NewMoneyFromFloat(10),
				Description: strings.Repeat("a", constants.RewardDescriptionMaxLen+1),
			},
			ErrRewardDescriptionTooLong,
		},
		{
			"percent zero rejected",
			&models.Reward{Type: constants.RewardTypePercentDiscount, Value: models.NewMoneyFromFloat(0), Description: "10% off"},
			ErrRewardPercentRange,
		},
		{
			"percent 101 rejected",
			&models.Reward{Type: constants.RewardTypePercentDiscount, Value: models.NewMoneyFromFloat(101), Description: "promo"},
			ErrRewardPercentRange,
		},
		{
			"percent 100 accepted",
			&models.Reward{Type: constants.RewardTypePercentDiscount, Value: models.NewMoneyFromFloat(100), Description: "gratis"},
			nil,
		},
		{
			"fixed zero rejected",
			&models.Reward{Type: constants.RewardTypeFixedAmount, Value: models.NewMoneyFromFloat(0), Description: "descuento"},
			ErrRewardFixedPositive,
		},
		{
			"fixed positive accepted",
			&models.Reward{Type: constants.RewardTypeFixedAmount, Value: models.NewMoneyFromFloat(15), Description: "descuento"},
			nil,
		},
		{
			"free product needs product",
			&models.Reward{Type: constants.RewardTypeFreeProduct, Description: "producto gratis"},
			ErrRewardProductRequired,
		},
		{
			"free product accepted",
			&models.Reward{Type: constants.RewardTypeFreeProduct, ProductID: 7, Description: "producto gratis"},
			nil,
		},
		{
			"buy x get y needs both quantities",
			&models.Reward{Type: constants.RewardTypeBuyXGetY, BuyQuantity: 2, Description: "2x1"},
			ErrRewardQuantitiesPositive,
		},
		{
			"buy x get y accepted",
			&models.Reward{Type: constants.RewardTypeBuyXGetY, BuyQuantity: 2, FreeQuantity: 1, Description: "2x1"},
			nil,
		},
		{
			"custom needs config",
			&models.Reward{Type: constants.RewardTypeCustom, Description: "especial"},
			ErrRewardCustomRequired,
		},
		{
			"unknown type rejected",
			&models.Reward{Type: "MYSTERY", Description: "???"},
			ErrRewardTypeRequired,
		},
	}

	for _, tc := range cases {
		err := resolver.ValidateConfig(tc.reward)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestComputeDiscountPercent(t *testing.T) {
	resolver := NewRewardResolver()
	reward := &models.Reward{Type: constants.RewardTypePercentDiscount, Value: models.NewMoneyFromFloat(20)}

	discount, final := resolver.ComputeDiscount(reward, models.NewMoneyFromFloat(250))
	if discount.String() != "50.00" {
		t.Fatalf("discount want 50.00 got %s", discount.String())
	}
	if final.String() != "200.00" {
		t.Fatalf("final want 200.00 got %s", final.String())
	}
}

func TestComputeDiscountFixedNeverNegative(t *testing.T) {
	resolver := NewRewardResolver()
	reward := &models.Reward{Type: constants.RewardTypeFixedAmount, Value: models.NewMoneyFromFloat(100)}

	discount, final := resolver.ComputeDiscount(reward, models.NewMoneyFromFloat(60))
	if discount.String() != "60.00" {
		t.Fatalf("discount capped at amount, want 60.00 got %s", discount.String())
	}
	if final.String() != "0.00" {
		t.Fatalf("final want 0.00 got %s", final.String())
	}

	discount, final = resolver.ComputeDiscount(reward, models.NewMoneyFromFloat(150))
	if discount.String() != "100.00" {
		t.Fatalf("discount want 100.00 got %s", discount.String())
	}
	if final.String() != "50.00" {
		t.Fatalf("final want 50.00 got %s", final.String())
	}
}

func TestComputeDiscountNonMonetaryTypes(t *testing.T) {
	resolver := NewRewardResolver()
	amount := models.NewMoneyFromFloat(80)

	for _, rewardType := range []string{
		constants.RewardTypeNone,
		constants.RewardTypeFreeProduct,
		constants.RewardTypeBuyXGetY,
		constants.RewardTypeCustom,
	} {
		reward := &models.Reward{Type: rewardType, Value: models.NewMoneyFromFloat(30)}
		discount, final := resolver.ComputeDiscount(reward, amount)
		if discount.String() != "0.00" {
			t.Fatalf("type %s discount want 0.00 got %s", rewardType, discount.String())
		}
		if final.String() != "80.00" {
			t.Fatalf("type %s final want 80.00 got %s", rewardType, final.String())
		}
	}

	discount, final := resolver.ComputeDiscount(nil, amount)
	if discount.String() != "0.00" || final.String() != "80.00" {
		t.Fatalf("nil reward want passthrough got discount=%s final=%s", discount.String(), final.String())
	}
}
