package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRedemptionServiceTest(t *testing.T) (*RedemptionService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:redemption_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Campaign{},
		&models.Reward{},
		&models.Coupon{},
		&models.Redemption{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	service := NewRedemptionService(
		repository.NewCouponRepository(db),
		repository.NewRewardRepository(db),
		repository.NewRedemptionRepository(db),
		repository.NewCampaignRepository(db),
		NewRewardResolver(),
		nil,
	)
	return service, db
}

func seedCampaignWithReward(t *testing.T, db *gorm.DB, reward *models.Reward) *models.Campaign {
	t.Helper()
	campaign := &models.Campaign{
		TenantID: 1,
		Title:    "Aniversario",
		Channels: models.StringSlice{"EMAIL"},
		Status:   constants.CampaignStatusActive,
	}
	if err := db.Create(campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if reward != nil {
		reward.CampaignID = campaign.ID
		if err := db.Create(reward).Error; err != nil {
			t.Fatalf("create reward failed: %v", err)
		}
	}
	return campaign
}

func seedCoupon(t *testing.T, db *gorm.DB, campaignID uint, code string, status string) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		CampaignID:    campaignID,
		TenantID:      1,
		Code:          code,
		QRToken:       "qr-" + code,
		Status:        status,
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
	}
	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestRedeemPercentDiscountHappyPath(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, &models.Reward{
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(20),
		Description: "20% de descuento",
		MinPurchase: models.NewMoneyFromFloat(100),
		UsageLimit:  1,
	})
	coupon := seedCoupon(t, db, campaign.ID, "PROMO-20", constants.CouponStatusActive)

	outcome, err := service.ValidateByCode("PROMO-20", 1)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if outcome.Eligibility != EligibilityValid {
		t.Fatalf("eligibility want VALID got %s", outcome.Eligibility)
	}
	if outcome.Reward == nil || outcome.Reward.MinPurchase.String() != "100.00" {
		t.Fatalf("validate should expose the minimum purchase, got %+v", outcome.Reward)
	}

	receipt, err := service.RedeemByCode("PROMO-20", 1, RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		Channel:        constants.RedemptionChannelManual,
		OriginalAmount: models.NewMoneyFromFloat(250),
		Location:       "Sucursal Centro",
	})
	if err != nil {
		t.Fatalf("redeem failed: %v", err)
	}
	if receipt.DiscountAmount.String() != "50.00" {
		t.Fatalf("discount want 50.00 got %s", receipt.DiscountAmount.String())
	}
	if receipt.FinalAmount.String() != "200.00" {
		t.Fatalf("final want 200.00 got %s", receipt.FinalAmount.String())
	}

	var gotCoupon models.Coupon
	if err := db.First(&gotCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if gotCoupon.Status != constants.CouponStatusRedeemed {
		t.Fatalf("coupon status want REDEEMED got %s", gotCoupon.Status)
	}
	if gotCoupon.RedeemedAt == nil {
		t.Fatal("redeemed_at should be set")
	}

	var gotReward models.Reward
	if err := db.Where("campaign_id = ?", campaign.ID).First(&gotReward).Error; err != nil {
		t.Fatalf("reload reward failed: %v", err)
	}
	if gotReward.UsageCount != 1 {
		t.Fatalf("usage count want 1 got %d", gotReward.UsageCount)
	}

	var audit models.Redemption
	if err := db.Where("coupon_id = ?", coupon.ID).First(&audit).Error; err != nil {
		t.Fatalf("load audit record failed: %v", err)
	}
	if audit.Channel != constants.RedemptionChannelManual {
		t.Fatalf("audit channel want MANUAL got %s", audit.Channel)
	}
	if !audit.Success {
		t.Fatal("audit record should be marked successful")
	}
}

func TestRedeemTwiceYieldsOneSuccess(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, &models.Reward{
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(10),
		Description: "10% de descuento",
		UsageLimit:  5,
	})
	seedCoupon(t, db, campaign.ID, "RACE-1", constants.CouponStatusActive)

	req := RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		Channel:        constants.RedemptionChannelManual,
		OriginalAmount: models.NewMoneyFromFloat(100),
	}

	if _, err := service.RedeemByCode("RACE-1", 1, req); err != nil {
		t.Fatalf("first redeem failed: %v", err)
	}
	_, err := service.RedeemByCode("RACE-1", 1, req)
	if !errors.Is(err, ErrCouponAlreadyRedeemed) {
		t.Fatalf("second redeem want ErrCouponAlreadyRedeemed got %v", err)
	}

	var gotReward models.Reward
	if err := db.Where("campaign_id = ?", campaign.ID).First(&gotReward).Error; err != nil {
		t.Fatalf("reload reward failed: %v", err)
	}
	if gotReward.UsageCount != 1 {
		t.Fatalf("usage count want exactly 1 got %d", gotReward.UsageCount)
	}

	var auditCount int64
	if err := db.Model(&models.Redemption{}).Count(&auditCount).Error; err != nil {
		t.Fatalf("count audit records failed: %v", err)
	}
	if auditCount != 1 {
		t.Fatalf("audit records want 1 got %d", auditCount)
	}
}

func TestRedeemBelowMinimumLeavesStateUntouched(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, &models.Reward{
		Type:        constants.RewardTypeFixedAmount,
		Value:       models.NewMoneyFromFloat(25),
		Description: "25 de descuento",
		MinPurchase: models.NewMoneyFromFloat(100),
	})
	coupon := seedCoupon(t, db, campaign.ID, "MIN-100", constants.CouponStatusActive)

	_, err := service.RedeemByCode("MIN-100", 1, RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		Channel:        constants.RedemptionChannelManual,
		OriginalAmount: models.NewMoneyFromFloat(80),
	})
	if !errors.Is(err, ErrInsufficientAmount) {
		t.Fatalf("want ErrInsufficientAmount got %v", err)
	}

	var insufficient *InsufficientAmountError
	if !errors.As(err, &insufficient) {
		t.Fatalf("error should carry the minimum, got %T", err)
	}
	if insufficient.Minimum.String() != "100.00" {
		t.Fatalf("minimum want 100.00 got %s", insufficient.Minimum.String())
	}

	var gotCoupon models.Coupon
	if err := db.First(&gotCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if gotCoupon.Status != constants.CouponStatusActive {
		t.Fatalf("coupon status want unchanged ACTIVE got %s", gotCoupon.Status)
	}

	var gotReward models.Reward
	if err := db.Where("campaign_id = ?", campaign.ID).First(&gotReward).Error; err != nil {
		t.Fatalf("reload reward failed: %v", err)
	}
	if gotReward.UsageCount != 0 {
		t.Fatalf("usage count want 0 got %d", gotReward.UsageCount)
	}
}

func TestRedeemExhaustedRewardRejectedRegardlessOfAmount(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, &models.Reward{
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(20),
		Description: "20% de descuento",
		UsageLimit:  1,
		UsageCount:  1,
	})
	seedCoupon(t, db, campaign.ID, "AGOTADO", constants.CouponStatusActive)

	_, err := service.RedeemByCode("AGOTADO", 1, RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		Channel:        constants.RedemptionChannelManual,
		OriginalAmount: models.NewMoneyFromFloat(99999),
	})
	if !errors.Is(err, ErrCouponExhausted) {
		t.Fatalf("want ErrCouponExhausted got %v", err)
	}
}

func TestRedeemRejectsNonPositiveAmountBeforeLookup(t *testing.T) {
	service, _ := setupRedemptionServiceTest(t)

	_, err := service.RedeemByCode("NO-IMPORTA", 1, RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		OriginalAmount: models.NewMoneyFromFloat(0),
	})
	if !errors.Is(err, ErrAmountInvalid) {
		t.Fatalf("want ErrAmountInvalid got %v", err)
	}
}

func TestRedeemExpiredAndNotFound(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, &models.Reward{
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(20),
		Description: "20% de descuento",
	})
	past := time.Now().Add(-time.Hour)
	coupon := seedCoupon(t, db, campaign.ID, "VENCIDO", constants.CouponStatusSent)
	if err := db.Model(coupon).Update("expires_at", past).Error; err != nil {
		t.Fatalf("set expiry failed: %v", err)
	}

	req := RedeemRequest{
		RedeemedBy:     "staff@tienda.com",
		OriginalAmount: models.NewMoneyFromFloat(100),
	}
	_, err := service.RedeemByCode("VENCIDO", 1, req)
	if !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("want ErrCouponExpired got %v", err)
	}

	_, err = service.RedeemByCode("INEXISTENTE", 1, req)
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("want ErrCouponNotFound got %v", err)
	}
}

func TestValidateTenantScopingByCode(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, nil)
	seedCoupon(t, db, campaign.ID, "TENANT-1", constants.CouponStatusActive)

	outcome, err := service.ValidateByCode("TENANT-1", 2)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if outcome.Eligibility != EligibilityNotFound {
		t.Fatalf("cross-tenant lookup want NOT_FOUND got %s", outcome.Eligibility)
	}
}

func TestRedeemByQRTokenUnscopedCustomerFlow(t *testing.T) {
	service, db := setupRedemptionServiceTest(t)
	campaign := seedCampaignWithReward(t, db, nil)
	coupon := seedCoupon(t, db, campaign.ID, "QR-SIN-PREMIO", constants.CouponStatusSent)

	receipt, err := service.RedeemByQRToken(coupon.QRToken, 0, RedeemRequest{
		RedeemedBy:     "ana@example.com",
		Channel:        constants.RedemptionChannelQRWeb,
		OriginalAmount: models.NewMoneyFromFloat(45),
	})
	if err != nil {
		t.Fatalf("redeem failed: %v", err)
	}
	if receipt.DiscountAmount.String() != "0.00" {
		t.Fatalf("no reward means no discount, got %s", receipt.DiscountAmount.String())
	}
	if receipt.FinalAmount.String() != "45.00" {
		t.Fatalf("final want 45.00 got %s", receipt.FinalAmount.String())
	}

	var gotCoupon models.Coupon
	if err := db.First(&gotCoupon, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if gotCoupon.Status != constants.CouponStatusRedeemed {
		t.Fatalf("coupon status want REDEEMED got %s", gotCoupon.Status)
	}
}
