package repository

import (
	"testing"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCouponRepositoryTest(t *testing.T) (*GormCouponRepository, *GormRewardRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.Reward{}, &models.Redemption{}); err != nil {
		t.Fatalf("migrate coupon tables failed: %v", err)
	}
	return NewCouponRepository(db), NewRewardRepository(db), db
}

func createTestCoupon(t *testing.T, repo *GormCouponRepository, code string, status string, expiresAt *time.Time) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		CampaignID:    1,
		TenantID:      1,
		Code:          code,
		QRToken:       "qr-" + code,
		Status:        status,
		ExpiresAt:     expiresAt,
		CustomerEmail: "cliente@example.com",
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestMarkRedeemedIsAtMostOnce(t *testing.T) {
	repo, _, db := setupCouponRepositoryTest(t)
	coupon := createTestCoupon(t, repo, "REDEEM-ONCE", constants.CouponStatusActive, nil)

	now := time.Now()
	affected, err := repo.MarkRedeemed(coupon.ID, now, "staff@example.com")
	if err != nil {
		t.Fatalf("mark redeemed failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("first redeem affected want 1 got %d", affected)
	}

	affected, err = repo.MarkRedeemed(coupon.ID, now, "other@example.com")
	if err != nil {
		t.Fatalf("second mark redeemed failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second redeem affected want 0 got %d", affected)
	}

	var got models.Coupon
	if err := db.First(&got, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if got.Status != constants.CouponStatusRedeemed {
		t.Fatalf("status want REDEEMED got %s", got.Status)
	}
	if got.RedeemedBy != "staff@example.com" {
		t.Fatalf("redeemed_by want first caller got %s", got.RedeemedBy)
	}
}

func TestMarkCancelledSkipsTerminalStates(t *testing.T) {
	repo, _, _ := setupCouponRepositoryTest(t)

	active := createTestCoupon(t, repo, "CANCEL-ACTIVE", constants.CouponStatusActive, nil)
	affected, err := repo.MarkCancelled(active.ID)
	if err != nil {
		t.Fatalf("cancel active failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("cancel active affected want 1 got %d", affected)
	}

	redeemed := createTestCoupon(t, repo, "CANCEL-REDEEMED", constants.CouponStatusRedeemed, nil)
	affected, err = repo.MarkCancelled(redeemed.ID)
	if err != nil {
		t.Fatalf("cancel redeemed failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("cancel redeemed affected want 0 got %d", affected)
	}
}

func TestExpireDueSweepsOnlyOverdueNonTerminal(t *testing.T) {
	repo, _, db := setupCouponRepositoryTest(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	overdue := createTestCoupon(t, repo, "SWEEP-OVERDUE", constants.CouponStatusSent, &past)
	upcoming := createTestCoupon(t, repo, "SWEEP-UPCOMING", constants.CouponStatusSent, &future)
	redeemed := createTestCoupon(t, repo, "SWEEP-REDEEMED", constants.CouponStatusRedeemed, &past)
	open := createTestCoupon(t, repo, "SWEEP-OPEN", constants.CouponStatusActive, nil)

	swept, err := repo.ExpireDue(time.Now())
	if err != nil {
		t.Fatalf("expire sweep failed: %v", err)
	}
	if swept != 1 {
		t.Fatalf("swept want 1 got %d", swept)
	}

	checkStatus := func(id uint, want string) {
		var got models.Coupon
		if err := db.First(&got, id).Error; err != nil {
			t.Fatalf("reload coupon %d failed: %v", id, err)
		}
		if got.Status != want {
			t.Fatalf("coupon %d status want %s got %s", id, want, got.Status)
		}
	}
	checkStatus(overdue.ID, constants.CouponStatusExpired)
	checkStatus(upcoming.ID, constants.CouponStatusSent)
	checkStatus(redeemed.ID, constants.CouponStatusRedeemed)
	checkStatus(open.ID, constants.CouponStatusActive)
}

func TestIncrementUsageCountStopsAtLimit(t *testing.T) {
	_, rewards, db := setupCouponRepositoryTest(t)

	reward := &models.Reward{
		CampaignID: 42,
		Type:       constants.RewardTypePercentDiscount,
		Value:      models.NewMoneyFromFloat(20),
		UsageLimit: 2,
	}
	if err := rewards.Create(reward); err != nil {
		t.Fatalf("create reward failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		affected, err := rewards.IncrementUsageCount(reward.ID, reward.EffectiveUsageLimit())
		if err != nil {
			t.Fatalf("increment %d failed: %v", i, err)
		}
		if affected != 1 {
			t.Fatalf("increment %d affected want 1 got %d", i, affected)
		}
	}

	affected, err := rewards.IncrementUsageCount(reward.ID, reward.EffectiveUsageLimit())
	if err != nil {
		t.Fatalf("increment past limit failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("increment past limit affected want 0 got %d", affected)
	}

	var got models.Reward
	if err := db.First(&got, reward.ID).Error; err != nil {
		t.Fatalf("reload reward failed: %v", err)
	}
	if got.UsageCount != 2 {
		t.Fatalf("usage count want 2 got %d", got.UsageCount)
	}
}

func TestIncrementUsageCountTreatsNonPositiveLimitAsOne(t *testing.T) {
	_, rewards, _ := setupCouponRepositoryTest(t)

	reward := &models.Reward{
		CampaignID: 43,
		Type:       constants.RewardTypeFixedAmount,
		Value:      models.NewMoneyFromFloat(10),
		UsageLimit: 0,
	}
	if err := rewards.Create(reward); err != nil {
		t.Fatalf("create reward failed: %v", err)
	}

	affected, err := rewards.IncrementUsageCount(reward.ID, reward.EffectiveUsageLimit())
	if err != nil {
		t.Fatalf("first increment failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("first increment affected want 1 got %d", affected)
	}

	affected, err = rewards.IncrementUsageCount(reward.ID, reward.EffectiveUsageLimit())
	if err != nil {
		t.Fatalf("second increment failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second increment affected want 0 got %d", affected)
	}
}
