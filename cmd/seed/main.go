package main

import (
	"fmt"
	"time"

	"github.com/lealtad-next/internal/authz"
	"github.com/lealtad-next/internal/config"
	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/logger"
	"github.com/lealtad-next/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo tenant with staff, an activatable campaign and a batch of
// coupons, so a fresh install has something to click through.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	tenant := models.Tenant{
		Name:     "Cafetería El Sol",
		Slug:     "cafeteria-el-sol",
		Email:    "hola@elsol.example",
		IsActive: true,
	}
	var existingTenant models.Tenant
	if err := models.DB.Where("slug = ?", tenant.Slug).First(&existingTenant).Error; err != nil {
		if err := models.DB.Create(&tenant).Error; err != nil {
			stdLog.Fatalf("failed to create tenant: %v", err)
		}
		stdLog.Printf("created tenant: %s", tenant.Slug)
	} else {
		tenant = existingTenant
		stdLog.Printf("tenant already exists: %s", tenant.Slug)
	}

	staff := []struct {
		username string
		email    string
		role     string
	}{
		{username: "sol-manager", email: "manager@elsol.example", role: "campaign_manager"},
		{username: "sol-clerk", email: "clerk@elsol.example", role: "redemption_clerk"},
		{username: "sol-auditor", email: "auditor@elsol.example", role: "readonly_auditor"},
	}

	authzService, err := authz.NewService(models.DB)
	if err != nil {
		stdLog.Fatalf("failed to init authz: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		stdLog.Fatalf("failed to bootstrap roles: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-pass-123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("failed to hash demo password: %v", err)
	}

	for _, member := range staff {
		var existing models.Admin
		if err := models.DB.Where("username = ?", member.username).First(&existing).Error; err == nil {
			stdLog.Printf("staff already exists: %s", member.username)
			continue
		}
		admin := models.Admin{
			TenantID:     tenant.ID,
			Username:     member.username,
			Email:        member.email,
			PasswordHash: string(hash),
		}
		if err := models.DB.Create(&admin).Error; err != nil {
			stdLog.Printf("failed to create staff %s: %v", member.username, err)
			continue
		}
		if err := authzService.SetAdminRoles(admin.ID, []string{member.role}); err != nil {
			stdLog.Printf("failed to assign role to %s: %v", member.username, err)
			continue
		}
		stdLog.Printf("created staff: %s (%s)", member.username, member.role)
	}

	starts := time.Now().Add(-24 * time.Hour)
	ends := time.Now().Add(30 * 24 * time.Hour)
	campaign := models.Campaign{
		TenantID: tenant.ID,
		Title:    "Bienvenida 20%",
		StartsAt: &starts,
		EndsAt:   &ends,
		Channels: models.StringSlice{"EMAIL", "QR"},
		Tags:     models.StringSlice{"bienvenida"},
		Status:   constants.CampaignStatusActive,
	}
	var existingCampaign models.Campaign
	if err := models.DB.Where("tenant_id = ? AND title = ?", tenant.ID, campaign.Title).First(&existingCampaign).Error; err != nil {
		if err := models.DB.Create(&campaign).Error; err != nil {
			stdLog.Fatalf("failed to create campaign: %v", err)
		}
		stdLog.Printf("created campaign: %s", campaign.Title)
	} else {
		campaign = existingCampaign
		stdLog.Printf("campaign already exists: %s", campaign.Title)
	}

	reward := models.Reward{
		CampaignID:  campaign.ID,
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(20),
		Description: "20% de descuento en tu primera compra",
		MinPurchase: models.NewMoneyFromFloat(100),
		UsageLimit:  100,
	}
	var existingReward models.Reward
	if err := models.DB.Where("campaign_id = ?", campaign.ID).First(&existingReward).Error; err != nil {
		if err := models.DB.Create(&reward).Error; err != nil {
			stdLog.Fatalf("failed to create reward: %v", err)
		}
		stdLog.Printf("created reward: %s", reward.Type)
	} else {
		stdLog.Printf("reward already exists for campaign %d", campaign.ID)
	}

	var couponCount int64
	models.DB.Model(&models.Coupon{}).Where("campaign_id = ?", campaign.ID).Count(&couponCount)
	if couponCount == 0 {
		expires := time.Now().Add(30 * 24 * time.Hour)
		demoCodes := []string{"SOLDEMO1", "SOLDEMO2", "SOLDEMO3"}
		for i, code := range demoCodes {
			coupon := models.Coupon{
				CampaignID:    campaign.ID,
				TenantID:      tenant.ID,
				Code:          code,
				QRToken:       uuid.NewString(),
				Status:        constants.CouponStatusActive,
				ExpiresAt:     &expires,
				CustomerName:  "Cliente Demo",
				CustomerEmail: fmt.Sprintf("cliente%d@example.com", i+1),
			}
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("failed to create coupon %s: %v", code, err)
				continue
			}
			stdLog.Printf("created coupon: %s", code)
		}
	} else {
		stdLog.Printf("coupons already seeded for campaign %d", campaign.ID)
	}

	stdLog.Printf("seed complete")
}
