package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/provider"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminCampaignHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:admin_campaign_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.Campaign{},
		&models.Reward{},
		&models.Coupon{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	campaignRepo := repository.NewCampaignRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	validator := service.NewCampaignValidator()
	campaignService := service.NewCampaignAdminService(campaignRepo, rewardRepo, couponRepo, validator)

	h := &Handler{Container: &provider.Container{
		CampaignRepo:         campaignRepo,
		RewardRepo:           rewardRepo,
		CouponRepo:           couponRepo,
		CampaignValidator:    validator,
		CampaignAdminService: campaignService,
	}}
	return h, db
}

func newCampaignTestContext(t *testing.T, method, url string, tenantID uint) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, nil)
	c.Set("admin_id", uint(1))
	c.Set("tenant_id", tenantID)
	return w, c
}

func TestActivateCampaignIncompleteReturnsOrderedMissingItems(t *testing.T) {
	h, db := setupAdminCampaignHandlerTest(t)

	campaign := models.Campaign{
		TenantID: 7,
		Title:    "Campaña sin configurar",
		Status:   constants.CampaignStatusDraft,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	w, c := newCampaignTestContext(t, http.MethodPost, fmt.Sprintf("/admin/campaigns/%d/activate", campaign.ID), 7)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", campaign.ID)}}

	h.ActivateCampaign(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			MissingItems []struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"missing_items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d", resp.StatusCode)
	}

	wantCodes := []string{
		service.MissingCampaignSchedule,
		service.MissingCampaignChannels,
		service.MissingCampaignReward,
	}
	if len(resp.Data.MissingItems) != len(wantCodes) {
		t.Fatalf("missing items want %d got %d (%+v)", len(wantCodes), len(resp.Data.MissingItems), resp.Data.MissingItems)
	}
	for i, want := range wantCodes {
		if resp.Data.MissingItems[i].Code != want {
			t.Fatalf("missing item %d want %s got %s", i, want, resp.Data.MissingItems[i].Code)
		}
		if resp.Data.MissingItems[i].Message == "" {
			t.Fatalf("missing item %d has no localized message", i)
		}
	}

	var stored models.Campaign
	if err := db.First(&stored, campaign.ID).Error; err != nil {
		t.Fatalf("reload campaign failed: %v", err)
	}
	if stored.Status != constants.CampaignStatusDraft {
		t.Fatalf("campaign status should stay DRAFT, got %s", stored.Status)
	}
}

func TestActivateCampaignCompleteActivates(t *testing.T) {
	h, db := setupAdminCampaignHandlerTest(t)

	starts := time.Now().Add(-time.Hour)
	ends := time.Now().Add(24 * time.Hour)
	campaign := models.Campaign{
		TenantID: 7,
		Title:    "Campaña lista",
		StartsAt: &starts,
		EndsAt:   &ends,
		Channels: models.StringSlice{"EMAIL"},
		Status:   constants.CampaignStatusDraft,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	reward := models.Reward{
		CampaignID:  campaign.ID,
		Type:        constants.RewardTypePercentDiscount,
		Value:       models.NewMoneyFromFloat(10),
		Description: "10% de descuento",
		UsageLimit:  1,
	}
	if err := db.Create(&reward).Error; err != nil {
		t.Fatalf("create reward failed: %v", err)
	}

	w, c := newCampaignTestContext(t, http.MethodPost, fmt.Sprintf("/admin/campaigns/%d/activate", campaign.ID), 7)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", campaign.ID)}}

	h.ActivateCampaign(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if resp.Data.Status != constants.CampaignStatusActive {
		t.Fatalf("campaign status want ACTIVE got %s", resp.Data.Status)
	}
}

func TestActivateCampaignOtherTenantNotFound(t *testing.T) {
	h, db := setupAdminCampaignHandlerTest(t)

	campaign := models.Campaign{
		TenantID: 7,
		Title:    "Campaña ajena",
		Status:   constants.CampaignStatusDraft,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	w, c := newCampaignTestContext(t, http.MethodPost, fmt.Sprintf("/admin/campaigns/%d/activate", campaign.ID), 8)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", campaign.ID)}}

	h.ActivateCampaign(c)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d", resp.StatusCode)
	}
}

func TestGetAdminCampaignsAnnotatesCompleteness(t *testing.T) {
	h, db := setupAdminCampaignHandlerTest(t)

	starts := time.Now().Add(-time.Hour)
	ends := time.Now().Add(24 * time.Hour)
	complete := models.Campaign{
		TenantID: 7,
		Title:    "Completa",
		StartsAt: &starts,
		EndsAt:   &ends,
		Channels: models.StringSlice{"QR"},
		Status:   constants.CampaignStatusDraft,
		// Runs without a reward on purpose.
		NoRewardAck: true,
	}
	incomplete := models.Campaign{
		TenantID: 7,
		Title:    "Incompleta",
		Status:   constants.CampaignStatusDraft,
	}
	if err := db.Create(&complete).Error; err != nil {
		t.Fatalf("create complete campaign failed: %v", err)
	}
	if err := db.Create(&incomplete).Error; err != nil {
		t.Fatalf("create incomplete campaign failed: %v", err)
	}

	w, c := newCampaignTestContext(t, http.MethodGet, "/admin/campaigns?page=1&page_size=20", 7)

	h.GetAdminCampaigns(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       []struct {
			ID           uint `json:"id"`
			Completeness struct {
				ConfigComplete bool     `json:"config_complete"`
				MissingItems   []string `json:"missing_items"`
				Severity       string   `json:"severity"`
			} `json:"completeness"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("data len want 2 got %d", len(resp.Data))
	}

	verdicts := map[uint]bool{}
	for _, row := range resp.Data {
		verdicts[row.ID] = row.Completeness.ConfigComplete
	}
	if !verdicts[complete.ID] {
		t.Fatalf("campaign %d should be config complete", complete.ID)
	}
	if verdicts[incomplete.ID] {
		t.Fatalf("campaign %d should be incomplete", incomplete.ID)
	}
}
