package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/i18n"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignRequest is the create/update payload.
type CampaignRequest struct {
	Title       string     `json:"title" binding:"required"`
	TemplateID  *uint      `json:"template_id"`
	PromoType   string     `json:"promo_type"`
	PromoValue  string     `json:"promo_value"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Channels    []string   `json:"channels"`
	Tags        []string   `json:"tags"`
	Automatic   bool       `json:"automatic"`
	NoRewardAck bool       `json:"no_reward_ack"`
}

func (r CampaignRequest) toServiceInput() service.CampaignInput {
	return service.CampaignInput{
		Title:       r.Title,
		TemplateID:  r.TemplateID,
		PromoType:   r.PromoType,
		PromoValue:  r.PromoValue,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Channels:    r.Channels,
		Tags:        r.Tags,
		Automatic:   r.Automatic,
		NoRewardAck: r.NoRewardAck,
	}
}

// GetAdminCampaigns lists campaigns annotated with their completeness verdict.
func (h *Handler) GetAdminCampaigns(c *gin.Context) {
	tenantID, ok := tenantScope(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	campaigns, total, err := h.CampaignAdminService.List(repository.CampaignListFilter{
		Page:     page,
		PageSize: pageSize,
		TenantID: tenantID,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, campaigns, pagination)
}

// GetAdminCampaign returns one campaign with completeness and coupon counts.
func (h *Handler) GetAdminCampaign(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.CampaignAdminService.Get(tenantID, campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, view)
}

// CreateCampaign creates a draft campaign.
func (h *Handler) CreateCampaign(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	campaign, err := h.CampaignAdminService.Create(tenantID, req.toServiceInput())
	if err != nil {
		respondCampaignError(c, err, "error.campaign_create_failed")
		return
	}

	response.Success(c, campaign)
}

// UpdateCampaign edits a campaign.
func (h *Handler) UpdateCampaign(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	campaign, err := h.CampaignAdminService.Update(tenantID, campaignID, req.toServiceInput())
	if err != nil {
		respondCampaignError(c, err, "error.campaign_update_failed")
		return
	}

	response.Success(c, campaign)
}

// ActivateCampaign activates a campaign. Incomplete campaigns are rejected
// with the ordered list of missing items.
func (h *Handler) ActivateCampaign(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.CampaignAdminService.Activate(tenantID, campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignIncomplete) {
			respondErrorWithData(c, response.CodeBadRequest, "error.campaign_incomplete",
				missingItemsData(c, err), nil)
			return
		}
		respondCampaignError(c, err, "error.campaign_update_failed")
		return
	}

	response.Success(c, campaign)
}

// DeactivateCampaign pauses a campaign.
func (h *Handler) DeactivateCampaign(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	campaign, err := h.CampaignAdminService.Deactivate(tenantID, campaignID)
	if err != nil {
		respondCampaignError(c, err, "error.campaign_update_failed")
		return
	}

	response.Success(c, campaign)
}

func respondCampaignError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrCampaignNotFound):
		respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
	case errors.Is(err, service.ErrCampaignTitle):
		respondError(c, response.CodeBadRequest, "error.campaign_title_required", nil)
	case errors.Is(err, service.ErrCampaignDates):
		respondError(c, response.CodeBadRequest, "error.campaign_dates_invalid", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// missingItemsData localizes the missing items carried by an incomplete
// campaign error, preserving their order.
func missingItemsData(c *gin.Context, err error) gin.H {
	var incomplete *service.IncompleteCampaignError
	if !errors.As(err, &incomplete) {
		return gin.H{"missing_items": []string{}}
	}
	locale := i18n.ResolveLocale(c)
	items := make([]gin.H, 0, len(incomplete.Missing))
	for _, code := range incomplete.Missing {
		items = append(items, gin.H{
			"code":    code,
			"message": i18n.T(locale, code),
		})
	}
	return gin.H{"missing_items": items}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(parsed), true
}
