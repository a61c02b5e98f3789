package public

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lealtad-next/internal/cache"
	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/repository"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	campaignListCacheTTL = 60 * time.Second
	campaignListPageSize = 50
)

// publicCampaign is the landing-page projection of a campaign. Internal
// fields (segmentation tags, completeness, automation) stay out.
type publicCampaign struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	StartsAt *time.Time    `json:"starts_at,omitempty"`
	EndsAt   *time.Time    `json:"ends_at,omitempty"`
	Channels []string      `json:"channels"`
	Reward   *publicReward `json:"reward,omitempty"`
}

type publicReward struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// GetTenantCampaigns lists the running campaigns of a tenant landing page.
// The projection is cached briefly per tenant, the landing page is the one
// anonymous surface that can get hot.
func (h *Handler) GetTenantCampaigns(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	cacheKey := fmt.Sprintf("public:campaigns:%s", slug)
	var cached []publicCampaign
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	tenant, err := h.lookupActiveTenant(slug)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			respondError(c, response.CodeNotFound, "error.tenant_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	campaigns, _, err := h.CampaignRepo.List(repository.CampaignListFilter{
		Page:     1,
		PageSize: campaignListPageSize,
		TenantID: tenant.ID,
		Status:   constants.CampaignStatusActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	ids := make([]uint, 0, len(campaigns))
	for _, campaign := range campaigns {
		ids = append(ids, campaign.ID)
	}
	rewards, err := h.RewardRepo.ListByCampaignIDs(ids)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	rewardByCampaign := make(map[uint]*models.Reward, len(rewards))
	for idx := range rewards {
		rewardByCampaign[rewards[idx].CampaignID] = &rewards[idx]
	}

	items := make([]publicCampaign, 0, len(campaigns))
	for idx := range campaigns {
		campaign := campaigns[idx]
		item := publicCampaign{
			ID:       campaign.ID,
			Title:    campaign.Title,
			StartsAt: campaign.StartsAt,
			EndsAt:   campaign.EndsAt,
			Channels: campaign.Channels,
		}
		if reward := rewardByCampaign[campaign.ID]; reward != nil && reward.Type != constants.RewardTypeNone {
			item.Reward = &publicReward{
				Type:        reward.Type,
				Description: reward.Description,
			}
		}
		items = append(items, item)
	}

	_ = cache.SetJSON(c.Request.Context(), cacheKey, items, campaignListCacheTTL)
	response.Success(c, items)
}
