package admin

import (
	"errors"

	"github.com/lealtad-next/internal/http/response"
	"github.com/lealtad-next/internal/models"
	"github.com/lealtad-next/internal/service"

	"github.com/gin-gonic/gin"
)

// RewardRequest is the reward upsert payload.
type RewardRequest struct {
	Type         string  `json:"type" binding:"required"`
	Value        float64 `json:"value"`
	ProductID    uint    `json:"product_id"`
	BuyQuantity  int     `json:"buy_quantity"`
	FreeQuantity int     `json:"free_quantity"`
	CustomConfig string  `json:"custom_config"`
	Description  string  `json:"description"`
	MinPurchase  float64 `json:"min_purchase"`
	UsageLimit   int     `json:"usage_limit"`
}

// GetCampaignReward returns the reward attached to a campaign.
func (h *Handler) GetCampaignReward(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	reward, err := h.RewardAdminService.Get(tenantID, campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if reward == nil {
		response.Success(c, nil)
		return
	}

	response.Success(c, reward)
}

// UpsertCampaignReward creates or replaces the reward configuration of a
// campaign. The config is validated before anything is written.
func (h *Handler) UpsertCampaignReward(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	campaignID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	reward, err := h.RewardAdminService.Upsert(tenantID, campaignID, service.RewardInput{
		Type:         req.Type,
		Value:        models.NewMoneyFromFloat(req.Value),
		ProductID:    req.ProductID,
		BuyQuantity:  req.BuyQuantity,
		FreeQuantity: req.FreeQuantity,
		CustomConfig: req.CustomConfig,
		Description:  req.Description,
		MinPurchase:  models.NewMoneyFromFloat(req.MinPurchase),
		UsageLimit:   req.UsageLimit,
	})
	if err != nil {
		respondRewardError(c, err)
		return
	}

	response.Success(c, reward)
}

func respondRewardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCampaignNotFound):
		respondError(c, response.CodeNotFound, "error.campaign_not_found", nil)
	case errors.Is(err, service.ErrRewardTypeRequired):
		respondError(c, response.CodeBadRequest, "error.reward_type_required", nil)
	case errors.Is(err, service.ErrRewardDescriptionRequired):
		respondError(c, response.CodeBadRequest, "error.reward_description_required", nil)
	case errors.Is(err, service.ErrRewardDescriptionTooLong):
		respondError(c, response.CodeBadRequest, "error.reward_description_too_long", nil)
	case errors.Is(err, service.ErrRewardPercentRange):
		respondError(c, response.CodeBadRequest, "error.reward_percent_range", nil)
	case errors.Is(err, service.ErrRewardFixedPositive):
		respondError(c, response.CodeBadRequest, "error.reward_fixed_positive", nil)
	case errors.Is(err, service.ErrRewardProductRequired):
		respondError(c, response.CodeBadRequest, "error.reward_product_required", nil)
	case errors.Is(err, service.ErrRewardQuantitiesPositive):
		respondError(c, response.CodeBadRequest, "error.reward_quantities_positive", nil)
	case errors.Is(err, service.ErrRewardCustomRequired):
		respondError(c, response.CodeBadRequest, "error.reward_custom_required", nil)
	default:
		respondError(c, response.CodeInternal, "error.reward_save_failed", err)
	}
}
