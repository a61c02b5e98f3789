package service

import (
	"strings"

	"github.com/lealtad-next/internal/constants"
	"github.com/lealtad-next/internal/models"
)

// Missing-item codes in the fixed check order. Handlers translate them to
// localized text.
const (
	MissingCampaignTitle    = "missing.campaign_title"
	MissingCampaignSchedule = "missing.campaign_schedule"
	MissingCampaignChannels = "missing.campaign_channels"
	MissingCampaignReward   = "missing.campaign_reward"
)

// CompletenessResult is the activation-readiness verdict for one campaign.
// Recomputed on demand, never persisted.
type CompletenessResult struct {
	CampaignID     uint     `json:"campaign_id"`
	ConfigComplete bool     `json:"config_complete"`
	MissingItems   []string `json:"missing_items"`
	Severity       string   `json:"severity"`
}

// CampaignValidator checks whether a campaign is ready to be activated. It is
// read-only and never fails on malformed input; a missing reward is itself a
// missing item.
type CampaignValidator struct{}

// NewCampaignValidator creates a campaign validator.
func NewCampaignValidator() *CampaignValidator {
	return &CampaignValidator{}
}

// Validate builds the ordered missing-items list for a campaign. Checks run
// in a fixed order: title, schedule, channels, reward.
func (v *CampaignValidator) Validate(campaign *models.Campaign, reward *models.Reward) CompletenessResult {
	result := CompletenessResult{
		MissingItems: []string{},
		Severity:     constants.CompletenessSeverityNone,
	}
	if campaign == nil {
		result.MissingItems = append(result.MissingItems,
			MissingCampaignTitle,
			MissingCampaignSchedule,
			MissingCampaignChannels,
			MissingCampaignReward,
		)
		result.Severity = constants.CompletenessSeverityActionRequired
		return result
	}

	result.CampaignID = campaign.ID

	if strings.TrimSpace(campaign.Title) == "" {
		result.MissingItems = append(result.MissingItems, MissingCampaignTitle)
	}
	if campaign.StartsAt == nil || (campaign.EndsAt != nil && !campaign.EndsAt.After(*campaign.StartsAt)) {
		result.MissingItems = append(result.MissingItems, MissingCampaignSchedule)
	}
	if len(campaign.Channels) == 0 {
		result.MissingItems = append(result.MissingItems, MissingCampaignChannels)
	}
	if !v.hasReward(reward) && !campaign.NoRewardAck {
		result.MissingItems = append(result.MissingItems, MissingCampaignReward)
	}

	result.ConfigComplete = len(result.MissingItems) == 0
	if !result.ConfigComplete {
		result.Severity = constants.CompletenessSeverityActionRequired
	}
	return result
}

func (v *CampaignValidator) hasReward(reward *models.Reward) bool {
	if reward == nil {
		return false
	}
	rewardType := strings.TrimSpace(reward.Type)
	return rewardType != "" && rewardType != constants.RewardTypeNone
}
